package publisher

import (
	"context"

	"github.com/pkg/errors"

	"github.com/gofish-bot/version-publisher/credentials"
	"github.com/gofish-bot/version-publisher/log"
	"github.com/gofish-bot/version-publisher/models"
	"github.com/gofish-bot/version-publisher/store"
)

// Opener authenticates with the credential and connects to the store
// holding target.
type Opener func(ctx context.Context, sa *credentials.ServiceAccount, target models.Target) (store.Store, error)

// Request is everything a single publication needs. It is built once at
// process entry.
type Request struct {
	Credential *credentials.ServiceAccount
	Release    models.ReleaseMetadata
	Target     models.Target
}

// Publish merges the release metadata into the target document with
// exactly one write. Any failure is returned as a *RemoteWriteError.
func Publish(ctx context.Context, open Opener, req Request) (*models.Result, error) {
	logger := log.G(ctx).WithField("document", req.Target.Path())
	ctx = log.WithLogger(ctx, logger)

	logger.Infof("## Publishing version %s", req.Release.LatestVersion)

	s, err := open(ctx, req.Credential, req.Target)
	if err != nil {
		return nil, &RemoteWriteError{Path: req.Target.Path(), Err: errors.Wrap(err, "authenticating")}
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Warnf("Closing store: %v", err)
		}
	}()

	updateTime, err := s.MergeSet(ctx, req.Target, req.Release.Fields())
	if err != nil {
		return nil, &RemoteWriteError{Path: req.Target.Path(), Err: err}
	}

	logger.Debugf("Write applied at %s", updateTime)
	return &models.Result{
		Target:     req.Target,
		Release:    req.Release,
		UpdateTime: updateTime,
	}, nil
}

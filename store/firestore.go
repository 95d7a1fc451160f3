package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/gofish-bot/version-publisher/credentials"
	"github.com/gofish-bot/version-publisher/log"
	"github.com/gofish-bot/version-publisher/models"
)

// Store merges fields into a single document.
type Store interface {
	// MergeSet creates the document or overwrites only the given fields,
	// and returns the time the store applied the write.
	MergeSet(ctx context.Context, target models.Target, fields map[string]interface{}) (time.Time, error)
	Close() error
}

type Firestore struct {
	client *firestore.Client
}

// New wraps an existing client.
func New(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

// Dial authenticates with the service account and connects to the
// Firestore database of the target project.
func Dial(ctx context.Context, sa *credentials.ServiceAccount, target models.Target) (Store, error) {
	creds, err := sa.Credentials(ctx)
	if err != nil {
		return nil, err
	}

	log.G(ctx).Debugf("Connecting to project %s as %s", target.ProjectID, sa.ClientEmail)
	client, err := firestore.NewClient(ctx, target.ProjectID, option.WithCredentials(creds))
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to project %s", target.ProjectID)
	}
	return New(client), nil
}

func (f *Firestore) MergeSet(ctx context.Context, target models.Target, fields map[string]interface{}) (time.Time, error) {
	doc := f.client.Collection(target.Collection).Doc(target.Document)

	log.G(ctx).Debugf("Merging %d fields into %s", len(fields), doc.Path)
	res, err := doc.Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return time.Time{}, err
	}
	return res.UpdateTime, nil
}

func (f *Firestore) Close() error {
	return f.client.Close()
}

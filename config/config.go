package config

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/go-yaml/yaml"
	"github.com/gobuffalo/envy"
	"github.com/pkg/errors"

	"github.com/gofish-bot/version-publisher/credentials"
	"github.com/gofish-bot/version-publisher/models"
	"github.com/gofish-bot/version-publisher/publisher"
	"github.com/gofish-bot/version-publisher/version"
)

// DefaultCredentialsEnv holds the JSON service-account key.
const DefaultCredentialsEnv = "FIREBASE_SERVICE_ACCOUNT"

type Options struct {
	CredentialsEnv string
	TargetFile     string
	DryRun         bool
}

// Config is the full description of one invocation.
type Config struct {
	Credential *credentials.ServiceAccount
	Release    models.ReleaseMetadata
	Target     models.Target
	// RawVersion is the version argument as given, before normalization.
	RawVersion string
	DryRun     bool
}

func (c *Config) Request() publisher.Request {
	return publisher.Request{
		Credential: c.Credential,
		Release:    c.Release,
		Target:     c.Target,
	}
}

// Load resolves the credential first, then the positional arguments and
// finally the target. Nothing here touches the network.
func Load(opts Options, args []string) (*Config, error) {
	env := opts.CredentialsEnv
	if env == "" {
		env = DefaultCredentialsEnv
	}
	sa, err := LoadCredential(env)
	if err != nil {
		return nil, err
	}

	release, err := ParseArgs(args)
	if err != nil {
		return nil, err
	}

	target, err := LoadTarget(opts.TargetFile, sa.ProjectID)
	if err != nil {
		return nil, err
	}

	return &Config{
		Credential: sa,
		Release:    release,
		Target:     target,
		RawVersion: args[0],
		DryRun:     opts.DryRun,
	}, nil
}

func LoadCredential(env string) (*credentials.ServiceAccount, error) {
	payload, err := envy.MustGet(env)
	if err != nil || strings.TrimSpace(payload) == "" {
		return nil, &publisher.ConfigurationError{Err: errors.Errorf("environment variable %s is not set", env)}
	}
	sa, err := credentials.Parse([]byte(payload))
	if err != nil {
		return nil, &publisher.ConfigurationError{Err: errors.Wrapf(err, "parsing %s", env)}
	}
	return sa, nil
}

// ParseArgs builds the release record from
// <version> <androidUrl> [<windowsUrl>] [<macosUrl>]. Extra arguments are
// ignored.
func ParseArgs(args []string) (models.ReleaseMetadata, error) {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	if arg(0) == "" || arg(1) == "" {
		return models.ReleaseMetadata{}, &publisher.UsageError{Msg: "version and Android download URL are required"}
	}
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			return models.ReleaseMetadata{}, &publisher.UsageError{Msg: fmt.Sprintf("flags must precede positional arguments, got %q", a)}
		}
	}

	latest := version.Normalize(arg(0))
	if latest == "" {
		return models.ReleaseMetadata{}, &publisher.UsageError{Msg: fmt.Sprintf("version %q is empty once the leading v is removed", arg(0))}
	}

	return models.ReleaseMetadata{
		LatestVersion:      latest,
		DownloadURLAndroid: arg(1),
		DownloadURLWindows: arg(2),
		DownloadURLMac:     arg(3),
	}, nil
}

// LoadTarget returns the default document, overridden by whatever keys the
// optional YAML file sets.
func LoadTarget(path, projectID string) (models.Target, error) {
	target := models.Target{
		ProjectID:  projectID,
		Collection: models.DefaultCollection,
		Document:   models.DefaultDocument,
	}
	if path == "" {
		return target, nil
	}

	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		return models.Target{}, &publisher.ConfigurationError{Err: errors.Wrap(err, "reading target file")}
	}
	override := models.Target{}
	if err := yaml.Unmarshal(yamlFile, &override); err != nil {
		return models.Target{}, &publisher.ConfigurationError{Err: errors.Wrapf(err, "parsing target file %s", path)}
	}

	if override.ProjectID != "" {
		target.ProjectID = override.ProjectID
	}
	if override.Collection != "" {
		target.Collection = override.Collection
	}
	if override.Document != "" {
		target.Document = override.Document
	}
	return target, nil
}

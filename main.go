package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/gofish-bot/version-publisher/config"
	"github.com/gofish-bot/version-publisher/log"
	"github.com/gofish-bot/version-publisher/printer"
	"github.com/gofish-bot/version-publisher/publisher"
	"github.com/gofish-bot/version-publisher/store"
	"github.com/gofish-bot/version-publisher/version"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, store.Dial))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, open publisher.Opener) int {
	err := newApp(stdout, stderr, open).Run(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return publisher.ExitCode(err)
}

func newApp(stdout, stderr io.Writer, open publisher.Opener) *cli.App {
	var verbose bool
	var dryRun bool
	var targetFile string
	var credentialsEnv string

	app := cli.NewApp()
	app.Name = "version-publisher"
	app.Usage = "Publish app release metadata to Firestore"
	app.ArgsUsage = "<version> <androidUrl> [<windowsUrl>] [<macosUrl>]"
	app.Version = "0.0.1"
	app.Writer = stdout
	app.ErrWriter = stderr
	// run maps errors to exit codes
	app.ExitErrHandler = func(c *cli.Context, err error) {}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "dry-run, n",
			Usage:       "Print the record without writing it",
			Destination: &dryRun,
		}, cli.StringFlag{
			Name:        "target, t",
			Usage:       "YAML file overriding project_id, collection or document",
			Destination: &targetFile,
		}, cli.StringFlag{
			Name:        "credentials-env",
			Usage:       "Environment variable holding the service account key",
			Value:       config.DefaultCredentialsEnv,
			Destination: &credentialsEnv,
		}, cli.BoolFlag{
			Name:        "verbose",
			Usage:       "Full debug log",
			Destination: &verbose,
		},
	}

	app.Action = func(c *cli.Context) error {
		logger := log.Configure(stderr, verbose)
		ctx := context.Background()

		cfg, err := config.Load(config.Options{
			CredentialsEnv: credentialsEnv,
			TargetFile:     targetFile,
			DryRun:         dryRun,
		}, []string(c.Args()))
		if err != nil {
			return err
		}

		if !version.IsSemver(cfg.Release.LatestVersion) {
			logger.Warnf("Version %q is not a semantic version, publishing as is", cfg.Release.LatestVersion)
		}

		if cfg.DryRun {
			printer.DryRun(stdout, cfg.Target, cfg.Release)
			return nil
		}

		result, err := publisher.Publish(ctx, open, cfg.Request())
		if err != nil {
			return err
		}

		printer.Published(stdout, cfg.RawVersion, result)
		return nil
	}

	return app
}

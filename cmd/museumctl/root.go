package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"museum-web/internal/config"
	"museum-web/internal/infra/museumapi"
	envcfg "museum-web/pkg/config"
)

type options struct {
	configPath string
	apiURL     string
	timeout    time.Duration
	asJSON     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "museumctl",
		Short:         "Command line client for the museum API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", envcfg.GetEnvString("CONFIG_PATH", ""), "path to the web YAML configuration")
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "museum API base URL (overrides the configuration)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall operation timeout")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log API calls to stderr")

	root.AddCommand(
		newPingCmd(opts),
		newVeteransCmd(opts),
		newNewsCmd(opts),
		newLoginCmd(opts),
	)
	return root
}

// client builds an API client from the configuration file and flags.
func (o *options) client(cmd *cobra.Command) (*museumapi.Client, *config.WebConfig, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if o.apiURL != "" {
		cfg.API.BaseURL = o.apiURL
	}

	level := slog.LevelWarn
	var out io.Writer = io.Discard
	if o.verbose {
		level = slog.LevelDebug
		out = cmd.ErrOrStderr()
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	c, err := museumapi.New(cfg.ClientConfig(), museumapi.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

func (o *options) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.timeout)
}

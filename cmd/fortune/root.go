package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/fortune-service/internal/adapters/clients"
	"github.com/jsamuelsen/fortune-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/fortune-service/internal/platform/config"
	"github.com/jsamuelsen/fortune-service/internal/platform/logging"
	"github.com/jsamuelsen/fortune-service/internal/ports"
	"github.com/jsamuelsen/fortune-service/internal/ui"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	profile  string
	baseURL  string
	logLevel string

	newAPI apiFactory
}

type apiFactory func(opts *options, logger *slog.Logger) (ports.FortuneAPI, error)

func newRootCmd() *cobra.Command {
	return newRootCmdWithAPI(newHTTPAPI)
}

func newRootCmdWithAPI(newAPI apiFactory) *cobra.Command {
	opts := &options{newAPI: newAPI}

	root := &cobra.Command{
		Use:   "fortune",
		Short: "Read and submit fortunes",
		Long: `fortune talks to a running fortune service.

Without a subcommand it starts an interactive session: a random fortune is
shown, "new" fetches another, "type <text>" edits the draft and "submit"
sends it.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			component, err := opts.component(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return runREPL(cmd.Context(), component, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	defaultProfile := os.Getenv("APP_ENVIRONMENT")
	if defaultProfile == "" {
		defaultProfile = "local"
	}

	root.PersistentFlags().StringVar(&opts.profile, "profile", defaultProfile, "Config profile to load from ./configs")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Fortune service URL (overrides client.base_url)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")

	root.AddCommand(newGetCmd(opts), newAddCmd(opts))

	return root
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print one random fortune",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			component, err := opts.component(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			component.Mount(cmd.Context())

			if component.Current() == "" {
				return fmt.Errorf("no fortune received")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), component.Current())

			return err
		},
	}
}

func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Submit a new fortune and print the stored copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			component, err := opts.component(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			component.Change(args[0])
			component.Submit(cmd.Context())

			if component.Current() == "" {
				return fmt.Errorf("fortune was not stored")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), component.Current())

			return err
		},
	}
}

// component builds the view with a logger writing to stderr.
func (o *options) component(stderr io.Writer) (*ui.Component, error) {
	logger := logging.NewWithWriter(&logging.Config{
		Level:   o.logLevel,
		Format:  "pretty",
		Service: "fortune",
		Version: "dev",
	}, stderr)

	api, err := o.newAPI(o, logger)
	if err != nil {
		return nil, err
	}

	return ui.NewComponent(ui.ComponentConfig{API: api, Logger: logger}), nil
}

// newHTTPAPI wires the resilient HTTP client from the client config section.
func newHTTPAPI(o *options, logger *slog.Logger) (ports.FortuneAPI, error) {
	cfg, err := config.Load(o.profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	clientCfg := cfg.Client
	if o.baseURL != "" {
		clientCfg.BaseURL = o.baseURL
	}

	httpClient, err := clients.New(clients.ConfigFromClient(acl.ServiceName, &clientCfg, logger))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP client: %w", err)
	}

	return acl.NewFortuneClient(acl.FortuneClientConfig{
		Client: httpClient,
		Logger: logger,
	}), nil
}

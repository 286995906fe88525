package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	cms "github.com/goliatone/go-filecms"
)

type serveOptions struct {
	addr string
	mode string
}

func (c *cli) newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.runServe(ctx, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.addr, "addr", "a", "", "listen address (overrides server.addr)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "run mode: production or test (overrides mode)")
	return cmd
}

func (c *cli) loadConfig(opts *serveOptions) (cms.Config, error) {
	cfg, err := cms.LoadConfig(c.configPath)
	if err != nil {
		return cms.Config{}, err
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.mode != "" {
		cfg.Mode = opts.mode
	}
	return cfg, nil
}

func (c *cli) runServe(ctx context.Context, opts *serveOptions) error {
	cfg, err := c.loadConfig(opts)
	if err != nil {
		return err
	}
	module, err := cms.New(cfg)
	if err != nil {
		return err
	}
	return module.ListenAndServe(ctx)
}

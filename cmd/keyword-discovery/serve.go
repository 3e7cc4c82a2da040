// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/keyword-discovery/internal/metrics"
	"github.com/pdiddy/keyword-discovery/internal/server"
	"github.com/pdiddy/keyword-discovery/internal/store"
	"github.com/pdiddy/keyword-discovery/internal/suggest"
	"github.com/pdiddy/keyword-discovery/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Serve starts an HTTP dashboard with a form for running discoveries,
a JSON API at /api/run, CSV downloads, and Prometheus metrics at /metrics.
With --store, every run is saved to the history database.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", server.DefaultAddr, "listen address")
	addExpandFlags(serveCmd)

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := expandConfig(cmd)
	deps := server.Deps{
		Suggester: suggest.NewClient(cfg.HTTPConfig, logger),
		Options:   expandOptions(cfg),
		Metrics:   metrics.New(),
		Logger:    logger,
	}

	if sc := storeConfig(cmd); sc.Path != "" {
		st, err := store.Open(sc)
		if err != nil {
			return err
		}
		defer st.Close()
		deps.Store = st
	}

	srv, err := server.New(types.ServerConfig{Addr: stringSetting(cmd, "addr", "server.addr")}, deps)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
		logger.Info().Msg("shutting down")
		return srv.Shutdown()
	}
}

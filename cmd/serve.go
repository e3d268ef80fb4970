package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/household-archive/cataloger/internal/catalog"
	"github.com/household-archive/cataloger/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd(rootDir *string) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start a read-only browse server for the catalog",
		Long: `Serves the catalog, the updates index, and the image files over HTTP
for browsing. The server never writes to the store.`,
		Example: `  # Start server on default port 8888
  cataloger serve

  # Start server on custom port
  cataloger serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := catalog.NewStore(*rootDir)
			handler := handlers.New(store)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/items", handler.HandleItems)
			mux.HandleFunc("/api/items/", handler.HandleItemDetail)
			mux.HandleFunc("/api/deltas", handler.HandleDeltas)
			mux.Handle("/img/", http.StripPrefix("/img/", http.FileServer(http.Dir(store.ImageDir()))))
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Catalog browse server available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")

	return cmd
}

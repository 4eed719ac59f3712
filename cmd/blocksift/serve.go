package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/tovenja/blocksift"
	"github.com/tovenja/blocksift/internal/logging"
	"github.com/tovenja/blocksift/internal/presentation/tui"
	"github.com/tovenja/blocksift/pkg/adapters/docfile"
	httpAdapter "github.com/tovenja/blocksift/pkg/adapters/http"
	redisAdapter "github.com/tovenja/blocksift/pkg/adapters/redis"
	"github.com/tovenja/blocksift/pkg/observability"
	"github.com/tovenja/blocksift/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the engine in server mode, exposing search and replace passes as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		docID, _ := cmd.Flags().GetString("doc-id")

		tui.PrintBanner(blocksift.Version)
		logger := logging.New(slog.LevelInfo)

		store, err := buildStore(cmd, redisAddr, docID)
		if err != nil {
			fmt.Printf("Error opening document store: %v\n", err)
			os.Exit(1)
		}

		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)

		engine, err := blocksift.New(store,
			blocksift.WithLogger(logger),
			blocksift.WithLifecycleHooks(metrics.Hooks()),
		)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(engine, store,
			httpAdapter.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting blocksift server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("blocksift server stopped gracefully")
		}
	},
}

// buildStore picks the backing store: a Redis document when --redis is set,
// otherwise the document file from --doc.
func buildStore(cmd *cobra.Command, redisAddr, docID string) (ports.BlockStore, error) {
	if redisAddr != "" {
		password, _ := cmd.Flags().GetString("redis-password")
		db, _ := cmd.Flags().GetInt("redis-db")
		return redisAdapter.New(redisAddr, password, db, docID), nil
	}
	doc, _ := cmd.Flags().GetString("doc")
	return docfile.NewStore(doc)
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address (serve the document from Redis instead of a file)")
	serveCmd.Flags().String("redis-password", "", "Redis password")
	serveCmd.Flags().Int("redis-db", 0, "Redis database number")
	serveCmd.Flags().String("doc-id", "default", "Document ID when serving from Redis")
}

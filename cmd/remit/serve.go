package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bridgeremit/remit/internal/config"
	"github.com/bridgeremit/remit/internal/gateway"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the AI gateway proxy",
		Long: `Serve the HTTP gateway that proxies chat completion requests to the
upstream AI provider. The upstream key is read from AI_GATEWAY_API_KEY
(a .env file in the working directory is loaded if present).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Missing .env is fine, the variable may be set directly.
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to load .env: %w", err)
			}
			apiKey := os.Getenv("AI_GATEWAY_API_KEY")
			if apiKey == "" {
				slog.Warn("AI_GATEWAY_API_KEY is not set, upstream calls will be rejected")
			}

			if addr == "" {
				addr = config.ListenAddr()
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           gateway.NewServer(config.UpstreamURL(), apiKey).Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("gateway listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("gateway shutdown: %w", err)
				}
				return nil
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("gateway server: %w", err)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

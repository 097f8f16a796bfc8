package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Authenticate runs the interactive OAuth2 flow: it opens a local callback
// server, prints the consent URL, exchanges the code, and saves the token
// to cfg.TokenFile.
func Authenticate(ctx context.Context, cfg Config, logger *slog.Logger) (*oauth2.Token, error) {
	if logger == nil {
		logger = slog.Default()
	}

	oauthCfg := oauthConfig(cfg)

	codeChan := make(chan string, 1)
	errorChan := make(chan error, 1)

	mux := http.NewServeMux()
	server := &http.Server{Addr: ":8080", Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errorChan <- fmt.Errorf("no authorization code received")
			_, _ = fmt.Fprint(w, `<html><body>
				<h1>Authentication Failed</h1>
				<p>No authorization code received. Please try again.</p>
			</body></html>`)
			return
		}

		codeChan <- code
		_, _ = fmt.Fprint(w, `<html><body>
			<h1>Authentication Successful!</h1>
			<p>You can close this window and return to the terminal.</p>
		</body></html>`)
	})

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errorChan <- fmt.Errorf("failed to start callback server: %w", err)
		}
	}()

	authURL := oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	logger.Info("Google Calendar authentication required")
	logger.Info("Please visit this URL to authenticate", "url", authURL)
	logger.Info("Waiting for authentication...")

	var authCode string
	select {
	case authCode = <-codeChan:
		logger.Info("Received authorization code")
	case err := <-errorChan:
		_ = server.Shutdown(ctx)
		return nil, err
	case <-time.After(5 * time.Minute):
		_ = server.Shutdown(ctx)
		return nil, fmt.Errorf("authentication timeout after 5 minutes")
	case <-ctx.Done():
		_ = server.Shutdown(ctx)
		return nil, ctx.Err()
	}

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("error shutting down callback server", "error", err)
	}

	token, err := oauthCfg.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	if cfg.TokenFile != "" {
		if err := SaveToken(cfg.TokenFile, token); err != nil {
			logger.Warn("failed to save token", "error", err, "file", cfg.TokenFile)
		} else {
			logger.Info("token saved", "file", cfg.TokenFile)
		}
	}

	return token, nil
}

// Package auth obtains OAuth2 tokens for the Taegis API. When CLIENT_ID and
// CLIENT_SECRET are present in the environment it uses the client
// credentials grant; otherwise it falls back to the interactive device-code
// flow, printing the verification URL and user code to stderr and polling
// until the operator completes authentication.
package auth

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/areino/validate-taegis-parser/internal/config"
	tgerrors "github.com/areino/validate-taegis-parser/internal/errors"
)

// Public client identifier used for the interactive device-code fallback.
const deviceClientID = "taegis-parser-tools"

// Token endpoint paths relative to the environment's auth base URL.
const (
	tokenPath      = "/auth/api/v2/auth/token"
	deviceAuthPath = "/auth/api/v2/auth/device"
)

// TokenSource returns an OAuth2 token source for the configured
// environment. It prefers client credentials from the environment variables
// named in cfg and falls back to the device-code flow, prompting on stderr.
func TokenSource(ctx context.Context, cfg *config.Config) (oauth2.TokenSource, error) {
	base, err := cfg.AuthEndpoint()
	if err != nil {
		return nil, err
	}

	clientID, clientSecret, ok := resolveCredentials(cfg.Taegis.ClientIDEnv, cfg.Taegis.SecretEnv)
	if ok {
		slog.Debug("authenticating with client credentials", "client_id_env", cfg.Taegis.ClientIDEnv)
		cc := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     base + tokenPath,
		}
		return cc.TokenSource(ctx), nil
	}

	slog.Debug("client credentials not set, using device code flow")
	return deviceTokenSource(ctx, base, os.Stderr)
}

// resolveCredentials reads the named environment variables and reports
// whether both are set.
func resolveCredentials(idEnv, secretEnv string) (clientID, clientSecret string, ok bool) {
	clientID = os.Getenv(idEnv)
	clientSecret = os.Getenv(secretEnv)
	return clientID, clientSecret, clientID != "" && clientSecret != ""
}

// deviceTokenSource runs the device-code grant: request a user code,
// prompt the operator, then poll for the token.
func deviceTokenSource(ctx context.Context, base string, prompt io.Writer) (oauth2.TokenSource, error) {
	conf := &oauth2.Config{
		ClientID: deviceClientID,
		Endpoint: oauth2.Endpoint{
			TokenURL:      base + tokenPath,
			DeviceAuthURL: base + deviceAuthPath,
		},
	}

	resp, err := conf.DeviceAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("device authorization request failed: %w", tgerrors.ErrAuthFailed)
	}

	fmt.Fprintf(prompt, "To authenticate, visit:\n\n    %s\n\nand enter code: %s\n\n", resp.VerificationURI, resp.UserCode)

	token, err := conf.DeviceAccessToken(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("device authentication was not completed: %w", tgerrors.ErrAuthFailed)
	}

	return conf.TokenSource(ctx, token), nil
}

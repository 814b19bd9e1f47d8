package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/oneconcern/prebuilt/pkg/auth/status"
	"github.com/oneconcern/prebuilt/pkg/config"
	"github.com/oneconcern/prebuilt/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const loopbackAddress = "127.0.0.1:0"

func (g *Auth) oauthConfig(app config.Application) (*oauth2.Config, error) {
	if app.ClientID == "" || app.ClientSecret == "" {
		return nil, status.ErrMissingClient
	}
	return &oauth2.Config{
		ClientID:     app.ClientID,
		ClientSecret: app.ClientSecret,
		Endpoint:     g.endpoint,
		Scopes:       Scopes,
	}, nil
}

type callback struct {
	code string
	err  error
}

// CreateUserCredentials runs the OAuth consent flow for an installed application and
// writes the resulting user credentials to app.CredentialsFile.
//
// The consent URL is printed on the output; the authorization code is received on a loopback redirect.
func (g *Auth) CreateUserCredentials(ctx context.Context, app config.Application) error {
	conf, err := g.oauthConfig(app)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", loopbackAddress)
	if err != nil {
		return status.ErrConsent.Wrap(err)
	}
	conf.RedirectURL = "http://" + listener.Addr().String() + "/"

	state, err := randomState()
	if err != nil {
		_ = listener.Close()
		return status.ErrConsent.Wrap(err)
	}
	verifier := oauth2.GenerateVerifier()

	received := make(chan callback, 1)
	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var cb callback
		switch {
		case q.Get("state") != state:
			http.Error(w, "invalid state", http.StatusBadRequest)
			return
		case q.Get("error") != "":
			cb.err = fmt.Errorf("%s", q.Get("error"))
			http.Error(w, "authorization was not granted: "+q.Get("error"), http.StatusForbidden)
		default:
			cb.code = q.Get("code")
			_, _ = fmt.Fprintln(w, "Authentication complete. You may close this window.")
		}
		select {
		case received <- cb:
		default:
		}
	})}
	go func() {
		_ = server.Serve(listener)
	}()
	defer func() {
		_ = server.Close()
	}()

	authURL := conf.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce, oauth2.S256ChallengeOption(verifier))
	_, _ = fmt.Fprintf(g.out, "Go to the following link in your browser:\n\n%s\n\n", authURL)
	g.l.Debug("waiting for authorization", zap.String("redirect", conf.RedirectURL))

	var cb callback
	select {
	case <-ctx.Done():
		return status.ErrConsent.Wrap(ctx.Err())
	case cb = <-received:
	}
	if cb.err != nil {
		return status.ErrConsent.Wrap(cb.err)
	}

	token, err := conf.Exchange(g.withClient(ctx), cb.code, oauth2.VerifierOption(verifier))
	if err != nil {
		return status.ErrInvalidCredentials.Wrap(err)
	}
	if token.RefreshToken == "" {
		return status.ErrInvalidCredentials.Wrap(fmt.Errorf("no refresh token granted"))
	}

	if err = writeCredentials(g.fs, app.CredentialsFile, UserCredentials{
		ClientID:     app.ClientID,
		ClientSecret: app.ClientSecret,
		RefreshToken: token.RefreshToken,
	}); err != nil {
		return err
	}
	g.l.Info("created user credentials", zap.String("file", app.CredentialsFile))
	return nil
}

// RefreshUserCredentials makes sure app.CredentialsFile holds valid user credentials.
//
// The refresh token is exchanged for an access token. A rotated refresh token is written back.
// When the file is missing, or the refresh token was revoked or expired, the consent flow runs again.
func (g *Auth) RefreshUserCredentials(ctx context.Context, app config.Application) error {
	creds, err := readCredentials(g.fs, app.CredentialsFile)
	switch {
	case os.IsNotExist(err):
		g.l.Info("no user credentials found, authorization required", zap.String("file", app.CredentialsFile))
		return g.CreateUserCredentials(ctx, app)
	case errors.Is(err, status.ErrInvalidCredentials):
		g.l.Warn("user credentials are not usable, authorization required", zap.String("file", app.CredentialsFile), zap.Error(err))
		return g.CreateUserCredentials(ctx, app)
	case err != nil:
		return err
	}

	if app.ClientID == "" {
		app.ClientID, app.ClientSecret = creds.ClientID, creds.ClientSecret
	}
	conf, err := g.oauthConfig(app)
	if err != nil {
		return err
	}
	token, err := conf.TokenSource(g.withClient(ctx), &oauth2.Token{RefreshToken: creds.RefreshToken}).Token()
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.ErrorCode == "invalid_grant" {
			g.l.Warn("user credentials were revoked or expired, authorization required")
			return g.CreateUserCredentials(ctx, app)
		}
		return status.ErrInvalidCredentials.Wrap(err)
	}

	if token.RefreshToken != "" && token.RefreshToken != creds.RefreshToken {
		creds.RefreshToken = token.RefreshToken
		if err = writeCredentials(g.fs, app.CredentialsFile, creds); err != nil {
			return err
		}
		g.l.Info("refresh token rotated", zap.String("file", app.CredentialsFile))
	}
	g.l.Debug("user credentials are valid", zap.Time("expiry", token.Expiry))
	return nil
}

// Refresh user credentials ahead of a transfer
func (g *Auth) Refresh(ctx context.Context, app config.Application) error {
	return g.RefreshUserCredentials(ctx, app)
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

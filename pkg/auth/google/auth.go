// Package google manages Google user credentials: the OAuth consent flow which creates
// application default credentials, their refresh ahead of transfers, and the identity of the signed-in user.
package google

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	gcsStorage "cloud.google.com/go/storage"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	goauth "google.golang.org/api/oauth2/v2"
	goption "google.golang.org/api/option"
)

const timeout = 60 * time.Second

// Scopes requested by the consent flow
var Scopes = []string{
	gcsStorage.ScopeReadWrite,
	goauth.UserinfoEmailScope,
	goauth.UserinfoProfileScope,
}

// Option is a functor to pass optional parameters to Auth
type Option func(*Auth)

// Logger specifies a logger
func Logger(logger *zap.Logger) Option {
	return func(g *Auth) {
		if logger != nil {
			g.l = logger
		}
	}
}

// FS sets the file system holding credentials files
func FS(fs afero.Fs) Option {
	return func(g *Auth) {
		if fs != nil {
			g.fs = fs
		}
	}
}

// Endpoint overrides the OAuth endpoint. Defaults to Google.
func Endpoint(endpoint oauth2.Endpoint) Option {
	return func(g *Auth) {
		g.endpoint = endpoint
	}
}

// Output sets where the consent URL is printed. Defaults to os.Stdout.
func Output(w io.Writer) Option {
	return func(g *Auth) {
		if w != nil {
			g.out = w
		}
	}
}

// HTTPClient sets the client used to reach the token endpoint
func HTTPClient(client *http.Client) Option {
	return func(g *Auth) {
		g.client = client
	}
}

// ServiceOptions passes extra options to the userinfo service
func ServiceOptions(opts ...goption.ClientOption) Option {
	return func(g *Auth) {
		g.serviceOpts = append(g.serviceOpts, opts...)
	}
}

// Auth implements Authable for google credentials
type Auth struct {
	fs          afero.Fs
	endpoint    oauth2.Endpoint
	out         io.Writer
	client      *http.Client
	serviceOpts []goption.ClientOption
	l           *zap.Logger
}

// New returns a new instance of google Auth
func New(opts ...Option) *Auth {
	g := &Auth{
		fs:       afero.NewOsFs(),
		endpoint: googleoauth.Endpoint,
		out:      os.Stdout,
		l:        zap.NewNop(),
	}
	for _, apply := range opts {
		apply(g)
	}
	return g
}

func (g *Auth) withClient(ctx context.Context) context.Context {
	if g.client == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, g.client)
}

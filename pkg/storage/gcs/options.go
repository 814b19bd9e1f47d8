package gcs

import (
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Option is a functor to pass optional parameters to the gcs store
type Option func(*gcs)

// Logger specifies a logger for this store
func Logger(logger *zap.Logger) Option {
	return func(g *gcs) {
		if logger != nil {
			g.l = logger
		}
	}
}

// CredentialsFile authenticates with a service account or authorized user JSON file.
// When empty, application default credentials apply.
func CredentialsFile(path string) Option {
	return func(g *gcs) {
		if path != "" {
			g.clientOpts = append(g.clientOpts, option.WithCredentialsFile(path))
		}
	}
}

// ClientOptions passes extra options to the google API client
func ClientOptions(opts ...option.ClientOption) Option {
	return func(g *gcs) {
		g.clientOpts = append(g.clientOpts, opts...)
	}
}

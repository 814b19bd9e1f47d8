package longtail

import (
	"sort"
	"strings"

	"github.com/oneconcern/prebuilt/pkg/config"
	"github.com/oneconcern/prebuilt/pkg/longtail/status"
	"github.com/oneconcern/prebuilt/pkg/model"
	"go.uber.org/zap"
)

// Environment variables consumed by the transfer tool
const (
	EnvGoogleApplicationCredentials = "GOOGLE_APPLICATION_CREDENTIALS"
	EnvAWSAccessKeyID               = "AWS_ACCESS_KEY_ID"
	EnvAWSSecretAccessKey           = "AWS_SECRET_ACCESS_KEY"
	EnvAWSEndpointOverride          = "AWS_ENDPOINT_OVERRIDE"
	EnvAWSRegion                    = "AWS_REGION"
)

// Environment builds the variables to inject in the transfer tool's environment for a protocol.
//
// Only the child process gets these variables: the environment of the current process is never modified.
// Secrets are never logged.
func Environment(app config.Application, protocol model.Protocol, logger *zap.Logger) (map[string]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	env := make(map[string]string)

	switch protocol {
	case model.ProtocolLocal:
	case model.ProtocolGoogle:
		// when unset, the tool falls back on its own credentials chain
		if app.CredentialsFile != "" {
			env[EnvGoogleApplicationCredentials] = app.CredentialsFile
		}
	case model.ProtocolS3:
		if app.EndpointOverride != "" {
			env[EnvAWSEndpointOverride] = app.EndpointOverride
			logger.Info("s3 endpoint override", zap.String(EnvAWSEndpointOverride, app.EndpointOverride))
		}
		if app.RegionOverride != "" {
			env[EnvAWSRegion] = app.RegionOverride
			logger.Info("s3 region override", zap.String(EnvAWSRegion, app.RegionOverride))
		}
		env[EnvAWSAccessKeyID] = app.ClientID
		env[EnvAWSSecretAccessKey] = app.ClientSecret
	default:
		return nil, status.ErrUnsupportedProtocol.Wrap(unsupported(protocol))
	}
	return env, nil
}

type unsupported model.Protocol

func (p unsupported) Error() string {
	return "protocol: " + model.Protocol(p).String()
}

// mergeEnv overlays the injected variables on a base environment (a list of KEY=value entries)
func mergeEnv(base []string, injected map[string]string) []string {
	merged := make([]string, 0, len(base)+len(injected))
	for _, kv := range base {
		key := kv
		if i := strings.IndexByte(kv, '='); i >= 0 {
			key = kv[:i]
		}
		if _, overridden := injected[key]; overridden {
			continue
		}
		merged = append(merged, kv)
	}

	keys := make([]string, 0, len(injected))
	for k := range injected {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+injected[k])
	}
	return merged
}

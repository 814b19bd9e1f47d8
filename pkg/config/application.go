package config

// DefaultCredentialsFile is the well-known location of the application default credentials
const DefaultCredentialsFile = "application-default-credentials.json"

// Application configuration, constructed once per process invocation.
type Application struct {
	// ClientID is the OAuth client id for Google, the access key id for S3
	ClientID string
	// ClientSecret is the OAuth client secret for Google, the secret access key for S3
	ClientSecret string
	// CredentialsFile is the optional application default credentials file for Google
	CredentialsFile string
	// EndpointOverride is an optional S3 endpoint (e.g. a minio server)
	EndpointOverride string
	// RegionOverride is an optional S3 region
	RegionOverride string
}

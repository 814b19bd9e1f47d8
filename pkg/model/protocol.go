package model

import "strings"

// Protocol is the storage backend protocol designated by a storage URI
type Protocol uint8

const (
	// ProtocolNone is never produced by resolution: it signals a configuration error
	ProtocolNone Protocol = iota
	// ProtocolLocal designates a path on the local (or mounted) file system
	ProtocolLocal
	// ProtocolGoogle designates a Google Cloud Storage bucket (gs://)
	ProtocolGoogle
	// ProtocolS3 designates an S3 compatible bucket (s3://)
	ProtocolS3
)

const (
	// GoogleScheme prefixes Google Cloud Storage URIs
	GoogleScheme = "gs://"
	// S3Scheme prefixes S3 URIs
	S3Scheme = "s3://"
)

func (p Protocol) String() string {
	switch p {
	case ProtocolLocal:
		return "local"
	case ProtocolGoogle:
		return "google"
	case ProtocolS3:
		return "s3"
	default:
		return "none"
	}
}

// ResolveProtocol maps a block storage URI to its protocol.
//
// Resolution only looks at the scheme prefix: gs:// is Google, s3:// is S3, anything else
// (including empty or malformed strings) is Local. It never returns ProtocolNone.
func ResolveProtocol(uri BlockStorageURI) Protocol {
	return protocolOf(string(uri))
}

func protocolOf(uri string) Protocol {
	switch {
	case strings.HasPrefix(uri, GoogleScheme):
		return ProtocolGoogle
	case strings.HasPrefix(uri, S3Scheme):
		return ProtocolS3
	default:
		return ProtocolLocal
	}
}

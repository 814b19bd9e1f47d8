package model

const (
	versionsFolder   = "versions"
	versionIndexExt  = ".lvi"
	versionIndexPath = "/" + versionsFolder + "/"

	// VersionIndexPrefix is the key prefix shared by all version indexes under a storage root
	VersionIndexPrefix = versionsFolder + "/"
)

// BlockStorageURI names the location of the deduplicated block store.
type BlockStorageURI string

// String representation of the URI
func (u BlockStorageURI) String() string {
	return string(u)
}

// Protocol resolved from the URI scheme
func (u BlockStorageURI) Protocol() Protocol {
	return ResolveProtocol(u)
}

// VersionIndexStorageURI names the root under which per-package version index files live.
type VersionIndexStorageURI string

// String representation of the URI
func (u VersionIndexStorageURI) String() string {
	return string(u)
}

// Protocol resolved from the URI scheme
func (u VersionIndexStorageURI) Protocol() Protocol {
	return protocolOf(string(u))
}

// VersionIndexURI locates the version index of a single package.
//
// It may only be obtained from PackageURI.
type VersionIndexURI struct {
	uri string
}

// String representation of the URI
func (u VersionIndexURI) String() string {
	return u.uri
}

// IsZero tells if this URI was never derived
func (u VersionIndexURI) IsZero() bool {
	return u.uri == ""
}

// PackageURI derives the version index location of a package: {root}/versions/{packageName}.lvi
//
// This is plain concatenation: no normalization of the root or of the package name is carried out.
func PackageURI(root VersionIndexStorageURI, packageName string) VersionIndexURI {
	return VersionIndexURI{uri: string(root) + versionIndexPath + packageName + versionIndexExt}
}

// PackageIndexKey is the relative key of a package's version index under its storage root
func PackageIndexKey(packageName string) string {
	return versionsFolder + "/" + packageName + versionIndexExt
}

// PackageNameFromKey extracts the package name from a version index key such as versions/{name}.lvi.
//
// It returns false when the key does not designate a version index.
func PackageNameFromKey(key string) (string, bool) {
	const prefix = VersionIndexPrefix
	if len(key) <= len(prefix)+len(versionIndexExt) {
		return "", false
	}
	if key[:len(prefix)] != prefix || key[len(key)-len(versionIndexExt):] != versionIndexExt {
		return "", false
	}
	name := key[len(prefix) : len(key)-len(versionIndexExt)]
	for _, c := range name {
		if c == '/' {
			return "", false
		}
	}
	return name, true
}

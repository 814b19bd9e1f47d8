// Package model describes the base objects manipulated by prebuilt.
//
// The object model is composed of:
//
//  Block storage:
//    The location holding the deduplicated content blocks of every uploaded package.
//    Its URI scheme (gs://, s3:// or none for a local path) selects the storage protocol.
//
//  Version indexes:
//    One manifest per package, describing how the package's files map onto stored blocks.
//    Index files live under a version index storage root, at versions/{package}.lvi.
//
//  Version records:
//    The build identifier currently materialized on disk (installed) and the one
//    the workspace should have (desired).
package model

// Package longtail drives the external longtail tool, which uploads (upsync) and downloads (downsync)
// folders to and from a content-deduplicated block store.
//
// The package resolves the storage protocol of the block store, injects the matching credentials
// into the child environment, runs the tool while streaming its output and reports a pass/fail outcome.
// Deduplication, the block format and diffing are entirely left to the tool.
package longtail

// Package install reconciles the installed version of a package with the desired one.
//
// The reconciliation downloads the desired build, runs the post-install step (prerequisites installer)
// and only then records the desired build as installed. Any failure or crash before that last atomic
// write leaves the former installed record in place, so that the next run retries the same build from the top.
package install

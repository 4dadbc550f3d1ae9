// Package git provides the repository sync collaborator for depsguard.
//
// This package handles:
//   - Cloning organization repositories over HTTPS or SSH
//   - Fast-forward updating checkouts that already exist locally
//
// Each repository lives in its own subdirectory under ./{org}_repos/,
// so concurrent scan workers never contend for a working directory.
// A failed pull is reported but not fatal (the scan proceeds on the
// stale checkout); a failed clone aborts only that repository's scan.
//
// Example usage:
//
//	syncer := git.NewSyncer("acme", false)
//	res, err := syncer.Sync("billing-service")
//	if err != nil {
//	    // clone failed, skip this repository
//	}
//	if res.Stale {
//	    // pull failed, scanning the existing checkout
//	}
package git

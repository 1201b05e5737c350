// Package versync provides a library for keeping a project's semantic version
// in one plain text file and mirroring it into JSON package manifests.
//
// It provides functionalities for:
//   - Reading and writing the version store file (default "VERSION"), falling back to
//     a default version ("0.1.0") whenever the file cannot supply one.
//   - Parsing strict X.Y.Z versions and bumping them by major, minor, or patch.
//   - Rewriting the top-level "version" key of JSON manifests (default backend/package.json
//     and frontend/package.json) while keeping every other key and its order.
//
// Operations return errors and never exit the process, so the library can be driven by
// the versync command in the module root or embedded in other Go programs.
//
// Usage Example:
//
//	import (
//	    "log"
//	    "os"
//
//	    versync "github.com/bcomnes/versync/pkg"
//	)
//
//	func main() {
//	    cfg := versync.DefaultConfig()
//	    m, err := versync.NewManager(cfg, versync.WithReporter(versync.NewConsoleReporter(os.Stdout, os.Stderr, false)))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    meta, err := m.Bump("patch")
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Printf("bumped %s -> %s", meta.OldVersion, meta.NewVersion)
//	}
package versync

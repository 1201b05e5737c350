// Package main implements the versync CLI tool.
//
// The versync tool keeps a project's semantic version in a plain text file
// (default "./VERSION") and mirrors it into the top-level "version" field of JSON
// package manifests (default "backend/package.json" and "frontend/package.json").
// When the VERSION file is missing or unreadable the version is taken to be 0.1.0.
//
// Command Usage:
//
//	versync [flags] [get | set VERSION | patch | minor | major | bump KIND | sync | help]
//
// Flags:
//
//	--dir:       Resolve relative paths against this directory instead of the working directory.
//	--config:    YAML file providing store, default_version, and manifests.
//	--store:     Path to the version file. (Defaults to "VERSION")
//	--manifest:  JSON manifest to keep in sync. May be repeated; replaces the default list.
//	--dry-run:   Report what would change without writing any file.
//	--strict:    Exit with status 1 if any manifest is missing or cannot be updated.
//	--verbose:   Print diagnostic logs and a summary of the operation.
//	--no-color:  Disable colored output.
//	--version:   Displays the version of the versync CLI tool and exits.
//
// Examples:
//
//	# Print the current version
//	versync get
//
//	# Set an explicit version and sync the manifests
//	versync set 2.1.0
//
//	# Bump the patch version (e.g. 1.2.3 → 1.2.4)
//	versync patch
//
//	# Bump the minor version (e.g. 1.2.3 → 1.3.0)
//	versync minor
//
//	# Bump the major version (e.g. 1.2.3 → 2.0.0)
//	versync major
//
//	# Rewrite the manifests from the VERSION file without changing it
//	versync sync
//
//	# Keep a different set of manifests in sync
//	versync --manifest package.json --manifest docs/package.json minor
//
// Missing or malformed manifests are reported and skipped; the remaining manifests
// are still updated and the command exits with status 0 unless --strict is set.
// An invalid version, an unknown command, or a failure to write the VERSION file
// exits with status 1 without touching the manifests.
//
// For the library API see the "pkg" package.
package main

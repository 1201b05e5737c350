package versync

import "errors"

var (
	// ErrInvalidVersion is returned when a version string is not in X.Y.Z form.
	ErrInvalidVersion = errors.New("version must be in format X.Y.Z (e.g., 1.2.3)")
	// ErrInvalidBump is returned for a bump kind other than patch, minor, or major.
	ErrInvalidBump = errors.New("invalid bump type, use 'patch', 'minor', or 'major'")
	// ErrVersionOverflow is returned when a component cannot be incremented.
	ErrVersionOverflow = errors.New("version component overflow")
	// ErrStoreWrite is returned when the store file cannot be written.
	ErrStoreWrite = errors.New("error writing version file")
	// ErrManifestNotFound marks a configured manifest that does not exist.
	ErrManifestNotFound = errors.New("manifest not found")
	// ErrManifestMalformed marks a manifest that is not a JSON object.
	ErrManifestMalformed = errors.New("manifest is not a valid JSON object")
	// ErrInvalidConfig is returned by Config.Validate and LoadConfig.
	ErrInvalidConfig = errors.New("invalid configuration")
)

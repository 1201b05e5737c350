package versync

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Store reads and writes the file holding the authoritative version.
type Store struct {
	name     string
	path     string
	fallback Version
	log      *zap.Logger
}

// NewStore returns a store for path. name is how the file is referred to in
// messages. fallback is returned by Read whenever the file cannot supply a
// version.
func NewStore(name, path string, fallback Version, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{name: name, path: path, fallback: fallback, log: log}
}

// Name returns the display name of the store file.
func (s *Store) Name() string { return s.name }

// Path returns the resolved path of the store file.
func (s *Store) Path() string { return s.path }

// Read returns the stored version. It never fails: a missing, unreadable,
// empty, or unparsable file yields the fallback version.
func (s *Store) Read() Version {
	v, err := s.load()
	if err != nil {
		if errors.Is(err, ErrInvalidVersion) {
			s.log.Warn("ignoring unparsable version file",
				zap.String("path", s.path), zap.Error(err), zap.Stringer("fallback", s.fallback))
		} else {
			s.log.Debug("using fallback version",
				zap.String("path", s.path), zap.Error(err), zap.Stringer("fallback", s.fallback))
		}
		return s.fallback
	}
	return v
}

func (s *Store) load() (Version, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Version{}, err
	}
	raw := strings.TrimSpace(string(data))
	raw = strings.Trim(raw, `"'`)
	if raw == "" {
		return Version{}, errors.New("version file is empty")
	}
	return ParseVersion(strings.TrimPrefix(raw, "v"))
}

// Write replaces the store contents with v. No trailing newline is written.
func (s *Store) Write(v Version) error {
	perm := fs.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(s.path, []byte(v.String()), perm); err != nil {
		return fmt.Errorf("%w %s: %v", ErrStoreWrite, s.name, err)
	}
	s.log.Debug("wrote version file", zap.String("path", s.path), zap.Stringer("version", v))
	return nil
}

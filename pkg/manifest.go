package versync

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ManifestStatus is the outcome of syncing one manifest.
type ManifestStatus string

// Manifest outcomes.
const (
	ManifestUpdated     ManifestStatus = "updated"
	ManifestWouldUpdate ManifestStatus = "would-update"
	ManifestMissing     ManifestStatus = "missing"
	ManifestFailed      ManifestStatus = "failed"
)

// ManifestResult describes what happened to a single manifest.
type ManifestResult struct {
	Path     string
	Status   ManifestStatus
	Previous string // version found in the manifest before the update, if any
	Err      error
}

// manifestIndent matches the two-space layout of npm-written package.json.
const manifestIndent = "  "

// Syncer rewrites the top-level "version" key of JSON manifests.
type Syncer struct {
	cfg      Config
	reporter Reporter
	log      *zap.Logger
}

// NewSyncer returns a syncer for the manifests in cfg. Paths are resolved
// against cfg.Root; nothing is written when cfg.DryRun is set.
func NewSyncer(cfg Config, reporter Reporter, log *zap.Logger) *Syncer {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Syncer{cfg: cfg, reporter: reporter, log: log}
}

// SyncAll updates every configured manifest. A failure on one manifest does
// not stop the others.
func (s *Syncer) SyncAll(v Version) []ManifestResult {
	results := make([]ManifestResult, 0, len(s.cfg.Manifests))
	for _, path := range s.cfg.Manifests {
		results = append(results, s.UpdateOne(path, v))
	}
	return results
}

// UpdateOne sets the top-level "version" of the manifest at path to v,
// keeping every other key and its position. The outcome is reported as it
// happens and returned.
func (s *Syncer) UpdateOne(path string, v Version) ManifestResult {
	res := ManifestResult{Path: path}
	full := s.cfg.Resolve(path)

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res.Status = ManifestMissing
			res.Err = fmt.Errorf("%w: %s", ErrManifestNotFound, path)
			s.reporter.Warning(fmt.Sprintf("%s not found", path))
			return res
		}
		return s.fail(res, err)
	}

	out, prev, err := setManifestVersion(data, v)
	if err != nil {
		return s.fail(res, err)
	}
	res.Previous = prev

	if s.cfg.DryRun {
		res.Status = ManifestWouldUpdate
		s.reporter.Success(fmt.Sprintf("Would update %s to version %s", path, v))
		return res
	}

	perm := fs.FileMode(0644)
	if info, err := os.Stat(full); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(full, out, perm); err != nil {
		return s.fail(res, err)
	}

	res.Status = ManifestUpdated
	s.log.Debug("updated manifest",
		zap.String("path", full), zap.String("previous", prev), zap.Stringer("version", v))
	s.reporter.Success(fmt.Sprintf("Updated %s to version %s", path, v))
	return res
}

func (s *Syncer) fail(res ManifestResult, err error) ManifestResult {
	res.Status = ManifestFailed
	res.Err = fmt.Errorf("updating %s: %w", res.Path, err)
	s.reporter.Failure(fmt.Sprintf("Error updating %s: %v", res.Path, err))
	return res
}

// setManifestVersion returns the manifest re-indented with the top-level
// "version" set to v, along with the version it held before.
func setManifestVersion(data []byte, v Version) ([]byte, string, error) {
	if !gjson.ValidBytes(data) {
		return nil, "", fmt.Errorf("%w: invalid JSON", ErrManifestMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		kind := root.Type.String()
		if root.IsArray() {
			kind = "an array"
		}
		return nil, "", fmt.Errorf("%w: top-level value is %s", ErrManifestMalformed, kind)
	}
	prev := root.Get("version").String()

	updated, err := sjson.SetBytes(data, "version", v.String())
	if err != nil {
		return nil, "", fmt.Errorf("setting version: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(updated), "", manifestIndent); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrManifestMalformed, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), prev, nil
}

// SyncError folds the failed and missing manifests in results into a single
// error, or returns nil when every manifest was handled.
func SyncError(results []ManifestResult) error {
	var err error
	for _, r := range results {
		err = multierr.Append(err, r.Err)
	}
	return err
}

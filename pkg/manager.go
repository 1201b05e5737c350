package versync

import (
	"fmt"

	"go.uber.org/zap"
)

// Meta holds metadata about a set, bump, or sync operation.
type Meta struct {
	OldVersion   string           // The stored version before the operation.
	NewVersion   string           // The version written (or that would be written).
	BumpType     string           // "major", "minor", "patch", "explicit", or "sync".
	UpdatedFiles []string         // Files written, or that would be written on a dry run.
	Manifests    []ManifestResult // Per-manifest outcome, in configured order.
	DryRun       bool
}

// Manager performs the version operations against a Config. It never exits
// the process; callers decide what an error means.
type Manager struct {
	cfg      Config
	store    *Store
	syncer   *Syncer
	reporter Reporter
	log      *zap.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithReporter sets where user-visible status lines go. The default discards
// them.
func WithReporter(r Reporter) Option {
	return func(m *Manager) { m.reporter = r }
}

// WithLogger sets the diagnostic logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// NewManager validates cfg and returns a Manager for it.
func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Manager{cfg: cfg, reporter: nopReporter{}, log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	fallback := MustParseVersion(cfg.DefaultVersion)
	m.store = NewStore(cfg.StoreFile, cfg.Resolve(cfg.StoreFile), fallback, m.log)
	m.syncer = NewSyncer(cfg, m.reporter, m.log)
	return m, nil
}

// Config returns the configuration the manager was built with.
func (m *Manager) Config() Config { return m.cfg }

// Get returns the current stored version.
func (m *Manager) Get() Version {
	return m.store.Read()
}

// Set validates raw, writes it to the store file, and syncs the manifests.
// An invalid version leaves every file untouched.
func (m *Manager) Set(raw string) (Meta, error) {
	v, err := ParseVersion(raw)
	if err != nil {
		return Meta{BumpType: "explicit", DryRun: m.cfg.DryRun}, err
	}
	return m.apply(m.store.Read(), v, "explicit")
}

// Bump increments the stored version by kind and applies it as Set does.
func (m *Manager) Bump(kind string) (Meta, error) {
	meta := Meta{BumpType: kind, DryRun: m.cfg.DryRun}
	k, err := ParseBumpKind(kind)
	if err != nil {
		return meta, err
	}
	current := m.store.Read()
	meta.OldVersion = current.String()
	next, err := current.Bump(k)
	if err != nil {
		return meta, err
	}
	return m.apply(current, next, string(k))
}

// Sync rewrites the manifests from the stored version. The store file is not
// modified.
func (m *Manager) Sync() (Meta, error) {
	v := m.store.Read()
	meta := Meta{
		OldVersion: v.String(),
		NewVersion: v.String(),
		BumpType:   "sync",
		DryRun:     m.cfg.DryRun,
	}
	m.syncManifests(&meta, v)
	return meta, nil
}

func (m *Manager) apply(current, next Version, bumpType string) (Meta, error) {
	meta := Meta{
		OldVersion: current.String(),
		NewVersion: next.String(),
		BumpType:   bumpType,
		DryRun:     m.cfg.DryRun,
	}

	if next.Compare(current) < 0 {
		m.log.Warn("new version is lower than the current version",
			zap.Stringer("current", current), zap.Stringer("new", next))
	}

	if m.cfg.DryRun {
		m.reporter.Success(fmt.Sprintf("Would update %s file to %s", m.store.Name(), next))
	} else {
		if err := m.store.Write(next); err != nil {
			return meta, err
		}
		m.reporter.Success(fmt.Sprintf("Updated %s file to %s", m.store.Name(), next))
	}
	meta.UpdatedFiles = append(meta.UpdatedFiles, m.cfg.StoreFile)

	m.syncManifests(&meta, next)
	return meta, nil
}

func (m *Manager) syncManifests(meta *Meta, v Version) {
	meta.Manifests = m.syncer.SyncAll(v)
	for _, r := range meta.Manifests {
		if r.Status == ManifestUpdated || r.Status == ManifestWouldUpdate {
			meta.UpdatedFiles = append(meta.UpdatedFiles, r.Path)
		}
	}
	if err := SyncError(meta.Manifests); err != nil {
		m.log.Debug("manifest sync incomplete", zap.Error(err))
	}
}

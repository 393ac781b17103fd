package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/packpath/packpath/pkg/catalog"
)

// managerState represents the lifecycle state of the Manager.
type managerState int

const (
	stateUninitialized managerState = iota
	stateInitialized
)

// Manager provides thread-safe access to the current catalog snapshot.
// It must be initialized via Load() before use.
//
// Snapshots are immutable: Reload builds a fresh Snapshot and swaps the
// pointer, so resolutions already holding the previous snapshot keep
// running against it unchanged.
type Manager struct {
	mu       sync.RWMutex
	snapshot *catalog.Snapshot
	dir      string
	state    managerState
	loader   *Loader
}

// NewManager creates a Manager in uninitialized state.
func NewManager() *Manager {
	return &Manager{
		loader: NewLoader(),
		state:  stateUninitialized,
	}
}

// Load reads and validates the catalog from the given directory. The
// PACKPATH_CONFIG_DIR environment variable overrides the directory when
// set. The validated snapshot becomes the manager's current snapshot.
func (m *Manager) Load(configDir string) (*catalog.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir := filepath.Clean(configDir)
	if envDir := os.Getenv(EnvConfigDir); envDir != "" {
		dir = filepath.Clean(envDir)
	}

	snap, err := m.loader.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if err := Validate(snap, m.loader.LoadedSections()); err != nil {
		return nil, err
	}

	m.snapshot = snap
	m.dir = dir
	m.state = stateInitialized

	return snap, nil
}

// Snapshot returns the current catalog snapshot, or ErrNotInitialized
// before the first successful Load.
func (m *Manager) Snapshot() (*catalog.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == stateUninitialized {
		return nil, ErrNotInitialized
	}
	return m.snapshot, nil
}

// Reload re-reads the catalog from the directory of the last Load and
// swaps in the new snapshot. On failure the previous snapshot stays
// current.
func (m *Manager) Reload() (*catalog.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return nil, ErrNotInitialized
	}

	snap, err := m.loader.Load(m.dir)
	if err != nil {
		return nil, fmt.Errorf("reload catalog: %w", err)
	}
	if err := Validate(snap, m.loader.LoadedSections()); err != nil {
		return nil, err
	}

	m.snapshot = snap
	return snap, nil
}

// Dir returns the directory of the last successful Load.
func (m *Manager) Dir() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dir
}

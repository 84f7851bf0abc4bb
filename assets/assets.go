// Package assets loads item definitions and the arena layout. A Manager is
// created once at startup and passed to whatever needs it.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/captainzonks/hopper/inventory"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed all:levels all:items
	assetFS embed.FS
)

const (
	itemsDir  = "items"
	ArenaPath = "levels/arena.tmx"
)

var (
	ErrUnknownItem = errors.New("assets: unknown item")
	ErrClosed      = errors.New("assets: manager closed")
)

// Embedded returns the asset files compiled into the binary.
func Embedded() fs.FS { return assetFS }

type Manager struct {
	log    *zap.Logger
	fsys   fs.FS
	items  map[inventory.PrimaryAssetID]*inventory.Item
	arena  *Arena
	closed bool
}

// Open loads every item definition and the arena from fsys.
func Open(fsys fs.FS, log *zap.Logger) (*Manager, error) {
	if fsys == nil {
		return nil, errors.New("assets: nil filesystem")
	}
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		log:   log,
		fsys:  fsys,
		items: make(map[inventory.PrimaryAssetID]*inventory.Item),
	}
	if err := m.loadItems(); err != nil {
		return nil, err
	}
	arena, err := m.LoadArena(ArenaPath)
	if err != nil {
		return nil, err
	}
	m.arena = arena

	log.Info("assets loaded",
		zap.Int("items", len(m.items)),
		zap.Int("player_spawns", len(arena.PlayerSpawns)),
		zap.Int("enemy_spawns", len(arena.EnemySpawns)))
	return m, nil
}

// MustOpen is Open for startup paths where missing assets leave nothing to
// run. A failure is logged at fatal level, which exits the process.
func MustOpen(fsys fs.FS, log *zap.Logger) *Manager {
	m, err := Open(fsys, log)
	if err != nil {
		if log == nil {
			log = zap.NewNop()
		}
		log.Fatal("asset manager misconfigured", zap.Error(err))
	}
	return m
}

// Close releases the loaded definitions. Later lookups fail.
func (m *Manager) Close() {
	m.closed = true
	m.items = nil
	m.arena = nil
}

type itemFile struct {
	Type  inventory.ItemType `yaml:"type"`
	Items []itemSpec         `yaml:"items"`
}

type itemSpec struct {
	Name           string `yaml:"name"`
	inventory.Item `yaml:",inline"`
}

func (m *Manager) loadItems() error {
	entries, err := fs.ReadDir(m.fsys, itemsDir)
	if err != nil {
		return fmt.Errorf("assets: read %s: %w", itemsDir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}
		if err := m.loadItemFile(path.Join(itemsDir, name)); err != nil {
			return err
		}
	}
	if len(m.items) == 0 {
		return fmt.Errorf("assets: no item definitions in %s", itemsDir)
	}
	return nil
}

func (m *Manager) loadItemFile(filename string) error {
	data, err := fs.ReadFile(m.fsys, filename)
	if err != nil {
		return fmt.Errorf("assets: load %s: %w", filename, err)
	}
	var f itemFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("assets: unmarshal %s: %w", filename, err)
	}
	if f.Type == "" {
		return fmt.Errorf("assets: %s: missing item type", filename)
	}
	for _, spec := range f.Items {
		item := spec.Item
		item.ID = inventory.PrimaryAssetID{Type: f.Type, Name: spec.Name}
		if !item.ID.IsValid() {
			return fmt.Errorf("assets: %s: item without a name", filename)
		}
		if _, dup := m.items[item.ID]; dup {
			return fmt.Errorf("assets: %s: duplicate item %s", filename, item.ID)
		}
		m.items[item.ID] = &item
	}
	return nil
}

// Item returns the definition for id.
func (m *Manager) Item(id inventory.PrimaryAssetID) (*inventory.Item, error) {
	if m.closed {
		return nil, ErrClosed
	}
	item, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	return item, nil
}

// ForceLoadItem returns the definition for id, or nil. Failures are logged
// when logWarning is set.
func (m *Manager) ForceLoadItem(id inventory.PrimaryAssetID, logWarning bool) *inventory.Item {
	item, err := m.Item(id)
	if err != nil {
		if logWarning {
			m.log.Warn("failed to load item", zap.Stringer("item", id), zap.Error(err))
		}
		return nil
	}
	return item
}

// Items returns every definition of typ, or all of them when typ is empty,
// sorted by id.
func (m *Manager) Items(typ inventory.ItemType) []*inventory.Item {
	var out []*inventory.Item
	for id, item := range m.items {
		if typ == "" || id.Type == typ {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

// Arena returns the arena loaded by Open.
func (m *Manager) Arena() *Arena { return m.arena }

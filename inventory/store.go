package inventory

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// Snapshot is the saved form of an inventory, keyed by asset id string.
type Snapshot struct {
	Items map[string]SlotData `json:"items"`
	Slots map[string]string   `json:"slots"` // "Type#Number" -> asset id
}

// Store receives every inventory change. Implementations decide the format.
type Store interface {
	Save(Snapshot) error
	Load() (Snapshot, error)
}

// Snapshot captures the current contents.
func (inv *Inventory) Snapshot() Snapshot {
	s := Snapshot{
		Items: make(map[string]SlotData, len(inv.items)),
		Slots: make(map[string]string),
	}
	for id, e := range inv.items {
		s.Items[id.String()] = e.data
	}
	for slot, item := range inv.slots {
		if item != nil {
			s.Slots[fmt.Sprintf("%s#%d", slot.Type, slot.Number)] = item.ID.String()
		}
	}
	return s
}

// Restore replaces the contents with those saved in the store. Entries whose
// id resolve cannot find are skipped with a warning.
func (inv *Inventory) Restore(resolve func(PrimaryAssetID) *Item) error {
	if inv.Store == nil {
		return nil
	}
	snap, err := inv.Store.Load()
	if err != nil {
		return fmt.Errorf("inventory: load: %w", err)
	}

	inv.items = make(map[PrimaryAssetID]*entry, len(snap.Items))
	for raw, data := range snap.Items {
		item := inv.resolve(raw, resolve)
		if item == nil || !data.IsValid() {
			continue
		}
		inv.items[item.ID] = &entry{item: item, data: data}
	}
	for slot := range inv.slots {
		inv.slots[slot] = nil
	}
	for key, raw := range snap.Slots {
		var slot Slot
		if !parseSlot(key, &slot) {
			continue
		}
		if _, ok := inv.slots[slot]; !ok {
			continue
		}
		if item := inv.resolve(raw, resolve); item != nil {
			inv.slots[slot] = item
		}
	}
	return nil
}

func (inv *Inventory) resolve(raw string, resolve func(PrimaryAssetID) *Item) *Item {
	id, err := ParseAssetID(raw)
	if err != nil {
		inv.Log.Warn("inventory: skipping saved entry", zap.Error(err))
		return nil
	}
	item := resolve(id)
	if item == nil {
		inv.Log.Warn("inventory: unknown saved item", zap.Stringer("item", id))
	}
	return item
}

func parseSlot(key string, slot *Slot) bool {
	typ, num, ok := strings.Cut(key, "#")
	if !ok || typ == "" {
		return false
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return false
	}
	slot.Type = ItemType(typ)
	slot.Number = n
	return true
}

func (inv *Inventory) save() {
	if inv.Store == nil {
		return
	}
	if err := inv.Store.Save(inv.Snapshot()); err != nil {
		inv.Log.Warn("inventory: save failed", zap.Error(err))
	}
}

// MemoryStore keeps the last snapshot in memory.
type MemoryStore struct {
	Last  Snapshot
	Saves int
}

func (m *MemoryStore) Save(s Snapshot) error {
	m.Last = s
	m.Saves++
	return nil
}

func (m *MemoryStore) Load() (Snapshot, error) {
	return m.Last, nil
}

const gdataKey = "inventory"

// GdataStore saves snapshots as JSON in the user's data directory.
type GdataStore struct {
	manager *gdata.Manager
}

// OpenGdataStore opens the data directory for appName.
func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("inventory: open save data: %w", err)
	}
	return &GdataStore{manager: m}, nil
}

func (g *GdataStore) Save(s Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("inventory: encode: %w", err)
	}
	if err := g.manager.SaveItem(gdataKey, data); err != nil {
		return fmt.Errorf("inventory: save: %w", err)
	}
	return nil
}

func (g *GdataStore) Load() (Snapshot, error) {
	data, err := g.manager.LoadItem(gdataKey)
	if err != nil {
		return Snapshot{}, fmt.Errorf("inventory: load: %w", err)
	}
	if len(data) == 0 {
		// nothing saved yet
		return Snapshot{}, nil
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("inventory: decode: %w", err)
	}
	return s, nil
}

// Package inventory holds the items a character owns and calls a save
// callback whenever they change.
package inventory

import (
	"sort"

	"go.uber.org/zap"
)

// Change describes one inventory transition.
type Change struct {
	Item  *Item
	Added bool
	Data  SlotData
}

type entry struct {
	item *Item
	data SlotData
}

type Inventory struct {
	Log   *zap.Logger
	Store Store
	// OnChanged runs after an item's count or level changes.
	OnChanged func(Change)
	// OnSlotChanged runs after a slot is filled or emptied. item is nil when
	// the slot was emptied.
	OnSlotChanged func(slot Slot, item *Item)

	items map[PrimaryAssetID]*entry
	slots map[Slot]*Item
}

// New creates an inventory with slotsPerType empty slots for each item type.
func New(store Store, slotsPerType map[ItemType]int, log *zap.Logger) *Inventory {
	if log == nil {
		log = zap.NewNop()
	}
	inv := &Inventory{
		Log:   log,
		Store: store,
		items: make(map[PrimaryAssetID]*entry),
		slots: make(map[Slot]*Item),
	}
	for typ, n := range slotsPerType {
		for i := 0; i < n; i++ {
			inv.slots[Slot{Type: typ, Number: i}] = nil
		}
	}
	return inv
}

// AddItem adds count and level to item, merging with what is already held.
// It reports whether anything changed.
func (inv *Inventory) AddItem(item *Item, count, level int, autoSlot bool) bool {
	if item == nil {
		inv.Log.Warn("inventory: AddItem with nil item")
		return false
	}
	if count <= 0 || level <= 0 {
		inv.Log.Warn("inventory: AddItem with invalid count or level",
			zap.Stringer("item", item.ID), zap.Int("count", count), zap.Int("level", level))
		return false
	}

	old := inv.ItemData(item)
	data := old
	data.UpdateItemData(SlotData{Count: count, Level: level}, item.MaxCount, item.MaxLevel)

	changed := false
	if data != old {
		inv.items[item.ID] = &entry{item: item, data: data}
		inv.notify(Change{Item: item, Added: true, Data: data})
		changed = true
	}
	if autoSlot && inv.FillEmptySlotWithItem(item) {
		changed = true
	}
	if changed {
		inv.save()
	}
	return changed
}

// RemoveItem removes count of item, or all of it when count is 0 or less.
// Emptied items are also unslotted.
func (inv *Inventory) RemoveItem(item *Item, count int) bool {
	if item == nil {
		inv.Log.Warn("inventory: RemoveItem with nil item")
		return false
	}
	e, ok := inv.items[item.ID]
	if !ok || !e.data.IsValid() {
		return false
	}

	data := e.data
	if count <= 0 {
		data.Count = 0
	} else {
		data.Count -= count
	}

	if data.Count > 0 {
		e.data = data
	} else {
		delete(inv.items, item.ID)
		for slot, held := range inv.slots {
			if held != nil && held.ID == item.ID {
				inv.setSlot(slot, nil)
			}
		}
	}
	inv.notify(Change{Item: item, Added: false, Data: data})
	inv.save()
	return true
}

// ItemData returns what is held of item, or zero count and level.
func (inv *Inventory) ItemData(item *Item) SlotData {
	if item == nil {
		return SlotData{}
	}
	if e, ok := inv.items[item.ID]; ok {
		return e.data
	}
	return SlotData{}
}

func (inv *Inventory) Count(item *Item) int {
	return inv.ItemData(item).Count
}

// Items returns the held items of typ, or every held item when typ is empty,
// sorted by asset id.
func (inv *Inventory) Items(typ ItemType) []*Item {
	var out []*Item
	for _, e := range inv.items {
		if typ == "" || e.item.ID.Type == typ {
			out = append(out, e.item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

// SetSlottedItem puts item in slot, removing it from any other slot. A nil
// item empties the slot. It returns false for slots that do not exist.
func (inv *Inventory) SetSlottedItem(slot Slot, item *Item) bool {
	if _, ok := inv.slots[slot]; !ok {
		return false
	}
	if item != nil {
		for other, held := range inv.slots {
			if other != slot && held != nil && held.ID == item.ID {
				inv.setSlot(other, nil)
			}
		}
	}
	inv.setSlot(slot, item)
	inv.save()
	return true
}

func (inv *Inventory) SlottedItem(slot Slot) *Item {
	return inv.slots[slot]
}

// SlottedItems returns every filled slot's item.
func (inv *Inventory) SlottedItems() []*Item {
	var out []*Item
	for _, slot := range inv.sortedSlots() {
		if item := inv.slots[slot]; item != nil {
			out = append(out, item)
		}
	}
	return out
}

// FillEmptySlotWithItem slots item in the first empty slot of its type,
// unless it is already slotted.
func (inv *Inventory) FillEmptySlotWithItem(item *Item) bool {
	var empty *Slot
	for _, slot := range inv.sortedSlots() {
		if slot.Type != item.ID.Type {
			continue
		}
		held := inv.slots[slot]
		if held != nil && held.ID == item.ID {
			return false
		}
		if held == nil && empty == nil {
			s := slot
			empty = &s
		}
	}
	if empty == nil {
		return false
	}
	inv.setSlot(*empty, item)
	return true
}

func (inv *Inventory) setSlot(slot Slot, item *Item) {
	if inv.slots[slot] == item {
		return
	}
	inv.slots[slot] = item
	if inv.OnSlotChanged != nil {
		inv.OnSlotChanged(slot, item)
	}
}

func (inv *Inventory) sortedSlots() []Slot {
	out := make([]Slot, 0, len(inv.slots))
	for slot := range inv.slots {
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Number < out[j].Number
	})
	return out
}

func (inv *Inventory) notify(c Change) {
	if inv.OnChanged != nil {
		inv.OnChanged(c)
	}
}

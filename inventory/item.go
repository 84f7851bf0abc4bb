package inventory

import (
	"fmt"
	"strings"
)

type ItemType string

const (
	TokenType  ItemType = "Token"
	WeaponType ItemType = "Weapon"
	PotionType ItemType = "Potion"
	SkillType  ItemType = "Skill"
)

// PrimaryAssetID names an item definition, e.g. Potion:Health.
type PrimaryAssetID struct {
	Type ItemType
	Name string
}

func (id PrimaryAssetID) String() string {
	return fmt.Sprintf("%s:%s", id.Type, id.Name)
}

func (id PrimaryAssetID) IsValid() bool {
	return id.Type != "" && id.Name != ""
}

// ParseAssetID parses the Type:Name form produced by String.
func ParseAssetID(s string) (PrimaryAssetID, error) {
	typ, name, ok := strings.Cut(s, ":")
	if !ok || typ == "" || name == "" {
		return PrimaryAssetID{}, fmt.Errorf("inventory: malformed asset id %q", s)
	}
	return PrimaryAssetID{Type: ItemType(typ), Name: name}, nil
}

// Item is an immutable item definition.
type Item struct {
	ID          PrimaryAssetID `yaml:"-"`
	DisplayName string         `yaml:"display_name"`
	Description string         `yaml:"description"`
	Price       int            `yaml:"price"`
	// MaxCount and MaxLevel of 0 or less mean unlimited.
	MaxCount int `yaml:"max_count"`
	MaxLevel int `yaml:"max_level"`
	// Heal is restored to the holder's health when the item is used.
	Heal float64 `yaml:"heal"`
	// AttackBonus is added to attack power while the item is slotted.
	AttackBonus float64 `yaml:"attack_bonus"`
}

// IsConsumable reports whether the item has no count limit.
func (i *Item) IsConsumable() bool {
	return i.MaxCount <= 0
}

// SlotData is the count and level held for one item.
type SlotData struct {
	Count int `json:"count"`
	Level int `json:"level"`
}

func (d SlotData) IsValid() bool {
	return d.Count > 0 && d.Level > 0
}

// UpdateItemData merges other into d, clamping both fields to [1, max]. A
// max of 0 or less means unlimited.
func (d *SlotData) UpdateItemData(other SlotData, maxCount, maxLevel int) {
	d.Count = clampCount(d.Count+other.Count, maxCount)
	d.Level = clampCount(d.Level+other.Level, maxLevel)
}

func clampCount(v, hi int) int {
	if v < 1 {
		return 1
	}
	if hi > 0 && v > hi {
		return hi
	}
	return v
}

// Slot is one equipment position for items of a type.
type Slot struct {
	Type   ItemType `json:"type"`
	Number int      `json:"number"`
}

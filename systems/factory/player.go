package factory

import (
	"github.com/captainzonks/hopper/archetypes"
	"github.com/captainzonks/hopper/attributes"
	"github.com/captainzonks/hopper/components"
	cfg "github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/events"
	"github.com/captainzonks/hopper/inventory"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/shared/netconfig"
	"github.com/captainzonks/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type PlayerOptions struct {
	Name   string
	Spawn  gamemath.Vec3
	Source components.InputSource
	Bot    bool
	// Store persists the inventory. Nil keeps it in memory only.
	Store inventory.Store
	Log   *zap.Logger
}

// One slot each for weapons and potions.
var playerSlots = map[inventory.ItemType]int{
	inventory.WeaponType: 1,
	inventory.PotionType: 1,
}

func CreatePlayer(ecs *ecs.ECS, opts PlayerOptions) *donburi.Entry {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	player := archetypes.Player.Spawn(ecs)

	setupCharacter(ecs, player, characterSpec{
		kind:        netconfig.KindPlayer,
		x:           opts.Spawn.X,
		y:           opts.Spawn.Y,
		resolvTag:   tags.ResolvPlayer,
		maxHealth:   cfg.Character.MaxHealth,
		attackPower: cfg.Character.AttackPower,
		maxSpeed:    cfg.Character.WalkSpeed,
		source:      opts.Source,
		log:         log.With(zap.String("player", opts.Name)),
	})

	components.Player.SetValue(player, components.PlayerData{
		Name:     opts.Name,
		Spawn:    opts.Spawn,
		Lives:    cfg.Character.Lives,
		MaxLives: cfg.Character.Lives,
		Bot:      opts.Bot,
	})

	inv := inventory.New(opts.Store, playerSlots, log)
	if err := inv.Restore(resolveItem(ecs.World)); err != nil {
		log.Warn("inventory not restored", zap.Error(err))
	}
	inv.OnChanged = func(c inventory.Change) {
		events.InventoryChangedEvent.Publish(player.World, events.InventoryChanged{
			Entity: player.Entity(),
			Item:   c.Item.ID,
			Added:  c.Added,
			Count:  c.Data.Count,
			Level:  c.Data.Level,
		})
	}
	inv.OnSlotChanged = func(slot inventory.Slot, _ *inventory.Item) {
		if slot.Type == inventory.WeaponType {
			ApplyEquipment(player)
		}
	}
	components.Inventory.SetValue(player, components.InventoryData{Inventory: inv})
	ApplyEquipment(player)

	return player
}

// ApplyEquipment sets attack power to the base value plus the bonus of every
// slotted item.
func ApplyEquipment(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Inventory) {
		return
	}
	power := cfg.Character.AttackPower
	for _, item := range components.Inventory.Get(e).SlottedItems() {
		power += item.AttackBonus
	}
	components.Abilities.Get(e).Attributes.Set(attributes.AttackPower, power)
}

func resolveItem(w donburi.World) func(inventory.PrimaryAssetID) *inventory.Item {
	return func(id inventory.PrimaryAssetID) *inventory.Item {
		arenaEntry, ok := components.Arena.First(w)
		if !ok {
			return nil
		}
		manager := components.Arena.Get(arenaEntry).Assets
		if manager == nil {
			return nil
		}
		return manager.ForceLoadItem(id, true)
	}
}

package systems

import (
	"github.com/captainzonks/hopper/attributes"
	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/inventory"
	"github.com/captainzonks/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// potionThreshold is the health fraction below which a slotted potion is drunk.
const potionThreshold = 0.5

var potionSlot = inventory.Slot{Type: inventory.PotionType}

// UpdatePickups hands every pickup a living player touches to that player,
// then lets players drink potions when they are hurt.
func UpdatePickups(ecs *ecs.ECS) {
	type grab struct{ player, pickup *donburi.Entry }
	var grabs []grab

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || !e.HasComponent(components.Inventory) {
			return
		}
		check := components.Object.Get(e).Check(0, 0, tags.ResolvPickup)
		if check == nil {
			return
		}
		for _, obj := range check.Objects {
			if pickup, ok := obj.Data.(*donburi.Entry); ok && pickup.Valid() {
				grabs = append(grabs, grab{player: e, pickup: pickup})
			}
		}
	})
	for _, g := range grabs {
		Collect(ecs, g.player, g.pickup)
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			UsePotion(e)
		}
	})
}

// Collect moves pickup into player's inventory and removes it from the
// arena. A pickup the player cannot hold any more of stays where it is.
func Collect(ecs *ecs.ECS, player, pickup *donburi.Entry) bool {
	if !pickup.Valid() || !player.Valid() {
		return false
	}
	data := components.Pickup.Get(pickup)
	if !components.Inventory.Get(player).AddItem(data.Item, data.Count, 1, true) {
		return false
	}
	logger.Debug("pickup collected",
		zap.Stringer("item", data.Item.ID),
		zap.Int("count", data.Count),
		zap.Int("player", int(player.Entity().Id())))

	if obj := components.Object.Get(pickup); obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	ecs.World.Remove(pickup.Entity())
	return true
}

// UsePotion drinks one slotted potion when e is below the potion threshold.
func UsePotion(e *donburi.Entry) bool {
	if !e.HasComponent(components.Inventory) {
		return false
	}
	attrs := components.Abilities.Get(e).Attributes
	if attrs.IsDead() || attrs.MaxHealth() <= 0 || attrs.Health()/attrs.MaxHealth() >= potionThreshold {
		return false
	}
	inv := components.Inventory.Get(e)
	potion := inv.SlottedItem(potionSlot)
	if potion == nil || potion.Heal <= 0 {
		return false
	}
	if !inv.RemoveItem(potion, 1) {
		return false
	}
	attrs.Modify(attributes.Health, potion.Heal)
	return true
}

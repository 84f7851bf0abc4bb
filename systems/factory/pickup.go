package factory

import (
	"github.com/captainzonks/hopper/archetypes"
	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/inventory"
	"github.com/captainzonks/hopper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const pickupSize = 48.0

// CreatePickup drops count of item at x, y.
func CreatePickup(ecs *ecs.ECS, x, y float64, item *inventory.Item, count int) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)

	obj := resolv.NewObject(x, y, pickupSize, pickupSize, tags.ResolvPickup)
	obj.SetShape(resolv.NewRectangle(0, 0, pickupSize, pickupSize))
	obj.Data = pickup
	components.Object.SetValue(pickup, components.ObjectData{Object: obj})
	addToSpace(ecs.World, obj)

	if count <= 0 {
		count = 1
	}
	components.Pickup.SetValue(pickup, components.PickupData{Item: item, Count: count})
	return pickup
}

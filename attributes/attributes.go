// Package attributes owns a character's health, max health, attack power and
// stamina, and reports the transitions other systems react to.
package attributes

import (
	"github.com/captainzonks/hopper/shared/gameplaytag"
	"github.com/captainzonks/hopper/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

type Attribute int

const (
	Health Attribute = iota
	MaxHealth
	AttackPower
	Stamina
	// Damage is a meta attribute. Writes to it are converted into a health
	// reduction and never persist.
	Damage
)

func (a Attribute) String() string {
	switch a {
	case Health:
		return "Health"
	case MaxHealth:
		return "MaxHealth"
	case AttackPower:
		return "AttackPower"
	case Stamina:
		return "Stamina"
	case Damage:
		return "Damage"
	}
	return "Unknown"
}

type AttributeSet struct {
	Health        float64
	MaxHealth     float64
	AttackPower   float64
	Stamina       float64
	PendingDamage float64
}

// Change describes one attribute transition.
type Change struct {
	Attribute  Attribute
	Old, New   float64
	Instigator *donburi.Entry
}

// uninitializedHealth is reported before Init so nothing reads a dead
// character while the ability system is still starting.
const uninitializedHealth = 1.0

// Controller mutates an AttributeSet through clamped operations.
type Controller struct {
	Log *zap.Logger
	// OwnerTags receives the death tag. It may be nil.
	OwnerTags *gameplaytag.Container

	// OnChanged runs after an attribute changes value, once abilities are
	// initialized.
	OnChanged func(Change)
	// OnDeath runs exactly once per life when health reaches zero.
	OnDeath func(instigator *donburi.Entry)
	// OnDamaged runs for each damage application that reduced health.
	OnDamaged func(amount float64, instigator *donburi.Entry)

	set                  *AttributeSet
	abilitiesInitialized bool
	dead                 bool
}

func NewController(ownerTags *gameplaytag.Container, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{Log: log, OwnerTags: ownerTags}
}

// Init installs the starting values. Health is clamped into [0, MaxHealth].
func (c *Controller) Init(initial AttributeSet) {
	s := initial
	s.MaxHealth = max(s.MaxHealth, 0)
	s.Health = clamp(s.Health, 0, s.MaxHealth)
	s.Stamina = max(s.Stamina, 0)
	s.PendingDamage = 0
	c.set = &s
}

func (c *Controller) Initialized() bool { return c.set != nil }

// MarkAbilitiesInitialized enables change notifications.
func (c *Controller) MarkAbilitiesInitialized() { c.abilitiesInitialized = true }

func (c *Controller) AbilitiesInitialized() bool { return c.abilitiesInitialized }

// Health returns 1.0 until Init has been called.
func (c *Controller) Health() float64 {
	if c.set == nil {
		return uninitializedHealth
	}
	return c.set.Health
}

func (c *Controller) MaxHealth() float64 {
	if c.set == nil {
		return 0
	}
	return c.set.MaxHealth
}

func (c *Controller) AttackPower() float64 {
	if c.set == nil {
		return 0
	}
	return c.set.AttackPower
}

func (c *Controller) Stamina() float64 {
	if c.set == nil {
		return 0
	}
	return c.set.Stamina
}

// Get reads any attribute. Damage always reads as 0.
func (c *Controller) Get(attr Attribute) float64 {
	switch attr {
	case Health:
		return c.Health()
	case MaxHealth:
		return c.MaxHealth()
	case AttackPower:
		return c.AttackPower()
	case Stamina:
		return c.Stamina()
	}
	return 0
}

// Snapshot returns a copy of the current values.
func (c *Controller) Snapshot() AttributeSet {
	if c.set == nil {
		return AttributeSet{Health: uninitializedHealth}
	}
	return *c.set
}

func (c *Controller) IsDead() bool { return c.dead }

// Modify adds delta to attr and returns the clamped result. It returns false
// when the controller is not initialized or attr is unknown.
func (c *Controller) Modify(attr Attribute, delta float64) (float64, bool) {
	if attr == Damage {
		return c.Health(), c.ApplyDamage(delta, nil)
	}
	return c.Set(attr, c.Get(attr)+delta)
}

// Set writes attr and returns the clamped result.
func (c *Controller) Set(attr Attribute, value float64) (float64, bool) {
	return c.SetFrom(attr, value, nil)
}

// SetFrom is Set with the entity responsible for the change recorded on any
// resulting notification.
func (c *Controller) SetFrom(attr Attribute, value float64, instigator *donburi.Entry) (float64, bool) {
	if c.set == nil {
		c.Log.Debug("attributes: modify before init", zap.Stringer("attribute", attr))
		return c.Get(attr), false
	}

	switch attr {
	case Health:
		c.setHealth(value, instigator)
		return c.set.Health, true
	case MaxHealth:
		c.setMaxHealth(value, instigator)
		return c.set.MaxHealth, true
	case AttackPower:
		old := c.set.AttackPower
		c.set.AttackPower = value
		c.notify(AttackPower, old, value, instigator)
		return value, true
	case Stamina:
		old := c.set.Stamina
		c.set.Stamina = max(value, 0)
		c.notify(Stamina, old, c.set.Stamina, instigator)
		return c.set.Stamina, true
	case Damage:
		ok := c.ApplyDamage(value, instigator)
		return c.set.Health, ok
	}

	c.Log.Warn("attributes: unknown attribute", zap.Int("attribute", int(attr)))
	return 0, false
}

// ApplyDamage routes amount through the damage meta attribute: it is subtracted
// from health and the pending value is reset. Non-positive amounts are ignored.
func (c *Controller) ApplyDamage(amount float64, instigator *donburi.Entry) bool {
	if c.set == nil || amount <= 0 {
		return false
	}
	c.set.PendingDamage += amount
	local := c.set.PendingDamage
	c.set.PendingDamage = 0

	c.setHealth(c.set.Health-local, instigator)
	if c.OnDamaged != nil {
		c.OnDamaged(local, instigator)
	}
	return true
}

// Revive starts a new life: the death tag is removed and health refilled.
func (c *Controller) Revive() bool {
	if c.set == nil {
		return false
	}
	c.dead = false
	if c.OwnerTags != nil {
		c.OwnerTags.RemoveTag(tags.StatusDead)
	}
	c.setHealth(c.set.MaxHealth, nil)
	return true
}

func (c *Controller) setHealth(value float64, instigator *donburi.Entry) {
	old := c.set.Health
	c.set.Health = clamp(value, 0, c.set.MaxHealth)
	c.notify(Health, old, c.set.Health, instigator)
	c.checkDeath(instigator)
}

// setMaxHealth keeps health at the same fraction of the maximum. With an old
// maximum of zero the fraction is undefined and health is left alone.
func (c *Controller) setMaxHealth(value float64, instigator *donburi.Entry) {
	oldMax := c.set.MaxHealth
	newMax := max(value, 0)
	c.set.MaxHealth = newMax
	c.notify(MaxHealth, oldMax, newMax, instigator)

	if oldMax > 0 {
		c.setHealth(c.set.Health*newMax/oldMax, instigator)
	}
}

func (c *Controller) checkDeath(instigator *donburi.Entry) {
	if c.set.Health > 0 || c.dead {
		return
	}
	c.dead = true
	if c.OwnerTags != nil {
		c.OwnerTags.AddTag(tags.StatusDead)
	}
	c.Log.Debug("attributes: death")
	if c.OnDeath != nil {
		c.OnDeath(instigator)
	}
}

func (c *Controller) notify(attr Attribute, oldValue, newValue float64, instigator *donburi.Entry) {
	if oldValue == newValue || !c.abilitiesInitialized || c.OnChanged == nil {
		return
	}
	c.OnChanged(Change{Attribute: attr, Old: oldValue, New: newValue, Instigator: instigator})
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

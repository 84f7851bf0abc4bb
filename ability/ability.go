package ability

import (
	"github.com/captainzonks/hopper/shared/gameplaytag"
	"go.uber.org/zap"
)

// Ability is a granted action. Tasks it spawns live until the ability ends.
type Ability struct {
	Tag gameplaytag.Tag
	// OnEnded runs when an active ability ends.
	OnEnded func()

	system *System
	tasks  []*Task
	active bool
}

func (a *Ability) System() *System { return a.system }

func (a *Ability) IsActive() bool { return a.active }

// Activate marks the ability active. It returns false if it already was.
func (a *Ability) Activate() bool {
	if a.active {
		return false
	}
	a.active = true
	return true
}

// End tears down every task the ability owns and deactivates it.
func (a *Ability) End() {
	for len(a.tasks) > 0 {
		a.tasks[len(a.tasks)-1].EndTask()
	}
	if !a.active {
		return
	}
	a.active = false
	if a.OnEnded != nil {
		a.OnEnded()
	}
}

// ActiveTasks returns the number of tasks still subscribed.
func (a *Ability) ActiveTasks() int { return len(a.tasks) }

func (a *Ability) findTask(success, failure gameplaytag.Tag, target *System) *Task {
	for _, t := range a.tasks {
		if t.success == success && t.failure == failure && t.target == target {
			return t
		}
	}
	return nil
}

func (a *Ability) removeTask(task *Task) {
	for i, t := range a.tasks {
		if t == task {
			a.tasks = append(a.tasks[:i], a.tasks[i+1:]...)
			return
		}
	}
}

// GiveAbility grants the ability identified by tag, returning the existing
// grant when there is one.
func (s *System) GiveAbility(tag gameplaytag.Tag) *Ability {
	if a, ok := s.abilities[tag]; ok {
		return a
	}
	a := &Ability{Tag: tag, system: s}
	s.abilities[tag] = a
	return a
}

func (s *System) FindAbility(tag gameplaytag.Tag) (*Ability, bool) {
	a, ok := s.abilities[tag]
	return a, ok
}

// TryActivateAbility activates a granted ability. Dead owners cannot act.
func (s *System) TryActivateAbility(tag gameplaytag.Tag) (*Ability, bool) {
	a, ok := s.abilities[tag]
	if !ok {
		s.Log.Warn("ability: not granted", zap.Stringer("ability", tag))
		return nil, false
	}
	if s.Attributes != nil && s.Attributes.IsDead() {
		return a, false
	}
	return a, a.Activate()
}

// CancelAllAbilities ends every active ability.
func (s *System) CancelAllAbilities() {
	for _, a := range s.abilities {
		a.End()
	}
}

// AddStartupAbilities grants the listed abilities and applies the passive
// effects once, then enables attribute change notifications. Later calls do
// nothing and return false.
func (s *System) AddStartupAbilities(granted []gameplaytag.Tag, passives ...Effect) bool {
	if s.startupApplied {
		return false
	}
	for _, tag := range granted {
		s.GiveAbility(tag)
	}
	for _, e := range passives {
		s.ApplyEffectToSelf(e)
	}
	s.startupApplied = true
	if s.Attributes != nil {
		s.Attributes.MarkAbilitiesInitialized()
	}
	return true
}

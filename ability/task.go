package ability

import (
	"github.com/captainzonks/hopper/shared/gameplaytag"
)

// Mechanism records how a task registered with its target system, so that
// teardown removes exactly what was added.
type Mechanism int

const (
	MechanismNone Mechanism = iota
	MechanismExact
	MechanismContainer
)

func (m Mechanism) String() string {
	switch m {
	case MechanismExact:
		return "exact"
	case MechanismContainer:
		return "container"
	}
	return "none"
}

// Task waits for a success or failure event on a target ability system.
type Task struct {
	OnSuccess func(EventData)
	OnFailed  func(EventData)

	owner       *Ability
	target      *System
	success     gameplaytag.Tag
	failure     gameplaytag.Tag
	triggerOnce bool
	mechanism   Mechanism
	handles     map[gameplaytag.Tag]DelegateHandle
	container   DelegateHandle
	ended       bool
}

// Subscribe starts a task on owner that listens for success and failure
// events. Events are read from target, or from the owner's own system when
// target is nil. With exactMatch only the literal tags are accepted;
// otherwise descendants match too. A task with the same tags and target
// already running on owner is returned instead of registering twice.
func Subscribe(owner *Ability, success, failure gameplaytag.Tag, target *System, triggerOnce, exactMatch bool) *Task {
	if owner == nil || owner.system == nil {
		return &Task{ended: true}
	}
	if target == nil {
		target = owner.system
	}
	if existing := owner.findTask(success, failure, target); existing != nil {
		return existing
	}

	t := &Task{
		owner:       owner,
		target:      target,
		success:     success,
		failure:     failure,
		triggerOnce: triggerOnce,
	}
	if exactMatch {
		t.registerExact()
	} else {
		t.registerContainer()
	}
	owner.tasks = append(owner.tasks, t)
	return t
}

func (t *Task) registerExact() {
	t.mechanism = MechanismExact
	t.handles = make(map[gameplaytag.Tag]DelegateHandle, 2)
	for _, tag := range []gameplaytag.Tag{t.success, t.failure} {
		if !tag.IsValid() {
			continue
		}
		if _, dup := t.handles[tag]; dup {
			continue
		}
		t.handles[tag] = t.target.AddExactEventDelegate(tag, func(data EventData) {
			t.dispatch(data.EventTag, data)
		})
	}
}

func (t *Task) registerContainer() {
	t.mechanism = MechanismContainer
	filter := gameplaytag.NewContainer(t.success, t.failure)
	t.container = t.target.AddContainerEventDelegate(filter, t.dispatch)
}

func (t *Task) dispatch(matched gameplaytag.Tag, data EventData) {
	if t.ended {
		return
	}
	data.EventTag = matched

	switch {
	case t.success.IsValid() && matched.MatchesTag(t.success):
		if t.OnSuccess != nil {
			t.OnSuccess(data)
		}
	case t.failure.IsValid() && matched.MatchesTag(t.failure):
		if t.OnFailed != nil {
			t.OnFailed(data)
		}
	default:
		return
	}

	if t.triggerOnce {
		t.EndTask()
	}
}

// EndTask unregisters the task with the mechanism it subscribed with.
// Calling it more than once is harmless.
func (t *Task) EndTask() {
	if t.ended {
		return
	}
	t.ended = true

	switch t.mechanism {
	case MechanismExact:
		for tag, h := range t.handles {
			t.target.RemoveExactEventDelegate(tag, h)
		}
		t.handles = nil
	case MechanismContainer:
		t.target.RemoveContainerEventDelegate(t.container)
	}
	if t.owner != nil {
		t.owner.removeTask(t)
	}
}

func (t *Task) Mechanism() Mechanism { return t.mechanism }

func (t *Task) IsActive() bool { return !t.ended }

func (t *Task) Target() *System { return t.target }

package ability

import (
	"testing"

	"github.com/captainzonks/hopper/attributes"
	"github.com/captainzonks/hopper/shared/gameplaytag"
	"github.com/captainzonks/hopper/tags"
	"github.com/yohamta/donburi"
)

func newTestSystem() *System {
	owner := gameplaytag.NewContainer()
	attrs := attributes.NewController(owner, nil)
	attrs.Init(attributes.AttributeSet{Health: 100, MaxHealth: 100, AttackPower: 10})
	return NewSystem(nil, attrs, owner, nil)
}

func TestSubscribeExactTeardown(t *testing.T) {
	s := newTestSystem()
	a := s.GiveAbility(tags.AbilityPunch)

	task := Subscribe(a, tags.WeaponHit, tags.WeaponNoHit, nil, false, true)
	if task.Mechanism() != MechanismExact {
		t.Fatalf("Mechanism = %v, want exact", task.Mechanism())
	}
	if s.ExactDelegateCount(tags.WeaponHit) != 1 || s.ExactDelegateCount(tags.WeaponNoHit) != 1 {
		t.Fatal("exact delegates not registered for both tags")
	}
	if s.ContainerDelegateCount() != 0 {
		t.Fatal("exact subscription registered a container delegate")
	}

	task.EndTask()
	if s.ExactDelegateCount(tags.WeaponHit) != 0 || s.ExactDelegateCount(tags.WeaponNoHit) != 0 {
		t.Error("exact delegates left behind after EndTask")
	}
	if s.ContainerDelegateCount() != 0 {
		t.Error("container delegate left behind after EndTask")
	}
}

func TestSubscribeContainerTeardown(t *testing.T) {
	s := newTestSystem()
	a := s.GiveAbility(tags.AbilityPunch)

	task := Subscribe(a, tags.WeaponHit, tags.WeaponNoHit, nil, false, false)
	if task.Mechanism() != MechanismContainer {
		t.Fatalf("Mechanism = %v, want container", task.Mechanism())
	}
	if s.ContainerDelegateCount() != 1 || s.ExactDelegateCount(tags.WeaponHit) != 0 {
		t.Fatal("container subscription registered the wrong mechanism")
	}

	a.End()
	if s.ContainerDelegateCount() != 0 || s.ExactDelegateCount(tags.WeaponHit) != 0 {
		t.Error("delegates left behind after Ability.End")
	}
	if task.IsActive() {
		t.Error("task should be inactive after its ability ends")
	}
}

func TestExactMatchIgnoresChildTags(t *testing.T) {
	s := newTestSystem()
	a := s.GiveAbility(tags.AbilityPunch)
	hits := 0
	task := Subscribe(a, "Weapon", "", nil, false, true)
	task.OnSuccess = func(EventData) { hits++ }

	s.SendGameplayEvent(tags.WeaponHit, EventData{})
	if hits != 0 {
		t.Errorf("exact subscription fired for a child tag")
	}
	s.SendGameplayEvent("Weapon", EventData{})
	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
}

func TestContainerMatchAnnotatesTag(t *testing.T) {
	s := newTestSystem()
	a := s.GiveAbility(tags.AbilityPunch)
	var got []gameplaytag.Tag
	task := Subscribe(a, "Weapon", "Gameplay.Status", nil, false, false)
	task.OnSuccess = func(d EventData) { got = append(got, d.EventTag) }
	task.OnFailed = func(d EventData) { got = append(got, d.EventTag) }

	s.SendGameplayEvent(tags.WeaponHit, EventData{})
	s.SendGameplayEvent(tags.StatusDead, EventData{})
	s.SendGameplayEvent("Other.Thing", EventData{})

	want := []gameplaytag.Tag{tags.WeaponHit, tags.StatusDead}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d tag = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTriggerOnce(t *testing.T) {
	for _, exact := range []bool{true, false} {
		s := newTestSystem()
		a := s.GiveAbility(tags.AbilityPunch)
		fails := 0
		task := Subscribe(a, tags.WeaponHit, tags.WeaponNoHit, nil, true, exact)
		task.OnFailed = func(EventData) { fails++ }

		s.SendGameplayEvent(tags.WeaponNoHit, EventData{})
		s.SendGameplayEvent(tags.WeaponNoHit, EventData{})

		if fails != 1 {
			t.Errorf("exact=%v: fails = %d, want 1", exact, fails)
		}
		if task.IsActive() || a.ActiveTasks() != 0 {
			t.Errorf("exact=%v: task should end after first trigger", exact)
		}
		if s.ExactDelegateCount(tags.WeaponNoHit) != 0 || s.ContainerDelegateCount() != 0 {
			t.Errorf("exact=%v: delegates left behind", exact)
		}
	}
}

func TestSubscribeDeduplicates(t *testing.T) {
	s := newTestSystem()
	a := s.GiveAbility(tags.AbilityPunch)

	first := Subscribe(a, tags.WeaponHit, tags.WeaponNoHit, nil, false, true)
	second := Subscribe(a, tags.WeaponHit, tags.WeaponNoHit, nil, false, true)
	if first != second {
		t.Error("second Subscribe should return the running task")
	}
	if s.ExactDelegateCount(tags.WeaponHit) != 1 {
		t.Errorf("ExactDelegateCount = %d, want 1", s.ExactDelegateCount(tags.WeaponHit))
	}
}

func TestSubscribeExternalTarget(t *testing.T) {
	owner, other := newTestSystem(), newTestSystem()
	a := owner.GiveAbility(tags.AbilityPunch)
	hits := 0
	task := Subscribe(a, tags.WeaponHit, "", other, false, true)
	task.OnSuccess = func(EventData) { hits++ }

	owner.SendGameplayEvent(tags.WeaponHit, EventData{})
	other.SendGameplayEvent(tags.WeaponHit, EventData{})

	if hits != 1 {
		t.Errorf("hits = %d, want 1 from the external target only", hits)
	}
	if task.Target() != other {
		t.Error("Target should be the external system")
	}
}

func TestRemovalDuringBroadcast(t *testing.T) {
	s := newTestSystem()
	calls := 0
	var second DelegateHandle
	s.AddExactEventDelegate(tags.WeaponHit, func(EventData) {
		calls++
		s.RemoveExactEventDelegate(tags.WeaponHit, second)
	})
	second = s.AddExactEventDelegate(tags.WeaponHit, func(EventData) { calls++ })

	if n := s.SendGameplayEvent(tags.WeaponHit, EventData{}); n != 1 {
		t.Errorf("invoked = %d, want 1", n)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestNilOwnerSubscribe(t *testing.T) {
	task := Subscribe(nil, tags.WeaponHit, tags.WeaponNoHit, nil, false, true)
	if task.IsActive() || task.Mechanism() != MechanismNone {
		t.Error("subscribe without an owner should return an ended task")
	}
	task.EndTask()
}

func TestDamageEffect(t *testing.T) {
	instigator, target := newTestSystem(), newTestSystem()
	var cues []gameplaytag.Tag
	target.OnCue = func(cue gameplaytag.Tag, _ *donburi.Entry) { cues = append(cues, cue) }

	if !instigator.ApplyEffectToTarget(target, DamageEffect()) {
		t.Fatal("ApplyEffectToTarget = false")
	}
	if got := target.Attributes.Health(); got != 100-DefaultPunchDamage {
		t.Errorf("Health = %v, want %v", got, 100-DefaultPunchDamage)
	}
	if len(cues) != 1 || cues[0] != tags.CuePunched {
		t.Errorf("cues = %v, want [%s]", cues, tags.CuePunched)
	}
}

func TestAddStartupAbilities(t *testing.T) {
	s := newTestSystem()
	changes := 0
	s.Attributes.OnChanged = func(attributes.Change) { changes++ }

	boost := Effect{Name: "Boost", Modifiers: []Modifier{
		{Attribute: attributes.AttackPower, Op: OpAdd, Magnitude: 5},
		{Attribute: attributes.Stamina, Op: OpOverride, Magnitude: 50},
	}}
	if !s.AddStartupAbilities([]gameplaytag.Tag{tags.AbilityPunch}, boost) {
		t.Fatal("AddStartupAbilities = false")
	}
	if changes != 0 {
		t.Errorf("startup effects produced %d notifications, want 0", changes)
	}
	if s.Attributes.AttackPower() != 15 || s.Attributes.Stamina() != 50 {
		t.Errorf("AttackPower=%v Stamina=%v, want 15 and 50", s.Attributes.AttackPower(), s.Attributes.Stamina())
	}
	if _, ok := s.FindAbility(tags.AbilityPunch); !ok {
		t.Error("punch ability not granted")
	}
	if s.AddStartupAbilities(nil, boost) {
		t.Error("second AddStartupAbilities should do nothing")
	}

	s.Attributes.Modify(attributes.Health, -1)
	if changes != 1 {
		t.Errorf("changes after startup = %d, want 1", changes)
	}
}

func TestTryActivateAbilityWhileDead(t *testing.T) {
	s := newTestSystem()
	s.GiveAbility(tags.AbilityPunch)
	s.Attributes.Modify(attributes.Health, -100)

	if _, ok := s.TryActivateAbility(tags.AbilityPunch); ok {
		t.Error("dead owner activated an ability")
	}
}

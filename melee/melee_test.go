package melee

import (
	"testing"

	"github.com/captainzonks/hopper/ability"
	"github.com/captainzonks/hopper/attributes"
	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/shared/gameplaytag"
	"github.com/captainzonks/hopper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const force = 750.0

func spawn(w donburi.World, marker donburi.IComponentType, x, y float64) *donburi.Entry {
	e := w.Entry(w.Create(marker, components.Abilities, components.Object, components.Physics))
	owned := gameplaytag.NewContainer()
	attrs := attributes.NewController(owned, nil)
	attrs.Init(attributes.AttributeSet{Health: 100, MaxHealth: 100})
	components.Abilities.SetValue(e, components.AbilitiesData{
		System:     ability.NewSystem(e, attrs, owned, nil),
		Attributes: attrs,
		Tags:       owned,
	})
	obj := resolv.NewObject(x-10, y-10, 20, 20, tags.ResolvCharacter)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return e
}

type recorder struct {
	hits   []*donburi.Entry
	noHits int
}

func listen(e *donburi.Entry) *recorder {
	rec := &recorder{}
	sys := components.Abilities.Get(e).System
	sys.AddExactEventDelegate(tags.WeaponHit, func(d ability.EventData) {
		rec.hits = append(rec.hits, d.Target)
	})
	sys.AddExactEventDelegate(tags.WeaponNoHit, func(ability.EventData) {
		rec.noHits++
	})
	return rec
}

func TestResolvePunchNoCandidates(t *testing.T) {
	w := donburi.NewWorld()
	player := spawn(w, tags.Player, 0, 0)
	rec := listen(player)

	res := NewResolver(nil).ResolvePunch(player, gamemath.Vec3{}, 150, nil, force)
	if res.HitCount != 0 || len(res.Hits) != 0 {
		t.Errorf("HitCount = %d, want 0", res.HitCount)
	}
	if rec.noHits != 1 || len(rec.hits) != 0 {
		t.Errorf("events = %d hit, %d no-hit; want 0, 1", len(rec.hits), rec.noHits)
	}
}

func TestResolvePunchFilters(t *testing.T) {
	w := donburi.NewWorld()
	player := spawn(w, tags.Player, 0, 0)
	ally := spawn(w, tags.Player, 50, 0)
	near := spawn(w, tags.Enemy, 100, 0)
	side := spawn(w, tags.Enemy, 0, -80)
	far := spawn(w, tags.Enemy, 400, 0)
	dead := spawn(w, tags.Enemy, 60, 0)
	components.Abilities.Get(dead).Attributes.Set(attributes.Health, 0)
	rec := listen(player)

	candidates := []*donburi.Entry{player, ally, near, side, far, dead}
	res := NewResolver(nil).ResolvePunch(player, gamemath.Vec3{}, 150, candidates, force)

	// Reach belongs to whoever gathered the candidates
	if res.HitCount != 3 {
		t.Fatalf("HitCount = %d, want 3", res.HitCount)
	}
	for i, want := range []*donburi.Entry{near, side, far} {
		if res.Hits[i].Target.Entity() != want.Entity() {
			t.Errorf("hit %d is not the expected live enemy", i)
		}
	}
	if len(rec.hits) != 3 || rec.noHits != 0 {
		t.Errorf("events = %d hit, %d no-hit; want 3, 0", len(rec.hits), rec.noHits)
	}

	tests := []struct {
		name string
		e    *donburi.Entry
		want gamemath.Vec3
	}{
		{"near", near, gamemath.Vec3{X: force, Z: force}},
		{"side", side, gamemath.Vec3{Y: -force, Z: force}},
		{"far", far, gamemath.Vec3{X: force, Z: force}},
		{"dead", dead, gamemath.Vec3{}},
		{"ally", ally, gamemath.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := components.Physics.Get(tt.e).Velocity; got != tt.want {
				t.Errorf("velocity = %+v, want %+v", got, tt.want)
			}
		})
	}
	if !components.Physics.Get(near).Airborne {
		t.Error("launched target should be airborne")
	}
}

func TestResolvePunchDuplicateCandidate(t *testing.T) {
	w := donburi.NewWorld()
	player := spawn(w, tags.Player, 0, 0)
	enemy := spawn(w, tags.Enemy, 100, 0)
	rec := listen(player)

	res := NewResolver(nil).ResolvePunch(player, gamemath.Vec3{}, 150, []*donburi.Entry{enemy, enemy}, force)
	if res.HitCount != 1 || len(rec.hits) != 1 {
		t.Errorf("hits = %d, events = %d; want 1, 1", res.HitCount, len(rec.hits))
	}
	if got, want := components.Physics.Get(enemy).Velocity, (gamemath.Vec3{X: force, Z: force}); got != want {
		t.Errorf("velocity = %+v, want a single launch %+v", got, want)
	}
}

func TestPunchReachesBoxTouchingRadius(t *testing.T) {
	w := donburi.NewWorld()
	space := resolv.NewSpace(1024, 1024, 16, 16)
	player := spawn(w, tags.Player, 300, 300)
	// Near edge 145 from the origin, center 155
	touching := spawn(w, tags.Enemy, 455, 300)
	// Corner just outside the circle although inside its bounding square
	corner := spawn(w, tags.Enemy, 300+120, 300+120)
	for _, e := range []*donburi.Entry{player, touching, corner} {
		space.Add(components.Object.Get(e).Object)
	}
	rec := listen(player)

	origin := gamemath.Vec3{X: 300, Y: 300}
	candidates := Overlap(space, origin, 150)
	res := NewResolver(nil).ResolvePunch(player, origin, 150, candidates, force)
	if res.HitCount != 1 || res.Hits[0].Target.Entity() != touching.Entity() {
		t.Fatalf("hits = %d, want only the touching enemy", res.HitCount)
	}
	if rec.noHits != 0 {
		t.Errorf("no-hit events = %d, want 0", rec.noHits)
	}
}

func TestResolvePunchByEnemy(t *testing.T) {
	w := donburi.NewWorld()
	enemy := spawn(w, tags.Enemy, 0, 0)
	other := spawn(w, tags.Enemy, 40, 0)
	player := spawn(w, tags.Player, 80, 0)
	rec := listen(enemy)

	res := NewResolver(nil).ResolvePunch(enemy, gamemath.Vec3{}, 150, []*donburi.Entry{other, player}, force)
	if res.HitCount != 1 || res.Hits[0].Target.Entity() != player.Entity() {
		t.Fatalf("enemy punch hits = %d, want the player only", res.HitCount)
	}
	if len(rec.hits) != 1 {
		t.Errorf("hit events = %d, want 1", len(rec.hits))
	}
}

func TestResolvePunchNilInstigator(t *testing.T) {
	res := NewResolver(nil).ResolvePunch(nil, gamemath.Vec3{}, 150, nil, force)
	if res.HitCount != 0 {
		t.Errorf("HitCount = %d, want 0", res.HitCount)
	}
}

func TestOverlap(t *testing.T) {
	w := donburi.NewWorld()
	space := resolv.NewSpace(1024, 1024, 16, 16)
	inside := spawn(w, tags.Enemy, 120, 120)
	outside := spawn(w, tags.Enemy, 700, 700)
	space.Add(components.Object.Get(inside).Object, components.Object.Get(outside).Object)

	wall := resolv.NewObject(90, 90, 20, 20, tags.ResolvSolid)
	space.Add(wall)

	got := Overlap(space, gamemath.Vec3{X: 100, Y: 100}, 50)
	if len(got) != 1 || got[0].Entity() != inside.Entity() {
		t.Fatalf("Overlap = %d entries, want only the nearby character", len(got))
	}
	if Overlap(space, gamemath.Vec3{}, 0) != nil {
		t.Error("zero radius should find nothing")
	}
	if Overlap(nil, gamemath.Vec3{}, 50) != nil {
		t.Error("nil space should find nothing")
	}
}

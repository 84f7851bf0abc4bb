// Package gameplaytag implements dotted hierarchical tags such as
// "Weapon.Hit" and the containers that hold them.
package gameplaytag

import (
	"sort"
	"strings"
)

// Tag is a dotted hierarchical name. The empty tag matches nothing.
type Tag string

func (t Tag) String() string { return string(t) }

func (t Tag) IsValid() bool { return t != "" }

// MatchesTag reports whether t equals parent or is one of its descendants.
// "Weapon.Hit" matches "Weapon" but not "Weap".
func (t Tag) MatchesTag(parent Tag) bool {
	if !t.IsValid() || !parent.IsValid() {
		return false
	}
	if t == parent {
		return true
	}
	return strings.HasPrefix(string(t), string(parent)+".")
}

func (t Tag) MatchesExact(other Tag) bool {
	return t.IsValid() && t == other
}

// Parent returns the direct parent, or the empty tag for a root.
func (t Tag) Parent() Tag {
	i := strings.LastIndexByte(string(t), '.')
	if i < 0 {
		return ""
	}
	return t[:i]
}

// Container is an unordered set of tags.
type Container struct {
	tags map[Tag]struct{}
}

func NewContainer(tags ...Tag) *Container {
	c := &Container{}
	for _, t := range tags {
		c.AddTag(t)
	}
	return c
}

func (c *Container) AddTag(t Tag) {
	if !t.IsValid() {
		return
	}
	if c.tags == nil {
		c.tags = make(map[Tag]struct{})
	}
	c.tags[t] = struct{}{}
}

// RemoveTag removes t and reports whether it was present.
func (c *Container) RemoveTag(t Tag) bool {
	if _, ok := c.tags[t]; !ok {
		return false
	}
	delete(c.tags, t)
	return true
}

// HasTag reports whether any held tag matches t hierarchically.
func (c *Container) HasTag(t Tag) bool {
	if c == nil {
		return false
	}
	for held := range c.tags {
		if held.MatchesTag(t) {
			return true
		}
	}
	return false
}

func (c *Container) HasTagExact(t Tag) bool {
	if c == nil {
		return false
	}
	_, ok := c.tags[t]
	return ok
}

// Matches reports whether t matches any tag held by the container, the way a
// container filter accepts an incoming event tag.
func (c *Container) Matches(t Tag) bool {
	if c == nil {
		return false
	}
	for held := range c.tags {
		if t.MatchesTag(held) {
			return true
		}
	}
	return false
}

func (c *Container) HasAny(other *Container) bool {
	if other == nil {
		return false
	}
	for t := range other.tags {
		if c.HasTag(t) {
			return true
		}
	}
	return false
}

func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tags)
}

// Tags returns the held tags sorted by name.
func (c *Container) Tags() []Tag {
	if c == nil {
		return nil
	}
	out := make([]Tag, 0, len(c.tags))
	for t := range c.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

package collisions

import (
	"github.com/cbodonnell/healer/pkg/game/constants"
	"github.com/solarlune/resolv"
)

const (
	CellSize = 16
)

// NewCollisionSpace returns an empty space covering the arena.
func NewCollisionSpace() *resolv.Space {
	return resolv.NewSpace(int(constants.ArenaWidth), int(constants.ArenaHeight), CellSize, CellSize)
}

// Nearby returns the objects of obj's space that share a cell with obj's box
// grown by one pixel on each side, so boxes touching obj across a cell
// boundary are included. Only objects with any of tags are returned, or all
// of them when no tag is given. obj itself is never returned, and an object
// outside any space has no neighbors.
func Nearby(obj *resolv.Object, tags ...string) []*resolv.Object {
	space := obj.Space
	if space == nil {
		return nil
	}
	cx, cy := space.WorldToSpace(obj.Position.X-1, obj.Position.Y-1)
	ex, ey := space.WorldToSpace(obj.Position.X+obj.Size.X+1, obj.Position.Y+obj.Size.Y+1)

	seen := make(map[*resolv.Object]bool)
	nearby := make([]*resolv.Object, 0)
	for _, other := range space.CheckCells(cx, cy, ex-cx+1, ey-cy+1, tags...) {
		if other == obj || seen[other] {
			continue
		}
		seen[other] = true
		nearby = append(nearby, other)
	}
	return nearby
}

// Overlaps reports whether the bounding boxes of a and b overlap.
// Touching edges count as an overlap.
func Overlaps(a, b *resolv.Object) bool {
	if a.Position.X+a.Size.X < b.Position.X || a.Position.X > b.Position.X+b.Size.X {
		return false
	}
	if a.Position.Y+a.Size.Y < b.Position.Y || a.Position.Y > b.Position.Y+b.Size.Y {
		return false
	}
	return true
}

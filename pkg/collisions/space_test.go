package collisions

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b *resolv.Object
		want bool
	}{
		{
			name: "identical",
			a:    resolv.NewObject(294, 400, 50, 50),
			b:    resolv.NewObject(294, 400, 50, 50),
			want: true,
		},
		{
			name: "partial",
			a:    resolv.NewObject(294, 400, 50, 50),
			b:    resolv.NewObject(320, 430, 40, 40),
			want: true,
		},
		{
			name: "touching right edge",
			a:    resolv.NewObject(0, 0, 50, 50),
			b:    resolv.NewObject(50, 0, 50, 50),
			want: true,
		},
		{
			name: "touching bottom edge",
			a:    resolv.NewObject(0, 0, 50, 50),
			b:    resolv.NewObject(10, 50, 50, 50),
			want: true,
		},
		{
			name: "disjoint on x",
			a:    resolv.NewObject(0, 0, 50, 50),
			b:    resolv.NewObject(51, 0, 50, 50),
			want: false,
		},
		{
			name: "disjoint on y",
			a:    resolv.NewObject(294, 12, 50, 50),
			b:    resolv.NewObject(294, 400, 50, 50),
			want: false,
		},
		{
			name: "contained",
			a:    resolv.NewObject(0, 0, 640, 480),
			b:    resolv.NewObject(100, 100, 10, 10),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestNewCollisionSpace(t *testing.T) {
	space := NewCollisionSpace()
	obj := resolv.NewObject(12, 350, 40, 40)
	space.Add(obj)
	assert.Equal(t, space, obj.Space)
	space.Remove(obj)
}

func TestNearby(t *testing.T) {
	tests := []struct {
		name  string
		other *resolv.Object
		tags  []string
		want  bool
	}{
		{
			name:  "same cells",
			other: resolv.NewObject(40, 40, 20, 20, "enemy"),
			want:  true,
		},
		{
			name:  "touching left edge across a cell boundary",
			other: resolv.NewObject(0, 32, 32, 16, "enemy"),
			want:  true,
		},
		{
			name:  "touching top edge across a cell boundary",
			other: resolv.NewObject(32, 0, 16, 32, "enemy"),
			want:  true,
		},
		{
			name:  "touching right edge",
			other: resolv.NewObject(64, 32, 16, 16, "enemy"),
			want:  true,
		},
		{
			name:  "far away",
			other: resolv.NewObject(400, 300, 40, 40, "enemy"),
			want:  false,
		},
		{
			name:  "matching tag",
			other: resolv.NewObject(40, 40, 20, 20, "goal"),
			tags:  []string{"enemy", "goal"},
			want:  true,
		},
		{
			name:  "other tag",
			other: resolv.NewObject(40, 40, 20, 20, "scenery"),
			tags:  []string{"enemy", "goal"},
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			space := NewCollisionSpace()
			obj := resolv.NewObject(32, 32, 32, 32, "player")
			space.Add(obj, tt.other)

			nearby := Nearby(obj, tt.tags...)
			if tt.want {
				assert.Equal(t, []*resolv.Object{tt.other}, nearby)
			} else {
				assert.Empty(t, nearby)
			}
			assert.NotContains(t, nearby, obj)
		})
	}
}

func TestNearby_outsideSpace(t *testing.T) {
	assert.Nil(t, Nearby(resolv.NewObject(0, 0, 10, 10)))
}

func TestNearby_followsMovedObjects(t *testing.T) {
	space := NewCollisionSpace()
	obj := resolv.NewObject(32, 32, 32, 32)
	other := resolv.NewObject(400, 300, 40, 40)
	space.Add(obj, other)
	assert.Empty(t, Nearby(obj))

	other.Position.X, other.Position.Y = 64, 64
	other.Update()
	assert.Equal(t, []*resolv.Object{other}, Nearby(obj))

	space.Remove(other)
	assert.Empty(t, Nearby(obj))
}

package game

import (
	"github.com/cbodonnell/healer/pkg/game/constants"
	"github.com/cbodonnell/healer/pkg/kinematic"
)

// EnemySpawn is the hard-coded placement of one enemy.
type EnemySpawn struct {
	X, Y float64
	Size float64
	// Speed is the initial signed speed.
	Speed float64
	// MinLevel is the first level the enemy takes part in.
	MinLevel int
}

// EnemySpawns lists every enemy in draw order. Levels only ever add enemies.
var EnemySpawns = []EnemySpawn{
	{X: 12, Y: 350, Size: 40, Speed: constants.EnemySpeed, MinLevel: 1},
	{X: 600, Y: 85, Size: 50, Speed: constants.EnemySpeed, MinLevel: 1},
	{X: 600, Y: 220, Size: 40, Speed: 14, MinLevel: 2},
	{X: 12, Y: 85, Size: 50, Speed: 18, MinLevel: 3},
}

// EnemyCount returns how many enemies take part in level.
func EnemyCount(level int) int {
	n := 0
	for _, spawn := range EnemySpawns {
		if level >= spawn.MinLevel {
			n++
		}
	}
	return n
}

// HeartPositions returns the top-left corner of each lives icon,
// left-aligned with a fixed spacing.
func HeartPositions(lives int) []kinematic.Vector {
	if lives < 0 {
		lives = 0
	}
	positions := make([]kinematic.Vector, lives)
	for i := range positions {
		positions[i] = kinematic.Vector{
			X: float64(i) * constants.HeartSpacing,
			Y: constants.HeartY,
		}
	}
	return positions
}

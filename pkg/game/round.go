package game

import (
	"github.com/cbodonnell/healer/pkg/collisions"
	"github.com/cbodonnell/healer/pkg/game/constants"
	"github.com/cbodonnell/healer/pkg/game/types"
	"github.com/cbodonnell/healer/pkg/log"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

// Round is one pass through the arena with a fresh set of entities.
// It runs until the player reaches the goal, hits an enemy, or quits.
type Round struct {
	// ID identifies the round in logs.
	ID       string
	Progress Progress
	Player   *types.PlayerState
	// Enemies holds every enemy in draw order, active or not.
	Enemies []*types.SpriteState
	Goal    *types.SpriteState

	collisionSpace *resolv.Space
	outcome        Outcome
}

// NewRound builds the entities of a round for the given progress.
func NewRound(progress Progress) *Round {
	r := &Round{
		ID:             uuid.New().String(),
		Progress:       progress,
		collisionSpace: collisions.NewCollisionSpace(),
		outcome:        OutcomeRunning,
	}

	r.Player = types.NewPlayerState(
		constants.PlayerStartingX, constants.PlayerStartingY,
		constants.PlayerWidth, constants.PlayerHeight,
		constants.PlayerFrameColumns, constants.PlayerFrameRows,
	)
	r.collisionSpace.Add(r.Player.Object)

	for _, spawn := range EnemySpawns {
		enemy := types.NewSpriteState(spawn.X, spawn.Y, spawn.Size, spawn.Size, types.CollisionSpaceTagEnemy)
		enemy.SetSpeed(spawn.Speed)
		r.Enemies = append(r.Enemies, enemy)
	}
	// only enemies taking part at this level can be found by a collision check
	for _, enemy := range r.ActiveEnemies() {
		r.collisionSpace.Add(enemy.Object)
	}

	r.Goal = types.NewSpriteState(constants.GoalX, constants.GoalY, constants.GoalSize, constants.GoalSize, types.CollisionSpaceTagGoal)
	r.collisionSpace.Add(r.Goal.Object)

	log.Debug("Round %s created at %s", r.ID, progress)
	return r
}

// ActiveEnemies returns the enemies that take part at the round's level.
func (r *Round) ActiveEnemies() []*types.SpriteState {
	return r.Enemies[:EnemyCount(r.Progress.Level)]
}

// Outcome returns how the round ended, or OutcomeRunning.
func (r *Round) Outcome() Outcome {
	return r.outcome
}

// Quit ends a running round without a collision.
func (r *Round) Quit() {
	if r.outcome != OutcomeRunning {
		return
	}
	log.Info("Quit at %s", r.Progress)
	r.outcome = OutcomeQuit
}

// Step advances the round by one frame and returns its outcome.
// A round that has ended no longer changes.
func (r *Round) Step(input types.InputState, deltaTime float64) Outcome {
	if r.outcome != OutcomeRunning {
		return r.outcome
	}

	r.Player.Update(input, deltaTime)
	active := r.ActiveEnemies()
	for _, enemy := range active {
		enemy.Update()
	}
	log.Trace("Player at %0.0f,%0.0f", r.Player.Position.X, r.Player.Position.Y)

	candidates := make(map[*resolv.Object]bool)
	for _, obj := range collisions.Nearby(r.Player.Object, types.CollisionSpaceTagEnemy, types.CollisionSpaceTagGoal) {
		candidates[obj] = true
	}

	for i, enemy := range active {
		if candidates[enemy.Object] && r.Player.CollidesWith(enemy.Object) {
			log.Info("Collision with enemy %d at %s", i+1, r.Progress)
			r.outcome = OutcomeDied
			return r.outcome
		}
	}

	if candidates[r.Goal.Object] && r.Player.CollidesWith(r.Goal.Object) {
		log.Info("Collision with goal at %s", r.Progress)
		r.outcome = OutcomeWon
	}

	return r.outcome
}

// Destroy removes the round's entities from its collision space.
func (r *Round) Destroy() {
	r.collisionSpace.Remove(r.Player.Object, r.Goal.Object)
	for _, enemy := range r.ActiveEnemies() {
		r.collisionSpace.Remove(enemy.Object)
	}
}

package types

const (
	CollisionSpaceTagPlayer  string = "player"
	CollisionSpaceTagEnemy   string = "enemy"
	CollisionSpaceTagGoal    string = "goal"
	CollisionSpaceTagScenery string = "scenery"
)

// InputState is the keyboard state the player reads on each update.
type InputState struct {
	Up   bool
	Down bool
}

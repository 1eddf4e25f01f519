package constants

const (
	// ArenaWidth is the width of the visible play area
	ArenaWidth float64 = 640.0
	// ArenaHeight is the height of the visible play area
	ArenaHeight float64 = 480.0
	// ArenaMargin is the inner margin enemies bounce off on the left
	ArenaMargin float64 = 10.0

	// PlayerSpeed is the distance the player moves per update
	PlayerSpeed float64 = 5.0
	// PlayerMinY is the top clamp of the player
	PlayerMinY float64 = 10.0
	// PlayerMaxY is the bottom clamp of the player
	PlayerMaxY float64 = 420.0
	// Player Starting X
	PlayerStartingX float64 = 294.0
	// Player Starting Y
	PlayerStartingY float64 = 400.0
	// Player Width
	PlayerWidth float64 = 50.0
	// Player Height
	PlayerHeight float64 = 50.0
	// PlayerFrameColumns is the number of animation frames per row in the player sheet
	PlayerFrameColumns int = 3
	// PlayerFrameRows is the number of rows in the player sheet
	PlayerFrameRows int = 4
	// PlayerStartingColumn is the animation column the player starts on
	PlayerStartingColumn int = 1
	// PlayerFrameDuration is the active time between animation frames
	PlayerFrameDuration float64 = 0.25 // seconds

	// EnemySpeed is the default distance an enemy moves per update
	EnemySpeed float64 = 8.0
	// EnemyRotationStep is the rotation in degrees added per update
	EnemyRotationStep float64 = 10.0

	// GoalX, GoalY, GoalSize place the treasure chest
	GoalX    float64 = 294.0
	GoalY    float64 = 12.0
	GoalSize float64 = 50.0

	// HeartY is the vertical position of the lives row
	HeartY float64 = 20.0
	// HeartSize is the width and height of a heart icon
	HeartSize float64 = 50.0
	// HeartSpacing is the horizontal distance between heart icons
	HeartSpacing float64 = 52.0

	// StartingLevel is the level a new game begins on
	StartingLevel int = 1
	// MaxLevel is the last level; reaching the goal here wins the game
	MaxLevel int = 3
	// StartingLives is the lives count a new game begins with
	StartingLives int = 3

	// TransitionPause is the pause between rounds
	TransitionPause float64 = 1.0 // seconds
)

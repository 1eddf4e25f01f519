package scenes

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/cbodonnell/healer/client/input"
	"github.com/cbodonnell/healer/client/objects"
	"github.com/cbodonnell/healer/pkg/assets"
	"github.com/cbodonnell/healer/pkg/game"
	"github.com/cbodonnell/healer/pkg/game/constants"
	gametypes "github.com/cbodonnell/healer/pkg/game/types"
)

// Draw order of the round's objects.
const (
	zIndexBackground = iota
	zIndexGoal
	zIndexEnemies
	zIndexPlayer = zIndexEnemies + 10
	zIndexHearts = zIndexPlayer + 1
	zIndexDebug  = zIndexHearts + 1
)

// RoundScene plays one round: it feeds input and frame time into the round
// and draws its entities.
type RoundScene struct {
	*BaseScene

	round  *game.Round
	player *objects.Player
	debug  bool

	lastUpdate time.Time
	now        func() time.Time
}

var _ Scene = &RoundScene{}

type NewRoundSceneOptions struct {
	// Round is the simulated round to play.
	Round *game.Round
	// Assets is the filesystem textures are loaded from.
	Assets fs.FS
	// Debug enables the debug overlay.
	Debug bool
}

// NewRoundScene loads a fresh set of textures for the round. If any texture
// fails to load, the ones already loaded are released and the error returned.
func NewRoundScene(opts NewRoundSceneOptions) (*RoundScene, error) {
	round := opts.Round
	root := objects.NewSortedZIndexObject("round-" + round.ID)

	s := &RoundScene{
		BaseScene: NewBaseScene(root),
		round:     round,
		debug:     opts.Debug,
		now:       time.Now,
	}

	if err := s.build(root, opts.Assets); err != nil {
		if destroyErr := objects.DestroyTree(root); destroyErr != nil {
			return nil, fmt.Errorf("%w (cleanup: %v)", err, destroyErr)
		}
		return nil, err
	}

	return s, nil
}

func (s *RoundScene) build(root *objects.SortedZIndexObject, fsys fs.FS) error {
	background := gametypes.NewSpriteState(0, 0, constants.ArenaWidth, constants.ArenaHeight, gametypes.CollisionSpaceTagScenery)
	if err := s.addSprite(root, "background", background, fsys, assets.Background, zIndexBackground); err != nil {
		return err
	}

	if err := s.addSprite(root, "goal", s.round.Goal, fsys, assets.Goal, zIndexGoal); err != nil {
		return err
	}

	for i, enemy := range s.round.ActiveEnemies() {
		id := fmt.Sprintf("enemy-%d", i+1)
		if err := s.addSprite(root, id, enemy, fsys, assets.Enemy, zIndexEnemies+i); err != nil {
			return err
		}
	}

	player, err := objects.NewPlayer("player", objects.NewPlayerOptions{
		State:  s.round.Player,
		Assets: fsys,
		Path:   assets.PlayerSheet,
		ZIndex: zIndexPlayer,
	})
	if err != nil {
		return err
	}
	if err := root.AddChild(player.GetID(), player); err != nil {
		return fmt.Errorf("failed to add player: %v", err)
	}
	s.player = player

	hearts, err := objects.NewHearts("hearts", s.round.Progress.Lives, fsys, assets.Heart, zIndexHearts)
	if err != nil {
		return err
	}
	if err := root.AddChild(hearts.GetID(), hearts); err != nil {
		return fmt.Errorf("failed to add hearts: %v", err)
	}

	if s.debug {
		overlay := objects.NewDebugOverlayObject("debug", s.round, zIndexDebug)
		if err := root.AddChild(overlay.GetID(), overlay); err != nil {
			return fmt.Errorf("failed to add debug overlay: %v", err)
		}
	}

	return nil
}

func (s *RoundScene) addSprite(root *objects.SortedZIndexObject, id string, state *gametypes.SpriteState, fsys fs.FS, path string, zIndex int) error {
	sprite, err := objects.NewSprite(id, objects.NewSpriteOptions{
		State:  state,
		Assets: fsys,
		Path:   path,
		ZIndex: zIndex,
	})
	if err != nil {
		return err
	}
	if err := root.AddChild(id, sprite); err != nil {
		return fmt.Errorf("failed to add %s: %v", id, err)
	}
	return nil
}

func (s *RoundScene) Round() *game.Round {
	return s.round
}

// Outcome returns how the round ended, or game.OutcomeRunning.
func (s *RoundScene) Outcome() game.Outcome {
	return s.round.Outcome()
}

func (s *RoundScene) Update() error {
	if input.IsQuitRequested() {
		s.round.Quit()
		return nil
	}

	s.round.Step(input.PlayerInput(), s.deltaTime())
	if s.debug && s.round.Player.Active {
		s.player.ShowPos()
	}

	return s.BaseScene.Update()
}

// deltaTime returns the seconds since the previous update, zero on the first.
func (s *RoundScene) deltaTime() float64 {
	now := s.now()
	if s.lastUpdate.IsZero() {
		s.lastUpdate = now
		return 0
	}
	dt := now.Sub(s.lastUpdate).Seconds()
	s.lastUpdate = now
	return dt
}

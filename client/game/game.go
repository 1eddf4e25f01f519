package game

import (
	"fmt"
	"io/fs"

	"github.com/cbodonnell/healer/client/input"
	"github.com/cbodonnell/healer/client/scenes"
	"github.com/cbodonnell/healer/pkg/game"
	"github.com/cbodonnell/healer/pkg/game/constants"
	"github.com/cbodonnell/healer/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// assets is the filesystem textures are loaded from.
	assets fs.FS
	// session carries level and lives from round to round.
	session *game.Session
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
}

type GameMode int

const (
	GameModePlay GameMode = iota
	GameModePause
	GameModeOver
)

func (m GameMode) String() string {
	switch m {
	case GameModePlay:
		return "Play"
	case GameModePause:
		return "Pause"
	case GameModeOver:
		return "Over"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug  bool
	Assets fs.FS
	// Progress is where the game starts; the zero value starts a new game.
	Progress game.Progress
}

// NewGame starts the first round. It fails if any of the round's textures
// cannot be loaded.
func NewGame(opts NewGameOptions) (*Game, error) {
	progress := opts.Progress
	if progress == (game.Progress{}) {
		progress = game.NewProgress()
	}

	g := &Game{
		debug:   opts.Debug,
		assets:  opts.Assets,
		session: game.NewSession(progress),
	}

	if err := g.loadRound(); err != nil {
		return nil, fmt.Errorf("failed to load round: %w", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadRound() error {
	round, err := g.session.NextRound()
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}
	roundScene, err := scenes.NewRoundScene(scenes.NewRoundSceneOptions{
		Round:  round,
		Assets: g.assets,
		Debug:  g.debug,
	})
	if err != nil {
		return fmt.Errorf("failed to create round scene: %w", err)
	}
	if err := g.SetScene(roundScene); err != nil {
		return fmt.Errorf("failed to set round scene: %v", err)
	}
	g.mode = GameModePlay
	return nil
}

// loadTransition pauses on the finished round. The round scene is handed to
// the transition scene, which destroys it when the pause ends.
func (g *Game) loadTransition(transition game.Transition) error {
	finished := g.scene
	g.scene = nil
	if err := g.SetScene(scenes.NewTransitionScene(finished, transition)); err != nil {
		return fmt.Errorf("failed to set transition scene: %v", err)
	}
	g.mode = GameModePause
	return nil
}

func (g *Game) Update() error {
	switch g.mode {
	case GameModePlay:
		if err := g.scene.Update(); err != nil {
			return fmt.Errorf("failed to update scene: %v", err)
		}
		roundScene, ok := g.scene.(*scenes.RoundScene)
		if !ok || roundScene.Outcome() == game.OutcomeRunning {
			return nil
		}
		log.Debug("Round %s ended: %s", roundScene.Round().ID, roundScene.Outcome())
		transition, err := g.session.Finish()
		if err != nil {
			return fmt.Errorf("failed to finish round: %v", err)
		}
		if transition.Kind == game.TransitionQuit {
			g.mode = GameModeOver
			return ebiten.Termination
		}
		if err := g.loadTransition(transition); err != nil {
			return err
		}
	case GameModePause:
		if input.IsQuitRequested() {
			log.Info("Quit during pause at %s", g.session.Progress())
			g.mode = GameModeOver
			return ebiten.Termination
		}
		if err := g.scene.Update(); err != nil {
			return fmt.Errorf("failed to update scene: %v", err)
		}
		transitionScene, ok := g.scene.(*scenes.TransitionScene)
		if !ok || !transitionScene.Done() {
			return nil
		}
		if transitionScene.Transition().Terminal() {
			g.mode = GameModeOver
			return ebiten.Termination
		}
		if err := g.loadRound(); err != nil {
			return fmt.Errorf("failed to load round: %w", err)
		}
	case GameModeOver:
		return ebiten.Termination
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene != nil {
		g.scene.Draw(screen)
	}
}

// Close destroys the current scene and releases its textures.
func (g *Game) Close() error {
	if g.scene == nil {
		return nil
	}
	err := g.scene.Destroy()
	g.scene = nil
	return err
}

// Session returns the game's session.
func (g *Game) Session() *game.Session {
	return g.session
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(constants.ArenaWidth), int(constants.ArenaHeight)
}

// healer is a small arcade game: move the healer up and down past the
// bouncing enemies to reach the treasure, across three levels and three lives.
//
// Usage:
//
//	healer [--assets <dir>] [--log-level <level>] [--debug]
package main

import (
	"fmt"
	"os"

	clientgame "github.com/cbodonnell/healer/client/game"
	"github.com/cbodonnell/healer/pkg/assets"
	"github.com/cbodonnell/healer/pkg/game/constants"
	"github.com/cbodonnell/healer/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
	flagAssets   string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "healer",
	Short:         "Reach the treasure without touching the enemies",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (error, warn, info, debug, trace)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", ".", "Directory containing the sprites/ folder")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw the debug overlay")
}

func run(cmd *cobra.Command, args []string) error {
	parsedLogLevel, err := log.ParseLogLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	log.SetDefaultLogger(log.New(os.Stdout, "", parsedLogLevel))
	log.Debug("Log level set to %s", parsedLogLevel)

	fsys := os.DirFS(flagAssets)
	if err := assets.Preflight(fsys); err != nil {
		return fmt.Errorf("missing game assets in %s: %w", flagAssets, err)
	}

	g, err := clientgame.NewGame(clientgame.NewGameOptions{
		Debug:  flagDebug,
		Assets: fsys,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	defer func() {
		if err := g.Close(); err != nil {
			log.Error("Failed to release game resources: %v", err)
		}
	}()

	ebiten.SetWindowSize(int(constants.ArenaWidth), int(constants.ArenaHeight))
	ebiten.SetWindowTitle("Healer")
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("failed to run game: %v", err)
	}

	log.Info("Finished at %s", g.Session().Progress())
	return nil
}

package input

import (
	gametypes "github.com/cbodonnell/healer/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsQuitRequested returns a boolean value indicating whether the player asked to leave,
// either with Escape or by closing the window.
func IsQuitRequested() bool {
	return IsNegativeJustPressed() || ebiten.IsWindowBeingClosed()
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsUpPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyUp)
}

func IsDownPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyDown)
}

// PlayerInput polls the keys the player reads.
func PlayerInput() gametypes.InputState {
	return gametypes.InputState{
		Up:   IsUpPressed(),
		Down: IsDownPressed(),
	}
}

package objects

import (
	"fmt"

	"github.com/cbodonnell/healer/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugOverlayObject prints frame rates and the round's progress in the
// bottom left corner.
type DebugOverlayObject struct {
	*BaseObject

	round *game.Round
}

func NewDebugOverlayObject(id string, round *game.Round, zIndex int) *DebugOverlayObject {
	return &DebugOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: zIndex,
		}),
		round: round,
	}
}

func (o *DebugOverlayObject) Draw(screen *ebiten.Image) {
	p := o.round.Player
	msg := fmt.Sprintf("FPS: %0.1f TPS: %0.1f\n%s\nplayer %0.0f,%0.0f frame %d row %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		o.round.Progress,
		p.Position.X, p.Position.Y, p.Frame, p.Animation,
	)
	ebitenutil.DebugPrintAt(screen, msg, 4, screen.Bounds().Dy()-52)
}

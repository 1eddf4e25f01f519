package objects

import (
	"fmt"
	"io/fs"

	"github.com/cbodonnell/healer/client/animations"
	gametypes "github.com/cbodonnell/healer/pkg/game/types"
	"github.com/cbodonnell/healer/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Player draws the player's current sheet frame.
type Player struct {
	*BaseObject

	State *gametypes.PlayerState

	texture *Texture
	sheet   *animations.Sheet
}

type NewPlayerOptions struct {
	State  *gametypes.PlayerState
	Assets fs.FS
	Path   string
	ZIndex int
}

func NewPlayer(id string, opts NewPlayerOptions) (*Player, error) {
	texture, err := LoadTexture(opts.Assets, opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load player %s: %w", id, err)
	}
	columns, rows := opts.State.FrameGrid()
	return &Player{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		State:   opts.State,
		texture: texture,
		sheet: animations.NewSheet(animations.NewSheetOptions{
			Image:   texture.Image(),
			Columns: columns,
			Rows:    rows,
		}),
	}, nil
}

func (p *Player) Destroy() error {
	log.Trace("Releasing texture %s of %s", p.texture.Path(), p.GetID())
	p.texture.Dispose()
	return nil
}

func (p *Player) Draw(screen *ebiten.Image) {
	if p.texture.Image() == nil {
		return
	}
	s := p.State
	p.sheet.Draw(screen, s.Frame, int(s.Animation), s.Position.X, s.Position.Y, s.Size.X, s.Size.Y)
}

// ShowPos logs the player's position.
func (p *Player) ShowPos() {
	log.Debug("PlayerX: %0.0f PlayerY: %0.0f", p.State.Position.X, p.State.Position.Y)
}

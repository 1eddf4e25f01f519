package objects

import (
	"io/fs"

	"github.com/cbodonnell/healer/pkg/game"
	"github.com/cbodonnell/healer/pkg/game/constants"
	gametypes "github.com/cbodonnell/healer/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// Hearts draws one heart icon per remaining life with a single texture.
type Hearts struct {
	*Sprite

	lives int
}

func NewHearts(id string, lives int, assets fs.FS, path string, zIndex int) (*Hearts, error) {
	state := gametypes.NewSpriteState(0, constants.HeartY, constants.HeartSize, constants.HeartSize, gametypes.CollisionSpaceTagScenery)
	sprite, err := NewSprite(id, NewSpriteOptions{
		State:  state,
		Assets: assets,
		Path:   path,
		ZIndex: zIndex,
	})
	if err != nil {
		return nil, err
	}
	return &Hearts{
		Sprite: sprite,
		lives:  lives,
	}, nil
}

func (h *Hearts) Draw(screen *ebiten.Image) {
	for _, pos := range game.HeartPositions(h.lives) {
		h.State.MoveTo(pos.X, pos.Y)
		h.Sprite.Draw(screen)
	}
}

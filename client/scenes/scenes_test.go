package scenes

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/cbodonnell/healer/client/objects"
	"github.com/cbodonnell/healer/pkg/assets"
	"github.com/cbodonnell/healer/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObject struct {
	*objects.BaseObject

	calls *[]string
}

func newRecordingObject(id string, calls *[]string) *recordingObject {
	return &recordingObject{
		BaseObject: objects.NewBaseObject(id, nil),
		calls:      calls,
	}
}

func (o *recordingObject) Destroy() error {
	*o.calls = append(*o.calls, "destroy "+o.GetID())
	return nil
}

func (o *recordingObject) Draw(screen *ebiten.Image) {
	*o.calls = append(*o.calls, "draw "+o.GetID())
}

func newRecordingScene(t *testing.T, calls *[]string, ids ...string) *BaseScene {
	t.Helper()
	root := objects.NewSortedZIndexObject("root")
	for _, id := range ids {
		require.NoError(t, root.AddChild(id, newRecordingObject(id, calls)))
	}
	scene := NewBaseScene(root)
	require.NoError(t, scene.Init())
	return scene
}

func TestBaseScene_Destroy(t *testing.T) {
	tests := []struct {
		name     string
		destroys int
	}{
		{name: "once", destroys: 1},
		{name: "twice", destroys: 2},
		{name: "many times", destroys: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := make([]string, 0)
			scene := newRecordingScene(t, &calls, "background", "player")
			for i := 0; i < tt.destroys; i++ {
				require.NoError(t, scene.Destroy())
			}
			assert.Equal(t, []string{"destroy background", "destroy player"}, calls)
		})
	}
}

func TestTransitionScene_Destroy(t *testing.T) {
	calls := make([]string, 0)
	previous := newRecordingScene(t, &calls, "background", "player")
	transition := game.Transition{Kind: game.TransitionContinue, Progress: game.Progress{Level: 2, Lives: 3}}

	scene := NewTransitionScene(previous, transition)
	require.NoError(t, scene.Init())
	assert.Equal(t, transition, scene.Transition())

	require.NoError(t, scene.Destroy())
	require.NoError(t, scene.Destroy())
	assert.Equal(t, []string{"destroy background", "destroy player"}, calls)
}

func TestTransitionScene_Done(t *testing.T) {
	tests := []struct {
		name string
		kind game.TransitionKind
	}{
		{name: "continue", kind: game.TransitionContinue},
		{name: "game over", kind: game.TransitionGameOver},
		{name: "victory", kind: game.TransitionVictory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := NewTransitionScene(nil, game.Transition{Kind: tt.kind, Progress: game.NewProgress()})
			require.NoError(t, scene.Init())
			assert.False(t, scene.Done())

			ticks := ebiten.TPS()
			for i := 0; i < ticks-1; i++ {
				require.NoError(t, scene.Update())
			}
			assert.False(t, scene.Done(), "pause ended early")

			for i := 0; i < 2; i++ {
				require.NoError(t, scene.Update())
			}
			assert.True(t, scene.Done())
		})
	}
}

func TestNewRoundScene_missingAssets(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{name: "empty asset root", fsys: fstest.MapFS{}},
		{name: "undecodable background", fsys: fstest.MapFS{
			assets.Background: &fstest.MapFile{Data: []byte("not a bitmap")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round := game.NewRound(game.NewProgress())
			defer round.Destroy()

			scene, err := NewRoundScene(NewRoundSceneOptions{
				Round:  round,
				Assets: tt.fsys,
			})
			assert.Nil(t, scene)
			require.Error(t, err)
			assert.True(t, errors.Is(err, assets.ErrLoad))
		})
	}
}

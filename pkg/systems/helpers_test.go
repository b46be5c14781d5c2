package systems

import (
	"unicode/utf8"

	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/ecs"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/types"
)

// testDT 固定逻辑帧时长
const testDT = 1.0 / 60.0

// fakeSounds 记录所有音效调用的 SoundPlayer
type fakeSounds struct {
	played  []string
	stopped []string
	playing map[string]bool
}

func newFakeSounds() *fakeSounds {
	return &fakeSounds{playing: make(map[string]bool)}
}

func (f *fakeSounds) PlaySound(id string) bool {
	f.played = append(f.played, id)
	f.playing[id] = true
	return true
}

func (f *fakeSounds) StopSound(id string) {
	f.stopped = append(f.stopped, id)
	f.playing[id] = false
}

func (f *fakeSounds) IsSoundPlaying(id string) bool {
	return f.playing[id]
}

// count 返回某个音效被播放的次数
func (f *fakeSounds) count(id string) int {
	n := 0
	for _, p := range f.played {
		if p == id {
			n++
		}
	}
	return n
}

// fakeMusic 记录音乐调用
type fakeMusic struct {
	current string
	stops   int
	pumps   int
}

func (m *fakeMusic) PlayMusic(id string) bool { m.current = id; return true }
func (m *fakeMusic) StopMusic()               { m.current = ""; m.stops++ }
func (m *fakeMusic) UpdateMusic()             { m.pumps++ }

// runeMeasurer 每个字符固定 10 像素
type runeMeasurer struct{}

func (runeMeasurer) MeasureWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 10
}

// addTestNPC 在指定 X 处添加一个 NPC 并登记到 GameState.NPCs
func addTestNPC(em *ecs.EntityManager, gs *game.GameState, x float64, variant types.NPCVariant, speech string, lines ...string) ecs.EntityID {
	bounds := types.Rect{X: x, Y: config.NPCY, W: config.NPCWidth, H: config.NPCHeight}
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.NPCComponent{
		Name:          "test",
		Bounds:        bounds,
		Lines:         lines,
		Variant:       variant,
		SpeechSoundID: speech,
	})
	ecs.AddComponent(em, id, &components.InteractionZoneComponent{Rect: types.Rect{
		X: bounds.CenterX() - config.InteractionRadius/2,
		Y: bounds.Y - 10,
		W: config.InteractionRadius,
		H: config.InteractionHeight,
	}})
	ecs.AddComponent(em, id, &components.SpriteAnimationComponent{})
	gs.NPCs = append(gs.NPCs, id)
	return id
}

// placePlayerAt 将玩家中心移到 NPC 交互区中心（站在地面上）
func placePlayerAt(gs *game.GameState, centerX float64) {
	gs.Player.X = centerX - gs.Player.Width/2
	gs.Player.Y = gs.Player.GroundY
}

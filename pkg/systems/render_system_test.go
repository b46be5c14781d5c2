package systems

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/ecs"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/types"
)

// missingTextures 所有纹理都不存在
type missingTextures struct{ requested []string }

func (m *missingTextures) LoadImageByID(id string) (*ebiten.Image, error) {
	m.requested = append(m.requested, id)
	return nil, errors.New("not found")
}

func newRenderFixture() (*ecs.EntityManager, *game.GameState, *RenderSystem) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	addTestNPC(em, gs, 700, types.VariantHuman, "", "Hello")
	addTestNPC(em, gs, 1400, types.VariantCatCrunch, "", "Mniam")
	door := em.CreateEntity()
	ecs.AddComponent(em, door, &components.TriggerComponent{
		Kind: types.TriggerSecretDoor,
		Rect: types.Rect{X: config.SecretDoorX, Y: config.GroundY - config.SecretDoorHeight, W: config.SecretDoorWidth, H: config.SecretDoorHeight},
	})
	flag := em.CreateEntity()
	ecs.AddComponent(em, flag, &components.TriggerComponent{
		Kind: types.TriggerFinish,
		Rect: types.Rect{X: config.FinishFlagX, Y: config.GroundY - config.FinishFlagHeight, W: config.FinishFlagWidth, H: config.FinishFlagHeight},
	})
	NewCameraSystem(gs).Update()
	return em, gs, NewRenderSystem(em, gs, nil, nil)
}

func names(list []DrawCommand) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Name
	}
	return out
}

func indexOf(list []DrawCommand, name string) int {
	for i, c := range list {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func TestBuildDrawList_LayerOrder(t *testing.T) {
	_, gs, rs := newRenderFixture()
	gs.DebugMode = true
	gs.Dialogue.ActiveNPC = 0
	gs.Dialogue.Wrapped = []rune("Hello")
	gs.Dialogue.Revealed = 3
	gs.Celebration.Active = true

	list := rs.BuildDrawList()
	for i := 1; i < len(list); i++ {
		if list[i].Layer < list[i-1].Layer {
			t.Fatalf("layer order broken at %d: %v", i, names(list))
		}
	}

	order := []string{"background", "ground", "zone", "trigger", "door", "npc-0", "npc-1", "flag", "player",
		"dialogue-box", "dialogue-border", "dialogue-text", "hud", "banner", "debug"}
	last := -1
	for _, name := range order {
		idx := indexOf(list, name)
		if idx < 0 {
			t.Fatalf("%q missing from draw list: %v", name, names(list))
		}
		if idx < last {
			t.Errorf("%q drawn out of order: %v", name, names(list))
		}
		last = idx
	}

	if txt := list[indexOf(list, "dialogue-text")].Text; txt != "Hel" {
		t.Errorf("dialogue text = %q, want only the revealed part", txt)
	}
}

func TestBuildDrawList_OptionalParts(t *testing.T) {
	_, _, rs := newRenderFixture()
	list := rs.BuildDrawList()
	for _, name := range []string{"zone", "trigger", "dialogue-box", "banner", "debug"} {
		if indexOf(list, name) >= 0 {
			t.Errorf("%q should not be drawn by default", name)
		}
	}
}

func TestBuildDrawList_BiomeFade(t *testing.T) {
	_, gs, rs := newRenderFixture()
	b := gs.Biome
	b.Fading = true
	b.FadingFrom, b.FadingTo = 0, 1
	b.Progress = 0.25

	list := rs.BuildDrawList()
	out, in := indexOf(list, "background-out"), indexOf(list, "background-in")
	if out < 0 || in < 0 || out > in {
		t.Fatalf("fade should draw outgoing then incoming: %v", names(list))
	}
	if list[out].ImageID != config.BiomeImageIDs[0] || list[in].ImageID != config.BiomeImageIDs[1] {
		t.Errorf("fade images = %s, %s", list[out].ImageID, list[in].ImageID)
	}
	if list[out].Alpha != 0.75 || list[in].Alpha != 0.25 {
		t.Errorf("fade alphas = %.2f, %.2f", list[out].Alpha, list[in].Alpha)
	}
}

func TestBuildDrawList_SecretRoomBackground(t *testing.T) {
	_, gs, rs := newRenderFixture()
	gs.SecretUnlocked = true
	placePlayerAt(gs, config.SecretRoomMidX)
	NewCameraSystem(gs).Update()

	list := rs.BuildDrawList()
	if bg := list[indexOf(list, "background")]; bg.ImageID != config.ImageSecretRoomBG {
		t.Errorf("background = %s, want secret room", bg.ImageID)
	}
}

func TestBuildDrawList_PlayerSheet(t *testing.T) {
	tests := []struct {
		name  string
		setup func(gs *game.GameState)
		want  string
		flip  bool
	}{
		{"idle", func(gs *game.GameState) {}, config.ImageCatWalk, false},
		{"walk left", func(gs *game.GameState) {
			gs.Player.Mode = components.ModeWalk
			gs.Player.Facing = -1
		}, config.ImageCatWalk, true},
		{"run", func(gs *game.GameState) { gs.Player.Mode = components.ModeRun }, config.ImageCatRun, false},
		{"jump over run", func(gs *game.GameState) {
			gs.Player.Mode = components.ModeRun
			gs.Player.IsJumping = true
		}, config.ImageCatJump, false},
		{"happy after finish", func(gs *game.GameState) {
			gs.Player.IsJumping = true
			gs.Celebration.Active = true
		}, config.ImageCatHappy, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, gs, rs := newRenderFixture()
			tt.setup(gs)
			list := rs.BuildDrawList()
			p := list[indexOf(list, "player")]
			if p.ImageID != tt.want || p.FlipX != tt.flip {
				t.Errorf("player sheet = %s flip=%v, want %s flip=%v", p.ImageID, p.FlipX, tt.want, tt.flip)
			}
			if p.Frame < 0 || p.Frame >= p.FrameCount {
				t.Errorf("player frame %d outside [0,%d)", p.Frame, p.FrameCount)
			}
		})
	}
}

func TestBuildDrawList_NPCPlacement(t *testing.T) {
	em, gs, rs := newRenderFixture()
	list := rs.BuildDrawList()
	cmd := list[indexOf(list, "npc-0")]

	npc, _ := ecs.GetComponent[*components.NPCComponent](em, gs.NPCs[0])
	wantH := npc.Bounds.H * config.NPCRenderScale
	if cmd.H != wantH {
		t.Errorf("npc height = %.1f, want %.1f", cmd.H, wantH)
	}
	_, wantBottom := gs.Camera.WorldToScreen(0, npc.Bounds.Bottom()+config.NPCRenderOffsetY)
	if got := cmd.Y + cmd.H; math.Abs(got-wantBottom) > 1e-9 {
		t.Errorf("npc bottom = %.1f, want %.1f", got, wantBottom)
	}
	wantCenter, _ := gs.Camera.WorldToScreen(npc.Bounds.CenterX(), 0)
	if got := cmd.X + cmd.W/2; math.Abs(got-wantCenter) > 1e-9 {
		t.Errorf("npc centre = %.1f, want %.1f", got, wantCenter)
	}
}

func TestBuildDrawList_ZoneColours(t *testing.T) {
	em, gs, rs := newRenderFixture()
	gs.DebugMode = true
	gs.NearNPC = 0

	zones := func() []DrawCommand {
		var out []DrawCommand
		for _, c := range rs.BuildDrawList() {
			if c.Name == "zone" {
				out = append(out, c)
			}
		}
		return out
	}

	z := zones()
	if z[0].Color != colorZoneNear || z[1].Color != colorZoneIdle {
		t.Errorf("zone colours = %v, %v", z[0].Color, z[1].Color)
	}

	npc, _ := ecs.GetComponent[*components.NPCComponent](em, gs.NPCs[0])
	npc.DialogueFinished = true
	if z = zones(); z[0].Color != colorZoneFinished {
		t.Errorf("finished zone colour = %v", z[0].Color)
	}
}

func TestRenderSystem_TextureFallbackWarnsOnce(t *testing.T) {
	em, gs, _ := newRenderFixture()
	tex := &missingTextures{}
	rs := NewRenderSystem(em, gs, tex, nil)

	for i := 0; i < 3; i++ {
		if img := rs.texture(config.ImageCatWalk); img != nil {
			t.Fatal("missing texture should resolve to nil")
		}
	}
	if !rs.warned[config.ImageCatWalk] {
		t.Error("missing texture should be remembered")
	}
	rs.ResetCaches()
	if rs.warned[config.ImageCatWalk] {
		t.Error("ResetCaches should forget reported textures")
	}
	if len(tex.requested) != 3 || !strings.HasPrefix(tex.requested[0], "IMAGE_") {
		t.Errorf("requested = %v", tex.requested)
	}
}

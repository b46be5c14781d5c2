package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/entities"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/utils"
)

const testDT = 1.0 / 60.0

func newTestScene(t *testing.T) (*GameScene, utils.KeySet) {
	t.Helper()
	keys := utils.KeySet{}
	scene, err := NewGameScene(nil, nil, keys, false)
	if err != nil {
		t.Fatalf("NewGameScene: %v", err)
	}
	return scene, keys
}

func TestGameSceneImplementsSceneInterfaces(t *testing.T) {
	scene, _ := newTestScene(t)
	var _ game.Scene = scene
	var _ game.Exiter = scene

	sm := game.NewSceneManager()
	sm.SwitchTo(scene)
	if sm.ShouldExit() {
		t.Error("fresh scene should not request exit")
	}
}

func TestGameScene_WalkToNPCAndTalk(t *testing.T) {
	scene, keys := newTestScene(t)
	gs := scene.GameState()

	keys[ebiten.KeyRight] = true
	for i := 0; i < 600 && gs.NearNPC == components.NoNPC; i++ {
		scene.Update(testDT)
	}
	if gs.NearNPC != 0 {
		t.Fatalf("walking right should reach the first NPC, NearNPC=%d x=%.1f", gs.NearNPC, gs.Player.X)
	}

	keys[ebiten.KeyRight] = false
	keys[ebiten.KeyEnter] = true
	scene.Update(testDT)
	keys[ebiten.KeyEnter] = false
	if !gs.Dialogue.IsActive() || gs.Dialogue.ActiveNPC != 0 {
		t.Fatalf("dialogue should start, active=%d", gs.Dialogue.ActiveNPC)
	}

	x := gs.Player.X
	keys[ebiten.KeyRight] = true
	for i := 0; i < 30; i++ {
		scene.Update(testDT)
	}
	if gs.Player.X != x {
		t.Error("player should not move during dialogue")
	}
	if gs.Dialogue.Revealed == 0 {
		t.Error("text should be revealing")
	}
}

func TestGameScene_DebugAndReloadKeys(t *testing.T) {
	scene, keys := newTestScene(t)
	gs := scene.GameState()

	keys[ebiten.KeyF3] = true
	scene.Update(testDT)
	if !gs.DebugMode {
		t.Error("F3 should enable debug mode")
	}
	scene.Update(testDT)
	if !gs.DebugMode {
		t.Error("holding F3 must not toggle again")
	}

	keys[ebiten.KeyF5] = true
	scene.Update(testDT)
	if gs.ReloadRequested {
		t.Error("reload request should be consumed in the same frame")
	}
}

func TestGameScene_CelebrationRequestsExit(t *testing.T) {
	scene, _ := newTestScene(t)
	gs := scene.GameState()

	flag := entities.FinishFlagRect()
	gs.Player.X = flag.X - gs.Player.Width/2

	for i := 0; i < 600 && !scene.ShouldExit(); i++ {
		scene.Update(testDT)
	}
	if !gs.Finished() {
		t.Fatal("touching the flag should start the celebration")
	}
	if !scene.ShouldExit() {
		t.Fatal("scene should request exit after the celebration")
	}
	if gs.Celebration.HappyLoops != config.CelebrationLoops {
		t.Errorf("happy loops = %d, want %d", gs.Celebration.HappyLoops, config.CelebrationLoops)
	}
}

func TestGameScene_BiomeFollowsPlayer(t *testing.T) {
	scene, keys := newTestScene(t)
	gs := scene.GameState()

	// 跳过 NPC 区：直接放到第二段
	gs.Player.X = config.SegmentWidth + 200
	keys[ebiten.KeyRight] = false
	for i := 0; i < 120; i++ {
		scene.Update(testDT)
	}
	if gs.Biome.DisplayedSegment != 1 || gs.Biome.Fading {
		t.Errorf("displayed=%d fading=%v, want segment 1 settled", gs.Biome.DisplayedSegment, gs.Biome.Fading)
	}
}

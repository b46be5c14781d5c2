package systems

import (
	"testing"

	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/ecs"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/types"
)

func TestProximitySystem_NearNPC(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	addTestNPC(em, gs, 700, types.VariantHuman, "", "a")
	addTestNPC(em, gs, 1400, types.VariantHuman, "", "b")
	ps := NewProximitySystem(em, gs)

	tests := []struct {
		name    string
		centerX float64
		want    int
	}{
		{"first NPC", 700 + config.NPCWidth/2, 0},
		{"second NPC", 1400 + config.NPCWidth/2, 1},
		{"between NPCs", 1050, components.NoNPC},
		{"500 units away", 700 + config.NPCWidth/2 + 500, components.NoNPC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placePlayerAt(gs, tt.centerX)
			ps.Update()
			if gs.NearNPC != tt.want {
				t.Errorf("NearNPC = %d, want %d", gs.NearNPC, tt.want)
			}
		})
	}
}

// 交互区重叠时按顺序取第一个
func TestProximitySystem_FirstZoneWins(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	addTestNPC(em, gs, 700, types.VariantHuman, "", "a")
	addTestNPC(em, gs, 760, types.VariantHuman, "", "b")
	ps := NewProximitySystem(em, gs)

	placePlayerAt(gs, 760)
	ps.Update()
	if gs.NearNPC != 0 {
		t.Errorf("NearNPC = %d, want 0 (first in order)", gs.NearNPC)
	}

	// 当前对话 NPC 是第二个时 InActiveZone 仍然成立
	gs.Dialogue.ActiveNPC = 1
	ps.Update()
	if !gs.InActiveZone {
		t.Error("player overlaps the active NPC zone")
	}
}

func TestProximitySystem_TouchingEdgeIsNotOverlap(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	id := addTestNPC(em, gs, 700, types.VariantHuman, "", "a")
	zone, _ := ecs.GetComponent[*components.InteractionZoneComponent](em, id)
	ps := NewProximitySystem(em, gs)

	gs.Player.X = zone.Rect.Right()
	ps.Update()
	if gs.NearNPC != components.NoNPC {
		t.Error("touching the zone edge must not count as overlap")
	}

	gs.Player.X = zone.Rect.Right() - 20
	ps.Update()
	if gs.NearNPC != 0 {
		t.Error("player 20px inside the zone should overlap")
	}
}

func TestProximitySystem_Triggers(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()

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
	ps := NewProximitySystem(em, gs)

	placePlayerAt(gs, config.SecretDoorX+config.SecretDoorWidth/2)
	ps.Update()
	if !gs.AtSecretDoor || gs.AtFinish {
		t.Errorf("at door: AtSecretDoor=%v AtFinish=%v", gs.AtSecretDoor, gs.AtFinish)
	}

	placePlayerAt(gs, config.FinishFlagX+config.FinishFlagWidth/2)
	ps.Update()
	if gs.AtSecretDoor || !gs.AtFinish {
		t.Errorf("at flag: AtSecretDoor=%v AtFinish=%v", gs.AtSecretDoor, gs.AtFinish)
	}

	placePlayerAt(gs, 3000)
	ps.Update()
	if gs.AtSecretDoor || gs.AtFinish {
		t.Error("no trigger expected in the middle of the world")
	}
}

// 网格单元边界上的亚像素重叠仍然命中，恰好相接不命中
func TestProximitySystem_SubPixelOverlapOnCellBoundary(t *testing.T) {
	// 世界 X 640 与 Y 608 都落在 32 像素网格线上
	zone := types.Rect{X: 640, Y: 608, W: 100, H: 100}

	tests := []struct {
		name        string
		playerRight float64
		playerBot   float64
		want        bool
	}{
		{"half pixel from the left", 640.5, 650, true},
		{"touching from the left", 640, 650, false},
		{"quarter pixel from above", 690, 608.25, true},
		{"touching from above", 690, 608, false},
		{"half pixel from the right", 740 + config.PlayerWidth - 0.5, 650, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			gs := game.NewGameState()
			flag := em.CreateEntity()
			ecs.AddComponent(em, flag, &components.TriggerComponent{Kind: types.TriggerFinish, Rect: zone})
			ps := NewProximitySystem(em, gs)

			gs.Player.X = tt.playerRight - gs.Player.Width
			gs.Player.Y = tt.playerBot - gs.Player.Height
			ps.Update()
			if gs.AtFinish != tt.want {
				t.Errorf("AtFinish = %v, want %v (player %+v)", gs.AtFinish, tt.want, PlayerRect(gs.Player))
			}
		})
	}
}

// 交互区矩形变化后空间网格重新登记
func TestProximitySystem_FollowsMovedZone(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	id := addTestNPC(em, gs, 700, types.VariantHuman, "", "a")
	ps := NewProximitySystem(em, gs)

	placePlayerAt(gs, 700+config.NPCWidth/2)
	ps.Update()
	if gs.NearNPC != 0 {
		t.Fatal("player should start inside the zone")
	}

	zone, _ := ecs.GetComponent[*components.InteractionZoneComponent](em, id)
	zone.Rect.X += 2000
	ps.Update()
	if gs.NearNPC != components.NoNPC {
		t.Error("moved zone should no longer be hit")
	}

	placePlayerAt(gs, zone.Rect.CenterX())
	ps.Update()
	if gs.NearNPC != 0 {
		t.Error("player at the new zone position should hit it")
	}
	if len(ps.zones) != 1 {
		t.Errorf("zone registered %d times, want once", len(ps.zones))
	}
}

// 密室内（负世界坐标）的 NPC 同样可以检测
func TestProximitySystem_SecretRoomNPC(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	addTestNPC(em, gs, config.SecretRoomMinX+900, types.VariantCatPop, "", "a")
	ps := NewProximitySystem(em, gs)

	placePlayerAt(gs, config.SecretRoomMinX+900+config.NPCWidth/2)
	ps.Update()
	if gs.NearNPC != 0 {
		t.Errorf("NearNPC = %d, want 0 inside the secret room", gs.NearNPC)
	}
}

package game

import (
	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/ecs"
)

// GameState 一局游戏的聚合状态
// 由场景创建并显式传给每个系统，不是全局单例
type GameState struct {
	Player      *components.PlayerComponent
	Dialogue    *components.DialogueSessionComponent
	Camera      *components.CameraComponent
	Biome       *components.BiomeComponent
	Celebration *components.CelebrationComponent
	Input       *components.InputComponent

	// NPCs 固定顺序的 NPC 实体列表，邻近检测按此顺序取第一个命中
	NPCs []ecs.EntityID

	// 邻近检测结果（每帧刷新）
	NearNPC      int  // 玩家所在交互区的 NPC 下标，components.NoNPC 表示无
	InActiveZone bool // 玩家是否仍在当前对话 NPC 的交互区内
	AtSecretDoor bool // 玩家是否站在密室门前
	AtFinish     bool // 玩家是否碰到终点旗

	// SecretUnlocked 密室已解锁（左边界扩展到 SecretRoomMinX）
	SecretUnlocked bool

	// DebugMode 调试模式（F3）
	DebugMode bool
	// ReloadRequested 本帧请求热重载资源（F5），由场景消费
	ReloadRequested bool
	// ShouldExit 庆祝结束，请求退出程序
	ShouldExit bool
}

// NewGameState 创建初始状态：玩家在起点地面上，无对话，镜头对准起点
func NewGameState() *GameState {
	gs := &GameState{
		Player: &components.PlayerComponent{
			X:               config.PlayerStartX,
			Y:               config.PlayerGroundY,
			Width:           config.PlayerWidth,
			Height:          config.PlayerHeight,
			GroundY:         config.PlayerGroundY,
			Facing:          1,
			SpeedMultiplier: 1,
		},
		Dialogue:    &components.DialogueSessionComponent{ActiveNPC: components.NoNPC},
		Camera:      &components.CameraComponent{},
		Biome:       &components.BiomeComponent{},
		Celebration: &components.CelebrationComponent{},
		Input:       &components.InputComponent{},
		NearNPC:     components.NoNPC,
	}
	gs.Camera.OffsetX = config.ScreenWidth / 2
	gs.Camera.OffsetY = config.ScreenHeight / 2
	gs.Camera.TargetX = gs.Player.CenterX()
	gs.Camera.TargetY = config.ScreenHeight / 2
	return gs
}

// WorldMinX 玩家可到达的最小 X
func (gs *GameState) WorldMinX() float64 {
	if gs.SecretUnlocked {
		return config.SecretRoomMinX
	}
	return 0
}

// Finished 是否已到达终点
func (gs *GameState) Finished() bool {
	return gs.Celebration.Active
}

// MovementLocked 对话中或到达终点后禁止移动与跳跃
func (gs *GameState) MovementLocked() bool {
	return gs.Dialogue.IsActive() || gs.Finished()
}

// NPCEntity 返回下标对应的 NPC 实体，越界返回 InvalidEntity
func (gs *GameState) NPCEntity(index int) ecs.EntityID {
	if index < 0 || index >= len(gs.NPCs) {
		return ecs.InvalidEntity
	}
	return gs.NPCs[index]
}

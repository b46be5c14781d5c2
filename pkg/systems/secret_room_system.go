package systems

import (
	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
)

// SecretRoomSystem 密室入口
// 站在入口触发区内（且不在任何 NPC 交互区）按下 Enter：解锁密室并把玩家传送到密室中央。
// 之后左边界扩展到 SecretRoomMinX；玩家整个走出 x=0 后密室重新关闭，
// 再次进入只能通过入口。
type SecretRoomSystem struct {
	gameState *game.GameState
}

// NewSecretRoomSystem 创建密室系统
func NewSecretRoomSystem(gs *game.GameState) *SecretRoomSystem {
	return &SecretRoomSystem{gameState: gs}
}

// Update 必须在 ProximitySystem 之后、DialogueSystem 之前调用
func (s *SecretRoomSystem) Update() {
	gs := s.gameState
	if gs.SecretUnlocked && gs.Player.X >= 0 {
		gs.SecretUnlocked = false
		logger.Log.Infof("[SecretRoomSystem] Player left the secret room, entrance closed")
	}
	if gs.Finished() || gs.Dialogue.IsActive() {
		return
	}
	if !gs.AtSecretDoor || gs.NearNPC != components.NoNPC || !gs.Input.InteractPressed() {
		return
	}

	if !gs.SecretUnlocked {
		gs.SecretUnlocked = true
		logger.Log.Infof("[SecretRoomSystem] Secret room unlocked")
	}
	p := gs.Player
	p.X = config.SecretRoomMidX - p.Width/2
	logger.Log.Debugf("[SecretRoomSystem] Player teleported to x=%.1f", p.X)
}

package systems

import (
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
)

// CameraSystem 跟随玩家的镜头
//
// 目标点为玩家中心；X 钳制在 [半屏宽, 世界宽 − 半屏宽]，Y 固定为半屏高。
// 玩家中心位于密室 [SecretRoomMinX, 0) 时不做钳制，镜头固定在密室中点。
type CameraSystem struct {
	gameState *game.GameState
}

// NewCameraSystem 创建镜头系统
func NewCameraSystem(gs *game.GameState) *CameraSystem {
	return &CameraSystem{gameState: gs}
}

// Update 计算本帧镜头目标
func (s *CameraSystem) Update() {
	cam := s.gameState.Camera
	centerX := s.gameState.Player.CenterX()

	halfW := float64(config.ScreenWidth) / 2
	cam.OffsetX = halfW
	cam.OffsetY = float64(config.ScreenHeight) / 2
	cam.TargetY = float64(config.ScreenHeight) / 2

	cam.InSecretRoom = InSecretRoom(centerX)
	if cam.InSecretRoom {
		cam.TargetX = config.SecretRoomMidX
		return
	}
	cam.TargetX = clampFloat(centerX, halfW, config.WorldWidth-halfW)
}

// InSecretRoom 世界 X 是否位于密室区域
func InSecretRoom(x float64) bool {
	return x >= config.SecretRoomMinX && x < 0
}

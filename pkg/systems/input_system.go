package systems

import (
	"github.com/justPoosay/HydrosferaSymulator/pkg/components"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
	"github.com/justPoosay/HydrosferaSymulator/pkg/utils"
)

// InputSystem 每帧采样一次键盘状态
// 上一帧的状态保存在 InputComponent.Prev，边沿由组件方法计算
type InputSystem struct {
	gameState *game.GameState
	keys      utils.KeyReader
}

// NewInputSystem 创建输入系统
func NewInputSystem(gs *game.GameState, keys utils.KeyReader) *InputSystem {
	return &InputSystem{
		gameState: gs,
		keys:      keys,
	}
}

// Update 采样按键并处理调试开关与热重载请求
func (s *InputSystem) Update() {
	in := s.gameState.Input
	in.Prev = in.Down
	in.Down = components.KeyState{
		Left:     utils.AnyPressed(s.keys, utils.KeysLeft),
		Right:    utils.AnyPressed(s.keys, utils.KeysRight),
		Sprint:   utils.AnyPressed(s.keys, utils.KeysSprint),
		Jump:     utils.AnyPressed(s.keys, utils.KeysJump),
		Interact: utils.AnyPressed(s.keys, utils.KeysInteract),
		Debug:    utils.AnyPressed(s.keys, utils.KeysDebug),
		Reload:   utils.AnyPressed(s.keys, utils.KeysReload),
	}

	if in.DebugPressed() {
		s.gameState.DebugMode = !s.gameState.DebugMode
		logger.Log.Infof("[InputSystem] Debug mode: %v", s.gameState.DebugMode)
	}
	if in.ReloadPressed() {
		s.gameState.ReloadRequested = true
	}
}

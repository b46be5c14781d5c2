package components

// KeyState 一帧内的按键状态（按住）
type KeyState struct {
	Left     bool
	Right    bool
	Sprint   bool
	Jump     bool
	Interact bool
	Debug    bool
	Reload   bool
}

// InputComponent 输入快照
// 保留上一帧状态，边沿由纯函数计算：pressed = down && !prevDown
type InputComponent struct {
	Down KeyState
	Prev KeyState
}

// SprintPressed 冲刺键本帧刚按下
func (in *InputComponent) SprintPressed() bool { return in.Down.Sprint && !in.Prev.Sprint }

// JumpPressed 跳跃键本帧刚按下
func (in *InputComponent) JumpPressed() bool { return in.Down.Jump && !in.Prev.Jump }

// InteractPressed 交互键本帧刚按下
func (in *InputComponent) InteractPressed() bool { return in.Down.Interact && !in.Prev.Interact }

// DebugPressed 调试键本帧刚按下
func (in *InputComponent) DebugPressed() bool { return in.Down.Debug && !in.Prev.Debug }

// ReloadPressed 热重载键本帧刚按下
func (in *InputComponent) ReloadPressed() bool { return in.Down.Reload && !in.Prev.Reload }

package components

// LocomotionMode 玩家当前的运动模式
type LocomotionMode int

const (
	// ModeIdle 站立
	ModeIdle LocomotionMode = iota
	// ModeWalk 行走
	ModeWalk
	// ModeRun 奔跑（冲刺）
	ModeRun
	// ModeJump 跳跃（覆盖行走/奔跑）
	ModeJump
)

// String 返回运动模式的字符串表示
func (m LocomotionMode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeWalk:
		return "Walk"
	case ModeRun:
		return "Run"
	case ModeJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// PlayerComponent 玩家状态（纯数据）
//
// 由 PhysicsSystem 更新位置与跳跃计时，由 AnimationSystem 更新帧索引。
// 整个会话只有一个实例。
type PlayerComponent struct {
	// X, Y 左上角世界坐标
	X, Y float64
	// Width, Height 碰撞盒尺寸（固定）
	Width, Height float64
	// GroundY 站在地面时的 Y，跳跃结束时精确回到此值
	GroundY float64

	// Facing 朝向：1 向右，-1 向左
	Facing float64
	// SpeedMultiplier 本帧速度倍率（1× / 3× / 6×）
	SpeedMultiplier float64
	// IsMoving 本帧是否有水平移动输入
	IsMoving bool
	// Mode 当前运动模式
	Mode LocomotionMode

	// IsJumping 是否在跳跃中
	IsJumping bool
	// JumpTimer 本次跳跃已经过的时间（秒）
	JumpTimer float64

	// WalkFrame / RunFrame / JumpFrame 各动画循环的当前帧
	WalkFrame int
	RunFrame  int
	JumpFrame int
	// WalkAccumulator / RunAccumulator 帧推进的时间累加器（秒）
	WalkAccumulator float64
	RunAccumulator  float64
}

// CenterX 返回玩家中心 X
func (p *PlayerComponent) CenterX() float64 {
	return p.X + p.Width/2
}

// CenterY 返回玩家中心 Y
func (p *PlayerComponent) CenterY() float64 {
	return p.Y + p.Height/2
}

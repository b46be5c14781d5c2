package components

// DialogueState 对话状态机的状态
type DialogueState int

const (
	// DialogueIdle 没有进行中的对话
	DialogueIdle DialogueState = iota
	// DialogueLineStarting 新的一行已载入，下一次显示步进时开始逐字显示
	DialogueLineStarting
	// DialogueRevealing 正在逐字显示
	DialogueRevealing
	// DialogueLineComplete 当前行已全部显示，等待按键推进
	DialogueLineComplete
)

// String 返回 DialogueState 的字符串表示
func (s DialogueState) String() string {
	switch s {
	case DialogueIdle:
		return "Idle"
	case DialogueLineStarting:
		return "LineStarting"
	case DialogueRevealing:
		return "Revealing"
	case DialogueLineComplete:
		return "LineComplete"
	default:
		return "Unknown"
	}
}

// NoNPC 表示没有 NPC（邻近检测未命中 / 无活动对话）
const NoNPC = -1

// DialogueSessionComponent 对话会话（纯数据）
//
// 生命周期:
//  1. 玩家位于 NPC 交互区内按下 Enter 时开始
//  2. DialogueSystem 推进逐字显示、停顿、嘴型
//  3. 最后一行结束或玩家离开交互区时回到 Idle，所有字段清零
//
// 不变式: Revealed 在一行内单调不减，换行时归零，且不超过 len(Wrapped)
type DialogueSessionComponent struct {
	// State 当前状态
	State DialogueState

	// ActiveNPC 正在说话的 NPC 索引（GameState.NPCs 下标），NoNPC 表示无
	ActiveNPC int

	// CurrentLine 当前对话行索引（从 0 开始）
	CurrentLine int

	// RawText 当前行原文
	RawText string

	// Wrapped 换行后的文本（按 rune 存储，波兰语字母计为一个字符）
	Wrapped []rune

	// Revealed 已显示的字符数
	Revealed int

	// RevealTimer 逐字显示计时器（秒）
	RevealTimer float64

	// PauseRemaining 标点停顿剩余时间（秒），0 表示无停顿
	PauseRemaining float64

	// MouthOpen 嘴型是否张开
	MouthOpen bool
	// MouthTimer 嘴型切换计时器（秒）
	MouthTimer float64
}

// IsActive 是否有进行中的对话
func (d *DialogueSessionComponent) IsActive() bool {
	return d.ActiveNPC != NoNPC
}

// FullyRevealed 当前行是否已全部显示
func (d *DialogueSessionComponent) FullyRevealed() bool {
	return d.Revealed >= len(d.Wrapped)
}

// VisibleText 返回当前可见的文本
func (d *DialogueSessionComponent) VisibleText() string {
	n := d.Revealed
	if n > len(d.Wrapped) {
		n = len(d.Wrapped)
	}
	return string(d.Wrapped[:n])
}

// Reset 清空会话，回到 Idle
func (d *DialogueSessionComponent) Reset() {
	*d = DialogueSessionComponent{ActiveNPC: NoNPC}
}

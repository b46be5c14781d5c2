package config

// 对话框与打字机效果配置

const (
	// TextSpeed 每秒显示的字符数
	TextSpeed = 30
	// PunctuationPause 标点后的停顿（秒）
	PunctuationPause = 0.35
	// DialogueBulkReveal 为 true 时使用简化模式：按 min(timer*speed, len) 批量显示，无标点停顿
	DialogueBulkReveal = false

	TextBoxHeight   = 200.0
	TextFontSize    = 36.0
	TextPadding     = 20.0
	TextCharSpacing = 4.0

	// DialogueBoxX 对话框左上角 X（屏幕坐标）
	DialogueBoxX = ScreenWidth * 0.1
	// DialogueBoxY 对话框左上角 Y（屏幕坐标）
	DialogueBoxY = 10.0
	// DialogueBoxWidth 对话框宽度
	DialogueBoxWidth = ScreenWidth * 0.8
	// DialogueBoxBorder 对话框边框宽度
	DialogueBoxBorder = 5.0

	// DialogueMaxTextWidth 文本换行的最大宽度
	DialogueMaxTextWidth = DialogueBoxWidth - 2*TextPadding

	// HUDFontSize 左上角提示文字字号
	HUDFontSize = 20.0
)

// PunctuationRunes 触发停顿的标点
const PunctuationRunes = ".,;:!?"

// RevealInterval 单个字符的显示间隔（秒）
func RevealInterval() float64 {
	return 1.0 / float64(TextSpeed)
}

// MouthToggleInterval 嘴型开合切换间隔（秒）
func MouthToggleInterval() float64 {
	return 2.0 / float64(TextSpeed)
}

package utils

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextMeasurer 测量一行文本的像素宽度
type TextMeasurer interface {
	MeasureWidth(s string) float64
}

// WordWrap 按单词贪心换行
// 参数:
//   - textStr: 要换行的文本
//   - maxWidth: 最大宽度（像素）
//   - m: 宽度测量器
//
// 返回:
//   - string: 用 "\n" 连接的多行文本
//
// 换行规则:
//   - 按空白切分单词，连续空白视为一个
//   - 当 "当前行 + 空格 + 单词" 超过最大宽度时另起一行
//   - 单个超宽单词独占一行，不在单词内部断开
func WordWrap(textStr string, maxWidth float64, m TextMeasurer) string {
	words := strings.Fields(textStr)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.MeasureWidth(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	lines = append(lines, current)

	return strings.Join(lines, "\n")
}

// FaceMeasurer 基于 Ebitengine 字体的测量器
// 与 DrawSpacedText 使用同一套逐字符排版，每两个相邻字符之间额外加 Spacing 像素
type FaceMeasurer struct {
	Face    text.Face
	Spacing float64
}

// MeasureWidth 实现 TextMeasurer
func (fm FaceMeasurer) MeasureWidth(s string) float64 {
	if s == "" || fm.Face == nil {
		return 0
	}
	_, width := glyphOffsets(s, fm.Face, fm.Spacing)
	return width
}

// glyphOffsets 逐字符排版一行文本
// 返回每个字符相对行首的 X 偏移，以及末字符右边缘处的整行宽度。
// 单字符单独求 advance，不应用字偶距调整。
func glyphOffsets(line string, face text.Face, spacing float64) ([]float64, float64) {
	offsets := make([]float64, 0, utf8.RuneCountInString(line))
	x, width := 0.0, 0.0
	for _, r := range line {
		offsets = append(offsets, x)
		width = x + text.Advance(string(r), face)
		x = width + spacing
	}
	return offsets, width
}

// LineHeight 返回字体的行高
func LineHeight(face text.Face) float64 {
	if face == nil {
		return 0
	}
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// DrawSpacedText 逐字符绘制带字间距的多行文本
// (x, y) 为第一行左上角；"\n" 换行，行距为字体行高
func DrawSpacedText(dst *ebiten.Image, s string, face text.Face, x, y, spacing float64, clr color.Color) {
	if face == nil || s == "" {
		return
	}

	lineHeight := LineHeight(face)
	for i, line := range strings.Split(s, "\n") {
		cy := y + float64(i)*lineHeight
		offsets, _ := glyphOffsets(line, face, spacing)
		j := 0
		for _, r := range line {
			op := &text.DrawOptions{}
			op.GeoM.Translate(x+offsets[j], cy)
			op.ColorScale.ScaleWithColor(clr)
			text.Draw(dst, string(r), face, op)
			j++
		}
	}
}

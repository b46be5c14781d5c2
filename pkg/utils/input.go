// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyReader 查询按键是否按住
// 运行时由 EbitenKeyReader 实现，测试使用假实现
type KeyReader interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeyReader 直接读取 Ebitengine 键盘状态
type EbitenKeyReader struct{}

// IsKeyPressed 实现 KeyReader
func (EbitenKeyReader) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// 按键绑定，任意一个按住即视为按下
var (
	KeysLeft     = []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}
	KeysRight    = []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}
	KeysSprint   = []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}
	KeysJump     = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp}
	KeysInteract = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}
	KeysDebug    = []ebiten.Key{ebiten.KeyF3}
	KeysReload   = []ebiten.Key{ebiten.KeyF5}
)

// AnyPressed 任意一个按键按住时返回 true
func AnyPressed(r KeyReader, keys []ebiten.Key) bool {
	for _, k := range keys {
		if r.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// KeySet 简单的按键集合，实现 KeyReader（测试与回放使用）
type KeySet map[ebiten.Key]bool

// IsKeyPressed 实现 KeyReader
func (ks KeySet) IsKeyPressed(key ebiten.Key) bool {
	return ks[key]
}

package components

import "github.com/justPoosay/HydrosferaSymulator/pkg/types"

// TriggerComponent 静态触发区域（密室入口、终点旗帜）
type TriggerComponent struct {
	Kind types.TriggerKind
	Rect types.Rect
}

package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAnyPressed(t *testing.T) {
	tests := []struct {
		name string
		down KeySet
		keys []ebiten.Key
		want bool
	}{
		{"nothing pressed", KeySet{}, KeysLeft, false},
		{"arrow key", KeySet{ebiten.KeyLeft: true}, KeysLeft, true},
		{"alternate binding", KeySet{ebiten.KeyA: true}, KeysLeft, true},
		{"other key only", KeySet{ebiten.KeyD: true}, KeysLeft, false},
		{"keypad enter interacts", KeySet{ebiten.KeyNumpadEnter: true}, KeysInteract, true},
		{"right shift sprints", KeySet{ebiten.KeyShiftRight: true}, KeysSprint, true},
		{"released key", KeySet{ebiten.KeySpace: false}, KeysJump, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnyPressed(tt.down, tt.keys); got != tt.want {
				t.Errorf("AnyPressed() = %v, want %v", got, tt.want)
			}
		})
	}
}

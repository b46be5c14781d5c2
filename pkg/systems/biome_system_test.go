package systems

import (
	"math"
	"testing"

	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
)

func TestSegmentAt(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{-500, 0},
		{0, 0},
		{config.SegmentWidth - 1, 0},
		{config.SegmentWidth, 1},
		{config.SegmentWidth*3 + 10, 3},
		{config.WorldWidth + 100, config.SegmentCount - 1},
	}
	for _, tt := range tests {
		if got := SegmentAt(tt.x); got != tt.want {
			t.Errorf("SegmentAt(%.0f) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestBiomeSystem_CrossFade(t *testing.T) {
	gs := game.NewGameState()
	bs := NewBiomeSystem(gs)
	b := gs.Biome

	placePlayerAt(gs, 600)
	bs.Update(testDT)
	if b.Fading || b.DisplayedSegment != 0 {
		t.Fatal("no fade expected inside the first segment")
	}

	placePlayerAt(gs, config.SegmentWidth+100)
	bs.Update(testDT)
	if !b.Fading || b.FadingFrom != 0 || b.FadingTo != 1 {
		t.Fatalf("fade 0→1 expected, got fading=%v from=%d to=%d", b.Fading, b.FadingFrom, b.FadingTo)
	}

	frames := 0
	for b.Fading && frames < 120 {
		bs.Update(testDT)
		frames++
		out, in := b.Alphas()
		if math.Abs(out+in-1) > 1e-6 {
			t.Fatalf("alphas should sum to 1, got %.3f + %.3f", out, in)
		}
		if b.Fading && (in < 0 || in > 1) {
			t.Fatalf("incoming alpha %.3f out of range", in)
		}
	}

	// 0.8s 淡化在 60 TPS 下恰好 48 帧结束
	wantFrames := int(math.Round(config.BiomeFadeDuration * 60))
	if frames != wantFrames {
		t.Errorf("fade took %d frames, want exactly %d", frames, wantFrames)
	}
	if b.DisplayedSegment != 1 || b.Tween != nil {
		t.Errorf("after fade: displayed=%d tween=%v", b.DisplayedSegment, b.Tween)
	}
}

// 淡化中到达新段：只改 FadingTo，不重新开始补间
func TestBiomeSystem_RedirectMidFade(t *testing.T) {
	gs := game.NewGameState()
	bs := NewBiomeSystem(gs)
	b := gs.Biome

	placePlayerAt(gs, config.SegmentWidth+100)
	bs.Update(testDT)
	for i := 0; i < 12; i++ {
		bs.Update(testDT)
	}
	tween := b.Tween
	progress := b.Progress

	placePlayerAt(gs, config.SegmentWidth*2+100)
	bs.Update(testDT)
	if b.Tween != tween {
		t.Error("redirect must keep the running tween")
	}
	if b.FadingFrom != 0 || b.FadingTo != 2 {
		t.Errorf("from=%d to=%d, want 0→2", b.FadingFrom, b.FadingTo)
	}
	if b.Progress <= progress {
		t.Error("progress should keep increasing after a redirect")
	}

	for i := 0; i < 120 && b.Fading; i++ {
		bs.Update(testDT)
	}
	if b.DisplayedSegment != 2 {
		t.Errorf("displayed segment = %d, want 2", b.DisplayedSegment)
	}
}

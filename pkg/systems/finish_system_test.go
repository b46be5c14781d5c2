package systems

import (
	"math"
	"testing"

	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/types"
)

func newFinishFixture() (*game.GameState, *FinishSystem, *fakeSounds, *fakeMusic) {
	gs := game.NewGameState()
	sounds := newFakeSounds()
	music := &fakeMusic{current: config.MusicBackground}
	return gs, NewFinishSystem(gs, sounds, music), sounds, music
}

func TestFinishSystem_TriggerOnce(t *testing.T) {
	gs, fs, sounds, music := newFinishFixture()

	fs.Update(testDT)
	if gs.Finished() {
		t.Fatal("celebration should not start away from the flag")
	}

	gs.AtFinish = true
	fs.Update(testDT)
	if !gs.Finished() {
		t.Fatal("celebration should start on the flag")
	}
	if music.stops != 1 || music.current != "" {
		t.Errorf("music should be stopped once, stops=%d current=%q", music.stops, music.current)
	}
	if sounds.count(config.SoundCheer) != 1 {
		t.Errorf("cheer played %d times, want 1", sounds.count(config.SoundCheer))
	}

	// 离开旗帜也不会撤销，且不会重复触发
	gs.AtFinish = false
	for i := 0; i < 10; i++ {
		fs.Update(testDT)
	}
	gs.AtFinish = true
	fs.Update(testDT)
	if !gs.Finished() || sounds.count(config.SoundCheer) != 1 || music.stops != 1 {
		t.Error("celebration must be terminal and edge-triggered")
	}
	if !gs.MovementLocked() {
		t.Error("movement should be locked after finish")
	}
}

func TestFinishSystem_ExitsAfterLoops(t *testing.T) {
	gs, fs, _, _ := newFinishFixture()
	gs.AtFinish = true
	fs.Update(testDT)

	interval := config.TickFrameInterval(config.HappyFPS)
	ticksPerFrame := int(interval*60 + 0.5)
	want := ticksPerFrame * config.HappyFrameCount * config.CelebrationLoops

	ticks := 0
	for !gs.ShouldExit && ticks < want*2 {
		fs.Update(testDT)
		ticks++
	}
	if !gs.ShouldExit {
		t.Fatal("celebration never requested exit")
	}
	if ticks != want {
		t.Errorf("exit requested after %d ticks, want %d", ticks, want)
	}
	c := gs.Celebration
	if !c.Done || c.HappyLoops != config.CelebrationLoops {
		t.Errorf("Done=%v loops=%d", c.Done, c.HappyLoops)
	}
	if c.HappyFrame < 0 || c.HappyFrame >= config.HappyFrameCount {
		t.Errorf("happy frame %d out of range", c.HappyFrame)
	}
}

func TestFinishSystem_BannerAnimation(t *testing.T) {
	gs, fs, _, _ := newFinishFixture()
	gs.AtFinish = true
	fs.Update(testDT)

	c := gs.Celebration
	seenFrames := map[int]bool{}
	minOffset, maxOffset := c.BannerOffsetY, c.BannerOffsetY
	for i := 0; i < 120; i++ {
		fs.Update(testDT)
		seenFrames[c.BannerFrame] = true
		if c.BannerFrame < 0 || c.BannerFrame >= config.BannerFrameCount {
			t.Fatalf("banner frame %d out of range", c.BannerFrame)
		}
		if c.BannerOffsetY < minOffset {
			minOffset = c.BannerOffsetY
		}
		if c.BannerOffsetY > maxOffset {
			maxOffset = c.BannerOffsetY
		}
	}
	if len(seenFrames) != config.BannerFrameCount {
		t.Errorf("banner showed %d distinct frames, want %d", len(seenFrames), config.BannerFrameCount)
	}
	if maxOffset > config.BannerBobAmplitude+1e-3 || minOffset < -config.BannerBobAmplitude-1e-3 {
		t.Errorf("banner offset [%.2f, %.2f] exceeds amplitude", minOffset, maxOffset)
	}
	if maxOffset-minOffset < config.BannerBobAmplitude {
		t.Errorf("banner barely moved: [%.2f, %.2f]", minOffset, maxOffset)
	}
}

// 横幅每 BannerBobDuration 恰好反向一次
func TestFinishSystem_BannerBobHalfPeriod(t *testing.T) {
	gs, fs, _, _ := newFinishFixture()
	gs.AtFinish = true
	fs.Update(testDT)

	c := gs.Celebration
	halfPeriod := int(math.Round(config.BannerBobDuration * 60))
	for round, wantRising := range []bool{false, true, false} {
		for i := 0; i < halfPeriod-1; i++ {
			fs.Update(testDT)
		}
		if c.BannerRising == wantRising {
			t.Fatalf("round %d: banner reversed one frame early", round)
		}
		fs.Update(testDT)
		if c.BannerRising != wantRising {
			t.Fatalf("round %d: banner should reverse after exactly %d frames", round, halfPeriod)
		}
		wantOffset := config.BannerBobAmplitude
		if !wantRising {
			wantOffset = -config.BannerBobAmplitude
		}
		if math.Abs(c.BannerOffsetY-wantOffset) > 1e-9 {
			t.Errorf("round %d: offset at reversal = %.4f, want %.1f", round, c.BannerOffsetY, wantOffset)
		}
	}
}

// 终点触发后对话系统在同一帧关闭对话
func TestFinishSystem_ClosesDialogue(t *testing.T) {
	f := newDialogueFixture(types.VariantHuman, "", "Hello world")
	f.step(true)
	if !f.gs.Dialogue.IsActive() {
		t.Fatal("dialogue should be active")
	}

	fs := NewFinishSystem(f.gs, f.sounds, nil)
	f.gs.AtFinish = true
	fs.Update(testDT)
	f.step(false)
	if f.gs.Dialogue.IsActive() {
		t.Error("dialogue should close once the finish is reached")
	}
}

package systems

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
	"github.com/justPoosay/HydrosferaSymulator/pkg/utils"
)

// playerSheets 玩家精灵图，缺失时按 error 级别报告
var playerSheets = map[string]bool{
	config.ImageCatWalk:  true,
	config.ImageCatRun:   true,
	config.ImageCatJump:  true,
	config.ImageCatHappy: true,
}

// Draw 绘制本帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, cmd := range s.BuildDrawList() {
		s.execute(screen, cmd)
	}
}

func (s *RenderSystem) execute(screen *ebiten.Image, cmd DrawCommand) {
	switch cmd.Kind {
	case DrawImage:
		s.drawImage(screen, cmd)
	case DrawRect:
		vector.DrawFilledRect(screen, float32(cmd.X), float32(cmd.Y), float32(cmd.W), float32(cmd.H), cmd.Color, false)
	case DrawRectOutline:
		vector.StrokeRect(screen, float32(cmd.X), float32(cmd.Y), float32(cmd.W), float32(cmd.H),
			float32(cmd.StrokeWidth), cmd.Color, false)
	case DrawText:
		if face := s.face(cmd.FontSize); face != nil {
			utils.DrawSpacedText(screen, cmd.Text, face, cmd.X, cmd.Y, cmd.Spacing, cmd.Color)
		}
	}
}

func (s *RenderSystem) drawImage(screen *ebiten.Image, cmd DrawCommand) {
	if cmd.Alpha <= 0 {
		return
	}
	img := s.texture(cmd.ImageID)
	if img == nil {
		clr := cmd.Color
		clr.A = uint8(float64(clr.A) * cmd.Alpha)
		vector.DrawFilledRect(screen, float32(cmd.X), float32(cmd.Y), float32(cmd.W), float32(cmd.H), clr, false)
		return
	}

	src := frameRect(img.Bounds(), cmd)
	if src.Empty() {
		return
	}
	sub := img.SubImage(src).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	sx := cmd.W / float64(src.Dx())
	sy := cmd.H / float64(src.Dy())
	if cmd.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(src.Dx()), 0)
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(cmd.X, cmd.Y)
	op.ColorScale.ScaleAlpha(float32(cmd.Alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sub, op)
}

// frameRect 横向精灵条中第 Frame 帧的源矩形
func frameRect(bounds image.Rectangle, cmd DrawCommand) image.Rectangle {
	if cmd.FrameCount <= 1 && cmd.FrameW == 0 {
		return bounds
	}
	fw, fh := cmd.FrameW, cmd.FrameH
	if fw <= 0 {
		fw = bounds.Dx() / max(cmd.FrameCount, 1)
	}
	if fh <= 0 {
		fh = bounds.Dy()
	}
	x0 := bounds.Min.X + cmd.Frame*fw
	return image.Rect(x0, bounds.Min.Y, x0+fw, bounds.Min.Y+fh).Intersect(bounds)
}

func (s *RenderSystem) texture(id string) *ebiten.Image {
	if s.textures == nil || id == "" {
		return nil
	}
	img, err := s.textures.LoadImageByID(id)
	if err != nil {
		if !s.warned[id] {
			s.warned[id] = true
			if playerSheets[id] {
				logger.Log.Errorf("[RenderSystem] Player sprite %s unavailable, drawing a rectangle: %v", id, err)
			} else {
				logger.Log.Warnf("[RenderSystem] Texture %s unavailable, drawing a rectangle: %v", id, err)
			}
		}
		return nil
	}
	return img
}

func (s *RenderSystem) face(size float64) text.Face {
	if s.fonts == nil {
		return nil
	}
	face, err := s.fonts.LoadFont(config.FontUI, size)
	if err != nil && !s.warned[config.FontUI] {
		s.warned[config.FontUI] = true
		logger.Log.Warnf("[RenderSystem] UI font unavailable, using fallback: %v", err)
	}
	if face == nil {
		return nil
	}
	return face
}

// Package app 提供游戏应用的核心包装器
//
// 负责创建音频上下文、资源与设置管理器和游戏场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/justPoosay/HydrosferaSymulator/pkg/config"
	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
	"github.com/justPoosay/HydrosferaSymulator/pkg/scenes"
	"github.com/justPoosay/HydrosferaSymulator/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// AssetsDir 资源根目录（包含 config/resources.yaml）
	AssetsDir string
	// Debug 以调试模式启动（等同于按下 F3）
	Debug bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	audioContext := audio.NewContext(48000)

	resourceManager := game.NewResourceManager(audioContext, cfg.AssetsDir)
	if err := resourceManager.LoadResourceConfig(); err != nil {
		// 配置损坏时已回退到内置默认值，继续运行
		logger.Log.Warnf("[App] %v", err)
	}
	if err := resourceManager.LoadResourceGroup("player"); err != nil {
		logger.Log.Errorf("[App] Player sprites: %v", err)
	}

	settingsManager := game.NewSettingsManager(resourceManager.SettingsPath())
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.PreloadSounds([]string{
		config.SoundMeow1, config.SoundMeow2, config.SoundPop, config.SoundCrunch,
		config.SoundJump, config.SoundSprint, config.SoundCheer,
	})

	scene, err := scenes.NewGameScene(resourceManager, audioManager, utils.EbitenKeyReader{}, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create game scene: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	logger.Log.Infof("[App] Started with assets from %s", resourceManager.AssetsDir())
	return &App{sceneManager: sceneManager}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（固定每秒 60 次）；场景请求退出时返回 ebiten.Termination
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			logger.Log.Debugf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(config.LogicTicksPerSecond)
	a.sceneManager.Update(deltaTime)

	if a.sceneManager.ShouldExit() {
		logger.Log.Infof("[App] Scene requested exit")
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

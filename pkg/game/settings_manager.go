package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
	"gopkg.in/yaml.v3"
)

// GameSettings 音频与显示设置
// 从 assets/config/settings.yaml 读取；游戏不写回任何文件
type GameSettings struct {
	// 音频设置
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.5,
		SoundVolume:  1.0,
		MusicEnabled: true,
		SoundEnabled: true,
		Fullscreen:   false,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载与内存管理
type SettingsManager struct {
	settings *GameSettings // 当前设置
}

// NewSettingsManager 创建设置管理器并尝试从 path 加载
//
// 文件不存在时静默使用默认设置；文件损坏时记录警告并使用默认设置。
func NewSettingsManager(path string) *SettingsManager {
	sm := &SettingsManager{settings: DefaultSettings()}
	if path == "" {
		return sm
	}

	if err := sm.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Log.Infof("[SettingsManager] %s not found, using defaults", path)
		} else {
			logger.Log.Warnf("[SettingsManager] Failed to load settings: %v (using defaults)", err)
		}
	}
	return sm
}

// Load 从 YAML 文件加载设置
// 文件中缺省的字段保持默认值
func (sm *SettingsManager) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	return sm.LoadBytes(data)
}

// LoadBytes 从 YAML 数据加载设置
func (sm *SettingsManager) LoadBytes(data []byte) error {
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	sm.settings = loaded
	logger.Log.Debugf("[SettingsManager] Settings loaded: %+v", *loaded)
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}

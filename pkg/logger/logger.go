// Package logger 提供全局日志实例
//
// 控制台输出用于开发调试，文件输出（可选）使用 lumberjack 按大小滚动。
// 未调用 Init 时 Log 为空操作日志器，测试无需任何初始化。
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 是全局可用的 SugaredLogger
// 约定消息以 "[系统名]" 前缀开头，例如 "[DialogueSystem] ..."
var Log = zap.NewNop().Sugar()

// Config 日志配置
type Config struct {
	// Verbose 为 true 时控制台输出 Debug 级别，否则只输出 Warn 及以上
	Verbose bool
	// FilePath 日志文件路径，为空则不写文件
	FilePath string
}

// Init 根据配置初始化全局日志
func Init(cfg Config) error {
	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	consoleLevel := zapcore.WarnLevel
	if cfg.Verbose {
		consoleLevel = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), consoleLevel),
	}

	if cfg.FilePath != "" {
		// 10MB 每文件，保留 3 个备份
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   false,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), zapcore.DebugLevel))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	return nil
}

// Sync 刷新缓冲
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

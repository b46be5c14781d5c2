// check_assets 校验资源配置：resources.yaml 能否解析、每个资源 ID 指向的文件是否存在，
// 以及 settings.yaml 是否有效。发现缺失文件时以非零状态退出。
//
// 用法:
//
//	go run ./cmd/check_assets -assets assets
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/justPoosay/HydrosferaSymulator/pkg/game"
	"gopkg.in/yaml.v3"
)

func main() {
	assetsDir := flag.String("assets", "assets", "assets directory")
	flag.Parse()

	rm := game.NewResourceManager(nil, *assetsDir)
	if err := rm.LoadResourceConfig(); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 解析成功，分组: %v\n", rm.ConfigPath(), rm.GroupNames())

	missing := 0
	for _, id := range rm.ResourceIDs() {
		path, err := rm.ResolvePath(id)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", id, err)
			missing++
			continue
		}
		if _, err := os.Stat(path); err != nil {
			fmt.Printf("❌ %-20s %s (%v)\n", id, path, err)
			missing++
			continue
		}
		fmt.Printf("✅ %-20s %s\n", id, path)
	}

	if err := checkSettings(rm.SettingsPath()); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	if missing > 0 {
		fmt.Printf("❌ 有 %d 个资源文件缺失\n", missing)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有 %d 个资源都存在\n", len(rm.ResourceIDs()))
}

// checkSettings 设置文件可以不存在，但存在时必须能解析
func checkSettings(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("⚠️  %s 不存在，将使用默认设置\n", path)
		return nil
	}
	if err != nil {
		return err
	}
	var settings game.GameSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("%s 解析失败: %w", path, err)
	}
	fmt.Printf("✅ %s: 音乐 %.2f，音效 %.2f\n", path, settings.MusicVolume, settings.SoundVolume)
	return nil
}

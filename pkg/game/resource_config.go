package game

import (
	"path/filepath"
	"strings"
)

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: ""
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
//	    music: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path relative to the assets directory
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
//
// Example from resources.yaml:
//
//	player:
//	  images:
//	    - id: IMAGE_CAT_WALK
//	      path: images/cat/walk.png
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"` // List of image resources in this group
	Sounds []SoundResource `yaml:"sounds"` // One-shot sound effects
	Music  []SoundResource `yaml:"music"`  // Looping background tracks
	Fonts  []FontResource  `yaml:"fonts"`  // List of font resources in this group
}

// ImageResource represents a single image resource definition.
// Sprite sheets are horizontal strips; frame geometry lives in pkg/config.
type ImageResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// SoundResource represents a single sound/audio resource definition.
//
// Example:
//   - id: SOUND_MEOW1
//     path: sounds/meow1.wav
type SoundResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// FontResource represents a single font resource definition.
type FontResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// buildFullPath constructs the full file path for a resource.
// It combines the assets directory, the config base path and the resource's relative path.
//
// Example:
//
//	buildFullPath("assets", "", "images/bg/ocean.png") -> "assets/images/bg/ocean.png"
func buildFullPath(assetsDir, basePath, relativePath string) string {
	relativePath = strings.TrimPrefix(relativePath, "/")
	return filepath.Join(assetsDir, basePath, relativePath)
}

// defaultResourceYAML is used when assets/config/resources.yaml is missing.
const defaultResourceYAML = `
version: "1.0"
base_path: ""
groups:
  player:
    images:
      - id: IMAGE_CAT_WALK
        path: images/cat/walk.png
      - id: IMAGE_CAT_RUN
        path: images/cat/run.png
      - id: IMAGE_CAT_JUMP
        path: images/cat/jump.png
      - id: IMAGE_CAT_HAPPY
        path: images/cat/happy.png
  npc:
    images:
      - id: IMAGE_NPC
        path: images/npc/npc.png
      - id: IMAGE_CAT_POP
        path: images/npc/cat_pop.png
      - id: IMAGE_CAT_CRUNCH
        path: images/npc/cat_crunch.png
      - id: IMAGE_CAT_CRY
        path: images/npc/cat_cry.png
  world:
    images:
      - id: IMAGE_BG_OCEAN
        path: images/bg/ocean.png
      - id: IMAGE_BG_RIVER
        path: images/bg/river.png
      - id: IMAGE_BG_WETLAND
        path: images/bg/wetland.png
      - id: IMAGE_BG_CITY
        path: images/bg/city.png
      - id: IMAGE_BG_ARAL
        path: images/bg/aral.png
      - id: IMAGE_BG_GLACIER
        path: images/bg/glacier.png
      - id: IMAGE_BG_SECRET
        path: images/bg/secret.png
      - id: IMAGE_SECRET_DOOR
        path: images/world/door.png
      - id: IMAGE_FINISH_FLAG
        path: images/world/flag.png
      - id: IMAGE_CONGRATS
        path: images/world/congrats.png
  audio:
    sounds:
      - id: SOUND_MEOW1
        path: sounds/meow1.wav
      - id: SOUND_MEOW2
        path: sounds/meow2.wav
      - id: SOUND_POP
        path: sounds/pop.wav
      - id: SOUND_CRUNCH
        path: sounds/crunch.wav
      - id: SOUND_JUMP
        path: sounds/jump.wav
      - id: SOUND_SPRINT
        path: sounds/sprint.wav
      - id: SOUND_CHEER
        path: sounds/cheer.wav
    music:
      - id: MUSIC_BLINDSPOTS
        path: music/BlindSpots.wav
  ui:
    fonts:
      - id: FONT_UI
        path: fonts/ui.ttf
`

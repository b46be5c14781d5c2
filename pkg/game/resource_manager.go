package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/justPoosay/HydrosferaSymulator/pkg/logger"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// ErrResourceNotFound is returned when a resource ID is not present in the configuration.
var ErrResourceNotFound = errors.New("resource ID not found")

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, audio and fonts,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Missing files are not fatal: every loader returns a wrapped error and the
// caller decides how to degrade (flat rectangles for images, silence for audio,
// the built-in Go Regular face for fonts). Image failures are remembered so a
// missing texture does not hit the disk on every frame.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop,
// no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext, "assets")
//	if err := rm.LoadResourceConfig(); err != nil {
//	    logger.Log.Warnf("...: %v", err)
//	}
//	img, err := rm.LoadImageByID(config.ImageCatWalk)
type ResourceManager struct {
	assetsDir     string                            // Root directory of all assets
	imageCache    map[string]*ebiten.Image          // Cache for loaded images: path -> Image
	imageFailures map[string]error                  // Negative cache: path -> load error
	audioCache    map[string]*audio.Player          // Cache for loaded audio players: path -> Player
	audioContext  *audio.Context                    // Global audio context for audio decoding
	fontSource    map[string]*text.GoTextFaceSource // Cache for font sources: path -> source
	fontFaceCache map[string]*text.GoTextFace       // Cache for Ebitengine v2 text faces

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context (may be nil when audio is unavailable).
//   - assetsDir: Root directory of the game assets (e.g. "assets").
func NewResourceManager(audioContext *audio.Context, assetsDir string) *ResourceManager {
	return &ResourceManager{
		assetsDir:     assetsDir,
		imageCache:    make(map[string]*ebiten.Image),
		imageFailures: make(map[string]error),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontSource:    make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
		resourceMap:   make(map[string]string),
	}
}

// AssetsDir returns the root directory of the game assets.
func (rm *ResourceManager) AssetsDir() string {
	return rm.assetsDir
}

// ConfigPath returns the path of resources.yaml inside the assets directory.
func (rm *ResourceManager) ConfigPath() string {
	return filepath.Join(rm.assetsDir, "config", "resources.yaml")
}

// SettingsPath returns the path of settings.yaml inside the assets directory.
func (rm *ResourceManager) SettingsPath() string {
	return filepath.Join(rm.assetsDir, "config", "settings.yaml")
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// A path that failed before returns the remembered error without touching the disk.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}
	if err, failed := rm.imageFailures[path]; failed {
		return nil, err
	}

	img, err := decodeImageFile(path)
	if err != nil {
		rm.imageFailures[path] = err
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

func decodeImageFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// decodeAudio decodes an in-memory audio file based on its extension.
// Supported formats: WAV (.wav), MP3 (.mp3) and OGG Vorbis (.ogg).
func decodeAudio(path string, data []byte) (interface {
	io.ReadSeeker
	Length() int64
}, error) {
	reader := bytes.NewReader(data)
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".wav":
		stream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
}

// readAudioFile reads the entire audio file into memory so the stream can seek
// without keeping the file handle open.
func readAudioFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	return data, nil
}

// LoadAudio loads an audio file and wraps it in an infinite loop, making it
// suitable for background music. The player is cached by path.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	data, err := readAudioFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	loopStream := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadSoundEffect loads a one-shot sound effect (no infinite loop) and caches it.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	data, err := readAudioFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadFont creates a text face of the given size for the font resource ID.
// When the ID is unknown or the file cannot be parsed, the built-in Go Regular
// face is returned together with the original error so callers can log it.
func (rm *ResourceManager) LoadFont(resourceID string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", resourceID, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, loadErr := rm.loadFontSource(resourceID)
	if loadErr != nil {
		fallback, err := rm.fallbackFontSource()
		if err != nil {
			return nil, fmt.Errorf("failed to create fallback font: %w", err)
		}
		source = fallback
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, loadErr
}

func (rm *ResourceManager) loadFontSource(resourceID string) (*text.GoTextFaceSource, error) {
	path, err := rm.ResolvePath(resourceID)
	if err != nil {
		return nil, err
	}
	if source, exists := rm.fontSource[path]; exists {
		return source, nil
	}

	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}
	rm.fontSource[path] = source
	return source, nil
}

const fallbackFontKey = "<goregular>"

func (rm *ResourceManager) fallbackFontSource() (*text.GoTextFaceSource, error) {
	if source, exists := rm.fontSource[fallbackFontKey]; exists {
		return source, nil
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	rm.fontSource[fallbackFontKey] = source
	return source, nil
}

// LoadResourceConfig loads assets/config/resources.yaml.
// When the file does not exist the built-in default configuration is used and
// nil is returned; a file that exists but cannot be parsed returns an error and
// the default configuration is still installed.
func (rm *ResourceManager) LoadResourceConfig() error {
	configPath := rm.ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Log.Infof("[ResourceManager] %s not found, using built-in resource table", configPath)
			return rm.LoadResourceConfigBytes([]byte(defaultResourceYAML))
		}
		_ = rm.LoadResourceConfigBytes([]byte(defaultResourceYAML))
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	if err := rm.LoadResourceConfigBytes(data); err != nil {
		_ = rm.LoadResourceConfigBytes([]byte(defaultResourceYAML))
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}
	return nil
}

// LoadResourceConfigBytes parses a YAML resource configuration and rebuilds the ID map.
func (rm *ResourceManager) LoadResourceConfigBytes(data []byte) error {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to unmarshal resource config: %w", err)
	}

	rm.config = &cfg
	rm.buildResourceMap()
	logger.Log.Debugf("[ResourceManager] Resource table loaded: %d entries", len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_CAT_WALK -> assets/images/cat/walk.png
//	SOUND_MEOW1    -> assets/sounds/meow1.wav
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.assetsDir, rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.assetsDir, rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".wav" // Default to WAV for sounds
			}
			rm.resourceMap[sound.ID] = fullPath
		}

		for _, music := range group.Music {
			fullPath := buildFullPath(rm.assetsDir, rm.config.BasePath, music.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".wav"
			}
			rm.resourceMap[music.ID] = fullPath
		}

		for _, font := range group.Fonts {
			rm.resourceMap[font.ID] = buildFullPath(rm.assetsDir, rm.config.BasePath, font.Path)
		}
	}
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, error) {
	if rm.config == nil {
		return "", fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrResourceNotFound, resourceID)
	}
	return filePath, nil
}

// LoadImageByID loads an image resource using its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	filePath, err := rm.ResolvePath(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(filePath)
}

// LoadResourceGroup loads all images and sounds in a specified group.
// Individual failures are logged and skipped; the number of failures is returned
// as an error so the caller can report it once.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	failed := 0
	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			logger.Log.Warnf("[ResourceManager] %s: %v", img.ID, err)
			failed++
		}
	}

	if rm.audioContext != nil {
		for _, sound := range group.Sounds {
			filePath := rm.resourceMap[sound.ID]
			if _, err := rm.LoadSoundEffect(filePath); err != nil {
				logger.Log.Warnf("[ResourceManager] %s: %v", sound.ID, err)
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("group %s: %d resources failed to load", groupName, failed)
	}
	return nil
}

// GroupNames returns the names of all configured resource groups.
func (rm *ResourceManager) GroupNames() []string {
	if rm.config == nil {
		return nil
	}
	names := make([]string, 0, len(rm.config.Groups))
	for name := range rm.config.Groups {
		names = append(names, name)
	}
	return names
}

// ResourceIDs returns every configured resource ID in sorted order.
func (rm *ResourceManager) ResourceIDs() []string {
	ids := make([]string, 0, len(rm.resourceMap))
	for id := range rm.resourceMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reload drops every cache and re-reads resources.yaml.
// Audio players that are currently playing are paused before being dropped.
func (rm *ResourceManager) Reload() error {
	for _, player := range rm.audioCache {
		player.Pause()
	}
	rm.imageCache = make(map[string]*ebiten.Image)
	rm.imageFailures = make(map[string]error)
	rm.audioCache = make(map[string]*audio.Player)
	rm.fontSource = make(map[string]*text.GoTextFaceSource)
	rm.fontFaceCache = make(map[string]*text.GoTextFace)

	logger.Log.Infof("[ResourceManager] Reloading resources from %s", rm.assetsDir)
	return rm.LoadResourceConfig()
}

package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/pigking/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:images
	imageFS embed.FS
)

// ErrAssetNotFound is wrapped by LoadError when a key has no file behind it.
var ErrAssetNotFound = errors.New("asset not found")

// LoadError reports a failed image load for a logical key.
type LoadError struct {
	Key string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("assets: load %s: %v", e.Key, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Provider resolves logical image keys against a file system. Loaded images
// and failures are both cached, so a missing sheet is reported once and then
// skipped on every later frame.
type Provider struct {
	fsys       fs.FS
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
	failed     map[string]error
}

func NewProvider(fsys fs.FS) *Provider {
	return &Provider{
		fsys:       fsys,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
		failed:     make(map[string]error),
	}
}

// Image returns the decoded image stored under key.
func (p *Provider) Image(key string) (*ebiten.Image, error) {
	if img, ok := p.cache[key]; ok {
		return img, nil
	}
	if err, ok := p.failed[key]; ok {
		return nil, err
	}

	img, err := p.load(key)
	if err != nil {
		p.failed[key] = err
		log.Printf("Warning: %v", err)
		return nil, err
	}
	p.cache[key] = img
	return img, nil
}

func (p *Provider) load(key string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(p.fsys, key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Key: key, Err: ErrAssetNotFound}
	}
	if err != nil {
		return nil, &LoadError{Key: key, Err: err}
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Key: key, Err: err}
	}
	return img, nil
}

// SheetKey is the key of the sprite sheet for one animation state.
func SheetKey(dir string, state config.StateID) string {
	return path.Join("images", "spritesheets", dir, state.String()+".png")
}

// ObjectKey is the key of a level object image.
func ObjectKey(name string) string {
	return path.Join("images", "objects", name)
}

// Sheet returns the sprite sheet of a species directory and state.
func (p *Provider) Sheet(dir string, state config.StateID) (*ebiten.Image, error) {
	return p.Image(SheetKey(dir, state))
}

// Frame returns a cached sub-image of a horizontal strip sheet. It returns
// nil when the sheet failed to load or the index lies outside it, and the
// caller skips drawing.
func (p *Provider) Frame(key string, index, width, height int) *ebiten.Image {
	frameKey := fmt.Sprintf("%s#%d", key, index)
	if img, ok := p.frameCache[frameKey]; ok {
		return img
	}

	sheet, err := p.Image(key)
	if err != nil {
		return nil
	}
	src := FrameRect(index, width, height)
	if !src.In(sheet.Bounds()) {
		return nil
	}
	frame := sheet.SubImage(src).(*ebiten.Image)
	p.frameCache[frameKey] = frame
	return frame
}

// FrameRect is the source rectangle of frame index in a horizontal strip.
func FrameRect(index, width, height int) image.Rectangle {
	sx := index * width
	return image.Rect(sx, 0, sx+width, height)
}

var (
	images      = NewProvider(imageFS)
	placeholder *ebiten.Image
)

// Images returns the provider over the embedded sprite sheets.
func Images() *Provider {
	return images
}

// GetFrame returns a character animation frame from the embedded sheets.
func GetFrame(dir string, state config.StateID, frameIndex, width, height int) *ebiten.Image {
	return images.Frame(SheetKey(dir, state), frameIndex, width, height)
}

// GetObjectImage returns an embedded object image, or a placeholder when it
// cannot be loaded.
func GetObjectImage(name string) *ebiten.Image {
	img, err := images.Image(ObjectKey(name))
	if err != nil {
		return Placeholder()
	}
	return img
}

// Placeholder is a small magenta image drawn in place of missing assets.
func Placeholder() *ebiten.Image {
	if placeholder == nil {
		placeholder = ebiten.NewImage(8, 8)
		placeholder.Fill(config.Magenta)
	}
	return placeholder
}

// PreloadAllAnimations decodes every sheet of every species and caches its
// frames so the first frame of a new clip does not stall.
func PreloadAllAnimations() {
	for _, key := range config.SpeciesKeys() {
		s := config.Species[key]
		for state := config.StateID(0); state < config.StateCount; state++ {
			if !s.Clips.Has(state) {
				continue
			}
			for i := 0; i < s.Clips[state].FrameCount; i++ {
				_ = GetFrame(key, state, i, s.FrameWidth, s.FrameHeight)
			}
		}
	}
}

// Package collision resolves character hitboxes against the static geometry
// of a level: solid blocks and one-way platforms.
package collision

import (
	"math"
	"sort"

	"github.com/automoto/pigking/shared/gamemath"
	"github.com/solarlune/resolv"
)

const (
	// Buffer is the gap left between a pushed-out hitbox and the surface it hit.
	Buffer = 0.0001
	// PlatformTolerance is how far a hitbox bottom may be from a platform top
	// and still land on it.
	PlatformTolerance = 5.0
	// ContactProbe is the downward distance used to detect resting contact.
	ContactProbe = 0.01
	// CellSize is the broadphase grid cell size in world units.
	CellSize = 16
)

// Resolv tags for static geometry.
const (
	TagSolid    = "solid"
	TagPlatform = "platform"
)

// Kind identifies the type of static geometry.
type Kind int

const (
	KindBlock Kind = iota
	KindPlatform
)

// shapeRef is stored in resolv.Object.Data to map broadphase hits back to the
// ordered geometry lists.
type shapeRef struct {
	kind  Kind
	index int
}

// Contact describes the outcome of one resolution query.
type Contact struct {
	Hit bool
	// Shift is the displacement along the resolved axis that moves the hitbox
	// out of the surface.
	Shift float64
	// Ground is set when the hitbox ended up standing on the surface.
	Ground  bool
	Surface gamemath.Rect
	Kind    Kind
}

// World holds the static geometry of one level. It is read-only after
// construction and safe to share between all characters.
type World struct {
	blocks    []gamemath.Rect
	platforms []gamemath.Rect

	space   *resolv.Space
	originX float64
	originY float64
}

// NewWorld builds a world from ordered block and platform lists. Iteration
// order is preserved and decides which surface wins when several overlap.
func NewWorld(blocks, platforms []gamemath.Rect) *World {
	w := &World{
		blocks:    append([]gamemath.Rect(nil), blocks...),
		platforms: append([]gamemath.Rect(nil), platforms...),
	}
	w.buildSpace()
	return w
}

func (w *World) buildSpace() {
	if w.Empty() {
		return
	}

	var bounds gamemath.Rect
	first := true
	for _, group := range [][]gamemath.Rect{w.blocks, w.platforms} {
		for _, r := range group {
			if first {
				bounds = r
				first = false
				continue
			}
			bounds = gamemath.Union(bounds, r)
		}
	}

	// The grid starts one cell before the geometry so negative coordinates map
	// to valid cells.
	w.originX = math.Floor(bounds.X/CellSize)*CellSize - CellSize
	w.originY = math.Floor(bounds.Y/CellSize)*CellSize - CellSize
	width := int(math.Ceil(bounds.Right()-w.originX)) + 2*CellSize
	height := int(math.Ceil(bounds.Bottom()-w.originY)) + 2*CellSize

	w.space = resolv.NewSpace(width, height, CellSize, CellSize)
	for i, r := range w.blocks {
		w.addShape(r, TagSolid, shapeRef{kind: KindBlock, index: i})
	}
	for i, r := range w.platforms {
		w.addShape(r, TagPlatform, shapeRef{kind: KindPlatform, index: i})
	}
}

func (w *World) addShape(r gamemath.Rect, tag string, ref shapeRef) {
	if r.Empty() {
		return
	}
	obj := resolv.NewObject(r.X-w.originX, r.Y-w.originY, r.Width, r.Height, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.Width, r.Height))
	obj.Data = ref
	w.space.Add(obj)
}

// Empty reports whether the world has no geometry at all.
func (w *World) Empty() bool {
	return len(w.blocks) == 0 && len(w.platforms) == 0
}

func (w *World) Blocks() []gamemath.Rect    { return w.blocks }
func (w *World) Platforms() []gamemath.Rect { return w.platforms }

// Space exposes the broadphase grid for debug drawing. Object coordinates are
// relative to Origin.
func (w *World) Space() *resolv.Space { return w.space }

func (w *World) Origin() gamemath.Vector2 {
	return gamemath.Vector2{X: w.originX, Y: w.originY}
}

// candidates returns the indices of shapes of the given kind whose grid cells
// touch r, in ascending (insertion) order.
func (w *World) candidates(r gamemath.Rect, kind Kind) []int {
	if w.space == nil {
		return nil
	}

	minCX, minCY := w.space.WorldToSpace(r.X-w.originX, r.Y-w.originY)
	maxCX, maxCY := w.space.WorldToSpace(r.Right()-w.originX, r.Bottom()-w.originY)

	seen := make(map[int]struct{})
	var out []int
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			cell := w.space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				ref, ok := obj.Data.(shapeRef)
				if !ok || ref.kind != kind {
					continue
				}
				if _, dup := seen[ref.index]; dup {
					continue
				}
				seen[ref.index] = struct{}{}
				out = append(out, ref.index)
			}
		}
	}
	sort.Ints(out)
	return out
}

func (w *World) shape(kind Kind, index int) gamemath.Rect {
	if kind == KindPlatform {
		return w.platforms[index]
	}
	return w.blocks[index]
}

// firstOverlap returns the first shape of the given kind overlapping r.
func (w *World) firstOverlap(r gamemath.Rect, kind Kind) (gamemath.Rect, bool) {
	for _, i := range w.candidates(r, kind) {
		s := w.shape(kind, i)
		if gamemath.Overlaps(r, s) {
			return s, true
		}
	}
	return gamemath.Rect{}, false
}

// ResolveHorizontal pushes hitbox out of the first overlapping block along
// the direction of vx. Only the first block in iteration order is resolved
// per call, which can leave a hitbox inside a second block; this mirrors the
// original behaviour and is a known limitation.
func (w *World) ResolveHorizontal(hitbox gamemath.Rect, vx float64) Contact {
	if vx == 0 {
		return Contact{}
	}
	block, ok := w.firstOverlap(hitbox, KindBlock)
	if !ok {
		return Contact{}
	}

	c := Contact{Hit: true, Surface: block, Kind: KindBlock}
	if vx > 0 {
		c.Shift = block.X - hitbox.Width - Buffer - hitbox.X
	} else {
		c.Shift = block.Right() + Buffer - hitbox.X
	}
	return c
}

// ResolveVertical pushes hitbox out of the first overlapping block along the
// direction of vy. Downward hits report Ground.
func (w *World) ResolveVertical(hitbox gamemath.Rect, vy float64) Contact {
	if vy == 0 {
		return Contact{}
	}
	block, ok := w.firstOverlap(hitbox, KindBlock)
	if !ok {
		return Contact{}
	}

	c := Contact{Hit: true, Surface: block, Kind: KindBlock}
	if vy > 0 {
		c.Shift = block.Y - hitbox.Height - Buffer - hitbox.Y
		c.Ground = true
	} else {
		c.Shift = block.Bottom() + Buffer - hitbox.Y
	}
	return c
}

// ResolvePlatforms lands a falling hitbox on the first platform whose top is
// within PlatformTolerance of the hitbox bottom. Rising or level hitboxes pass
// through.
func (w *World) ResolvePlatforms(hitbox gamemath.Rect, vy float64) Contact {
	if vy <= 0 {
		return Contact{}
	}

	query := hitbox
	query.Y -= PlatformTolerance
	query.Height += 2 * PlatformTolerance

	for _, i := range w.candidates(query, KindPlatform) {
		p := w.platforms[i]
		if !overlapsX(hitbox, p) {
			continue
		}
		if math.Abs(hitbox.Bottom()-p.Y) > PlatformTolerance {
			continue
		}
		return Contact{
			Hit:     true,
			Shift:   p.Y - hitbox.Height - Buffer - hitbox.Y,
			Ground:  true,
			Surface: p,
			Kind:    KindPlatform,
		}
	}
	return Contact{}
}

// Supported reports whether hitbox is resting on a block or platform, that
// is, whether moving it down by ContactProbe would touch one.
func (w *World) Supported(hitbox gamemath.Rect) bool {
	probe := hitbox.Translate(0, ContactProbe)
	if _, ok := w.firstOverlap(probe, KindBlock); ok {
		return true
	}
	for _, i := range w.candidates(probe, KindPlatform) {
		p := w.platforms[i]
		if overlapsX(hitbox, p) && hitbox.Bottom() <= p.Y && probe.Bottom() > p.Y {
			return true
		}
	}
	return false
}

func overlapsX(a, b gamemath.Rect) bool {
	return a.X < b.Right() && a.Right() > b.X
}

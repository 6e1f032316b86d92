package gamemath

// Vector2 is a 2D position or velocity.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

func (r Rect) Center() Vector2 {
	return Vector2{X: r.CenterX(), Y: r.CenterY()}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Overlaps reports whether r and o share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return Overlaps(r, o)
}

// Overlaps uses strict inequalities, so rects that only touch along an edge
// do not overlap. Zero-area rects never overlap anything, even when they lie
// inside another rect.
func Overlaps(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Union returns the smallest rect containing both a and b.
func Union(a, b Rect) Rect {
	minX := min(a.X, b.X)
	minY := min(a.Y, b.Y)
	maxX := max(a.Right(), b.Right())
	maxY := max(a.Bottom(), b.Bottom())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

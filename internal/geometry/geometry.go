// Package geometry provides the rectangle math shared by every engine.
// All coordinates are top-down screen coordinates (X11 convention) and
// carried as float64 so tolerance comparisons absorb fractional-pixel
// values from display scaling.
package geometry

import "fmt"

// Rect describes a window or screen frame in screen coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// MaxX returns the right edge coordinate.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge coordinate.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// CenterX returns the horizontal center coordinate.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center coordinate.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether the point (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.MaxX() <= r.MaxX() && o.MaxY() <= r.MaxY()
}

// Intersects reports whether the two rectangles overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// ApproxEq reports whether all four components match within tol.
func (r Rect) ApproxEq(o Rect, tol float64) bool {
	return Approx(r.X, o.X, tol) && Approx(r.Y, o.Y, tol) &&
		Approx(r.W, o.W, tol) && Approx(r.H, o.H, tol)
}

func (r Rect) String() string {
	return fmt.Sprintf("{%.0f,%.0f %.0fx%.0f}", r.X, r.Y, r.W, r.H)
}

// Approx reports whether a and b differ by at most tol.
func Approx(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FitInto clamps a frame so it lies within bounds, shrinking it when it
// is larger than the bounds on either axis.
func FitInto(f, bounds Rect) Rect {
	if f.W > bounds.W {
		f.W = bounds.W
	}
	if f.H > bounds.H {
		f.H = bounds.H
	}
	f.X = Clamp(f.X, bounds.X, bounds.MaxX()-f.W)
	f.Y = Clamp(f.Y, bounds.Y, bounds.MaxY()-f.H)
	return f
}

// Direction is one of the four step axes every operation is keyed on.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Horizontal reports whether the direction runs along the x axis.
func (d Direction) Horizontal() bool { return d == DirLeft || d == DirRight }

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	default:
		return "down"
	}
}

// ParseDirection converts a CLI/config token to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want left, right, up or down)", s)
}

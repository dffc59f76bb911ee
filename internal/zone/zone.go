// Package zone projects plate coordinates (feet, catcher's view) into the
// pixel space of a square plotting box and derives the strike-zone geometry
// for that box. Every box size gets its own Geometry; nothing is cached
// between sizes.
package zone

// Viewable window in feet. It is 3x3 by construction.
const (
	ViewXMin = -1.5
	ViewXMax = 1.5
	ViewZMin = 1.0
	ViewZMax = 4.0
)

// Strike zone bounds in feet.
const (
	ZoneXMin = -0.83
	ZoneXMax = 0.83
	ZoneZMin = 1.5
	ZoneZMax = 3.5
)

// Point is a pixel position inside the box. Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a pixel rectangle anchored at its top-left corner.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Line is a gridline segment.
type Line struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Geometry is the derived plotting geometry for one box size.
type Geometry struct {
	BoxSize float64 `json:"box_size"`
	ScaleX  float64 `json:"scale_x"`
	ScaleZ  float64 `json:"scale_z"`
	Zone    Rect    `json:"zone"`
}

// ForBox computes the geometry for a box of size pixels on each side.
func ForBox(size float64) Geometry {
	g := Geometry{
		BoxSize: size,
		ScaleX:  size / (ViewXMax - ViewXMin),
		ScaleZ:  size / (ViewZMax - ViewZMin),
	}
	g.Zone = Rect{
		Left:   (ZoneXMin - ViewXMin) * g.ScaleX,
		Top:    (ViewZMax - ZoneZMax) * g.ScaleZ,
		Width:  (ZoneXMax - ZoneXMin) * g.ScaleX,
		Height: (ZoneZMax - ZoneZMin) * g.ScaleZ,
	}
	return g
}

// Project maps plate coordinates to pixels. Points outside the viewable
// window project outside the box; callers decide whether to clip.
func (g Geometry) Project(plateX, plateZ float64) Point {
	return Point{
		X: (plateX - ViewXMin) * g.ScaleX,
		Y: (ViewZMax - plateZ) * g.ScaleZ,
	}
}

// Gridlines returns the two horizontal then two vertical lines that split
// the zone into a 3x3 grid.
func (g Geometry) Gridlines() []Line {
	z := g.Zone
	lines := make([]Line, 0, 4)
	for i := 1; i <= 2; i++ {
		y := z.Top + z.Height*float64(i)/3
		lines = append(lines, Line{From: Point{z.Left, y}, To: Point{z.Left + z.Width, y}})
	}
	for i := 1; i <= 2; i++ {
		x := z.Left + z.Width*float64(i)/3
		lines = append(lines, Line{From: Point{x, z.Top}, To: Point{x, z.Top + z.Height}})
	}
	return lines
}

// InWindow reports whether the plate position lies inside the viewable window.
func InWindow(plateX, plateZ float64) bool {
	return plateX >= ViewXMin && plateX <= ViewXMax && plateZ >= ViewZMin && plateZ <= ViewZMax
}

// Project is shorthand for ForBox(size).Project.
func Project(plateX, plateZ, size float64) Point {
	return ForBox(size).Project(plateX, plateZ)
}

package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

var boxSizes = []float64{1, 200, 250, 300, 700, 1234.5}

func TestZoneGeometryRatios(t *testing.T) {
	for _, s := range boxSizes {
		g := ForBox(s)
		assert.InDelta(t, s*(1.66/3.0), g.Zone.Width, tol, "width for %v", s)
		assert.InDelta(t, s*(2.0/3.0), g.Zone.Height, tol, "height for %v", s)
		assert.InDelta(t, s/3.0, g.ScaleX, tol)
		assert.InDelta(t, s/3.0, g.ScaleZ, tol)
	}
}

func TestZoneGeometryDashboard(t *testing.T) {
	g := ForBox(300)
	assert.InDelta(t, 67.0, g.Zone.Left, tol)
	assert.InDelta(t, 50.0, g.Zone.Top, tol)
	assert.InDelta(t, 166.0, g.Zone.Width, tol)
	assert.InDelta(t, 200.0, g.Zone.Height, tol)
}

func TestProjectCenter(t *testing.T) {
	for _, s := range boxSizes {
		p := Project(0, 2.5, s)
		assert.InDelta(t, s/2, p.X, tol)
		assert.InDelta(t, s/2, p.Y, tol)
	}
}

func TestProjectAxes(t *testing.T) {
	g := ForBox(300)

	corner := g.Project(ViewXMin, ViewZMax)
	assert.InDelta(t, 0, corner.X, tol)
	assert.InDelta(t, 0, corner.Y, tol)

	high := g.Project(0, 3.5)
	low := g.Project(0, 1.5)
	assert.Less(t, high.Y, low.Y, "higher pitches plot nearer the top")

	outside := g.Project(-2.0, 2.0)
	assert.Less(t, outside.X, 0.0)
	assert.False(t, InWindow(-2.0, 2.0))
	assert.True(t, InWindow(0, 2.5))
}

func TestGeometryPerBoxSize(t *testing.T) {
	small := ForBox(200)
	large := ForBox(300)
	assert.NotEqual(t, small.Zone, large.Zone)
	assert.InDelta(t, 1.5, large.Zone.Width/small.Zone.Width, tol)
}

func TestGridlines(t *testing.T) {
	g := ForBox(300)
	lines := g.Gridlines()
	require.Len(t, lines, 4)

	z := g.Zone
	assert.InDelta(t, z.Top+z.Height/3, lines[0].From.Y, tol)
	assert.InDelta(t, z.Top+2*z.Height/3, lines[1].From.Y, tol)
	assert.InDelta(t, z.Left+z.Width, lines[0].To.X, tol)
	assert.InDelta(t, z.Left+z.Width/3, lines[2].From.X, tol)
	assert.InDelta(t, z.Left+2*z.Width/3, lines[3].From.X, tol)
	assert.InDelta(t, z.Top+z.Height, lines[3].To.Y, tol)
}

package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isoline/internal/core"
)

func TestExportUniformGrids(t *testing.T) {
	g := core.NewScalarGrid(4, 3, 5)

	g.Fill(4)
	img := Export(g, 6)
	require.Equal(t, image.Rect(0, 0, 24, 18), img.Bounds())
	for _, p := range img.Pix {
		require.Equal(t, uint8(255), p)
	}

	g.Fill(0)
	img = Export(g, 6)
	for _, p := range img.Pix {
		require.Equal(t, uint8(0), p)
	}
}

func TestExportPaintsCenteredSquares(t *testing.T) {
	g := core.NewScalarGrid(2, 2, 3)
	require.NoError(t, g.Set(1, 1, 2))
	require.NoError(t, g.Set(2, 0, 1))
	img := Export(g, 4)

	// Point (1,1) owns pixels [2,6)x[2,6).
	assert.Equal(t, uint8(255), img.GrayAt(2, 2).Y)
	assert.Equal(t, uint8(255), img.GrayAt(5, 5).Y)
	assert.Equal(t, uint8(0), img.GrayAt(1, 2).Y)
	assert.Equal(t, uint8(0), img.GrayAt(6, 5).Y)
	// Point (2,0) is clipped to [6,8)x[0,2).
	assert.Equal(t, uint8(128), img.GrayAt(7, 0).Y)
	assert.Equal(t, uint8(128), img.GrayAt(6, 1).Y)
	assert.Equal(t, uint8(0), img.GrayAt(7, 2).Y)
}

func TestIntensity(t *testing.T) {
	assert.Equal(t, uint8(0), Intensity(0, 4))
	assert.Equal(t, uint8(85), Intensity(1, 4))
	assert.Equal(t, uint8(170), Intensity(2, 4))
	assert.Equal(t, uint8(255), Intensity(3, 4))
	assert.Equal(t, uint8(255), Intensity(9, 4))
	assert.Equal(t, uint8(0), Intensity(-1, 4))
}

func TestExportLeavesGridUntouched(t *testing.T) {
	g := core.NewScalarGrid(3, 3, 4)
	require.NoError(t, g.Set(1, 2, 3))
	before := g.Values()
	Export(g, 5)
	assert.Equal(t, before, g.Values())
}

func TestSavePNG(t *testing.T) {
	g := core.NewScalarGrid(2, 1, 2)
	g.Fill(1)
	path := filepath.Join(t.TempDir(), OutputPath)
	require.NoError(t, SavePNG(path, Export(g, 3)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 3), decoded.Bounds())
	assert.Equal(t, color.GrayModel.Convert(decoded.At(4, 2)), color.Gray{Y: 255})
}

func TestSavePNGReportsUnwritablePath(t *testing.T) {
	err := SavePNG(filepath.Join(t.TempDir(), "missing", "output.png"), image.NewGray(image.Rect(0, 0, 1, 1)))
	assert.Error(t, err)
}

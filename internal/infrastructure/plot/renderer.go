package plot

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var royalBlue = color.RGBA{R: 65, G: 105, B: 225, A: 255}

// Renderer draws close-price line charts with gonum/plot.
type Renderer struct {
	timeFormat string
}

// Ensure Renderer implements v1.ChartRenderer interface
var _ v1.ChartRenderer = (*Renderer)(nil)

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{timeFormat: "2006-01-02"}
}

// Render draws points as a single line and writes the image to spec.Path.
// The image format follows the path extension. The file is replaced
// atomically, so a failed render never leaves a partial file behind.
func (r *Renderer) Render(points []*v1.ClosePoint, spec v1.ChartSpec) error {
	if len(points) == 0 {
		return fmt.Errorf("no points to render")
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: r.timeFormat}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Timestamp.Unix())
		xys[i].Y = pt.Close
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("failed to build line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = royalBlue

	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Vertical.Dashes = dashes
	grid.Horizontal.Dashes = dashes
	grid.Vertical.Color = color.Gray{Y: 200}
	grid.Horizontal.Color = color.Gray{Y: 200}

	p.Add(grid, line)

	format := strings.TrimPrefix(filepath.Ext(spec.Path), ".")
	if format == "" {
		format = "png"
	}

	writer, err := p.WriterTo(vg.Length(spec.Width)*vg.Inch, vg.Length(spec.Height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("failed to create %s writer: %w", format, err)
	}

	return writeAtomic(spec.Path, func(f *os.File) error {
		_, err := writer.WriteTo(f)
		return err
	})
}

func writeAtomic(path string, write func(f *os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Package main renders direction-cosine scatter plots. It reads u,v rows as
// produced by the dircos tool and writes a PNG of the points inside the unit
// circle, the visible region of direction-cosine space.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	var (
		input  = flag.String("input", "", "CSV file of u,v rows (- for stdin)")
		output = flag.String("output", "uv.png", "Output PNG path")
		title  = flag.String("title", "Direction cosines", "Plot title")
		header = flag.Bool("header", false, "Input has a header row")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("input CSV is required (use -input, or -input - for stdin)")
	}

	pts, err := readUV(*input, *header)
	if err != nil {
		log.Fatalf("Failed to read u,v data: %v", err)
	}
	if len(pts) == 0 {
		log.Fatal("no points to plot")
	}

	p := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "u"
	p.Y.Label.Text = "v"
	p.X.Min, p.X.Max = -1.1, 1.1
	p.Y.Min, p.Y.Max = -1.1, 1.1

	ring, err := plotter.NewLine(unitCircle(256))
	if err != nil {
		log.Fatalf("Failed to build unit circle: %v", err)
	}
	ring.Color = color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}
	ring.Width = vg.Points(1)
	p.Add(ring)
	p.Legend.Add("u²+v²=1", ring)

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		log.Fatalf("Failed to build scatter: %v", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(2)
	scatter.GlyphStyle.Color = color.RGBA{R: 0x2B, G: 0x6C, B: 0xB0, A: 0xFF}
	p.Add(scatter)

	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(6*vg.Inch, 6*vg.Inch, *output); err != nil {
		log.Fatalf("Failed to save plot: %v", err)
	}

	log.Printf("Plotted %d points to %s", len(pts), *output)
}

// readUV parses u,v records from the named CSV file, or stdin for "-".
// Rows with more than two fields (e.g. u,v,w output) keep only u and v.
func readUV(path string, header bool) (plotter.XYs, error) {
	var src io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	if header && len(records) > 0 {
		records = records[1:]
	}

	pts := make(plotter.XYs, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: expected at least 2 fields, got %d", i+1, len(rec))
		}
		u, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d u %q: %w", i+1, rec[0], err)
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d v %q: %w", i+1, rec[1], err)
		}
		pts = append(pts, plotter.XY{X: u, Y: v})
	}
	return pts, nil
}

// unitCircle samples the u²+v²=1 boundary as a closed polyline.
func unitCircle(n int) plotter.XYs {
	pts := make(plotter.XYs, n+1)
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = plotter.XY{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return pts
}

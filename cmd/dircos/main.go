// Package main provides a batch converter from Cartesian target positions to
// direction cosines. It reads x,y,z rows from a CSV file and writes u,v or
// u,v,w rows for a single receiver pose given on the command line.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/beamline-sensing/dircos"
	"gonum.org/v1/gonum/spatial/r3"
)

// Config holds the converter settings parsed from flags.
type Config struct {
	Input    string
	Output   string
	Receiver r3.Vec
	YawDeg   float64
	PitchDeg float64
	RollDeg  float64
	IncludeW bool
	Header   bool
}

func main() {
	cfg := parseFlags()

	if cfg.Input == "" {
		log.Fatal("input CSV is required (use -input, or -input - for stdin)")
	}

	points, err := readPoints(cfg.Input, cfg.Header)
	if err != nil {
		log.Fatalf("Failed to read points: %v", err)
	}

	pose := dircos.ReceiverPose{
		Position: cfg.Receiver,
		Rotation: dircos.EulerZYX(degToRad(cfg.YawDeg), degToRad(cfg.PitchDeg), degToRad(cfg.RollDeg)),
	}
	if err := pose.Validate(); err != nil {
		log.Fatalf("Invalid receiver pose: %v", err)
	}

	rows, err := convert(points, pose, cfg.IncludeW)
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	out := os.Stdout
	if cfg.Output != "" && cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	if err := writeRows(out, rows, cfg.IncludeW, cfg.Header); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	log.Printf("Converted %d points", len(points))
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.Input, "input", "", "CSV file of x,y,z target positions (- for stdin)")
	flag.StringVar(&cfg.Output, "output", "", "Output CSV file (default stdout)")
	flag.Float64Var(&cfg.Receiver.X, "rx", 0, "Receiver X position")
	flag.Float64Var(&cfg.Receiver.Y, "ry", 0, "Receiver Y position")
	flag.Float64Var(&cfg.Receiver.Z, "rz", 0, "Receiver Z position")
	flag.Float64Var(&cfg.YawDeg, "yaw", 0, "Receiver yaw about Z (degrees)")
	flag.Float64Var(&cfg.PitchDeg, "pitch", 0, "Receiver pitch about Y (degrees)")
	flag.Float64Var(&cfg.RollDeg, "roll", 0, "Receiver roll about X (degrees)")
	flag.BoolVar(&cfg.IncludeW, "w", false, "Emit the third component w as well")
	flag.BoolVar(&cfg.Header, "header", false, "Input has a header row; write one on output too")

	flag.Parse()
	return cfg
}

// convert runs the batch conversion and flattens the result into CSV rows.
func convert(points []r3.Vec, pose dircos.ReceiverPose, includeW bool) ([][]string, error) {
	opt := dircos.Options{
		Positions: []r3.Vec{pose.Position},
		Rotations: []*r3.Mat{pose.Rotation},
	}

	rows := make([][]string, 0, len(points))
	if includeW {
		out, err := dircos.ConvertUVW(points, opt)
		if err != nil {
			return nil, err
		}
		for _, dc := range out {
			rows = append(rows, []string{formatCosine(dc.U), formatCosine(dc.V), formatCosine(dc.W)})
		}
		return rows, nil
	}

	out, err := dircos.ConvertUV(points, opt)
	if err != nil {
		return nil, err
	}
	for _, dc := range out {
		rows = append(rows, []string{formatCosine(dc.U), formatCosine(dc.V)})
	}
	return rows, nil
}

// readPoints parses x,y,z records from the named CSV file, or stdin for "-".
func readPoints(path string, header bool) ([]r3.Vec, error) {
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
	r.FieldsPerRecord = 3

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	if header && len(records) > 0 {
		records = records[1:]
	}

	points := make([]r3.Vec, 0, len(records))
	for i, rec := range records {
		p, err := parsePoint(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// parsePoint converts one x,y,z CSV record into a vector.
func parsePoint(record []string) (r3.Vec, error) {
	if len(record) != 3 {
		return r3.Vec{}, fmt.Errorf("expected 3 fields, got %d", len(record))
	}

	var vals [3]float64
	for i, field := range record {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("field %d %q: %w", i+1, field, err)
		}
		vals[i] = v
	}
	return r3.Vec{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

func writeRows(dst io.Writer, rows [][]string, includeW, header bool) error {
	w := csv.NewWriter(dst)
	if header {
		cols := []string{"u", "v"}
		if includeW {
			cols = append(cols, "w")
		}
		if err := w.Write(cols); err != nil {
			return err
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func formatCosine(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Package cpt implements a reader for color palette tables
// (CPT files), the piecewise-linear gradient format used by generic
// mapping tools.
// A table is a list of interpolation segments: every data row holds
// the two end control points of one segment. Special rows starting
// with B, F or N declare background, foreground and missing-data
// colors and are not part of the gradient itself.
package cpt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ColorModel identifies the color space of the control point
// channels of a table.
type ColorModel uint8

const (
	// RGB channels, 0 to 255
	RGB ColorModel = iota
	// HSV: hue 0 to 360, saturation and value 0 to 1
	HSV
)

// ControlPoint is one (position, color) pair of a palette.
// The channels are red, green, blue for an RGB table, and hue,
// saturation, value for an HSV one.
type ControlPoint struct {
	Pos     float64
	R, G, B float64
}

// Palette is a parsed table: an ordered list of control points
// sharing one color model. Positions are kept unnormalized, as read
// from the file; see Colormap for the normalized gradient.
type Palette struct {
	Model  ColorModel
	Points []ControlPoint
}

// ParseError describes an invalid CPT table.
type ParseError struct {
	Line   int // 1-based, or 0 when the whole table is at fault
	Reason string
}

func (e ParseError) Error() string {
	if e.Line == 0 {
		return "cpt: " + e.Reason
	}
	return fmt.Sprintf("cpt: line %d: %s", e.Line, e.Reason)
}

// back/fore/NaN rows, configuring out-of-range colors
var sentinels = map[string]bool{"B": true, "F": true, "N": true}

// Read parses a CPT table from stream.
// Comment lines start with #; a comment containing the HSV token
// switches the color model for the whole table. Data rows hold the
// eight fields pos0 r0 g0 b0 pos1 r1 g1 b1. Rows must be sorted by
// position, and the table must span a non empty position range.
func Read(stream io.Reader) (*Palette, error) {
	pal := &Palette{Model: RGB}
	scanner := bufio.NewScanner(stream)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if strings.Contains(line, "HSV") {
				pal.Model = HSV
			}
			continue
		}
		fields := strings.Fields(line)
		if sentinels[fields[0]] {
			continue
		}
		if len(fields) != 8 {
			return nil, ParseError{lineNo, fmt.Sprintf("expected 8 fields, got %d", len(fields))}
		}
		var row [8]float64
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, ParseError{lineNo, "invalid number " + field}
			}
			row[i] = v
		}
		if row[4] < row[0] {
			return nil, ParseError{lineNo, "segment end before its start"}
		}
		if last := len(pal.Points) - 1; last >= 0 && row[0] < pal.Points[last].Pos {
			return nil, ParseError{lineNo, "rows are not sorted by position"}
		}
		pal.Points = append(pal.Points,
			ControlPoint{row[0], row[1], row[2], row[3]},
			ControlPoint{row[4], row[5], row[6], row[7]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(pal.Points) == 0 {
		return nil, ParseError{0, "no data rows"}
	}
	if min, max := pal.posRange(); min == max {
		return nil, ParseError{0, "degenerate position range"}
	}
	return pal, nil
}

// ReadFile parses the CPT table in the named file.
func ReadFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pal, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("cpt: reading %s: %w", path, err)
	}
	return pal, nil
}

func (p *Palette) posRange() (min, max float64) {
	min, max = p.Points[0].Pos, p.Points[0].Pos
	for _, pt := range p.Points[1:] {
		if pt.Pos < min {
			min = pt.Pos
		}
		if pt.Pos > max {
			max = pt.Pos
		}
	}
	return min, max
}

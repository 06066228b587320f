// Package heatmap turns recorded pointer activity into a heat overlay on a
// page screenshot.
//
// Recordings use the CSV layout produced by the site's pointer tracker: a
// "Width,Height" header with the viewport size, then a "Mouse Movements"
// section and a "Mouse Clicks" section of x,y,time rows.
package heatmap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedRecording is returned when a recording cannot be parsed.
var ErrMalformedRecording = errors.New("malformed pointer recording")

// Point is one pointer sample in viewport pixels. Time is unix millis.
type Point struct {
	X    int
	Y    int
	Time int64
}

// Recording is a parsed tracker export.
type Recording struct {
	Width  int
	Height int
	Moves  []Point
	Clicks []Point
}

const (
	sectionMoves  = "Mouse Movements"
	sectionClicks = "Mouse Clicks"
)

// ParseRecording reads a tracker export.
func ParseRecording(r io.Reader) (Recording, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rec Recording
	var section *[]Point
	sawSize := false
	line := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Recording{}, fmt.Errorf("%w: %v", ErrMalformedRecording, err)
		}
		line++
		first := strings.TrimSpace(fields[0])
		switch {
		case first == "":
			continue
		case strings.EqualFold(first, "Width"), strings.EqualFold(first, "x"):
			continue
		case first == sectionMoves:
			section = &rec.Moves
			continue
		case first == sectionClicks:
			section = &rec.Clicks
			continue
		}

		if !sawSize {
			width, height, err := parsePair(fields)
			if err != nil {
				return Recording{}, fmt.Errorf("%w: line %d: viewport size: %v", ErrMalformedRecording, line, err)
			}
			rec.Width, rec.Height = width, height
			sawSize = true
			continue
		}
		if section == nil {
			return Recording{}, fmt.Errorf("%w: line %d: sample outside a section", ErrMalformedRecording, line)
		}
		p, err := parsePoint(fields)
		if err != nil {
			return Recording{}, fmt.Errorf("%w: line %d: %v", ErrMalformedRecording, line, err)
		}
		*section = append(*section, p)
	}
	if !sawSize {
		return Recording{}, fmt.Errorf("%w: missing viewport size", ErrMalformedRecording)
	}
	return rec, nil
}

func parsePair(fields []string) (int, int, error) {
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	a, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parsePoint(fields []string) (Point, error) {
	if len(fields) < 3 {
		return Point{}, fmt.Errorf("want x,y,time, got %d fields", len(fields))
	}
	x, y, err := parsePair(fields)
	if err != nil {
		return Point{}, err
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y, Time: ts}, nil
}

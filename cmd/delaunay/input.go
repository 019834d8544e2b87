package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read newline separated "x y" points, as a flat coordinate list. Blank lines
// and lines starting with # are skipped.
func readPoints(in io.Reader) ([]float64, error) {
	var coordinates []float64
	scanner := bufio.NewScanner(in)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected 2 values, got %d", lineNumber, len(fields))
		}
		for _, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			coordinates = append(coordinates, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return coordinates, nil
}

// Read the centers of every <circle> in an SVG document, as a flat coordinate
// list.
func readSVGPoints(in io.Reader) ([]float64, error) {
	root, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	circles := root.FindAll("circle")
	coordinates := make([]float64, 0, 2*len(circles))
	for i, circle := range circles {
		for _, attribute := range []string{"cx", "cy"} {
			value, err := strconv.ParseFloat(circle.Attributes[attribute], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "circle %d: invalid %s", i, attribute)
			}
			coordinates = append(coordinates, value)
		}
	}
	return coordinates, nil
}

// Parse an "X,Y" sample query.
func parseSample(s string) (x, y float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("sample %q: expected X,Y", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, errors.Wrapf(err, "sample %q", s)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, errors.Wrapf(err, "sample %q", s)
	}
	return x, y, nil
}

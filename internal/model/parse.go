package model

import (
	"regexp"
	"strconv"
	"strings"
)

// lineRe matches one element line of a debug description: indentation, a type
// name, a hex handle, an optional middle segment (main-window marker, traits),
// the geometry quadruple, and an optional trailing extras clause.
var lineRe = regexp.MustCompile(
	`^( +)([A-Za-z]+) 0x([0-9a-fA-F]+): (.*?)\{\{(-?[0-9.]+), (-?[0-9.]+)\}, \{(-?[0-9.]+), (-?[0-9.]+)\}\}(?:, (.*))?$`)

// traitsRe matches the trait bit-flags fragment in the middle segment.
var traitsRe = regexp.MustCompile(`traits: ([0-9]+)`)

// extraRe matches one named extras sub-field like "label: 'OK'".
var extraRe = regexp.MustCompile(`([A-Za-z]+): '([^']*)'`)

// mainWindowMarker designates the main window in the middle segment.
const mainWindowMarker = "Main Window"

// ParseLine converts one line of a debug description into an element.
// Malformed lines return nil; this is a signal to the caller, not an error.
func ParseLine(line string) *ElementNode {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	depth := len(m[1])/2 - 1
	if depth < 0 {
		return nil
	}

	handle, err := strconv.ParseUint(m[3], 16, 64)
	if err != nil {
		return nil
	}

	var geom [4]float64
	for i, s := range m[5:9] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		geom[i] = v
	}

	el := &ElementNode{
		Raw:    line,
		Depth:  depth,
		Type:   m[2],
		Handle: handle,
		Geometry: Geometry{
			X:      geom[0],
			Y:      geom[1],
			Width:  geom[2],
			Height: geom[3],
		},
	}

	middle := m[4]
	el.MainWindow = strings.Contains(middle, mainWindowMarker)
	if tm := traitsRe.FindStringSubmatch(middle); tm != nil {
		// Digits only, so the parse cannot fail short of overflow.
		el.Traits, _ = strconv.ParseUint(tm[1], 10, 64)
	}

	for _, em := range extraRe.FindAllStringSubmatch(m[9], -1) {
		switch em[1] {
		case "label":
			el.Label = em[2]
		case "identifier":
			el.Identifier = em[2]
		case "value":
			el.Value = em[2]
		case "placeholderValue":
			el.PlaceholderValue = em[2]
		}
	}

	return el
}

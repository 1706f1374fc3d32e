package cubfile

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"gridcaster/internal/raycast"
)

type headerID int

const (
	idNorth headerID = iota
	idSouth
	idWest
	idEast
	idFloor
	idCeiling
	headerCount
)

type headerEntry struct {
	key string
	id  headerID
}

// headerTable lists the scene identifiers. The four texture entries share
// their numeric value with raycast.Direction.
var headerTable = [headerCount]headerEntry{
	{"NO", idNorth},
	{"SO", idSouth},
	{"WE", idWest},
	{"EA", idEast},
	{"F", idFloor},
	{"C", idCeiling},
}

// header accumulates the six identifiers that precede the map.
type header struct {
	set      [headerCount]bool
	textures [4]string
	floor    [3]uint8
	ceiling  [3]uint8
}

// lookupHeader returns the entry whose key opens line, followed by
// whitespace, and the remaining value.
func lookupHeader(line string) (headerEntry, string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	for _, e := range headerTable {
		if !strings.HasPrefix(trimmed, e.key) {
			continue
		}
		rest := trimmed[len(e.key):]
		if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		return e, rest, true
	}
	return headerEntry{}, "", false
}

// parseLine stores one header line.
func (h *header) parseLine(e headerEntry, value string) error {
	if h.set[e.id] {
		return fmt.Errorf("%w: %s", ErrDuplicateHeader, e.key)
	}
	switch e.id {
	case idFloor, idCeiling:
		rgb, err := ParseRGB(value)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		if e.id == idFloor {
			h.floor = rgb
		} else {
			h.ceiling = rgb
		}
	default:
		path := strings.TrimSpace(value)
		if path == "" {
			return fmt.Errorf("%s: %w", e.key, ErrEmptyTexturePath)
		}
		h.textures[e.id] = path
	}
	h.set[e.id] = true
	return nil
}

// complete reports every missing identifier at once.
func (h *header) complete() error {
	var err error
	for _, e := range headerTable {
		if !h.set[e.id] {
			err = multierr.Append(err, fmt.Errorf("%w: %s", ErrMissingHeader, e.key))
		}
	}
	return err
}

// ParseRGB parses "R,G,B" with each component in 0-255.
func ParseRGB(value string) ([3]uint8, error) {
	var rgb [3]uint8
	parts := strings.Split(strings.TrimSpace(value), ",")
	if len(parts) != 3 {
		return rgb, fmt.Errorf("%w: %q", ErrBadColor, value)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return rgb, fmt.Errorf("%w: %q", ErrBadColor, value)
		}
		rgb[i] = uint8(n)
	}
	return rgb, nil
}

func packRGB(c [3]uint8) uint32 {
	return raycast.PackRGB(c[0], c[1], c[2])
}

// Package cubfile reads and validates .cub scene descriptions: four wall
// texture paths, floor and ceiling colors, and a map with one player start.
package cubfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gridcaster/internal/raycast"
)

// Scene is a fully validated scene. The start marker has already been
// replaced by an open cell.
type Scene struct {
	Grid  *raycast.CellGrid
	Start raycast.Pose
	// TexturePaths is indexed by raycast.Direction.
	TexturePaths [4]string
	Colors       raycast.Colors
	// Rows is the normalized map, padded with spaces to a rectangle.
	Rows []string
}

// ValidatePath checks the scene file name before anything is read.
func ValidatePath(path string) error {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return fmt.Errorf("%q: %w", path, ErrHiddenFile)
	}
	if len(base) < len("x.cub") {
		return fmt.Errorf("%q: %w", path, ErrShortName)
	}
	if filepath.Ext(base) != ".cub" {
		return fmt.Errorf("%q: %w", path, ErrExtension)
	}
	return nil
}

// Load validates the file name, parses the scene, and resolves texture
// paths relative to the scene's directory. Every texture file must exist.
func Load(path string) (*Scene, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene: %w", err)
	}
	defer f.Close()
	scene, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	dir := filepath.Dir(path)
	for d, p := range scene.TexturePaths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("%s texture: %w", raycast.Direction(d), err)
		}
		scene.TexturePaths[d] = p
	}
	return scene, nil
}

// Parse reads a scene from r. Header lines come first in any order, blank
// lines between them are ignored, and the first line that is not a header
// starts the map.
func Parse(r io.Reader) (*Scene, error) {
	var (
		h       header
		mapRows []string
		inMap   bool
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if inMap {
			mapRows = append(mapRows, line)
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if e, value, ok := lookupHeader(line); ok {
			if err := h.parseLine(e, value); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}
		if !isMapLine(line) {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrUnknownHeader, strings.TrimSpace(line))
		}
		inMap = true
		mapRows = append(mapRows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	if err := h.complete(); err != nil {
		return nil, err
	}

	rows, err := normalizeRows(mapRows)
	if err != nil {
		return nil, err
	}
	start, err := extractStart(rows)
	if err != nil {
		return nil, err
	}
	px, py := start.Cell()
	if err := checkEnclosed(rows, px, py); err != nil {
		return nil, err
	}

	height := len(rows)
	width := len(rows[0])
	walls := make([]bool, width*height)
	for y, row := range rows {
		for x := 0; x < width; x++ {
			// Void cells are unreachable from the start, so they render as walls.
			walls[y*width+x] = row[x] != '0'
		}
	}
	return &Scene{
		Grid:         raycast.NewCellGrid(width, height, walls),
		Start:        start,
		TexturePaths: h.textures,
		Colors:       raycast.Colors{Ceiling: packRGB(h.ceiling), Floor: packRGB(h.floor)},
		Rows:         rows,
	}, nil
}

func isMapChar(c byte) bool {
	return c == '0' || c == '1' || c == ' ' || raycast.IsStartMarker(c)
}

// isMapLine reports whether line can open the map section.
func isMapLine(line string) bool {
	for i := 0; i < len(line); i++ {
		if !isMapChar(line[i]) {
			return false
		}
	}
	return true
}

// normalizeRows drops trailing blank lines, checks characters and size, and
// pads every row with spaces to the widest one.
func normalizeRows(lines []string) ([]string, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}
	width := 0
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			if !isMapChar(line[x]) {
				return nil, fmt.Errorf("%w %q at row %d column %d", ErrInvalidMapChar, line[x], y, x)
			}
		}
		if len(line) > width {
			width = len(line)
		}
	}
	if width > raycast.MaxMapSize || len(lines) > raycast.MaxMapSize {
		return nil, fmt.Errorf("%w: %dx%d, limit %d", ErrMapTooLarge, width, len(lines), raycast.MaxMapSize)
	}
	rows := make([]string, len(lines))
	for y, line := range lines {
		rows[y] = line + strings.Repeat(" ", width-len(line))
	}
	return rows, nil
}

// extractStart finds the single start marker, replaces it with an open cell
// in rows, and returns the initial pose.
func extractStart(rows []string) (raycast.Pose, error) {
	var (
		start raycast.Pose
		found bool
	)
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if !raycast.IsStartMarker(row[x]) {
				continue
			}
			if found {
				return raycast.Pose{}, fmt.Errorf("%w: second one at row %d column %d", ErrMultiplePlayers, y, x)
			}
			start, _ = raycast.PoseAt(x, y, row[x])
			rows[y] = row[:x] + "0" + row[x+1:]
			found = true
		}
	}
	if !found {
		return raycast.Pose{}, ErrNoPlayer
	}
	return start, nil
}

type cell struct{ x, y int }

// checkEnclosed flood fills open cells from (sx, sy). Reaching the map edge
// or a void cell means the player could walk out of the map.
func checkEnclosed(rows []string, sx, sy int) error {
	height := len(rows)
	width := len(rows[0])
	visited := make([]bool, width*height)
	stack := []cell{{sx, sy}}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.x < 0 || c.y < 0 || c.x >= width || c.y >= height {
			return fmt.Errorf("%w: open area reaches the map edge", ErrNotEnclosed)
		}
		switch rows[c.y][c.x] {
		case '1':
			continue
		case ' ':
			return fmt.Errorf("%w: open cell next to void at row %d column %d", ErrNotEnclosed, c.y, c.x)
		}
		idx := c.y*width + c.x
		if visited[idx] {
			continue
		}
		visited[idx] = true
		stack = append(stack,
			cell{c.x + 1, c.y}, cell{c.x - 1, c.y},
			cell{c.x, c.y + 1}, cell{c.x, c.y - 1})
	}
	return nil
}

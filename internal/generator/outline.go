package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/logger"
	"github.com/Faultbox/scenekit/pkg/math"
)

// ErrOutline is returned when an outline has fewer than two points.
var ErrOutline = errors.New("outline needs at least 2 points")

// Outline is an ordered list of profile points in the XY plane.
type Outline []math.Vec3

// Section markers start with '*'. A marker containing "coordinates" turns
// point reading on; any other marker turns it off.
const (
	markerPrefix      = '*'
	coordinatesMarker = "coordinates"
)

// ParseOutline reads an outline profile.
//
// Coordinate lines hold up to three tab-separated numbers (x, y, z). Missing
// fields are 0 and fields without a numeric prefix read as 0. Lines outside a
// coordinates section and empty lines are ignored.
func ParseOutline(r io.Reader) (Outline, error) {
	var out Outline
	reading := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if line[0] == markerPrefix {
			reading = strings.Contains(strings.ToLower(line), coordinatesMarker)
			continue
		}
		if !reading {
			continue
		}

		var xyz [3]float32
		for k, field := range strings.Split(line, "\t") {
			if k >= len(xyz) {
				break
			}
			xyz[k] = atof(field)
		}
		out = append(out, math.Point(xyz[0], xyz[1], xyz[2]))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read outline: %w", err)
	}
	return out, nil
}

// LoadOutline reads an outline profile from a file.
func LoadOutline(path string) (Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open outline: %w", err)
	}
	defer f.Close()

	out, err := ParseOutline(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("outline loaded", zap.String("path", path), zap.Int("points", len(out)))
	return out, nil
}

// atof parses the longest numeric prefix of s after leading blanks.
// It returns 0 when there is none.
func atof(s string) float32 {
	s = strings.TrimLeft(s, " \t\v\f")
	end := numericPrefix(s)
	for end > 0 {
		if v, err := strconv.ParseFloat(s[:end], 32); err == nil {
			return float32(v)
		}
		end--
	}
	return 0
}

// numericPrefix returns the length of the leading [sign]digits[.digits][e[sign]digits] run.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

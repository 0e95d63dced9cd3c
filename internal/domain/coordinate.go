package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// minResolution is the finest precision the import system accepts.
const minResolution = 5

// pointRe matches an RT90 pair of 4..7 digits each: northing 6xxx/7xxx,
// easting 12xx..18xx.
var pointRe = regexp.MustCompile(`^\s*([67]\d{3,6})\s+(1[2-8]\d{2,5})\s*$`)

// Point is a position in the national grid, in metres, together with the
// resolution implied by how many digits it was written with.
type Point struct {
	North      int
	East       int
	Resolution int
}

// NewPoint unifies a northing/easting pair of any resolution to metres.
// The following are equal, except for the remembered resolution:
//
//	NewPoint(64457, 13620)     // Resolution 100
//	NewPoint(6445700, 1362000) // Resolution 5 (1 m is reported as 5 m)
func NewPoint(north, east int) Point {
	factor := 1
	for north > 0 && north < 1000000 {
		north *= 10
		east *= 10
		factor *= 10
	}
	return Point{North: north, East: east, Resolution: max(factor, minResolution)}
}

// ParsePoint parses "northing easting" as written in a record.
func ParsePoint(s string) (Point, bool) {
	m := pointRe.FindStringSubmatch(s)
	if m == nil {
		return Point{}, false
	}
	north, err := strconv.Atoi(m[1])
	if err != nil {
		return Point{}, false
	}
	east, err := strconv.Atoi(m[2])
	if err != nil {
		return Point{}, false
	}
	return NewPoint(north, east), true
}

// Precision is the resolution formatted for the noggrannhet field.
func (p Point) Precision() string {
	return fmt.Sprintf("%d m", p.Resolution)
}

// Less orders points by northing, then easting.
func (p Point) Less(o Point) bool {
	if p.North != o.North {
		return p.North < o.North
	}
	return p.East < o.East
}

// unit is the resolution the point was originally written in.
func (p Point) unit() int {
	if p.Resolution == minResolution {
		return 1
	}
	return p.Resolution
}

func (p Point) String() string {
	u := p.unit()
	return fmt.Sprintf("Point(%d, %d)", p.North/u, p.East/u)
}

// Troff renders the point in its original resolution as troff(1) text.
// The long form sets the two leading digits of each ordinate in a smaller
// point size, the way grid references are printed on maps.
func (p Point) Troff(short bool) string {
	u := p.unit()
	acc := make([]string, 0, 2)
	for _, n := range []int{p.North, p.East} {
		s := strconv.Itoa(n / u)
		if short || len(s) < 2 {
			acc = append(acc, `\s-2`+s+`\s0`)
			continue
		}
		acc = append(acc, `\s-2`+s[:2]+`\s0`+s[2:])
	}
	return strings.Join(acc, " ")
}

package lib

import (
	"fmt"
	"strconv"
	"strings"
)

/*
	EasyEDA drawings use a fixed unit of 10 mil: ten source units are
	0.254 mm. The vertical axis grows downward in the source and upward
	in KiCad, so Y is negated. Coordinates stay in source units inside
	a ParsedComponent; conversion happens only when text is emitted.
*/

const UnitScale = 0.0254

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

/*
	Convert a source-unit coordinate to millimeters, relative to the
	drawing origin.
*/
func Normalize(value, origin float64, axis Axis) float64 {
	if axis == AxisY {
		return -(value - origin) * UnitScale
	}

	return (value - origin) * UnitScale
}

/*
	Convert a source-unit length to millimeters. Lengths have no origin
	and no axis flip.
*/
func NormalizeSize(value float64) float64 {
	return value * UnitScale
}

/*
	Rounding happens here and nowhere else. Positions get two decimals,
	sizes three; intermediate math keeps full precision so bounding
	boxes do not accumulate rounding error.
*/
func FormatPos(v float64) string {
	return trimZeros(strconv.FormatFloat(v, 'f', 2, 64))
}

func FormatSize(v float64) string {
	return trimZeros(strconv.FormatFloat(v, 'f', 3, 64))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}

	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}

	return s
}

/*
	Parse a source numeric field. Optional fields default to zero when
	the text is not a number.
*/
func field(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return v
}

/*
	Parse a mandatory numeric field. A failure here drops the whole
	record.
*/
func mustField(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("bad numeric field %q: %w", s, err)
	}

	return v, nil
}

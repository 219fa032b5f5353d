package lib

import (
	"fmt"
	"math"
	"strings"
)

/*
	Serialization of one component into KiCad symbol-library text
	(.kicad_sym, s-expression syntax).
*/

const (
	symbolFormatVersion = "20211014"
	generatorName       = "kparts"

	/*
		One schematic grid unit, in mm. Pins are one grid long and the
		synthesized body gets one grid of padding around the pin
		bounding box.
	*/
	gridUnit = 2.54

	/*
		Half-extent floor for the synthesized body, so a part with zero
		or one pin still renders visibly.
	*/
	minBodyHalf = 2.54
)

var safeNameChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_.+-"

/*
	SanitizeName reduces a display name to the safe identifier set used
	as a library key. Everything else becomes an underscore.
*/
func SanitizeName(name string) string {
	out := strings.Builder{}
	for _, r := range name {
		if strings.ContainsRune(safeNameChars, r) {
			out.WriteRune(r)
		} else {
			out.WriteRune('_')
		}
	}

	if out.Len() == 0 {
		return "unnamed"
	}

	return out.String()
}

/*
	pinOrientation guesses which way a pin points, in KiCad degrees
	(0 right, 90 up, 180 left, 270 down), from its normalized offset
	against the drawing origin. Pins are assumed to face the body
	center: a pin left of center points right, a pin below points up.
	The source rotation field is not trusted (it is rarely populated),
	so rotated or non-rectangular symbols can come out mis-oriented.
	Known limitation.
*/
func pinOrientation(dx, dy float64) int {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return 0
		}

		return 180
	}

	if dy < 0 {
		return 90
	}

	return 270
}

func pinTypeName(t PinType) string {
	switch t {
	case PinInput:
		return "input"
	case PinOutput:
		return "output"
	case PinBidirectional:
		return "bidirectional"
	case PinPowerIn:
		return "power_in"
	case PinPowerOut:
		return "power_out"
	case PinOpenCollector:
		return "open_collector"
	case PinOpenEmitter:
		return "open_emitter"
	case PinPassive:
		return "passive"
	case PinNoConnect:
		return "no_connect"
	}

	return "unspecified"
}

func property(name, value string, id int, y float64, hidden bool) string {
	hide := ""
	if hidden {
		hide = " hide"
	}

	return fmt.Sprintf(
		"    (property %q %q (id %d) (at 0 %s 0)\n      (effects (font (size 1.27 1.27))%s)\n    )\n",
		name, value, id, FormatPos(y), hide,
	)
}

/*
	SerializeSymbol emits one complete symbol library: header plus one
	symbol block. footprintRef is the already-decided footprint link
	(either the generated footprint or a standard library reference).
*/
func SerializeSymbol(component *ParsedComponent, libraryName, footprintRef string) string {
	text := strings.Builder{}
	fmt.Fprintf(&text, "(kicad_symbol_lib (version %s) (generator %s)\n", symbolFormatVersion, generatorName)
	text.WriteString(SymbolBlock(component, footprintRef))
	text.WriteString(")\n")

	return text.String()
}

/*
	SymbolBlock emits the symbol definition alone, the unit the
	accumulator appends into an existing library file.
*/
func SymbolBlock(component *ParsedComponent, footprintRef string) string {
	name := SanitizeName(component.Info.Name)
	pins := component.Symbol.Pins
	ox, oy := component.Symbol.OriginX, component.Symbol.OriginY

	/*
		Body bounding box over normalized pin positions, padded by one
		grid on every side, floored to the minimum size.
	*/
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pin := range pins {
		x := Normalize(pin.X, ox, AxisX)
		y := Normalize(pin.Y, oy, AxisY)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	if len(pins) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	minX -= gridUnit
	minY -= gridUnit
	maxX += gridUnit
	maxY += gridUnit
	if maxX-minX < 2*minBodyHalf {
		center := (maxX + minX) / 2
		minX, maxX = center-minBodyHalf, center+minBodyHalf
	}
	if maxY-minY < 2*minBodyHalf {
		center := (maxY + minY) / 2
		minY, maxY = center-minBodyHalf, center+minBodyHalf
	}

	text := strings.Builder{}
	fmt.Fprintf(&text, "  (symbol %q (in_bom yes) (on_board yes)\n", name)

	text.WriteString(property("Reference", component.Info.Prefix, 0, maxY+gridUnit, false))
	text.WriteString(property("Value", name, 1, minY-gridUnit, false))
	text.WriteString(property("Footprint", footprintRef, 2, minY-2*gridUnit, true))
	text.WriteString(property("Datasheet", component.Info.Datasheet, 3, minY-3*gridUnit, true))
	text.WriteString(property("LCSC", component.Info.CatalogID, 4, minY-4*gridUnit, true))
	text.WriteString(property("Manufacturer", component.Info.Manufacturer, 5, minY-5*gridUnit, true))

	/*
		Source decorative geometry is not translated; the body is
		always the synthesized rectangle.
	*/
	fmt.Fprintf(&text, "    (symbol \"%s_0_1\"\n", name)
	fmt.Fprintf(&text,
		"      (rectangle (start %s %s) (end %s %s)\n        (stroke (width 0.254) (type default)) (fill (type background))\n      )\n",
		FormatPos(minX), FormatPos(minY), FormatPos(maxX), FormatPos(maxY),
	)
	text.WriteString("    )\n")

	fmt.Fprintf(&text, "    (symbol \"%s_1_1\"\n", name)
	for _, pin := range pins {
		x := Normalize(pin.X, ox, AxisX)
		y := Normalize(pin.Y, oy, AxisY)

		pinName := pin.Name
		if pinName == "" {
			pinName = "~"
		}

		fmt.Fprintf(&text,
			"      (pin %s line (at %s %s %d) (length %s)\n        (name %q (effects (font (size 1.27 1.27))))\n        (number %q (effects (font (size 1.27 1.27))))\n      )\n",
			pinTypeName(pin.Type),
			FormatPos(x), FormatPos(y), pinOrientation(x, y),
			FormatSize(gridUnit),
			pinName, pin.Designator,
		)
	}
	text.WriteString("    )\n")

	text.WriteString("  )\n")

	return text.String()
}

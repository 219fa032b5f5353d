package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPinComponent() *ParsedComponent {
	symbol := ParseSymbolShapes([]string{
		"P~show~0~1~300~300~0~gge1^^0~310~300^^0~310~300~0^^0~313~300~0~A~start~5~9pt",
		"P~show~8~2~500~300~0~gge2^^0~490~300^^0~490~300~0^^0~487~300~0~K~end~5~9pt",
	})

	return &ParsedComponent{
		Info: ComponentInfo{
			Name:      "SS210 (weird)",
			Prefix:    "D",
			CatalogID: "C14996",
			Datasheet: "https://datasheet.lcsc.com/C14996.pdf",
		},
		Symbol: Symbol{
			Pins:    symbol.Pins,
			OriginX: 400,
			OriginY: 300,
		},
		Footprint: ComponentFootprint{Shapes: &FootprintShapes{}},
	}
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "SS210__weird_", SanitizeName("SS210 (weird)"))
	assert.Equal(t, "R_0402", SanitizeName("R_0402"))
	assert.Equal(t, "unnamed", SanitizeName(""))
}

func TestPinOrientation(t *testing.T) {
	/*
		Pins face the body center: left points right, right points
		left, below points up, above points down.
	*/
	assert.Equal(t, 0, pinOrientation(-5, 0))
	assert.Equal(t, 180, pinOrientation(5, 0))
	assert.Equal(t, 90, pinOrientation(0, -5))
	assert.Equal(t, 270, pinOrientation(1, 5))
}

func TestSerializeSymbol(t *testing.T) {
	component := twoPinComponent()
	text := SerializeSymbol(component, "kparts-diodes", "kparts-diodes:SS210_C14996")

	assert.True(t, strings.HasPrefix(text, "(kicad_symbol_lib (version "+symbolFormatVersion))
	assert.Contains(t, text, `(symbol "SS210__weird_" (in_bom yes) (on_board yes)`)

	/*
		Round-trip of the pin identity: designator and display name
		survive serialization exactly.
	*/
	assert.Contains(t, text, `(name "A" (effects`)
	assert.Contains(t, text, `(number "1" (effects`)
	assert.Contains(t, text, `(name "K" (effects`)
	assert.Contains(t, text, `(number "2" (effects`)

	/*
		Pin 1 sits 100 units left of origin: -2.54 mm, pointing right.
		Pin 2 mirrors it.
	*/
	assert.Contains(t, text, "(pin unspecified line (at -2.54 0 0)")
	assert.Contains(t, text, "(pin passive line (at 2.54 0 180)")

	/*
		Body: pin bbox (±2.54, 0) padded by one grid each side.
	*/
	assert.Contains(t, text, "(rectangle (start -5.08 -2.54) (end 5.08 2.54)")

	assert.Contains(t, text, `(property "Footprint" "kparts-diodes:SS210_C14996"`)
	assert.Contains(t, text, `(property "LCSC" "C14996"`)
}

func TestSerializeSymbolMinimumBody(t *testing.T) {
	component := twoPinComponent()
	component.Symbol.Pins = component.Symbol.Pins[:0]

	text := SerializeSymbol(component, "kparts-diodes", "")
	require.Contains(t, text, "(rectangle (start -2.54 -2.54) (end 2.54 2.54)")
}

func TestSerializeSymbolEscapesQuotes(t *testing.T) {
	component := twoPinComponent()
	component.Info.Datasheet = `https://x.test/a"b`

	text := SerializeSymbol(component, "kparts-diodes", "")
	assert.Contains(t, text, `\"b`)
}

package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pinRecord = "P~show~0~1~480~-10~0~gge23" +
	"^^0~470~-10" +
	"^^0~470~-10~0" +
	"^^0~473~-10~0~VCC~start~5~9pt" +
	"^^0~483~-10~0~1~end~5~9pt"

func TestDecodePin(t *testing.T) {
	pin, err := decodePin(pinRecord)
	require.NoError(t, err)

	assert.Equal(t, "1", pin.Designator)
	assert.Equal(t, "VCC", pin.Name)
	assert.Equal(t, PinUnspecified, pin.Type)
	assert.Equal(t, 480.0, pin.X)
	assert.Equal(t, -10.0, pin.Y)
}

func TestDecodePinTypes(t *testing.T) {
	assert.Equal(t, PinInput, DecodePinType("1"))
	assert.Equal(t, PinPowerIn, DecodePinType("4"))
	assert.Equal(t, PinNoConnect, DecodePinType("9"))

	/*
		The code set is closed; garbage degrades to unspecified.
	*/
	assert.Equal(t, PinUnspecified, DecodePinType("17"))
	assert.Equal(t, PinUnspecified, DecodePinType("active"))
	assert.Equal(t, PinUnspecified, DecodePinType(""))
}

func TestParseSymbolShapes(t *testing.T) {
	shapes := ParseSymbolShapes([]string{
		pinRecord,
		"R~440~-30~~~80~40~#880000~1~0~none~gge5~0~", // decorative, retained raw
		"P~show~0~~480~-10~0~gge24^^0~470~-10",       // no designator: skipped
	})

	require.Len(t, shapes.Pins, 1)
	assert.Len(t, shapes.Decorative, 1)
	assert.Len(t, shapes.Skipped, 1)
}

func TestDecodePadThroughHole(t *testing.T) {
	shapes := ParseFootprintShapes([]string{
		"PAD~ELLIPSE~500~300~6~6~11~~1~1.8~~0",
		"PAD~RECT~494~300~6~6~1~~2~0~~0",
	})
	require.Len(t, shapes.Pads, 2)

	assert.True(t, shapes.Pads[0].ThroughHole())
	assert.Equal(t, 1.8, shapes.Pads[0].HoleRadius)
	assert.False(t, shapes.Pads[1].ThroughHole())
}

func TestDecodePadPolygon(t *testing.T) {
	shapes := ParseFootprintShapes([]string{
		"PAD~POLYGON~500~300~4~4~1~~3~0~495 298 505 298 500 304~0",
	})
	require.Len(t, shapes.Pads, 1)

	pad := shapes.Pads[0]
	assert.Equal(t, PadPolygon, pad.Shape)
	assert.Equal(t, []float64{495, 298, 505, 298, 500, 304}, pad.Points)
}

/*
	One good pad plus one pad with a non-numeric width: the malformed
	record is dropped, parsing continues, and the stream as a whole
	never fails.
*/
func TestMalformedPadDropped(t *testing.T) {
	shapes := ParseFootprintShapes([]string{
		"PAD~RECT~494~300~6~6~1~~1~0~~0",
		"PAD~RECT~506~300~x~6~1~~2~0~~0",
	})

	require.Len(t, shapes.Pads, 1)
	assert.Equal(t, "1", shapes.Pads[0].Designator)
	assert.Len(t, shapes.Skipped, 1)
}

func TestOptionalNumericDefaultsToZero(t *testing.T) {
	shapes := ParseFootprintShapes([]string{
		"PAD~RECT~494~300~6~6~1~~1~bad~~spin",
	})

	require.Len(t, shapes.Pads, 1)
	assert.Equal(t, 0.0, shapes.Pads[0].HoleRadius)
	assert.Equal(t, 0.0, shapes.Pads[0].Rotation)
}

func TestUnrecognizedTagSkipped(t *testing.T) {
	shapes := ParseFootprintShapes([]string{
		"BEZIER~1~2~3",
		"TRACK~1~3~~4000 3000 4010 3000~gge9",
	})

	assert.Len(t, shapes.Skipped, 1)
	require.Len(t, shapes.Tracks, 1)
	assert.Equal(t, []float64{4000, 3000, 4010, 3000}, shapes.Tracks[0].Points)
}

func TestModel3DExtraction(t *testing.T) {
	shapes := ParseFootprintShapes([]string{
		"PAD~RECT~494~300~6~6~1~~1~0~~0",
		`SVGNODE~{"gId":"gge1","nodeName":"g","attrs":{"c_rotation":"0,0,0","uuid":"a1b2c3","title":"R0402"}}`,
	})

	require.NotNil(t, shapes.Model)
	assert.Equal(t, "a1b2c3", shapes.Model.UUID)
	assert.Equal(t, "R0402", shapes.Model.Name)
	assert.Empty(t, shapes.Skipped)
}

func TestModel3DAbsenceIsNotAnError(t *testing.T) {
	shapes := ParseFootprintShapes([]string{
		"PAD~RECT~494~300~6~6~1~~1~0~~0",
		`SVGNODE~{"gId":"gge1","attrs":{"c_etc":"no uuid here"}}`,
	})

	assert.Nil(t, shapes.Model)
	assert.Empty(t, shapes.Skipped)
}

func TestDecodeHoleAndVia(t *testing.T) {
	shapes := ParseFootprintShapes([]string{
		"HOLE~4020~3020~3~gge31",
		"VIA~4030~3030~6~~1.7~gge32",
	})

	require.Len(t, shapes.Holes, 1)
	assert.Equal(t, 3.0, shapes.Holes[0].Radius)
	require.Len(t, shapes.Vias, 1)
	assert.Equal(t, 1.7, shapes.Vias[0].HoleRadius)
}

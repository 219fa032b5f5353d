package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	/*
		Ten source units are 0.254 mm.
	*/
	assert.InDelta(t, 0.254, Normalize(10, 0, AxisX), 1e-9)
	assert.InDelta(t, -0.254, Normalize(10, 0, AxisY), 1e-9)
	assert.InDelta(t, 2.54, NormalizeSize(100), 1e-9)
}

/*
	Translating the whole drawing origin cancels out: coordinates are
	origin-relative.
*/
func TestNormalizeOriginCancels(t *testing.T) {
	for _, delta := range []float64{-4000, -17, 0, 3, 12345} {
		assert.InDelta(t,
			Normalize(480, 400, AxisX),
			Normalize(480+delta, 400+delta, AxisX), 1e-9)
		assert.InDelta(t,
			Normalize(-10, 300, AxisY),
			Normalize(-10+delta, 300+delta, AxisY), 1e-9)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2.54", FormatPos(2.54))
	assert.Equal(t, "-3.55", FormatPos(-3.552))
	assert.Equal(t, "0", FormatPos(-0.0001))
	assert.Equal(t, "1.524", FormatSize(1.524))
	assert.Equal(t, "0.152", FormatSize(0.15239))
	assert.Equal(t, "5", FormatSize(5))
}

func TestFieldDefaults(t *testing.T) {
	assert.Equal(t, 0.0, field("x"))
	assert.Equal(t, 0.0, field(""))
	assert.Equal(t, 1.8, field(" 1.8 "))

	_, err := mustField("x")
	assert.Error(t, err)
}

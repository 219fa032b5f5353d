package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutePrefix(t *testing.T) {
	assert.Equal(t, BucketResistors, Route("R", "", ""))
	assert.Equal(t, BucketCapacitors, Route("C", "", ""))
	assert.Equal(t, BucketDiodes, Route("LED", "", ""))
	assert.Equal(t, BucketTransistors, Route("Q", "", ""))
	assert.Equal(t, BucketConnectors, Route("J", "", ""))
	assert.Equal(t, BucketCrystals, Route("Y", "", ""))
	assert.Equal(t, BucketSwitches, Route("SW", "", ""))
}

func TestRouteKeywordFallback(t *testing.T) {
	/*
		U is generic; the text signals decide.
	*/
	assert.Equal(t, BucketICs, Route("U", "", "3.3V linear regulator"))
	assert.Equal(t, BucketDiodes, Route("U", "Schottky Barrier Diodes", ""))
	assert.Equal(t, BucketCrystals, Route("", "Crystals", ""))
	assert.Equal(t, BucketConnectors, Route("", "", "2.54mm pin header"))

	/*
		No text signal at all: the U prefix still lands in ICs.
	*/
	assert.Equal(t, BucketICs, Route("U", "", ""))
}

func TestRouteIsTotal(t *testing.T) {
	prefixes := []string{"", "R", "C", "U", "ZZZ", "??", "led", "q1"}
	categories := []string{"", "Resistors", "Unheard Of Category"}
	descriptions := []string{"", "something novel", "MOSFET N-channel"}

	known := map[Bucket]bool{}
	for _, bucket := range Buckets() {
		known[bucket] = true
	}

	for _, prefix := range prefixes {
		for _, category := range categories {
			for _, description := range descriptions {
				bucket := Route(prefix, category, description)
				assert.True(t, known[bucket], "unknown bucket %q", bucket)
			}
		}
	}
}

func TestRouteCatchAll(t *testing.T) {
	assert.Equal(t, BucketMisc, Route("ZZZ", "", "entirely mysterious"))
	assert.Equal(t, BucketMisc, Route("", "", ""))
}

package lib

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulateSymbol(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kparts", "kparts-diodes.kicad_sym")

	blockA := SymbolBlock(twoPinComponent(), "kparts-diodes:SS210_C14996")

	result, err := AccumulateSymbol(path, "SS210__weird_", blockA)
	require.NoError(t, err)
	assert.Equal(t, ResultCreated, result)

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(first), "(kicad_symbol_lib"))

	/*
		Second install of the same symbol: untouched file, exists.
	*/
	result, err = AccumulateSymbol(path, "SS210__weird_", blockA)
	require.NoError(t, err)
	assert.Equal(t, ResultExists, result)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(string(second), `(symbol "SS210__weird_" `))

	/*
		A different symbol appends before the closing delimiter.
	*/
	other := twoPinComponent()
	other.Info.Name = "SS310"
	result, err = AccumulateSymbol(path, "SS310", SymbolBlock(other, ""))
	require.NoError(t, err)
	assert.Equal(t, ResultAppended, result)

	third, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(third), `(symbol "SS210__weird_" `)
	assert.Contains(t, string(third), `(symbol "SS310" `)
	assert.Equal(t, 1, strings.Count(string(third), "(kicad_symbol_lib"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(string(third), "\n"), ")"))
}

func TestEnsureTableEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sym-lib-table")

	result, err := EnsureTableEntry(path, "kparts-resistors", "${KIPRJMOD}/kparts/kparts-resistors.kicad_sym", "Resistors symbols")
	require.NoError(t, err)
	assert.Equal(t, ResultCreated, result)

	text, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(text), "(sym_lib_table"))
	assert.Contains(t, string(text), `(name "kparts-resistors")`)

	result, err = EnsureTableEntry(path, "kparts-resistors", "${KIPRJMOD}/kparts/kparts-resistors.kicad_sym", "Resistors symbols")
	require.NoError(t, err)
	assert.Equal(t, ResultExists, result)

	result, err = EnsureTableEntry(path, "kparts-capacitors", "${KIPRJMOD}/kparts/kparts-capacitors.kicad_sym", "Capacitors symbols")
	require.NoError(t, err)
	assert.Equal(t, ResultAppended, result)

	text, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(text), "(lib (name"))
}

func TestEnsureTableEntryFootprintKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fp-lib-table")

	_, err := EnsureTableEntry(path, "kparts-resistors", "${KIPRJMOD}/kparts/kparts-resistors.pretty", "Resistors footprints")
	require.NoError(t, err)

	text, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(text), "(fp_lib_table"))
}

func TestWriteFootprint(t *testing.T) {
	root := filepath.Join(t.TempDir(), "kparts")

	path, err := WriteFootprint(root, "kparts-resistors", passiveComponent())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "kparts-resistors.pretty", "R0402_C25744.kicad_mod"), path)

	text, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(text), `(footprint "R0402_C25744"`)
}

func TestAccumulateResultString(t *testing.T) {
	assert.Equal(t, "created", ResultCreated.String())
	assert.Equal(t, "appended", ResultAppended.String())
	assert.Equal(t, "exists", ResultExists.String())
}

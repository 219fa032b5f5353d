package lib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

/*
	Accumulating symbol libraries and the project library tables share
	the same three-way idempotent update: create the file when absent,
	append when the entry is missing, leave alone when it is already
	there. Presence is decided by a name scan of the existing text, not
	a full parse, so two different components that sanitize to the same
	name collapse into one entry. Accepted limitation.

	There is no locking here: concurrent installs against the same
	bucket race between the read and the write-back. Callers serialize
	per bucket.
*/

type AccumulateResult int

const (
	ResultCreated AccumulateResult = iota
	ResultAppended
	ResultExists
)

func (r AccumulateResult) String() string {
	switch r {
	case ResultCreated:
		return "created"
	case ResultAppended:
		return "appended"
	}

	return "exists"
}

/*
	AccumulateSymbol installs one symbol block into the accumulating
	library at path.
*/
func AccumulateSymbol(path, name, block string) (AccumulateResult, error) {
	if !Exists(path) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return ResultCreated, err
		}

		text := fmt.Sprintf("(kicad_symbol_lib (version %s) (generator %s)\n%s)\n",
			symbolFormatVersion, generatorName, block)

		return ResultCreated, os.WriteFile(path, []byte(text), 0644)
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		return ResultExists, err
	}

	if strings.Contains(string(existing), fmt.Sprintf("(symbol %q", name)) {
		return ResultExists, nil
	}

	/*
		Splice the new block in before the library's closing paren.
	*/
	text := strings.TrimRight(string(existing), " \t\r\n")
	if !strings.HasSuffix(text, ")") {
		return ResultAppended, fmt.Errorf("%s: library file has no closing delimiter", path)
	}
	text = strings.TrimSuffix(text, ")")
	text = strings.TrimRight(text, " \t\r\n") + "\n" + block + ")\n"

	return ResultAppended, os.WriteFile(path, []byte(text), 0644)
}

/*
	WriteFootprint writes one footprint file into the library's .pretty
	directory. Footprints are not accumulated; each component gets its
	own file, and rewriting it is harmless.
*/
func WriteFootprint(root, libraryName string, component *ParsedComponent) (string, error) {
	dir := filepath.Join(root, libraryName+".pretty")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, FootprintName(component)+".kicad_mod")

	return path, os.WriteFile(path, []byte(SerializeFootprint(component, libraryName)), 0644)
}

/*
	EnsureTableEntry registers a library in a sym-lib-table or
	fp-lib-table file, once. The table kind is taken from the file
	name.
*/
func EnsureTableEntry(path, name, uri, descr string) (AccumulateResult, error) {
	kind := "sym_lib_table"
	if strings.HasPrefix(filepath.Base(path), "fp-") {
		kind = "fp_lib_table"
	}

	entry := fmt.Sprintf("  (lib (name %q)(type %q)(uri %q)(options %q)(descr %q))\n",
		name, "KiCad", uri, "", descr)

	if !Exists(path) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return ResultCreated, err
		}

		text := "(" + kind + "\n" + entry + ")\n"

		return ResultCreated, os.WriteFile(path, []byte(text), 0644)
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		return ResultExists, err
	}

	if strings.Contains(string(existing), fmt.Sprintf("(name %q)", name)) {
		return ResultExists, nil
	}

	text := strings.TrimRight(string(existing), " \t\r\n")
	if !strings.HasSuffix(text, ")") {
		return ResultAppended, fmt.Errorf("%s: table file has no closing delimiter", path)
	}
	text = strings.TrimSuffix(text, ")")
	text = strings.TrimRight(text, " \t\r\n") + "\n" + entry + ")\n"

	return ResultAppended, os.WriteFile(path, []byte(text), 0644)
}

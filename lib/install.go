package lib

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound      = errors.New("component not found")
	ErrNoDestination = errors.New("no destination directory given")
)

/*
	Enricher is the optional secondary metadata lookup. Its failure is
	always tolerated; implementations return a best-effort record.
*/
type Enricher interface {
	Exact(cid string) *LibraryComponent
}

type InstallOptions struct {
	/*
		Project directory receiving the libraries and the library
		tables. Required.
	*/
	Destination string

	/*
		Short name prefixed to every accumulating library, e.g.
		kparts-Resistors. Defaults to "kparts".
	*/
	LibraryPrefix string

	/*
		When set, a package label recognized as a KiCad standard
		footprint is referenced instead of generated.
	*/
	UseStandard bool

	Enrich Enricher
}

type InstallResult struct {
	Bucket        Bucket
	Library       string
	SymbolPath    string
	SymbolResult  AccumulateResult
	FootprintPath string
	FootprintRef  string
	Summary       ValidationSummary
	Skipped       int
}

/*
	Install converts one catalog component and lands it in the
	destination project: fetch, parse, enrich, serialize, route,
	accumulate, register. The two file updates (symbol library, then
	tables) are independently idempotent but not transactional; a
	failure in between leaves the first done and the second not.
*/
func Install(fetcher ComponentFetcher, code string, opts InstallOptions) (*InstallResult, error) {
	if opts.Destination == "" {
		return nil, ErrNoDestination
	}
	if opts.LibraryPrefix == "" {
		opts.LibraryPrefix = "kparts"
	}

	raw, err := fetcher.Component(code)
	if err != nil {
		return nil, err
	}

	component := BuildComponent(raw)
	if opts.Enrich != nil {
		component.Merge(opts.Enrich.Exact(code))
	}

	bucket := Route(component.Info.Prefix, component.Info.Category, component.Info.Description)
	library := opts.LibraryPrefix + "-" + strings.ToLower(string(bucket))
	root := filepath.Join(opts.Destination, opts.LibraryPrefix)

	result := &InstallResult{
		Bucket:  bucket,
		Library: library,
		Summary: component.Validate(),
		Skipped: len(component.Symbol.Skipped) + len(component.Footprint.Shapes.Skipped),
	}

	/*
		Footprint first, so the symbol's footprint link points at
		something that exists.
	*/
	if opts.UseStandard {
		if ref, ok := StandardFootprint(component.Info.Package, component.Info.Prefix); ok {
			result.FootprintRef = ref
		}
	}

	if result.FootprintRef == "" {
		path, err := WriteFootprint(root, library, component)
		if err != nil {
			return nil, fmt.Errorf("writing footprint: %w", err)
		}

		result.FootprintPath = path
		result.FootprintRef = library + ":" + FootprintName(component)

		if _, err := EnsureTableEntry(
			filepath.Join(opts.Destination, "fp-lib-table"),
			library,
			"${KIPRJMOD}/"+opts.LibraryPrefix+"/"+library+".pretty",
			string(bucket)+" footprints",
		); err != nil {
			return nil, fmt.Errorf("updating fp-lib-table: %w", err)
		}
	}

	name := SanitizeName(component.Info.Name)
	block := SymbolBlock(component, result.FootprintRef)

	result.SymbolPath = filepath.Join(root, library+".kicad_sym")
	result.SymbolResult, err = AccumulateSymbol(result.SymbolPath, name, block)
	if err != nil {
		return nil, fmt.Errorf("accumulating symbol: %w", err)
	}

	if _, err := EnsureTableEntry(
		filepath.Join(opts.Destination, "sym-lib-table"),
		library,
		"${KIPRJMOD}/"+opts.LibraryPrefix+"/"+library+".kicad_sym",
		string(bucket)+" symbols",
	); err != nil {
		return nil, fmt.Errorf("updating sym-lib-table: %w", err)
	}

	return result, nil
}

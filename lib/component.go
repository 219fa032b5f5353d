package lib

import (
	"strings"
)

type FootprintType int

const (
	FootprintSMD FootprintType = iota
	FootprintThroughHole
)

type ComponentInfo struct {
	Name         string
	Prefix       string
	Package      string
	Manufacturer string
	Datasheet    string
	CatalogID    string
	Description  string
	Category     string
	Attributes   map[string]string
}

/*
	Symbol keeps its pins typed; decorative shapes are retained as raw
	strings. Coordinates are source units relative to Origin.
*/
type Symbol struct {
	Pins       []*Pin
	Decorative []string
	Skipped    []string
	OriginX    float64
	OriginY    float64
}

type ComponentFootprint struct {
	Type    FootprintType
	Shapes  *FootprintShapes
	OriginX float64
	OriginY float64
	Name    string
}

/*
	ParsedComponent is built once per conversion and discarded after
	both serializers have run. It is never written back to disk.
*/
type ParsedComponent struct {
	Info      ComponentInfo
	Symbol    Symbol
	Footprint ComponentFootprint
	Model     *Model3D
}

/*
	BuildComponent decodes both drawings of a raw record. It cannot
	fail: malformed shape records are skipped inside the parsers, and a
	missing name falls back to the catalog id.
*/
func BuildComponent(raw *RawComponent) *ParsedComponent {
	para := raw.DataStr.Head.CPara

	info := ComponentInfo{
		Name:         strings.TrimSpace(para["name"]),
		Prefix:       strings.TrimRight(strings.TrimSpace(para["pre"]), "?"),
		Package:      strings.TrimSpace(para["package"]),
		Manufacturer: strings.TrimSpace(para["BOM_Manufacturer"]),
		Datasheet:    strings.TrimSpace(raw.Datasheet),
		CatalogID:    strings.TrimSpace(raw.LCSC.Number),
		Description:  strings.TrimSpace(raw.Description),
		Attributes:   map[string]string{},
	}
	for key, value := range para {
		info.Attributes[key] = value
	}

	if info.CatalogID == "" {
		info.CatalogID = strings.TrimSpace(para["BOM_Supplier Part"])
	}
	if info.Name == "" {
		info.Name = raw.Title
	}
	if info.Name == "" {
		info.Name = info.CatalogID
	}

	symbol := ParseSymbolShapes(raw.DataStr.Shape)
	footprint := ParseFootprintShapes(raw.PackageDetail.DataStr.Shape)

	ftype := FootprintSMD
	for _, pad := range footprint.Pads {
		if pad.ThroughHole() {
			ftype = FootprintThroughHole
			break
		}
	}

	fname := strings.TrimSpace(raw.PackageDetail.Title)
	if fname == "" {
		fname = info.Package
	}

	return &ParsedComponent{
		Info: info,
		Symbol: Symbol{
			Pins:       symbol.Pins,
			Decorative: symbol.Decorative,
			Skipped:    symbol.Skipped,
			OriginX:    raw.DataStr.Head.X,
			OriginY:    raw.DataStr.Head.Y,
		},
		Footprint: ComponentFootprint{
			Type:    ftype,
			Shapes:  footprint,
			OriginX: raw.PackageDetail.DataStr.Head.X,
			OriginY: raw.PackageDetail.DataStr.Head.Y,
			Name:    fname,
		},
		Model: footprint.Model,
	}
}

/*
	Merge enrichment data from a secondary catalog lookup. Existing
	values win; the lookup only fills gaps.
*/
func (c *ParsedComponent) Merge(lc *LibraryComponent) {
	if lc == nil {
		return
	}

	if c.Info.Description == "" {
		c.Info.Description = lc.Description
	}
	if c.Info.Manufacturer == "" {
		c.Info.Manufacturer = lc.Manufacturer
	}
	if c.Info.Datasheet == "" {
		c.Info.Datasheet = lc.Datasheet
	}
	if c.Info.Package == "" {
		c.Info.Package = lc.Package
	}
	if c.Info.Category == "" {
		c.Info.Category = strings.TrimSpace(lc.FirstCategory + " " + lc.SecondCategory)
	}
}

type ValidationSummary struct {
	PinCount  int
	PadCount  int
	Match     bool
	PowerPins bool
}

var powerNames = []string{"VCC", "VDD", "VBAT", "VIN", "GND", "VSS", "GNDA", "AGND"}

/*
	Informational only: whether pin and pad counts line up and whether
	any pin looks like a supply pin, by type or by name.
*/
func (c *ParsedComponent) Validate() ValidationSummary {
	summary := ValidationSummary{
		PinCount: len(c.Symbol.Pins),
		PadCount: len(c.Footprint.Shapes.Pads),
	}
	summary.Match = summary.PinCount == summary.PadCount

	for _, pin := range c.Symbol.Pins {
		if pin.Type == PinPowerIn || pin.Type == PinPowerOut {
			summary.PowerPins = true
			break
		}

		name := strings.ToUpper(pin.Name)
		for _, candidate := range powerNames {
			if name == candidate {
				summary.PowerPins = true
			}
		}
		if summary.PowerPins {
			break
		}
	}

	return summary
}

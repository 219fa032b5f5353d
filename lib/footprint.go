package lib

import (
	"fmt"
	"math"
	"strings"
)

/*
	Serialization of one component footprint into KiCad .kicad_mod
	text. Arcs and copper art are not translated; the courtyard is the
	pad bounding box plus a margin, which can be tighter than the true
	physical envelope for parts with large unpadded bodies.
*/

const courtyardMargin = 0.25

/*
	Chip-passive size codes to the metric suffix KiCad standard
	libraries use.
*/
var chipMetric = map[string]string{
	"0201": "0603Metric",
	"0402": "1005Metric",
	"0603": "1608Metric",
	"0805": "2012Metric",
	"1206": "3216Metric",
	"1210": "3225Metric",
	"2010": "5025Metric",
	"2512": "6332Metric",
}

var standardPackages = map[string]string{
	"SOT-23":    "Package_TO_SOT_SMD:SOT-23",
	"SOT-23-3":  "Package_TO_SOT_SMD:SOT-23",
	"SOT-23-5":  "Package_TO_SOT_SMD:SOT-23-5",
	"SOT-23-6":  "Package_TO_SOT_SMD:SOT-23-6",
	"SOT-89":    "Package_TO_SOT_SMD:SOT-89-3",
	"SOT-223":   "Package_TO_SOT_SMD:SOT-223-3_TabPin2",
	"SOIC-8":    "Package_SO:SOIC-8_3.9x4.9mm_P1.27mm",
	"SOIC-14":   "Package_SO:SOIC-14_3.9x8.7mm_P1.27mm",
	"SOIC-16":   "Package_SO:SOIC-16_3.9x9.9mm_P1.27mm",
	"TSSOP-14":  "Package_SO:TSSOP-14_4.4x5mm_P0.65mm",
	"TSSOP-16":  "Package_SO:TSSOP-16_4.4x5mm_P0.65mm",
	"TSSOP-20":  "Package_SO:TSSOP-20_4.4x6.5mm_P0.65mm",
	"SOD-123":   "Diode_SMD:D_SOD-123",
	"SOD-323":   "Diode_SMD:D_SOD-323",
	"SMA":       "Diode_SMD:D_SMA",
	"SMB":       "Diode_SMD:D_SMB",
	"SMC":       "Diode_SMD:D_SMC",
	"TO-252-2":  "Package_TO_SOT_SMD:TO-252-2",
	"TO-263-2":  "Package_TO_SOT_SMD:TO-263-2",
	"QFN-20":    "Package_DFN_QFN:QFN-20-1EP_4x4mm_P0.5mm_EP2.7x2.7mm",
	"LQFP-32":   "Package_QFP:LQFP-32_7x7mm_P0.8mm",
	"LQFP-48":   "Package_QFP:LQFP-48_7x7mm_P0.5mm",
	"LQFP-64":   "Package_QFP:LQFP-64_10x10mm_P0.5mm",
}

/*
	StandardFootprint resolves a human-readable package label to a
	pre-existing KiCad standard footprint. Chip passives depend on the
	designator prefix; everything else is a direct label match. This
	is label matching, not shape matching, which is why using it is a
	caller option rather than automatic.
*/
func StandardFootprint(pkg, prefix string) (string, bool) {
	pkg = strings.ToUpper(strings.TrimSpace(pkg))
	if pkg == "" {
		return "", false
	}

	if ref, ok := standardPackages[pkg]; ok {
		return ref, true
	}

	size := pkg
	for _, p := range []string{"R", "C", "L"} {
		size = strings.TrimPrefix(size, p)
	}

	metric, ok := chipMetric[size]
	if !ok {
		return "", false
	}

	switch {
	case strings.HasPrefix(prefix, "R"):
		return "Resistor_SMD:R_" + size + "_" + metric, true
	case strings.HasPrefix(prefix, "C"):
		return "Capacitor_SMD:C_" + size + "_" + metric, true
	case strings.HasPrefix(prefix, "L"), strings.HasPrefix(prefix, "FB"):
		return "Inductor_SMD:L_" + size + "_" + metric, true
	}

	return "", false
}

func padShapeName(pad *Pad) string {
	switch pad.Shape {
	case PadEllipse:
		if pad.Width == pad.Height {
			return "circle"
		}

		return "oval"
	case PadOval:
		return "oval"
	case PadRoundRect:
		return "roundrect"
	case PadPolygon:
		return "custom"
	}

	return "rect"
}

func silkLayer(layer string) string {
	switch layer {
	case "4":
		return "B.SilkS"
	case "3":
		return "F.SilkS"
	}

	return "F.Fab"
}

/*
	FootprintName builds the on-disk footprint identity: sanitized
	package label plus catalog id, so two parts sharing a label never
	collide.
*/
func FootprintName(component *ParsedComponent) string {
	name := SanitizeName(component.Footprint.Name)
	if component.Info.CatalogID != "" {
		name += "_" + SanitizeName(component.Info.CatalogID)
	}

	return name
}

/*
	SerializeFootprint emits one complete .kicad_mod definition. A
	component with zero pads still serializes; callers should treat
	that as a soft failure upstream.
*/
func SerializeFootprint(component *ParsedComponent, libraryName string) string {
	shapes := component.Footprint.Shapes
	ox, oy := component.Footprint.OriginX, component.Footprint.OriginY
	name := FootprintName(component)

	text := strings.Builder{}
	fmt.Fprintf(&text, "(footprint %q (version %s) (generator %s) (layer \"F.Cu\")\n",
		name, symbolFormatVersion, generatorName)
	fmt.Fprintf(&text, "  (descr %q)\n", component.Info.Description)

	if component.Footprint.Type == FootprintSMD {
		text.WriteString("  (attr smd)\n")
	} else {
		text.WriteString("  (attr through_hole)\n")
	}

	/*
		Pad extents in mm, accumulated before rounding.
	*/
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pad := range shapes.Pads {
		x := Normalize(pad.X, ox, AxisX)
		y := Normalize(pad.Y, oy, AxisY)
		w := NormalizeSize(pad.Width)
		h := NormalizeSize(pad.Height)
		minX = math.Min(minX, x-w/2)
		minY = math.Min(minY, y-h/2)
		maxX = math.Max(maxX, x+w/2)
		maxY = math.Max(maxY, y+h/2)
	}

	refY, valY := minY-1.5, maxY+1.5
	if len(shapes.Pads) == 0 {
		refY, valY = -1.5, 1.5
	}

	fmt.Fprintf(&text,
		"  (fp_text reference \"REF**\" (at 0 %s) (layer \"F.SilkS\")\n    (effects (font (size 1 1) (thickness 0.15)))\n  )\n",
		FormatPos(refY))
	fmt.Fprintf(&text,
		"  (fp_text value %q (at 0 %s) (layer \"F.Fab\")\n    (effects (font (size 1 1) (thickness 0.15)))\n  )\n",
		name, FormatPos(valY))

	if len(shapes.Pads) > 0 {
		fmt.Fprintf(&text,
			"  (fp_rect (start %s %s) (end %s %s)\n    (stroke (width 0.05) (type default)) (fill none) (layer \"F.CrtYd\")\n  )\n",
			FormatPos(minX-courtyardMargin), FormatPos(minY-courtyardMargin),
			FormatPos(maxX+courtyardMargin), FormatPos(maxY+courtyardMargin),
		)
	}

	for _, track := range shapes.Tracks {
		points := track.Points
		for i := 0; i+3 < len(points); i += 2 {
			fmt.Fprintf(&text,
				"  (fp_line (start %s %s) (end %s %s)\n    (stroke (width %s) (type solid)) (layer %q)\n  )\n",
				FormatPos(Normalize(points[i], ox, AxisX)), FormatPos(Normalize(points[i+1], oy, AxisY)),
				FormatPos(Normalize(points[i+2], ox, AxisX)), FormatPos(Normalize(points[i+3], oy, AxisY)),
				FormatSize(NormalizeSize(track.Width)), silkLayer(track.Layer),
			)
		}
	}

	for _, circle := range shapes.Circles {
		cx := Normalize(circle.X, ox, AxisX)
		cy := Normalize(circle.Y, oy, AxisY)
		fmt.Fprintf(&text,
			"  (fp_circle (center %s %s) (end %s %s)\n    (stroke (width %s) (type solid)) (fill none) (layer %q)\n  )\n",
			FormatPos(cx), FormatPos(cy),
			FormatPos(cx+NormalizeSize(circle.Radius)), FormatPos(cy),
			FormatSize(NormalizeSize(circle.Width)), silkLayer(circle.Layer),
		)
	}

	for _, rect := range shapes.Rects {
		x := Normalize(rect.X, ox, AxisX)
		y := Normalize(rect.Y, oy, AxisY)
		fmt.Fprintf(&text,
			"  (fp_rect (start %s %s) (end %s %s)\n    (stroke (width 0.1) (type solid)) (fill none) (layer %q)\n  )\n",
			FormatPos(x), FormatPos(y),
			FormatPos(x+NormalizeSize(rect.Width)), FormatPos(y-NormalizeSize(rect.Height)),
			silkLayer(rect.Layer),
		)
	}

	for _, pad := range shapes.Pads {
		text.WriteString(serializePad(pad, ox, oy))
	}

	for _, hole := range shapes.Holes {
		d := NormalizeSize(hole.Radius * 2)
		fmt.Fprintf(&text,
			"  (pad \"\" np_thru_hole circle (at %s %s) (size %s %s) (drill %s) (layers \"*.Cu\" \"*.Mask\"))\n",
			FormatPos(Normalize(hole.X, ox, AxisX)), FormatPos(Normalize(hole.Y, oy, AxisY)),
			FormatSize(d), FormatSize(d), FormatSize(d),
		)
	}

	for _, via := range shapes.Vias {
		d := NormalizeSize(via.Diameter)
		fmt.Fprintf(&text,
			"  (pad \"\" thru_hole circle (at %s %s) (size %s %s) (drill %s) (layers \"*.Cu\" \"*.Mask\"))\n",
			FormatPos(Normalize(via.X, ox, AxisX)), FormatPos(Normalize(via.Y, oy, AxisY)),
			FormatSize(d), FormatSize(d), FormatSize(NormalizeSize(via.HoleRadius*2)),
		)
	}

	if component.Model != nil {
		fmt.Fprintf(&text,
			"  (model %q\n    (offset (xyz 0 0 0))\n    (scale (xyz 1 1 1))\n    (rotate (xyz 0 0 0))\n  )\n",
			"${KPARTS_3DMODEL_DIR}/"+SanitizeName(component.Model.Name)+".wrl",
		)
	}

	text.WriteString(")\n")

	return text.String()
}

func serializePad(pad *Pad, ox, oy float64) string {
	x := Normalize(pad.X, ox, AxisX)
	y := Normalize(pad.Y, oy, AxisY)
	w := NormalizeSize(pad.Width)
	h := NormalizeSize(pad.Height)

	at := fmt.Sprintf("(at %s %s)", FormatPos(x), FormatPos(y))
	if pad.Rotation != 0 {
		at = fmt.Sprintf("(at %s %s %s)", FormatPos(x), FormatPos(y), FormatPos(pad.Rotation))
	}

	text := strings.Builder{}
	if pad.ThroughHole() {
		fmt.Fprintf(&text, "  (pad %q thru_hole %s %s (size %s %s) (drill %s) (layers \"*.Cu\" \"*.Mask\")",
			pad.Designator, padShapeName(pad), at,
			FormatSize(w), FormatSize(h),
			FormatSize(NormalizeSize(pad.HoleRadius*2)),
		)
	} else {
		fmt.Fprintf(&text, "  (pad %q smd %s %s (size %s %s) (layers \"F.Cu\" \"F.Paste\" \"F.Mask\")",
			pad.Designator, padShapeName(pad), at,
			FormatSize(w), FormatSize(h),
		)
	}

	if pad.Shape == PadRoundRect {
		text.WriteString(" (roundrect_rratio 0.25)")
	}

	if pad.Shape == PadPolygon && len(pad.Points) >= 6 {
		text.WriteString("\n    (primitives\n      (gr_poly\n        (pts\n")
		for i := 0; i+1 < len(pad.Points); i += 2 {
			/*
				Outline points come in absolute drawing coordinates;
				primitives want them relative to the pad center.
			*/
			px := Normalize(pad.Points[i], ox, AxisX) - x
			py := Normalize(pad.Points[i+1], oy, AxisY) - y
			fmt.Fprintf(&text, "          (xy %s %s)\n", FormatPos(px), FormatPos(py))
		}
		text.WriteString("        )\n        (width 0)\n      )\n    )\n  )\n")

		return text.String()
	}

	text.WriteString(")\n")

	return text.String()
}

package lib

import (
	"encoding/json"
	"fmt"
	"strings"
)

/*
	EasyEDA drawing records are single lines of tilde-separated fields
	tagged by a leading token. Pin records additionally group
	sub-records with a caret-pair delimiter:

		P~show~0~1~660~-10~0~gge23^^...^^...^^0~663~-13~0~VCC~start~...

	The decoders below are one-per-tag. A record that cannot be decoded
	is skipped and reported; a stream is never rejected because of one
	bad record, since the source data is externally produced.
*/

const (
	fieldDelim = "~"
	groupDelim = "^^"
)

type PinType int

const (
	PinUnspecified PinType = iota
	PinInput
	PinOutput
	PinBidirectional
	PinPowerIn
	PinPowerOut
	PinOpenCollector
	PinOpenEmitter
	PinPassive
	PinNoConnect
)

/*
	The electrical-type code set is closed. Anything outside it
	degrades to unspecified.
*/
func DecodePinType(code string) PinType {
	switch strings.TrimSpace(code) {
	case "1":
		return PinInput
	case "2":
		return PinOutput
	case "3":
		return PinBidirectional
	case "4":
		return PinPowerIn
	case "5":
		return PinPowerOut
	case "6":
		return PinOpenCollector
	case "7":
		return PinOpenEmitter
	case "8":
		return PinPassive
	case "9":
		return PinNoConnect
	}

	return PinUnspecified
}

type Pin struct {
	Designator string
	Name       string
	Type       PinType
	X          float64
	Y          float64
	Rotation   float64
}

type PadShape int

const (
	PadRect PadShape = iota
	PadEllipse
	PadOval
	PadRoundRect
	PadPolygon
)

func decodePadShape(s string) PadShape {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ELLIPSE", "CIRCLE":
		return PadEllipse
	case "OVAL":
		return PadOval
	case "ROUNDRECT":
		return PadRoundRect
	case "POLYGON":
		return PadPolygon
	}

	return PadRect
}

type Pad struct {
	Designator string
	Shape      PadShape
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Layer      string
	HoleRadius float64
	Points     []float64
	Rotation   float64
}

/*
	A hole radius above zero implies a plated through-hole pad.
*/
func (p *Pad) ThroughHole() bool {
	return p.HoleRadius > 0
}

type Track struct {
	Width  float64
	Layer  string
	Points []float64
}

type Hole struct {
	X      float64
	Y      float64
	Radius float64
}

type Circle struct {
	X      float64
	Y      float64
	Radius float64
	Width  float64
	Layer  string
}

type Arc struct {
	Width float64
	Layer string
	Path  string
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Layer  string
}

type Via struct {
	X          float64
	Y          float64
	Diameter   float64
	HoleRadius float64
}

type Text struct {
	Kind  string
	X     float64
	Y     float64
	Value string
}

type Model3D struct {
	Name string
	UUID string
}

/*
	decodePin handles the pin record idiosyncrasy: most attributes live
	in the first caret group, but the display name is nested in the
	fourth group at field four.
*/
func decodePin(record string) (*Pin, error) {
	groups := strings.Split(record, groupDelim)
	head := strings.Split(groups[0], fieldDelim)
	if len(head) < 6 {
		return nil, fmt.Errorf("pin record has %d head fields", len(head))
	}

	x, err := mustField(head[4])
	if err != nil {
		return nil, err
	}
	y, err := mustField(head[5])
	if err != nil {
		return nil, err
	}

	pin := &Pin{
		Designator: strings.TrimSpace(head[3]),
		Type:       DecodePinType(head[2]),
		X:          x,
		Y:          y,
	}
	if len(head) > 6 {
		pin.Rotation = field(head[6])
	}

	if len(groups) > 3 {
		name := strings.Split(groups[3], fieldDelim)
		if len(name) > 4 {
			pin.Name = strings.TrimSpace(name[4])
		}
	}

	if pin.Designator == "" {
		return nil, fmt.Errorf("pin record has no designator")
	}

	return pin, nil
}

func decodePad(fields []string) (*Pad, error) {
	if len(fields) < 10 {
		return nil, fmt.Errorf("pad record has %d fields", len(fields))
	}

	x, err := mustField(fields[2])
	if err != nil {
		return nil, err
	}
	y, err := mustField(fields[3])
	if err != nil {
		return nil, err
	}
	w, err := mustField(fields[4])
	if err != nil {
		return nil, err
	}
	h, err := mustField(fields[5])
	if err != nil {
		return nil, err
	}

	pad := &Pad{
		Designator: strings.TrimSpace(fields[8]),
		Shape:      decodePadShape(fields[1]),
		X:          x,
		Y:          y,
		Width:      w,
		Height:     h,
		Layer:      strings.TrimSpace(fields[6]),
		HoleRadius: field(fields[9]),
	}

	if pad.Shape == PadPolygon && len(fields) > 10 {
		pad.Points = decodePoints(fields[10])
	}
	if len(fields) > 11 {
		pad.Rotation = field(fields[11])
	}

	return pad, nil
}

/*
	Outline points are a flat space-separated list of alternating x/y
	values. A trailing odd value is discarded.
*/
func decodePoints(s string) []float64 {
	parts := strings.Fields(strings.ReplaceAll(s, ",", " "))
	points := []float64{}
	for _, part := range parts {
		points = append(points, field(part))
	}

	if len(points)%2 == 1 {
		points = points[:len(points)-1]
	}

	return points
}

func decodeTrack(fields []string) (*Track, error) {
	if len(fields) < 5 {
		return nil, fmt.Errorf("track record has %d fields", len(fields))
	}

	return &Track{
		Width:  field(fields[1]),
		Layer:  strings.TrimSpace(fields[2]),
		Points: decodePoints(fields[4]),
	}, nil
}

func decodeHole(fields []string) (*Hole, error) {
	if len(fields) < 4 {
		return nil, fmt.Errorf("hole record has %d fields", len(fields))
	}

	x, err := mustField(fields[1])
	if err != nil {
		return nil, err
	}
	y, err := mustField(fields[2])
	if err != nil {
		return nil, err
	}

	return &Hole{X: x, Y: y, Radius: field(fields[3])}, nil
}

func decodeCircle(fields []string) (*Circle, error) {
	if len(fields) < 6 {
		return nil, fmt.Errorf("circle record has %d fields", len(fields))
	}

	x, err := mustField(fields[1])
	if err != nil {
		return nil, err
	}
	y, err := mustField(fields[2])
	if err != nil {
		return nil, err
	}

	return &Circle{
		X:      x,
		Y:      y,
		Radius: field(fields[3]),
		Width:  field(fields[4]),
		Layer:  strings.TrimSpace(fields[5]),
	}, nil
}

func decodeArc(fields []string) (*Arc, error) {
	if len(fields) < 5 {
		return nil, fmt.Errorf("arc record has %d fields", len(fields))
	}

	return &Arc{
		Width: field(fields[1]),
		Layer: strings.TrimSpace(fields[2]),
		Path:  fields[4],
	}, nil
}

func decodeRect(fields []string) (*Rect, error) {
	if len(fields) < 6 {
		return nil, fmt.Errorf("rect record has %d fields", len(fields))
	}

	x, err := mustField(fields[1])
	if err != nil {
		return nil, err
	}
	y, err := mustField(fields[2])
	if err != nil {
		return nil, err
	}

	return &Rect{
		X:      x,
		Y:      y,
		Width:  field(fields[3]),
		Height: field(fields[4]),
		Layer:  strings.TrimSpace(fields[5]),
	}, nil
}

func decodeVia(fields []string) (*Via, error) {
	if len(fields) < 6 {
		return nil, fmt.Errorf("via record has %d fields", len(fields))
	}

	x, err := mustField(fields[1])
	if err != nil {
		return nil, err
	}
	y, err := mustField(fields[2])
	if err != nil {
		return nil, err
	}

	return &Via{
		X:          x,
		Y:          y,
		Diameter:   field(fields[3]),
		HoleRadius: field(fields[5]),
	}, nil
}

func decodeText(fields []string) (*Text, error) {
	if len(fields) < 4 {
		return nil, fmt.Errorf("text record has %d fields", len(fields))
	}

	x, err := mustField(fields[2])
	if err != nil {
		return nil, err
	}
	y, err := mustField(fields[3])
	if err != nil {
		return nil, err
	}

	text := &Text{Kind: strings.TrimSpace(fields[1]), X: x, Y: y}
	if len(fields) > 10 {
		text.Value = fields[10]
	}

	return text, nil
}

/*
	The 3D model reference rides inside an SVGNODE record whose second
	field is a JSON document. Only attrs.uuid and attrs.title matter.
*/
func decodeModel3D(fields []string) (*Model3D, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("svgnode record has no payload")
	}

	payload := struct {
		Attrs struct {
			UUID  string `json:"uuid"`
			Title string `json:"title"`
		} `json:"attrs"`
	}{}

	if err := json.Unmarshal([]byte(fields[1]), &payload); err != nil {
		return nil, err
	}
	if payload.Attrs.UUID == "" {
		return nil, fmt.Errorf("svgnode carries no uuid")
	}

	return &Model3D{Name: payload.Attrs.Title, UUID: payload.Attrs.UUID}, nil
}

/*
	FootprintShapes is everything decoded from one footprint drawing.
	Skipped keeps the records that failed to decode; callers may report
	the count but the conversion continues regardless.
*/
type FootprintShapes struct {
	Pads    []*Pad
	Tracks  []*Track
	Holes   []*Hole
	Circles []*Circle
	Arcs    []*Arc
	Rects   []*Rect
	Vias    []*Via
	Texts   []*Text
	Model   *Model3D

	Skipped []string
}

func ParseFootprintShapes(records []string) *FootprintShapes {
	shapes := &FootprintShapes{}
	for _, record := range records {
		fields := strings.Split(record, fieldDelim)
		if len(fields) == 0 || strings.TrimSpace(fields[0]) == "" {
			continue
		}

		var err error
		switch strings.ToUpper(strings.TrimSpace(fields[0])) {
		case "PAD":
			var pad *Pad
			if pad, err = decodePad(fields); err == nil {
				shapes.Pads = append(shapes.Pads, pad)
			}
		case "TRACK":
			var track *Track
			if track, err = decodeTrack(fields); err == nil {
				shapes.Tracks = append(shapes.Tracks, track)
			}
		case "HOLE":
			var hole *Hole
			if hole, err = decodeHole(fields); err == nil {
				shapes.Holes = append(shapes.Holes, hole)
			}
		case "CIRCLE":
			var circle *Circle
			if circle, err = decodeCircle(fields); err == nil {
				shapes.Circles = append(shapes.Circles, circle)
			}
		case "ARC":
			var arc *Arc
			if arc, err = decodeArc(fields); err == nil {
				shapes.Arcs = append(shapes.Arcs, arc)
			}
		case "RECT":
			var rect *Rect
			if rect, err = decodeRect(fields); err == nil {
				shapes.Rects = append(shapes.Rects, rect)
			}
		case "VIA":
			var via *Via
			if via, err = decodeVia(fields); err == nil {
				shapes.Vias = append(shapes.Vias, via)
			}
		case "TEXT":
			var text *Text
			if text, err = decodeText(fields); err == nil {
				shapes.Texts = append(shapes.Texts, text)
			}
		case "SVGNODE":
			/*
				Scan for the model reference opportunistically; its
				absence is not an error and does not mark the record
				skipped.
			*/
			if model, merr := decodeModel3D(fields); merr == nil && shapes.Model == nil {
				shapes.Model = model
			}
		case "SOLIDREGION":
			/*
				Copper art has no footprint equivalent here; drop it
				without counting it as a decode failure.
			*/
		default:
			err = fmt.Errorf("unrecognized record tag %q", fields[0])
		}

		if err != nil {
			shapes.Skipped = append(shapes.Skipped, record)
		}
	}

	return shapes
}

/*
	SymbolShapes keeps pins typed and everything else as raw strings,
	preserved for completeness.
*/
type SymbolShapes struct {
	Pins       []*Pin
	Decorative []string

	Skipped []string
}

func ParseSymbolShapes(records []string) *SymbolShapes {
	shapes := &SymbolShapes{}
	for _, record := range records {
		if strings.TrimSpace(record) == "" {
			continue
		}

		if !strings.HasPrefix(record, "P"+fieldDelim) {
			shapes.Decorative = append(shapes.Decorative, record)
			continue
		}

		pin, err := decodePin(record)
		if err != nil {
			shapes.Skipped = append(shapes.Skipped, record)
			continue
		}

		shapes.Pins = append(shapes.Pins, pin)
	}

	return shapes
}

package legacy

import (
	"fmt"
	"strconv"
	"strings"
)

// Typed views over the positional record families. Parsers that can fail
// return an error so callers can discard the one bad record and keep going;
// parsers with documented defaults for every field never fail.

// Unquote strips one layer of surrounding double quotes, if present.
func Unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

func floatAt(fields []string, index int, def float64) float64 {
	if index >= len(fields) {
		return def
	}
	v, err := strconv.ParseFloat(fields[index], 64)
	if err != nil {
		return def
	}
	return v
}

func requireFloat(fields []string, index int) (float64, error) {
	if index >= len(fields) {
		return 0, fmt.Errorf("%s record too short: %d fields", fields[0], len(fields))
	}
	v, err := strconv.ParseFloat(fields[index], 64)
	if err != nil {
		return 0, fmt.Errorf("%s record field %d: %w", fields[0], index, err)
	}
	return v, nil
}

// Placement is the module Po record: module position, layer hints, the last
// edited stamp and the locked/placed status flags.
//
//	Po X Y orient layerAlt layer tedit tstamp status
type Placement struct {
	X, Y       float64
	LayerField string // preferred layer field (index 4)
	AltField   string // fallback layer field (index 3), layout varies by era
	Tedit      string
	Locked     bool
	Placed     bool
}

// defaultPlacement substitutes for a module without a Po record: origin,
// front copper, zero stamps, no status flags.
var defaultPlacement = []string{"Po", "0", "0", "0", "15", "00000000", "00000000", "~~"}

const (
	lockedSentinel = 'F'
	placedSentinel = 'P'
)

// ParsePlacement decodes a Po record, substituting the documented default
// field list when the record is absent. Missing trailing fields keep their
// defaults; ParsePlacement never fails.
func ParsePlacement(fields []string) Placement {
	if len(fields) == 0 {
		fields = defaultPlacement
	}

	p := Placement{
		X:     floatAt(fields, 1, 0),
		Y:     floatAt(fields, 2, 0),
		Tedit: "00000000",
	}
	if len(fields) > 3 {
		p.AltField = fields[3]
	}
	if len(fields) > 4 {
		p.LayerField = fields[4]
	}
	if len(fields) > 5 {
		p.Tedit = fields[5]
	}
	if len(fields) > 7 {
		status := fields[7]
		p.Locked = len(status) > 0 && status[0] == lockedSentinel
		p.Placed = len(status) > 1 && status[1] == placedSentinel
	}
	return p
}

// Text is one T<n> text record. T0 carries the reference designator, T1 the
// value, any other index free user text.
//
//	T<n> X Y size size2 rot thickness mirror visible layer italic "label"
type Text struct {
	Tag        string
	X, Y       float64
	Size       float64
	RotDeci    float64 // tenths of a degree
	Thickness  float64
	Hidden     bool // visible field carries the hide sentinel
	LayerField string
	Label      string
}

const hiddenSentinel = "I"

// textLabelOffset is where the quoted label begins; everything from here on
// is re-joined with single spaces.
const textLabelOffset = 11

// ParseText decodes a text-family record. Records too short to carry the
// numeric core are rejected.
func ParseText(fields []string) (Text, error) {
	if len(fields) < 7 {
		return Text{}, fmt.Errorf("text record too short: %d fields", len(fields))
	}

	t := Text{Tag: fields[0]}
	var err error
	if t.X, err = requireFloat(fields, 1); err != nil {
		return Text{}, err
	}
	if t.Y, err = requireFloat(fields, 2); err != nil {
		return Text{}, err
	}
	if t.Size, err = requireFloat(fields, 3); err != nil {
		return Text{}, err
	}
	if t.RotDeci, err = requireFloat(fields, 5); err != nil {
		return Text{}, err
	}
	if t.Thickness, err = requireFloat(fields, 6); err != nil {
		return Text{}, err
	}

	if len(fields) > 8 {
		t.Hidden = fields[8] == hiddenSentinel
	}
	if len(fields) > 9 {
		t.LayerField = fields[9]
	}
	if len(fields) > textLabelOffset {
		t.Label = Unquote(strings.Join(fields[textLabelOffset:], " "))
	}
	return t, nil
}

// IsReference reports whether the record is the reference designator text.
func (t Text) IsReference() bool { return t.Tag == "T0" }

// IsValue reports whether the record is the value text.
func (t Text) IsValue() bool { return t.Tag == "T1" }

// Segment is a DS straight drawing segment.
//
//	DS x1 y1 x2 y2 width layer
type Segment struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	LayerField     string
}

// ParseSegment decodes a DS record (needs at least 7 fields).
func ParseSegment(fields []string) (Segment, error) {
	if len(fields) < 7 {
		return Segment{}, fmt.Errorf("DS record too short: %d fields", len(fields))
	}
	var s Segment
	var err error
	if s.X1, err = requireFloat(fields, 1); err != nil {
		return Segment{}, err
	}
	if s.Y1, err = requireFloat(fields, 2); err != nil {
		return Segment{}, err
	}
	if s.X2, err = requireFloat(fields, 3); err != nil {
		return Segment{}, err
	}
	if s.Y2, err = requireFloat(fields, 4); err != nil {
		return Segment{}, err
	}
	if s.Width, err = requireFloat(fields, 5); err != nil {
		return Segment{}, err
	}
	s.LayerField = fields[6]
	return s, nil
}

// Circle is a DC drawing circle: centre plus a point on the circumference.
//
//	DC cx cy px py width layer
type Circle struct {
	CX, CY, PX, PY float64
	Width          float64
	LayerField     string
}

// ParseCircle decodes a DC record (needs at least 7 fields).
func ParseCircle(fields []string) (Circle, error) {
	if len(fields) < 7 {
		return Circle{}, fmt.Errorf("DC record too short: %d fields", len(fields))
	}
	var c Circle
	var err error
	if c.CX, err = requireFloat(fields, 1); err != nil {
		return Circle{}, err
	}
	if c.CY, err = requireFloat(fields, 2); err != nil {
		return Circle{}, err
	}
	if c.PX, err = requireFloat(fields, 3); err != nil {
		return Circle{}, err
	}
	if c.PY, err = requireFloat(fields, 4); err != nil {
		return Circle{}, err
	}
	if c.Width, err = requireFloat(fields, 5); err != nil {
		return Circle{}, err
	}
	c.LayerField = fields[6]
	return c, nil
}

// Arc is a DA drawing arc. The angle field is emitted as-is; exact arc
// reconstruction from the legacy endpoints is approximate by design.
//
//	DA x1 y1 x2 y2 angle width layer
type Arc struct {
	X1, Y1, X2, Y2 float64
	Angle          float64 // not unit-converted
	Width          float64
	LayerField     string
}

// ParseArc decodes a DA record (needs at least 8 fields).
func ParseArc(fields []string) (Arc, error) {
	if len(fields) < 8 {
		return Arc{}, fmt.Errorf("DA record too short: %d fields", len(fields))
	}
	var a Arc
	var err error
	if a.X1, err = requireFloat(fields, 1); err != nil {
		return Arc{}, err
	}
	if a.Y1, err = requireFloat(fields, 2); err != nil {
		return Arc{}, err
	}
	if a.X2, err = requireFloat(fields, 3); err != nil {
		return Arc{}, err
	}
	if a.Y2, err = requireFloat(fields, 4); err != nil {
		return Arc{}, err
	}
	if a.Angle, err = requireFloat(fields, 5); err != nil {
		return Arc{}, err
	}
	if a.Width, err = requireFloat(fields, 6); err != nil {
		return Arc{}, err
	}
	a.LayerField = fields[7]
	return a, nil
}

// PolyOpen is a DP record opening a polygon of Count following Dl points.
//
//	DP 0 0 0 0 count width layer
type PolyOpen struct {
	Count      int
	Width      float64
	LayerField string
}

// ParsePolyOpen decodes a DP record (needs at least 8 fields).
func ParsePolyOpen(fields []string) (PolyOpen, error) {
	if len(fields) < 8 {
		return PolyOpen{}, fmt.Errorf("DP record too short: %d fields", len(fields))
	}
	count, err := strconv.Atoi(fields[5])
	if err != nil {
		return PolyOpen{}, fmt.Errorf("DP point count: %w", err)
	}
	width, err := requireFloat(fields, 6)
	if err != nil {
		return PolyOpen{}, err
	}
	return PolyOpen{Count: count, Width: width, LayerField: fields[7]}, nil
}

// PolyPoint is a Dl record contributing one polygon vertex.
type PolyPoint struct {
	X, Y float64
}

// ParsePolyPoint decodes a Dl record.
func ParsePolyPoint(fields []string) (PolyPoint, error) {
	if len(fields) < 3 {
		return PolyPoint{}, fmt.Errorf("Dl record too short: %d fields", len(fields))
	}
	x, err := requireFloat(fields, 1)
	if err != nil {
		return PolyPoint{}, err
	}
	y, err := requireFloat(fields, 2)
	if err != nil {
		return PolyPoint{}, err
	}
	return PolyPoint{X: x, Y: y}, nil
}

// PadShape is the Sh record of a pad: name, shape code, size and rotation.
//
//	Sh "name" shape sizeX sizeY deltaX deltaY rot
type PadShape struct {
	Name         string
	Shape        string // "C", "R", "O"; other codes carry no shape token
	SizeX, SizeY float64
	RotDeci      float64
}

// ParsePadShape decodes an Sh record.
func ParsePadShape(fields []string) (PadShape, error) {
	if len(fields) < 5 {
		return PadShape{}, fmt.Errorf("Sh record too short: %d fields", len(fields))
	}
	s := PadShape{
		Name:  Unquote(fields[1]),
		Shape: fields[2],
	}
	var err error
	if s.SizeX, err = requireFloat(fields, 3); err != nil {
		return PadShape{}, err
	}
	if s.SizeY, err = requireFloat(fields, 4); err != nil {
		return PadShape{}, err
	}
	s.RotDeci = floatAt(fields, 7, 0)
	return s, nil
}

// PadDrill is one Dr record. A plain drill is a diameter plus an optional
// offset; the "O" marker form declares an oval slot.
//
//	Dr d ox oy [O w h]
type PadDrill struct {
	Diameter         float64
	OffsetX, OffsetY float64
	Oval             bool
	OvalW, OvalH     float64
}

const ovalMarker = "O"

// ParsePadDrill decodes a Dr record.
func ParsePadDrill(fields []string) (PadDrill, error) {
	if len(fields) < 2 {
		return PadDrill{}, fmt.Errorf("Dr record too short: %d fields", len(fields))
	}
	d, err := requireFloat(fields, 1)
	if err != nil {
		return PadDrill{}, err
	}
	drill := PadDrill{
		Diameter: d,
		OffsetX:  floatAt(fields, 2, 0),
		OffsetY:  floatAt(fields, 3, 0),
	}
	if len(fields) >= 7 && fields[4] == ovalMarker {
		drill.Oval = true
		drill.OvalW = floatAt(fields, 5, 0)
		drill.OvalH = floatAt(fields, 6, 0)
	}
	return drill, nil
}

// PadAttributes is the At record of a pad selecting its technology and the
// hexadecimal layer mask.
//
//	At STD|SMD|CONN|HOLE N mask
type PadAttributes struct {
	Type      string
	MaskField string
}

// ParsePadAttributes decodes an At record. A missing record yields the
// through-hole default with an empty mask.
func ParsePadAttributes(fields []string) PadAttributes {
	at := PadAttributes{Type: "STD"}
	if len(fields) > 1 {
		at.Type = fields[1]
	}
	if len(fields) > 3 {
		at.MaskField = fields[3]
	}
	return at
}

// IsSMD reports whether the pad is surface-mount.
func (a PadAttributes) IsSMD() bool {
	return strings.EqualFold(a.Type, "SMD")
}

// XYZ is a three-axis value from a 3-D shape Of/Sc/Ro record.
type XYZ struct {
	X, Y, Z float64
}

// ParseXYZ decodes an Of/Sc/Ro record, substituting def on every missing or
// unparsable axis.
func ParseXYZ(fields []string, def float64) XYZ {
	return XYZ{
		X: floatAt(fields, 1, def),
		Y: floatAt(fields, 2, def),
		Z: floatAt(fields, 3, def),
	}
}

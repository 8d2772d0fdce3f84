// Package footprint generates modern KiCad footprint files (.kicad_mod) from
// legacy module block trees. Generation is best-effort: a record that fails
// to parse is dropped and the rest of the footprint still emits.
package footprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/modconv/pkg/kicad/layers"
	"github.com/OpenTraceLab/modconv/pkg/legacy"
)

// ReferencePlaceholder is the substitution token current KiCad versions
// expand to the footprint's reference designator.
const ReferencePlaceholder = "${REFERENCE}"

// Placeholder font geometry, in millimetres.
const (
	placeholderMargin    = 1.0
	placeholderFontSize  = "1"
	placeholderFontThick = "0.15"
)

const defaultModuleName = "NONAME"

// Default labels substituted for empty reference and value texts.
const (
	defaultReferenceLabel = "REF**"
	defaultValueLabel     = "VAL**"
)

// Result is one generated footprint.
type Result struct {
	Name     string // declared module name
	FileName string // sanitized destination file name
	Content  string // complete .kicad_mod text
	Extent   Extent // bounding extent of emitted geometry, in mm
}

// Generate converts one completed legacy module subtree into a modern
// footprint. The unit scale must be the one in effect for the module's file
// (see legacy.ScaleFor); it is fixed before any numeric conversion happens.
func Generate(mod *legacy.Node, scale float64) (*Result, error) {
	if mod == nil {
		return nil, fmt.Errorf("no module node")
	}
	if scale <= 0 {
		return nil, fmt.Errorf("invalid unit scale %g", scale)
	}

	g := &generator{scale: scale}
	name := moduleName(mod)

	g.header(name, legacy.ParsePlacement(mod.Record("Po")))
	g.metadata(mod)
	g.texts(mod)
	g.drawings(mod)
	g.children(mod)
	g.referencePlaceholder()
	g.b.WriteString(")\n")

	return &Result{
		Name:     name,
		FileName: SafeFileName(name) + ".kicad_mod",
		Content:  g.b.String(),
		Extent:   g.ext.scaled(scale),
	}, nil
}

type generator struct {
	b     strings.Builder
	scale float64

	// maxY is the running maximum over consumed coordinate fields, in raw
	// legacy units. It seeds the synthesized reference placeholder position.
	maxY float64
	ext  Extent

	poly *polyState
}

// polyState is an open fp_poly clause awaiting its declared point count.
type polyState struct {
	remaining int
	points    int
	width     float64
	layer     string
}

func (g *generator) coord(v float64) string {
	return FormatCoord(v * g.scale)
}

// at composes a position and a decidegree rotation into an (at ...) clause.
// Rotations whose converted magnitude is negligible carry no angle token.
func (g *generator) at(x, y, rotDeci float64) string {
	deg := rotDeci / 10
	if deg <= angleEpsilon && deg >= -angleEpsilon {
		return fmt.Sprintf("(at %s %s)", g.coord(x), g.coord(y))
	}
	return fmt.Sprintf("(at %s %s %s)", g.coord(x), g.coord(y), FormatAngle(deg))
}

func (g *generator) bumpY(v float64) {
	if v > g.maxY {
		g.maxY = v
	}
}

func moduleName(mod *legacy.Node) string {
	rec := mod.Record(legacy.ModuleTag)
	if len(rec) < 2 {
		return defaultModuleName
	}
	name := legacy.Unquote(strings.Join(rec[1:], " "))
	if name == "" {
		return defaultModuleName
	}
	return name
}

// header emits the opening module clause: name, status keywords, layer and
// last-edited stamp, in that order.
func (g *generator) header(name string, pl legacy.Placement) {
	layer, ok := layers.Lookup(pl.LayerField)
	if !ok {
		// Older library revisions carry the layer one field earlier.
		layer, ok = layers.Lookup(pl.AltField)
	}
	if !ok {
		layer = layers.FrontCopper
	}

	g.b.WriteString("(module ")
	g.b.WriteString(symbolOrQuoted(name))
	if pl.Locked {
		g.b.WriteString(" locked")
	}
	if pl.Placed {
		g.b.WriteString(" placed")
	}
	fmt.Fprintf(&g.b, " (layer %s) (tedit %s)\n", layer, pl.Tedit)
}

// metadata emits the optional description, tags and attribute clauses.
func (g *generator) metadata(mod *legacy.Node) {
	if cd := mod.Record("Cd"); len(cd) > 1 {
		fmt.Fprintf(&g.b, "  (descr %s)\n", quoted(legacy.Unquote(strings.Join(cd[1:], " "))))
	}
	if kw := mod.Record("Kw"); len(kw) > 1 {
		fmt.Fprintf(&g.b, "  (tags %s)\n", quoted(legacy.Unquote(strings.Join(kw[1:], " "))))
	}
	if at := mod.Record("At"); len(at) > 1 && at[1] != "" {
		fmt.Fprintf(&g.b, "  (attr %s)\n", symbolOrQuoted(strings.ToLower(at[1])))
	}
}

func (g *generator) texts(mod *legacy.Node) {
	for _, fields := range mod.RecordsFor(legacy.TextKey) {
		t, err := legacy.ParseText(fields)
		if err != nil {
			continue
		}
		g.text(t)
	}
}

func (g *generator) text(t legacy.Text) {
	class := "user"
	switch {
	case t.IsReference():
		class = "reference"
	case t.IsValue():
		class = "value"
	}

	label := t.Label
	if label == "" {
		switch class {
		case "reference":
			label = defaultReferenceLabel
		case "value":
			label = defaultValueLabel
		}
	}

	layer := layers.NameOr(t.LayerField, layers.BackSilk)
	if class == "value" {
		// Current KiCad requires the value text on the front fabrication
		// layer no matter what the source declared.
		layer = layers.FrontFab
	}

	g.ext.Expand(t.X, t.Y)
	g.bumpY(t.Y)

	fmt.Fprintf(&g.b, "  (fp_text %s %s %s (layer %s)", class, symbolOrQuoted(label), g.at(t.X, t.Y, t.RotDeci), layer)
	if t.Hidden && class == "user" {
		g.b.WriteString(" hide")
	}
	size := g.coord(t.Size)
	fmt.Fprintf(&g.b, "\n    (effects (font (size %s %s) (thickness %s)))\n  )\n", size, size, g.coord(t.Thickness))
}

func (g *generator) drawings(mod *legacy.Node) {
	for _, fields := range mod.RecordsFor(legacy.DrawKey) {
		switch fields[0] {
		case "DS":
			g.segment(fields)
		case "DC":
			g.circle(fields)
		case "DA":
			g.arc(fields)
		case "DP":
			g.polyOpen(fields)
		case "Dl":
			g.polyPoint(fields)
		}
	}
	// A polygon whose point records ran short of the declared count is
	// force-closed so the footprint stays well-formed.
	if g.poly != nil {
		g.polyClose()
	}
}

func (g *generator) segment(fields []string) {
	s, err := legacy.ParseSegment(fields)
	if err != nil {
		return
	}
	g.ext.Expand(s.X1, s.Y1)
	g.ext.Expand(s.X2, s.Y2)
	for _, v := range []float64{s.X1, s.Y1, s.X2, s.Y2} {
		g.bumpY(v)
	}
	fmt.Fprintf(&g.b, "  (fp_line (start %s %s) (end %s %s) (layer %s) (width %s))\n",
		g.coord(s.X1), g.coord(s.Y1), g.coord(s.X2), g.coord(s.Y2),
		layers.Name(s.LayerField), g.coord(s.Width))
}

func (g *generator) circle(fields []string) {
	c, err := legacy.ParseCircle(fields)
	if err != nil {
		return
	}
	g.ext.Expand(c.CX, c.CY)
	g.ext.Expand(c.PX, c.PY)
	for _, v := range []float64{c.CX, c.CY, c.PX, c.PY} {
		g.bumpY(v)
	}
	fmt.Fprintf(&g.b, "  (fp_circle (center %s %s) (end %s %s) (layer %s) (width %s))\n",
		g.coord(c.CX), g.coord(c.CY), g.coord(c.PX), g.coord(c.PY),
		layers.Name(c.LayerField), g.coord(c.Width))
}

func (g *generator) arc(fields []string) {
	a, err := legacy.ParseArc(fields)
	if err != nil {
		return
	}
	g.ext.Expand(a.X1, a.Y1)
	g.ext.Expand(a.X2, a.Y2)
	for _, v := range []float64{a.X1, a.Y1, a.X2, a.Y2} {
		g.bumpY(v)
	}
	fmt.Fprintf(&g.b, "  (fp_arc (start %s %s) (end %s %s) (angle %s) (layer %s) (width %s))\n",
		g.coord(a.X1), g.coord(a.Y1), g.coord(a.X2), g.coord(a.Y2),
		FormatAngle(a.Angle), layers.Name(a.LayerField), g.coord(a.Width))
}

func (g *generator) polyOpen(fields []string) {
	p, err := legacy.ParsePolyOpen(fields)
	if err != nil {
		return
	}
	if g.poly != nil {
		g.polyClose()
	}
	g.poly = &polyState{
		remaining: p.Count,
		width:     p.Width,
		layer:     layers.Name(p.LayerField),
	}
	g.b.WriteString("  (fp_poly (pts")
}

func (g *generator) polyPoint(fields []string) {
	if g.poly == nil {
		return
	}
	pt, err := legacy.ParsePolyPoint(fields)
	if err != nil {
		return
	}
	g.ext.Expand(pt.X, pt.Y)
	g.bumpY(pt.X)
	g.bumpY(pt.Y)

	if g.poly.points%4 == 0 {
		g.b.WriteString("\n    ")
	} else {
		g.b.WriteString(" ")
	}
	fmt.Fprintf(&g.b, "(xy %s %s)", g.coord(pt.X), g.coord(pt.Y))
	g.poly.points++
	g.poly.remaining--
	if g.poly.remaining <= 0 {
		g.polyClose()
	}
}

func (g *generator) polyClose() {
	fmt.Fprintf(&g.b, ")\n    (layer %s) (width %s))\n", g.poly.layer, FormatCoord(g.poly.width*g.scale))
	g.poly = nil
}

// children walks the module's direct children in document order and emits
// pads and 3-D model references.
func (g *generator) children(mod *legacy.Node) {
	for _, child := range mod.Children {
		switch child.Tag {
		case legacy.PadTag:
			g.pad(child)
		case legacy.Shape3DTag:
			g.model(child)
		}
	}
}

func (g *generator) pad(n *legacy.Node) {
	sh, err := legacy.ParsePadShape(n.Record("Sh"))
	if err != nil {
		return
	}

	at := legacy.ParsePadAttributes(n.Record("At"))
	padType := "thru_hole"
	var layerList []string
	if at.IsSMD() {
		padType = "smd"
		layerList = layers.DecodeMask(at.MaskField, 0xFFFFFFFF)
	} else {
		layerList = append([]string{layers.AllCopper},
			layers.DecodeMask(at.MaskField, layers.AllButOuterCopper)...)
	}

	pos := n.Record("Po")
	x := 0.0
	y := 0.0
	if len(pos) > 2 {
		x = floatField(pos[1])
		y = floatField(pos[2])
	}
	g.ext.Expand(x, y)
	g.bumpY(y)

	var shape, atClause string
	switch sh.Shape {
	case "C":
		// Circles ignore the declared rotation.
		shape = " circle"
		atClause = fmt.Sprintf("(at %s %s)", g.coord(x), g.coord(y))
	case "R":
		shape = " rect"
		atClause = g.at(x, y, sh.RotDeci)
	case "O":
		shape = " oval"
		atClause = g.at(x, y, sh.RotDeci)
	default:
		// Unknown shape codes emit no shape token.
		atClause = g.at(x, y, sh.RotDeci)
	}

	fmt.Fprintf(&g.b, "  (pad %s %s%s %s (size %s %s)",
		symbolOrQuoted(sh.Name), padType, shape, atClause,
		g.coord(sh.SizeX), g.coord(sh.SizeY))

	for _, fields := range n.RecordsFor(legacy.DrawKey) {
		if fields[0] != "Dr" {
			continue
		}
		dr, err := legacy.ParsePadDrill(fields)
		if err != nil || dr.Diameter == 0 {
			continue
		}
		g.drill(dr)
	}

	fmt.Fprintf(&g.b, " (layers %s))\n", strings.Join(layerList, " "))
}

func (g *generator) drill(dr legacy.PadDrill) {
	if dr.Oval {
		fmt.Fprintf(&g.b, " (drill oval %s %s (offset %s %s))",
			g.coord(dr.OvalW), g.coord(dr.OvalH), g.coord(dr.OffsetX), g.coord(dr.OffsetY))
		return
	}
	if dr.OffsetX != 0 || dr.OffsetY != 0 {
		fmt.Fprintf(&g.b, " (drill %s (offset %s %s))",
			g.coord(dr.Diameter), g.coord(dr.OffsetX), g.coord(dr.OffsetY))
		return
	}
	fmt.Fprintf(&g.b, " (drill %s)", g.coord(dr.Diameter))
}

func (g *generator) model(n *legacy.Node) {
	na := n.Record("Na")
	if len(na) < 2 {
		// A shape without a name record references nothing.
		return
	}
	name := legacy.Unquote(strings.Join(na[1:], " "))

	offset := legacy.ParseXYZ(n.Record("Of"), 0)
	scale := legacy.ParseXYZ(n.Record("Sc"), 1)
	rotate := legacy.ParseXYZ(n.Record("Ro"), 0)

	fmt.Fprintf(&g.b, "  (model %s\n    (offset (xyz %s %s %s))\n    (scale (xyz %s %s %s))\n    (rotate (xyz %s %s %s))\n  )\n",
		quoted(name),
		FormatCoord(offset.X), FormatCoord(offset.Y), FormatCoord(offset.Z),
		FormatCoord(scale.X), FormatCoord(scale.Y), FormatCoord(scale.Z),
		FormatCoord(rotate.X), FormatCoord(rotate.Y), FormatCoord(rotate.Z))
}

// referencePlaceholder synthesizes the mandatory reference text just below
// the footprint's bounding extent. Current KiCad expects every footprint to
// carry one regardless of the source's own reference text.
func (g *generator) referencePlaceholder() {
	y := g.maxY*g.scale + placeholderMargin
	fmt.Fprintf(&g.b, "  (fp_text user %s (at 0 %s) (layer %s)\n    (effects (font (size %s %s) (thickness %s)))\n  )\n",
		quoted(ReferencePlaceholder), FormatCoord(y), layers.FrontFab,
		placeholderFontSize, placeholderFontSize, placeholderFontThick)
}

func floatField(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Package ufo holds the typed, read-only model of a UFO font project as
// produced by an external parser. The bridge package walks this model; it
// never mutates it.
//
// Ordering is load-bearing everywhere it appears: layer order, glyph order,
// anchor/contour/component/guideline order, and the sorted key order of
// Dict, Groups, and Kerning are all observable properties of the model.
package ufo

// PointType classifies a contour point.
type PointType string

const (
	Move     PointType = "move"
	Line     PointType = "line"
	OffCurve PointType = "offcurve"
	Curve    PointType = "curve"
	QCurve   PointType = "qcurve"
)

// String returns the point type name as it appears on the wire.
func (t PointType) String() string { return string(t) }

// Transform is an affine transformation in (xx, xy, yx, yy, dx, dy) order.
type Transform struct {
	XX, XY float64
	YX, YY float64
	DX, DY float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{XX: 1, YY: 1}
}

// Font is the root of the typed model.
//
// Features, Groups, and Kerning are optional in the model; the bridge
// normalizes their absence (empty string / empty mapping) rather than
// passing a no-value marker, unlike every other optional field.
type Font struct {
	Lib      Dict
	Layers   LayerSet
	Info     *Info
	Features *string
	Groups   *Groups
	Kerning  *Kerning
}

// LayerSet is an ordered collection of layers plus the name of the default
// layer. Model invariant: DefaultLayerName matches the Name of some element
// of Layers.
type LayerSet struct {
	Layers           []Layer
	DefaultLayerName string
}

// DefaultLayer returns the layer named by DefaultLayerName, or nil if the
// model invariant does not hold.
func (s *LayerSet) DefaultLayer() *Layer {
	for i := range s.Layers {
		if s.Layers[i].Name == s.DefaultLayerName {
			return &s.Layers[i]
		}
	}
	return nil
}

// Layer is a named, ordered collection of glyphs.
type Layer struct {
	Name   string
	Glyphs []*Glyph
	Lib    Dict
	Color  *Color
}

// Glyph is a single glyph outline with its metadata. Glyph pointers may be
// shared across iteration contexts, but each glyph has a single logical
// owner: its layer.
type Glyph struct {
	Name       string
	Width      *float64
	Codepoints []rune
	Lib        Dict
	Note       *string
	Anchors    []Anchor
	Contours   []Contour
	Components []Component
	Guidelines []Guideline
}

// Anchor is a named attachment position.
type Anchor struct {
	X, Y       float64
	Name       *string
	Color      *Color
	Identifier *string
}

// Contour is an ordered sequence of points.
type Contour struct {
	Points     []ContourPoint
	Identifier *string
}

// ContourPoint is a single on- or off-curve point.
type ContourPoint struct {
	X, Y       float64
	Type       PointType
	Smooth     bool
	Name       *string
	Identifier *string
}

// Component references another glyph by name, placed under a transform.
type Component struct {
	Base       string
	Transform  Transform
	Identifier *string
}

// Guideline is a horizontal, vertical, or angled guide. Exactly which of
// X/Y/Angle are set depends on the guide's orientation; the bridge passes
// each through independently.
type Guideline struct {
	X, Y, Angle *float64
	Name        *string
	Color       *Color
	Identifier  *string
}

// Info carries the font-wide metadata fields the bridge marshals. Every
// field is optional; global guidelines are marshalled recursively like
// glyph guidelines.
type Info struct {
	FamilyName *string
	StyleName  *string
	Copyright  *string
	Trademark  *string
	Note       *string

	UnitsPerEm  *float64
	Ascender    *float64
	Descender   *float64
	XHeight     *float64
	CapHeight   *float64
	ItalicAngle *float64

	VersionMajor *int64
	VersionMinor *int64

	Guidelines []Guideline
}

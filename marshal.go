package ufobridge

import (
	"github.com/pkg/errors"

	"github.com/Neumenon/ufobridge/ufo"
)

// ============================================================
// Composite Marshaller
// ============================================================
//
// One method per font-domain entity. Each method assembles the entity's
// fixed, named argument set (scalar and library-data conversions plus
// recursive calls for nested entities) and invokes the resolved factory.
// Any resolve or factory failure aborts the whole marshal; there is no
// partial construction.

type marshaller struct {
	ns Namespace
}

// construct resolves typeName and invokes its factory with args.
func (m *marshaller) construct(typeName string, args Args) (any, error) {
	factory, err := m.ns.Resolve(typeName)
	if err != nil {
		return nil, err
	}
	obj, err := factory(args)
	if err != nil {
		return nil, errors.Wrapf(err, "ufobridge: constructing %s", typeName)
	}
	return obj, nil
}

func (m *marshaller) wrapFont(f *ufo.Font) (any, error) {
	layers, err := m.wrapLayerSet(&f.Layers)
	if err != nil {
		return nil, err
	}
	info, err := m.wrapInfo(f.Info)
	if err != nil {
		return nil, err
	}

	// Absent features normalize to "", absent groups and kerning to empty
	// mappings. Every other optional field in the model keeps the explicit
	// nil marker.
	features := ""
	if f.Features != nil {
		features = *f.Features
	}

	return m.construct("Font", Args{
		"lib":      libDict(&f.Lib),
		"layers":   layers,
		"info":     info,
		"features": features,
		"groups":   wrapGroups(f.Groups),
		"kerning":  wrapKerning(f.Kerning),
	})
}

func (m *marshaller) wrapLayerSet(s *ufo.LayerSet) (any, error) {
	wrapped := make([]any, 0, len(s.Layers))
	for i := range s.Layers {
		layer, err := m.wrapLayer(&s.Layers[i])
		if err != nil {
			return nil, err
		}
		wrapped = append(wrapped, layer)
	}
	return m.construct("LayerSet", Args{
		"layers":           wrapped,
		"defaultLayerName": s.DefaultLayerName,
	})
}

func (m *marshaller) wrapLayer(l *ufo.Layer) (any, error) {
	glyphs := make([]any, 0, len(l.Glyphs))
	for _, g := range l.Glyphs {
		wrapped, err := m.wrapGlyph(g)
		if err != nil {
			return nil, errors.WithMessagef(err, "layer %q", l.Name)
		}
		glyphs = append(glyphs, wrapped)
	}
	obj, err := m.construct("Layer", Args{
		"name":   l.Name,
		"glyphs": glyphs,
		"lib":    libDict(&l.Lib),
		"color":  optColor(l.Color),
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "layer %q", l.Name)
	}
	return obj, nil
}

func (m *marshaller) wrapGlyph(g *ufo.Glyph) (any, error) {
	anchors, err := m.wrapAnchors(g.Anchors)
	if err != nil {
		return nil, errors.WithMessagef(err, "glyph %q", g.Name)
	}
	contours, err := m.wrapContours(g.Contours)
	if err != nil {
		return nil, errors.WithMessagef(err, "glyph %q", g.Name)
	}
	components, err := m.wrapComponents(g.Components)
	if err != nil {
		return nil, errors.WithMessagef(err, "glyph %q", g.Name)
	}
	guidelines, err := m.wrapGuidelines(g.Guidelines)
	if err != nil {
		return nil, errors.WithMessagef(err, "glyph %q", g.Name)
	}

	obj, err := m.construct("Glyph", Args{
		"name":       g.Name,
		"width":      optFloat(g.Width),
		"unicodes":   codepointList(g.Codepoints),
		"lib":        libDict(&g.Lib),
		"note":       optString(g.Note),
		"anchors":    anchors,
		"contours":   contours,
		"components": components,
		"guidelines": guidelines,
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "glyph %q", g.Name)
	}
	return obj, nil
}

func (m *marshaller) wrapAnchors(anchors []ufo.Anchor) ([]any, error) {
	out := make([]any, 0, len(anchors))
	for i := range anchors {
		a := &anchors[i]
		obj, err := m.construct("Anchor", Args{
			"x":          a.X,
			"y":          a.Y,
			"name":       optString(a.Name),
			"color":      optColor(a.Color),
			"identifier": optString(a.Identifier),
		})
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

func (m *marshaller) wrapContours(contours []ufo.Contour) ([]any, error) {
	out := make([]any, 0, len(contours))
	for i := range contours {
		c := &contours[i]
		points := make([]any, 0, len(c.Points))
		for j := range c.Points {
			p := &c.Points[j]
			obj, err := m.construct("ContourPoint", Args{
				"x":          p.X,
				"y":          p.Y,
				"type":       p.Type.String(),
				"smooth":     p.Smooth,
				"name":       optString(p.Name),
				"identifier": optString(p.Identifier),
			})
			if err != nil {
				return nil, err
			}
			points = append(points, obj)
		}
		obj, err := m.construct("Contour", Args{
			"points":     points,
			"identifier": optString(c.Identifier),
		})
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

func (m *marshaller) wrapComponents(components []ufo.Component) ([]any, error) {
	out := make([]any, 0, len(components))
	for i := range components {
		c := &components[i]
		obj, err := m.construct("Component", Args{
			"baseGlyph": c.Base,
			"transformation": []any{
				c.Transform.XX, c.Transform.XY,
				c.Transform.YX, c.Transform.YY,
				c.Transform.DX, c.Transform.DY,
			},
			"identifier": optString(c.Identifier),
		})
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

func (m *marshaller) wrapGuidelines(guidelines []ufo.Guideline) ([]any, error) {
	out := make([]any, 0, len(guidelines))
	for i := range guidelines {
		g := &guidelines[i]
		obj, err := m.construct("Guideline", Args{
			"x":          optFloat(g.X),
			"y":          optFloat(g.Y),
			"angle":      optFloat(g.Angle),
			"name":       optString(g.Name),
			"color":      optColor(g.Color),
			"identifier": optString(g.Identifier),
		})
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

// wrapInfo marshals the optional font info. Absent info crosses as the nil
// marker, not as an empty Info object.
func (m *marshaller) wrapInfo(info *ufo.Info) (any, error) {
	if info == nil {
		return nil, nil
	}
	guidelines, err := m.wrapGuidelines(info.Guidelines)
	if err != nil {
		return nil, errors.WithMessage(err, "font info")
	}
	obj, err := m.construct("Info", Args{
		"familyName":   optString(info.FamilyName),
		"styleName":    optString(info.StyleName),
		"copyright":    optString(info.Copyright),
		"trademark":    optString(info.Trademark),
		"note":         optString(info.Note),
		"unitsPerEm":   optFloat(info.UnitsPerEm),
		"ascender":     optFloat(info.Ascender),
		"descender":    optFloat(info.Descender),
		"xHeight":      optFloat(info.XHeight),
		"capHeight":    optFloat(info.CapHeight),
		"italicAngle":  optFloat(info.ItalicAngle),
		"versionMajor": optInt(info.VersionMajor),
		"versionMinor": optInt(info.VersionMinor),
		"guidelines":   guidelines,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "font info")
	}
	return obj, nil
}

// wrapKerning flattens the two-level kerning into a single (left, right) →
// adjustment mapping. Absent kerning yields an empty mapping, never nil.
// Entry order follows the source: left names ascending, then right names.
func wrapKerning(k *ufo.Kerning) *PairMap {
	out := NewPairMap()
	k.Each(func(left, right string, value float64) {
		out.Set(Pair{Left: left, Right: right}, value)
	})
	return out
}

// wrapGroups converts groups to a name → member-list mapping in ascending
// name order. Absent groups yield an empty mapping, never nil.
func wrapGroups(g *ufo.Groups) *Dict {
	out := NewDict()
	g.Each(func(name string, members []string) {
		out.Set(name, stringList(members))
	})
	return out
}

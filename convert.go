package ufobridge

import "github.com/Neumenon/ufobridge/ufo"

// ============================================================
// Scalar Converter
// ============================================================
//
// Pure structural transforms from typed leaves to dynamic values. None of
// these can fail. Absence always becomes an explicit nil marker; it is the
// caller's job to put that marker into the surrounding structure rather
// than dropping the field.

// optString converts an optional string. Strings cross by value.
func optString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// optFloat converts an optional float.
func optFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// optInt converts an optional integer.
func optInt(i *int64) any {
	if i == nil {
		return nil
	}
	return *i
}

// optColor converts an optional color to its canonical "r,g,b,a" text form.
func optColor(c *ufo.Color) any {
	if c == nil {
		return nil
	}
	return c.RGBAString()
}

// stringList converts an ordered list of strings, preserving order.
func stringList(ss []string) []any {
	out := make([]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}

// codepointList converts codepoints to an ordered list of integer code
// points.
func codepointList(cps []rune) []any {
	out := make([]any, 0, len(cps))
	for _, cp := range cps {
		out = append(out, int64(cp))
	}
	return out
}

// ============================================================
// Arbitrary-Value Converter
// ============================================================
//
// Library data is schemaless user payload, not a typed entity: it converts
// to native dynamic containers, never to host objects, so the Namespace is
// never consulted here.

// libValue recursively converts one library-data value.
func libValue(v ufo.Value) any {
	switch v.Kind() {
	case ufo.KindString:
		s, _ := v.AsString()
		return s
	case ufo.KindInt:
		n, _ := v.AsInt()
		return n
	case ufo.KindFloat:
		f, _ := v.AsFloat()
		return f
	case ufo.KindBool:
		b, _ := v.AsBool()
		return b
	case ufo.KindData:
		data, _ := v.AsData()
		out := make([]byte, len(data))
		copy(out, data)
		return out
	case ufo.KindArray:
		arr, _ := v.AsArray()
		out := make([]any, 0, len(arr))
		for _, elem := range arr {
			out = append(out, libValue(elem))
		}
		return out
	case ufo.KindDict:
		d, _ := v.AsDict()
		return libDict(d)
	default:
		return nil
	}
}

// libDict converts a library-data dict. The source iterates in ascending
// key order and the target preserves insertion order, so the sorted-key
// property holds at every depth. An empty or nil source still yields a
// present, empty *Dict.
func libDict(d *ufo.Dict) *Dict {
	out := NewDict()
	d.Each(func(key string, v ufo.Value) {
		out.Set(key, libValue(v))
	})
	return out
}

package ufo

import "sort"

// Kind identifies the variant held by a library-data Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindData
	KindArray
	KindDict
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindData:
		return "data"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	default:
		return "unknown"
	}
}

// Value is a library-data ("lib") value: an open-ended nested structure of
// scalars, ordered arrays, and key-sorted dicts. Property-list payloads have
// no null, so the zero Value is KindInvalid rather than a null variant.
type Value struct {
	kind Kind

	// Scalar payloads (only one valid based on kind)
	strVal   string
	intVal   int64
	floatVal float64
	boolVal  bool
	dataVal  []byte

	// Container payloads
	arrVal  []Value
	dictVal *Dict
}

// ============================================================
// Constructors
// ============================================================

// String creates a string value.
func String(v string) Value {
	return Value{kind: KindString, strVal: v}
}

// Int creates an integer value.
func Int(v int64) Value {
	return Value{kind: KindInt, intVal: v}
}

// Float creates a float value.
func Float(v float64) Value {
	return Value{kind: KindFloat, floatVal: v}
}

// Bool creates a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, boolVal: v}
}

// Data creates a binary data value.
func Data(v []byte) Value {
	return Value{kind: KindData, dataVal: v}
}

// Array creates an ordered array value.
func Array(values ...Value) Value {
	return Value{kind: KindArray, arrVal: values}
}

// DictValue creates a dict value.
func DictValue(d *Dict) Value {
	if d == nil {
		d = &Dict{}
	}
	return Value{kind: KindDict, dictVal: d}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether the value holds any variant.
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	return v.strVal, v.kind == KindString
}

// AsInt returns the integer payload.
func (v Value) AsInt() (int64, bool) {
	return v.intVal, v.kind == KindInt
}

// AsFloat returns the float payload.
func (v Value) AsFloat() (float64, bool) {
	return v.floatVal, v.kind == KindFloat
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	return v.boolVal, v.kind == KindBool
}

// AsData returns the binary payload.
func (v Value) AsData() ([]byte, bool) {
	return v.dataVal, v.kind == KindData
}

// AsArray returns the array elements.
func (v Value) AsArray() ([]Value, bool) {
	return v.arrVal, v.kind == KindArray
}

// AsDict returns the dict payload.
func (v Value) AsDict() (*Dict, bool) {
	if v.kind != KindDict {
		return nil, false
	}
	if v.dictVal == nil {
		return &Dict{}, true
	}
	return v.dictVal, true
}

// Len returns the length of an array or dict, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arrVal)
	case KindDict:
		if v.dictVal == nil {
			return 0
		}
		return v.dictVal.Len()
	default:
		return 0
	}
}

// ============================================================
// Dict
// ============================================================

// DictEntry is a key/value pair in a Dict.
type DictEntry struct {
	Key   string
	Value Value
}

// Dict is a string-keyed map of Values whose entries are kept in ascending
// key order at all times. Iteration order equals sorted key order; this is an
// observable property of the model, so a hash map must never stand in for it.
type Dict struct {
	entries []DictEntry
}

// NewDict creates a Dict from entries, which may arrive in any order.
func NewDict(entries ...DictEntry) *Dict {
	d := &Dict{}
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
	return d
}

// Set inserts or replaces the value for key, keeping entries sorted.
func (d *Dict) Set(key string, v Value) {
	i := sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].Key >= key
	})
	if i < len(d.entries) && d.entries[i].Key == key {
		d.entries[i].Value = v
		return
	}
	d.entries = append(d.entries, DictEntry{})
	copy(d.entries[i+1:], d.entries[i:])
	d.entries[i] = DictEntry{Key: key, Value: v}
}

// Get returns the value for key.
func (d *Dict) Get(key string) (Value, bool) {
	i := sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].Key >= key
	})
	if i < len(d.entries) && d.entries[i].Key == key {
		return d.entries[i].Value, true
	}
	return Value{}, false
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Keys returns the keys in ascending order.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.Key
	}
	return keys
}

// Each calls fn for every entry in ascending key order.
func (d *Dict) Each(fn func(key string, v Value)) {
	if d == nil {
		return
	}
	for _, e := range d.entries {
		fn(e.Key, e.Value)
	}
}

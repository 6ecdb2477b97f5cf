package ufobridge

import "fmt"

// ============================================================
// Object Registry Lookup
// ============================================================

// Args is the named-argument set handed to a host factory. Argument names
// are part of the contract: the bridge always supplies the full fixed set
// for an entity type, with nil marking an absent optional value.
type Args map[string]any

// Factory constructs one host object from a named-argument set. Rejecting
// the arguments aborts the entire load.
type Factory func(args Args) (any, error)

// Namespace resolves logical entity type names to host factories. It is
// supplied by the host once per load call.
//
// The bridge resolves these names: Font, Layer, LayerSet, Glyph, Anchor,
// Contour, ContourPoint, Component, Guideline, Info. The LayerSet factory is
// the aggregate constructor: it receives the ordered "layers" list plus
// "defaultLayerName" and owns indexing and default-layer validation.
//
// A failed resolution is a configuration error, not a data error: the
// namespace is incompatible with the bridge's entity set, and the load
// aborts rather than skipping the field.
type Namespace interface {
	Resolve(typeName string) (Factory, error)
}

// ResolveError reports a type name the namespace could not resolve.
type ResolveError struct {
	TypeName string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("ufobridge: namespace has no factory for %q", e.TypeName)
}

// MapNamespace is a Namespace backed by a plain map.
type MapNamespace map[string]Factory

// Resolve returns the factory for typeName, or *ResolveError.
func (m MapNamespace) Resolve(typeName string) (Factory, error) {
	f, ok := m[typeName]
	if !ok || f == nil {
		return nil, &ResolveError{TypeName: typeName}
	}
	return f, nil
}

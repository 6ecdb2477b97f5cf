package ufobridge

import "sync"

// ============================================================
// Fake Host
// ============================================================
//
// A recording host object model used across the package tests. Every factory
// returns a *hostObject carrying the type name and the exact Args it was
// called with, so tests can walk the constructed tree and check argument
// names, ordering, and normalization.

// hostObject is a constructed fake host object.
type hostObject struct {
	TypeName string
	Args     Args
}

// arg returns a named argument, failing loudly on a name the bridge never
// supplied.
func (o *hostObject) arg(name string) any {
	v, ok := o.Args[name]
	if !ok {
		panic("missing argument " + name + " on " + o.TypeName)
	}
	return v
}

// hostTypeNames is the full entity set the bridge resolves.
var hostTypeNames = []string{
	"Font", "Layer", "LayerSet", "Glyph",
	"Anchor", "Contour", "ContourPoint", "Component", "Guideline", "Info",
}

// recordingHost builds namespaces over recording factories.
type recordingHost struct {
	mu    sync.Mutex
	calls []string // type names in invocation order
}

func (h *recordingHost) record(typeName string) {
	h.mu.Lock()
	h.calls = append(h.calls, typeName)
	h.mu.Unlock()
}

// namespace returns a MapNamespace with a recording factory per entity type.
func (h *recordingHost) namespace() MapNamespace {
	ns := MapNamespace{}
	for _, name := range hostTypeNames {
		name := name
		ns[name] = func(args Args) (any, error) {
			h.record(name)
			return &hostObject{TypeName: name, Args: args}, nil
		}
	}
	return ns
}

// namespaceRejecting returns a namespace whose factory for typeName always
// fails with cause.
func (h *recordingHost) namespaceRejecting(typeName string, cause error) MapNamespace {
	ns := h.namespace()
	ns[typeName] = func(args Args) (any, error) {
		return nil, cause
	}
	return ns
}

// namespaceWithout returns a namespace missing the factory for typeName.
func (h *recordingHost) namespaceWithout(typeName string) MapNamespace {
	ns := h.namespace()
	delete(ns, typeName)
	return ns
}

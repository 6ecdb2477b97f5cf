// Package ufobridge marshals a typed UFO font model into a tree of host
// objects built through caller-supplied factories.
//
// The bridge sits between two type systems that know nothing about each
// other: the strongly-typed, immutable model in package ufo on one side, and
// whatever object model the host application uses on the other. The host
// hands in a Namespace that resolves logical type names ("Font", "Layer",
// "Glyph", ...) to Factory functions; the bridge walks the model and calls
// those factories with fixed, named argument sets.
//
// Guarantees, all of them observable:
//   - Ordered collections (layers, glyphs, anchors, contours, components,
//     guidelines) keep their source order exactly.
//   - Library-data dicts keep ascending key order at every nesting depth.
//   - An absent optional scalar (width, note, color, info) crosses the
//     boundary as an explicit nil marker, never by omission.
//   - Absent kerning and groups normalize to empty mappings; absent feature
//     text normalizes to "". This asymmetry is part of the contract.
//   - A load either produces the complete root object or fails; there are no
//     partial trees.
//
// # Loading
//
//	loader := ufobridge.NewLoader(parser)
//	font, err := loader.Load(hostNamespace, "MyFont.ufo")
//
// Parsing is delegated to the injected ufo.Parser. Parse failures surface as
// *LoadError with the parser's message preserved as text; a missing factory
// name surfaces as *ResolveError; a factory rejecting its arguments aborts
// the load with that factory's error wrapped in entity context.
//
// The marshalling phase runs under an internal lock so that two concurrent
// Load calls on the same Loader never interleave their factory invocations
// in a host environment that cannot tolerate concurrent construction.
// Parsing runs outside that lock.
package ufobridge

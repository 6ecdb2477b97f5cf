package ufobridge

import (
	"fmt"
	"sync"

	"github.com/Neumenon/ufobridge/ufo"
)

// LoadError is the single error kind reported for parse failures. The
// parser's own error taxonomy is deliberately discarded at this boundary;
// only its message text survives.
type LoadError struct {
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("ufobridge: load failed: %s", e.Message)
}

// Loader loads UFO font projects and marshals them into host object trees.
//
// The zero Loader is not usable; construct one with NewLoader. A Loader is
// safe for concurrent use: parsing runs concurrently, but the marshalling
// phase of each Load call holds an internal lock for its full duration, so
// factory invocations from different calls never interleave.
type Loader struct {
	parser ufo.Parser

	// host serializes the marshalling phase. The host object environment
	// is assumed to disallow concurrent mutation from multiple goroutines.
	host sync.Mutex
}

// NewLoader creates a Loader that reads font projects with parser.
func NewLoader(parser ufo.Parser) *Loader {
	return &Loader{parser: parser}
}

// Load parses the font project at path and marshals it through ns.
//
// On parse failure the returned error is a *LoadError carrying the parser's
// message. On a namespace or factory failure the error is the construction
// error itself (a *ResolveError for an unknown type name); no partially
// constructed object is returned. A call runs to completion or failure;
// there is no cancellation.
func (l *Loader) Load(ns Namespace, path string) (any, error) {
	logger().Debug("load start", "path", path)

	font, err := l.parser.Parse(path)
	if err != nil {
		logger().Debug("parse failed", "path", path, "error", err)
		return nil, &LoadError{Message: err.Error()}
	}

	l.host.Lock()
	defer l.host.Unlock()

	m := &marshaller{ns: ns}
	root, err := m.wrapFont(font)
	if err != nil {
		return nil, err
	}
	logger().Debug("load done", "path", path)
	return root, nil
}

package ufo

// Parser reads a UFO font-project directory into the typed model. The
// on-disk format (property-list metadata, glif outlines) is the parser's
// business entirely; the bridge only sees the resulting *Font or the error.
type Parser interface {
	Parse(path string) (*Font, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(path string) (*Font, error)

// Parse calls f.
func (f ParserFunc) Parse(path string) (*Font, error) {
	return f(path)
}

package ufo

import (
	"strconv"
	"strings"
)

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGBAString returns the canonical "r,g,b,a" text form used by the UFO
// interchange format. Channels use the shortest round-trip decimal form,
// so 1.0 renders as "1" and 0.5 as "0.5".
func (c Color) RGBAString() string {
	var b strings.Builder
	b.WriteString(canonChannel(c.R))
	b.WriteByte(',')
	b.WriteString(canonChannel(c.G))
	b.WriteByte(',')
	b.WriteString(canonChannel(c.B))
	b.WriteByte(',')
	b.WriteString(canonChannel(c.A))
	return b.String()
}

// canonChannel formats one channel: shortest round-trip form, -0 → 0.
func canonChannel(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

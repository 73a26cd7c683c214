package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/osuushi/polyedit/polygon"
)

// Readable names for debug output. A curve's edge index changes on every
// insert and remove above it, so dumps name curves by serial instead. Names
// are memoized forever and only made on demand.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names depend on the order of demand, so keep them random to make
	// clear they mean nothing across runs.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for a comparable key.
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// SegmentName names a curve by its serial, so it keeps its name when its
// edge index changes.
func SegmentName(seg polygon.BezierSegment) string {
	return Name(seg.Serial())
}

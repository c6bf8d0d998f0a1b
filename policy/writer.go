package policy

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-decision/alpha"
)

// WriteAlphaVectors writes an alpha-vector set to w in the plain-text
// policy format: one vector per line,
//
//	action_hash | alpha(s1) alpha(s2) ... alpha(s|S|)
//
// with states in the order given by states, which should be the
// entity table's insertion order.
func WriteAlphaVectors(w io.Writer, set []*alpha.Vector, states []uint32) error {
	for _, av := range set {
		action, _ := av.Action()

		values := make([]string, len(states))
		for i, s := range states {
			values[i] = strconv.FormatFloat(av.Get(s), 'g', -1, 64)
		}

		if _, err := fmt.Fprintf(w, "%d | %s\n", action, strings.Join(values, " ")); err != nil {
			return err
		}
	}
	return nil
}

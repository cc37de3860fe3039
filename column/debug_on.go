//go:build colgodebug

package column

import (
	"fmt"

	"github.com/hupe1980/colgo/runs"
)

// debugAssertRuns panics when the run counts do not sum to rows. Enabled by
// the colgodebug build tag so development builds catch a broken caller
// contract before the unchecked expansion corrupts output.
func debugAssertRuns(list runs.List, rows int) {
	total := 0
	for _, r := range list {
		total += int(r.Count)
	}
	if total != rows {
		panic(fmt.Sprintf("column: run counts sum to %d, want %d rows", total, rows))
	}
}

//go:build !colgodebug

package column

import "github.com/hupe1980/colgo/runs"

// debugAssertRuns is compiled out unless the colgodebug build tag is set.
func debugAssertRuns(runs.List, int) {}

package legacy

import "strings"

// DefaultScale converts a legacy deci-mil (1/10000 inch) value to
// millimetres. It applies unless the library declares metric units.
const DefaultScale = 0.00254

// MetricKeyword is the Units record value selecting 1:1 millimetre input.
const MetricKeyword = "mm"

// ScaleFor returns the unit scale in effect for a node. Ancestors are
// searched for a Units record; a case-insensitive "mm" selects 1.0, anything
// else leaves the deci-mil default. The scale must be resolved before any of
// the node's numeric fields are converted.
func ScaleFor(n *Node) float64 {
	for a := n; a != nil; a = a.Parent {
		rec := a.Record("Units")
		if len(rec) >= 2 && strings.EqualFold(rec[1], MetricKeyword) {
			return 1.0
		}
	}
	return DefaultScale
}

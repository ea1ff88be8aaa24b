// Package display holds the lookup tables that map status tags to their
// presentation (label, color, icon). Every table has a defined fallback so an
// unknown tag coming from the backend never breaks rendering.
package display

// Badge describes how a status tag is presented.
type Badge struct {
	Label string
	Color string
	Icon  string
}

// Unknown is the fallback badge for tags no table knows about.
var Unknown = Badge{Label: "Unknown", Color: "gray", Icon: "help-circle"}

// Lookup resolves tag against table, falling back to Unknown.
func Lookup[K ~string](table map[K]Badge, tag K) Badge {
	if b, ok := table[tag]; ok {
		return b
	}
	return Unknown
}

package scan

import "github.com/spf13/pflag"

// hasFlags reports whether any flag on the set was explicitly changed.
func hasFlags(flags *pflag.FlagSet) bool {
	changed := false
	flags.Visit(func(*pflag.Flag) {
		changed = true
	})
	return changed
}

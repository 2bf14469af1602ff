package cli

import "github.com/spf13/pflag"

// anyFlagChanged reports whether the user set at least one of the named
// flags. Update commands use it to reject calls that would change nothing.
func anyFlagChanged(fs *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

// intFlagPtr returns v when the named flag was set, nil otherwise. Paired
// with domain.IntFromPtrWithDefault so an explicit zero counts as input.
func intFlagPtr(fs *pflag.FlagSet, name string, v *int) *int {
	if fs.Changed(name) {
		return v
	}
	return nil
}

func float64FlagPtr(fs *pflag.FlagSet, name string, v *float64) *float64 {
	if fs.Changed(name) {
		return v
	}
	return nil
}

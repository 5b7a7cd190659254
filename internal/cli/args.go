package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GuardPinArgs keeps pin tokens away from the flag parser. Every token that
// spells a flag registered on root (with its value, if it takes one) is left
// as is. At the first dash token that is not such a flag, such as -1, -x,
// --5 or a bare --, a "--" is inserted so that it and every later token
// reach the judge as positional pins.
//
// Shell completion requests are returned unchanged.
func GuardPinArgs(root *cobra.Command, args []string) []string {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return args
	}

	// Help and version flags are registered lazily by Execute.
	root.InitDefaultHelpFlag()
	root.InitDefaultVersionFlag()

	for i := 0; i < len(args); i++ {
		a := args[i]
		if len(a) < 2 || a[0] != '-' {
			continue
		}
		skip, ok := flagToken(root, a)
		if !ok {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		i += skip
	}
	return args
}

// flagToken reports whether a is a registered flag and how many of the
// following tokens it consumes as its value.
func flagToken(root *cobra.Command, a string) (int, bool) {
	if a == "--" {
		return 0, false
	}

	if strings.HasPrefix(a, "--") {
		name, _, hasValue := strings.Cut(a[2:], "=")
		f := lookupFlag(root, name)
		if f == nil {
			return 0, false
		}
		if hasValue || f.NoOptDefVal != "" {
			return 0, true
		}
		return 1, true
	}

	shorthands := a[1:]
	for j := 0; j < len(shorthands); j++ {
		f := lookupShorthand(root, shorthands[j:j+1])
		if f == nil {
			return 0, false
		}
		if f.NoOptDefVal != "" {
			continue
		}
		// The rest of the token is the value, or the next token is.
		if j+1 < len(shorthands) {
			return 0, true
		}
		return 1, true
	}
	return 0, true
}

func lookupFlag(root *cobra.Command, name string) *pflag.Flag {
	if name == "" {
		return nil
	}
	if f := root.PersistentFlags().Lookup(name); f != nil {
		return f
	}
	return root.Flags().Lookup(name)
}

func lookupShorthand(root *cobra.Command, name string) *pflag.Flag {
	if f := root.PersistentFlags().ShorthandLookup(name); f != nil {
		return f
	}
	return root.Flags().ShorthandLookup(name)
}

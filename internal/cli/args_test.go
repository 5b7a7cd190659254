package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestGuardPinArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, nil},
		{"plain pins", []string{"7", "10"}, []string{"7", "10"}},
		{"flags untouched", []string{"-o", "json", "-v", "7", "10"}, []string{"-o", "json", "-v", "7", "10"}},
		{"long flags untouched", []string{"--output=json", "--log-level", "debug", "7"}, []string{"--output=json", "--log-level", "debug", "7"}},
		{"attached shorthand value", []string{"-ojson", "-vp", "ci", "7"}, []string{"-ojson", "-vp", "ci", "7"}},
		{"flag value not guarded", []string{"--profile", "-1", "7"}, []string{"--profile", "-1", "7"}},
		{"negative first", []string{"-1", "5"}, []string{"--", "-1", "5"}},
		{"negative after flag", []string{"-v", "5", "-10"}, []string{"-v", "5", "--", "-10"}},
		{"unknown shorthand", []string{"-x", "5"}, []string{"--", "-x", "5"}},
		{"decimal", []string{"-1.5", "5"}, []string{"--", "-1.5", "5"}},
		{"unknown long", []string{"--5", "7"}, []string{"--", "--5", "7"}},
		{"bool shorthand then unknown", []string{"-v5", "7"}, []string{"--", "-v5", "7"}},
		{"user separator is a pin", []string{"5", "--"}, []string{"5", "--", "--"}},
		{"leading separator is a pin", []string{"--", "-1", "5"}, []string{"--", "--", "-1", "5"}},
		{"later flags stay positional", []string{"-x", "-v"}, []string{"--", "-x", "-v"}},
		{"help flag", []string{"--help"}, []string{"--help"}},
		{"version flag", []string{"--version"}, []string{"--version"}},
		{"lone dash", []string{"-", "5"}, []string{"-", "5"}},
		{"completion request", []string{cobra.ShellCompRequestCmd, "-x", ""}, []string{cobra.ShellCompRequestCmd, "-x", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GuardPinArgs(NewRootCmd(), tt.in))
		})
	}
}

func TestGuardPinArgs_DoesNotMutateInput(t *testing.T) {
	in := []string{"5", "-1", "7"}
	_ = GuardPinArgs(NewRootCmd(), in)
	assert.Equal(t, []string{"5", "-1", "7"}, in)
}

package commands

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/bowlsplit/internal/cli/output"
	"github.com/leapstack-labs/bowlsplit/internal/judge"
)

// RunJudge judges the standing pins in args and prints the verdict.
//
// Invalid pins are a verdict, not a command failure: the message is printed
// and nil is returned.
func RunJudge(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	v := judge.Judge(args)

	cmdCtx.Logger.Debug("judged pins",
		"outcome", v.Kind.String(),
		"pins", args,
		"columns", v.ColumnString(),
	)
	if v.Err != nil {
		cmdCtx.Logger.Debug("rejected pin", "token", v.Err.Token, "kind", v.Err.Kind.String())
	}

	if r.IsStructured() {
		return r.Structured(verdictOutput(v))
	}
	r.Println(verdictStyle(r, v).Render(v.Message()))
	return nil
}

// judgeAsPins judges a subcommand's name and its arguments as one pin list,
// for invocations such as "bowlsplit columns 5".
func judgeAsPins(cmd *cobra.Command, args []string) error {
	return RunJudge(cmd, append([]string{cmd.Name()}, args...))
}

func verdictOutput(v judge.Verdict) output.VerdictOutput {
	pins := v.Pins
	if pins == nil {
		pins = []string{}
	}
	return output.VerdictOutput{
		Outcome: v.Kind.String(),
		Message: v.Message(),
		Split:   v.IsSplit(),
		Columns: v.ColumnString(),
		Pins:    pins,
	}
}

func verdictStyle(r *output.Renderer, v judge.Verdict) lipgloss.Style {
	s := r.Styles()
	switch {
	case v.Kind.IsError(), v.Kind == judge.TooManyArguments:
		return s.Error
	case v.Kind == judge.Split:
		return s.Warning
	case v.Kind == judge.Strike, v.Kind == judge.Gutter:
		return s.Header1
	default:
		return s.Success
	}
}

// Package cli provides the command-line interface for bowlsplit.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/bowlsplit/internal/cli/commands"
	"github.com/leapstack-labs/bowlsplit/internal/cli/config"
	"github.com/leapstack-labs/bowlsplit/internal/cli/output"
)

var (
	cfgFile     string
	profileFlag string
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bowlsplit [pins...]",
		Short: "bowlsplit - Bowling split judge",
		Long: `bowlsplit tells whether the pins left standing after a first ball are a split.

List the pins still standing (1-10). A leave is a split when the head pin is
down and at least one empty lane column separates the standing pins.`,
		Example: `  # Bed posts
  bowlsplit 7 10

  # Head pin standing is never a split
  bowlsplit 1 7 10

  # Machine-readable verdict
  bowlsplit --output json 4 6`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Help and completion load config only when judging pins
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return prepareContext(cmd)
		},
		RunE:          commands.RunJudge,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Bowling split judge built with Go
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bowlsplit.yaml)")
	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "Profile from the config file to apply")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|json|yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output (debug logs on stderr)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.LogLevels(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("profile", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		cfg, err := config.LoadConfig(cfgFile, nil)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		names := make([]string, 0, len(cfg.Profiles))
		for name := range cfg.Profiles {
			names = append(names, name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewColumnsCommand())
	rootCmd.AddCommand(NewCompletionCommand())
	rootCmd.SetHelpCommand(NewHelpCommand())

	return rootCmd
}

// prepareContext loads the config and stores config, logger and renderer in
// the command context.
func prepareContext(cmd *cobra.Command) error {
	cfg, err := config.LoadConfigWithProfile(cfgFile, profileFlag, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}

	logger := config.NewLogger(cmd.ErrOrStderr(), cfg)
	renderer := output.NewRenderer(cmd.OutOrStdout(), cfg.OutputMode())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, config.ConfigKey(), cfg)
	ctx = context.WithValue(ctx, config.LoggerKey(), logger)
	ctx = context.WithValue(ctx, config.RendererKey(), renderer)
	cmd.SetContext(ctx)

	if file := config.GetConfigFileUsed(); file != "" {
		logger.Debug("using config file", "path", file)
	}
	if cfg.Profile != "" {
		logger.Debug("using profile", "profile", cfg.Profile)
	}

	return nil
}

// judgeTokens judges args as pins from a command that skipped the root pre-run.
func judgeTokens(cmd *cobra.Command, args []string) error {
	if err := prepareContext(cmd); err != nil {
		return err
	}
	return commands.RunJudge(cmd, args)
}

// Execute runs the root command on the process arguments.
func Execute() error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(GuardPinArgs(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for bowlsplit.

To load completions:

Bash:
  $ source <(bowlsplit completion bash)

Zsh:
  $ bowlsplit completion zsh > "${fpath[1]}/_bowlsplit"

Fish:
  $ bowlsplit completion fish | source

PowerShell:
  PS> bowlsplit completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				out := cmd.OutOrStdout()
				switch args[0] {
				case "bash":
					return cmd.Root().GenBashCompletion(out)
				case "zsh":
					return cmd.Root().GenZshCompletion(out)
				case "fish":
					return cmd.Root().GenFishCompletion(out, true)
				case "powershell":
					return cmd.Root().GenPowerShellCompletionWithDesc(out)
				}
			}
			// Anything but a single shell name is a list of pins.
			return judgeTokens(cmd, append([]string{cmd.Name()}, args...))
		},
	}
	return cmd
}

// NewHelpCommand creates the help command. "help" followed by a command path
// shows that command's help; followed by anything else, the whole argument
// list is judged as pins.
func NewHelpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Long:  `Help provides help for any command in the application.`,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			if len(args) == 0 {
				return root.Help()
			}
			target, rest, err := root.Find(args)
			if err == nil && target != root && len(rest) == 0 {
				target.InitDefaultHelpFlag()
				target.InitDefaultVersionFlag()
				return target.Help()
			}
			return judgeTokens(cmd, append([]string{cmd.Name()}, args...))
		},
	}
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for bpec.

To load completions:

Bash:
  $ source <(bpec completion bash)
  # To load completions for each session, execute once:
  $ bpec completion bash > /etc/bash_completion.d/bpec

Zsh:
  $ source <(bpec completion zsh)
  # To load completions for each session, execute once:
  $ bpec completion zsh > "${fpath[1]}/_bpec"

Fish:
  $ bpec completion fish | source
  # To load completions for each session, execute once:
  $ bpec completion fish > ~/.config/fish/completions/bpec.fish

PowerShell:
  PS> bpec completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

package main

import (
	"github.com/spf13/cobra"
)

func completionCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate completion scripts for your shell.

Bash:
  $ source <(gexfviz completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ gexfviz completion bash > /etc/bash_completion.d/gexfviz
  # macOS:
  $ gexfviz completion bash > $(brew --prefix)/etc/bash_completion.d/gexfviz

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ gexfviz completion zsh > "${fpath[1]}/_gexfviz"

Fish:
  $ gexfviz completion fish | source

PowerShell:
  PS> gexfviz completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

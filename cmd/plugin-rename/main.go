package main

import (
	"fmt"
	"os"

	"github.com/dylan/plugin-rename/internal/rename"
	"github.com/dylan/plugin-rename/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "plugin-rename [plugin-name] [username] [git-url]",
	Short: "Rename a Neovim plugin template and update all references",
	Long: `plugin-rename personalizes a Neovim plugin scaffold:

  1. Renames lua/myplugin to lua/<plugin_name>
  2. Rewrites placeholder names across the scaffold files
  3. Sets the git remote origin (if a git URL is provided)
  4. Points the lazy.nvim spec at your repository

Run it without arguments for interactive mode.`,
	Example: `  # Rename directly
  plugin-rename my-awesome-plugin alice https://github.com/alice/my-awesome-plugin.nvim

  # Without a git URL (remote and lazy spec are left untouched)
  plugin-rename my-awesome-plugin alice

  # Interactive mode
  plugin-rename`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var pluginName, username, gitURL string

		if len(args) >= 2 {
			pluginName = args[0]
			username = args[1]
			if len(args) > 2 {
				gitURL = args[2]
			}
		} else {
			// Interactive mode
			details, err := ui.CollectPluginDetails()
			if err != nil {
				return err
			}
			if details == nil {
				return nil // User cancelled
			}
			pluginName = details.PluginName
			username = details.Username
			gitURL = details.GitURL
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}

		return rename.NewTemplate(cwd, pluginName, username, gitURL).Rename()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

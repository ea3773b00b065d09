package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// PluginDetails holds the answers collected from the interactive form.
type PluginDetails struct {
	PluginName string
	Username   string
	GitURL     string
}

// CollectPluginDetails prompts for the plugin name, username, and optional
// repository URL. An aborted form returns nil details and no error.
func CollectPluginDetails() (*PluginDetails, error) {
	var details PluginDetails

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Plugin name").
				Placeholder("my-awesome-plugin").
				Value(&details.PluginName).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("plugin name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("GitHub username").
				Value(&details.Username).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("username cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Git repository URL (optional)").
				Placeholder("https://github.com/you/your-plugin.nvim").
				Value(&details.GitURL),
		),
	)

	err := form.Run()
	if err != nil {
		if err == huh.ErrUserAborted {
			return nil, nil
		}
		return nil, err
	}

	return &details, nil
}

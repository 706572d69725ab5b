package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bundletui/internal/config"
	"bundletui/internal/version"
)

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show detailed version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GetFullVersionString())
		},
	}
}

// newInitConfigCmd creates the init-config command
func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write a starter config file",
		Long: `Write a commented starter configuration file to the default
platform config directory, unless one already exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfigFile()
			if err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}

			fmt.Printf("Wrote %s\n", path)

			return nil
		},
	}
}

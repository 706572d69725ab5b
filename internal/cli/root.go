// Package cli defines the cobra command tree and flag/environment binding.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bundletui/internal/bootstrap"
	"bundletui/internal/version"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bundletui",
	Short: "A terminal user interface for browsing effective message bundles",
	Long: `bundletui is a terminal user interface for browsing the effective
message bundles of a themable auth server.

Pick a theme, theme type and locale, optionally narrow the result down by
free-text words, and browse the resolved localization key/value pairs in a
sortable table with removable filter chips.`,
	Version: version.GetVersionString(),
	RunE:    runMainApplication,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.CompletionOptions.DisableDefaultCmd = true

	addPersistentFlags(RootCmd)

	RootCmd.AddCommand(newVersionCmd())
	RootCmd.AddCommand(newInitConfigCmd())
}

// runMainApplication runs the main application
func runMainApplication(cmd *cobra.Command, args []string) error {
	opts := getBootstrapOptions(cmd)

	result, err := bootstrap.Bootstrap(opts)
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	// Application runtime errors exit directly, without cobra usage text.
	if err := bootstrap.StartApplication(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return nil
}

// getBootstrapOptions converts cobra flags to bootstrap options
func getBootstrapOptions(cmd *cobra.Command) bootstrap.Options {
	configPath, _ := cmd.Flags().GetString("config")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	// Viper folds BUNDLETUI_* environment variables into the flag values.
	return bootstrap.Options{
		ConfigPath:    configPath,
		NoCache:       noCache,
		FlagAddr:      viper.GetString("addr"),
		FlagRealm:     viper.GetString("realm"),
		FlagAuthRealm: viper.GetString("auth_realm"),
		FlagUser:      viper.GetString("user"),
		FlagPassword:  viper.GetString("password"),
		FlagToken:     viper.GetString("token"),
		FlagLocale:    viper.GetString("ui_locale"),
		FlagInsecure:  viper.GetBool("insecure"),
		FlagDebug:     viper.GetBool("debug"),
		FlagCacheDir:  viper.GetString("cache_dir"),
	}
}

// addPersistentFlags adds all the persistent flags to the root command
func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "", "Path to YAML config file")
	cmd.PersistentFlags().BoolP("no-cache", "n", false, "Disable caching")

	cmd.PersistentFlags().String("addr", "", "Admin server URL")
	cmd.PersistentFlags().String("realm", "", "Realm whose bundles are browsed")
	cmd.PersistentFlags().String("auth-realm", "", "Realm used for authentication")
	cmd.PersistentFlags().StringP("user", "u", "", "Admin username")
	cmd.PersistentFlags().String("password", "", "Admin password (prompted when omitted)")
	cmd.PersistentFlags().String("token", "", "Pre-issued bearer token")
	cmd.PersistentFlags().String("ui-locale", "", "Locale for display names and key ordering")
	cmd.PersistentFlags().BoolP("insecure", "i", false, "Skip TLS verification")
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("cache-dir", "", "Cache directory path")

	viper.SetEnvPrefix("BUNDLETUI")
	viper.AutomaticEnv()

	bindings := map[string]string{
		"addr":       "addr",
		"realm":      "realm",
		"auth_realm": "auth-realm",
		"user":       "user",
		"password":   "password",
		"token":      "token",
		"ui_locale":  "ui-locale",
		"insecure":   "insecure",
		"debug":      "debug",
		"cache_dir":  "cache-dir",
	}
	for key, flagName := range bindings {
		if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flagName)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", flagName, err))
		}
	}
}

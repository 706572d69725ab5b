// Package bootstrap handles application initialization and startup logic.
//
// It separates the main entry point from the actual startup process:
// configuration assembly, logger and cache setup, API client construction
// and finally the TUI itself.
package bootstrap

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"bundletui/internal/cache"
	"bundletui/internal/config"
	"bundletui/internal/logger"
	"bundletui/internal/ui/components"
	"bundletui/internal/version"
	"bundletui/pkg/api"
)

// Options contains all the options for bootstrapping the application.
type Options struct {
	ConfigPath string
	NoCache    bool

	// Flag values overriding config file and environment
	FlagAddr      string
	FlagRealm     string
	FlagAuthRealm string
	FlagUser      string
	FlagPassword  string
	FlagToken     string
	FlagLocale    string
	FlagInsecure  bool
	FlagDebug     bool
	FlagCacheDir  string
}

// Result contains the assembled configuration of a successful bootstrap.
type Result struct {
	Config     *config.Config
	ConfigPath string
	NoCache    bool
}

// Bootstrap assembles the configuration from environment variables, flags
// and the config file, prompting for a password when needed.
func Bootstrap(opts Options) (*Result, error) {
	cfg := config.NewConfig()
	applyFlagOverrides(cfg, opts)

	configPath := ResolveConfigPath(opts.ConfigPath)
	if configPath != "" {
		if err := cfg.MergeWithFile(configPath); err != nil {
			return nil, fmt.Errorf("error loading config file %s: %w", configPath, err)
		}
	}

	cfg.SetDefaults()
	config.DebugEnabled = cfg.Debug

	// Password auth with no password yet: ask on the terminal before the
	// TUI takes over the screen.
	if !cfg.IsUsingTokenAuth() && cfg.User != "" && cfg.Password == "" {
		password, err := promptPassword(cfg.User)
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}

		cfg.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Result{
		Config:     cfg,
		ConfigPath: configPath,
		NoCache:    opts.NoCache,
	}, nil
}

// StartApplication wires logger, cache and API client together and runs
// the TUI until the user quits.
func StartApplication(result *Result) error {
	if result == nil {
		return fmt.Errorf("bootstrap result is nil")
	}

	cfg := result.Config

	level := logger.LevelInfo
	if cfg.Debug {
		level = logger.LevelDebug
	}

	if err := logger.InitGlobalLogger(level, cfg.CacheDir); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	mainLogger := logger.GetPackageLogger("bootstrap")
	mainLogger.Info("Starting bundletui %s", version.GetVersionString())

	clientOptions := []api.ClientOption{api.WithLogger(logger.GetPackageLogger("api"))}

	if !result.NoCache {
		if err := cache.InitGlobalCache(cfg.CacheDir); err != nil {
			mainLogger.Error("Cache initialization failed, continuing without cache: %v", err)
		} else {
			clientOptions = append(clientOptions, api.WithCache(cache.GetGlobalCache()))
		}
	}

	client, err := api.NewClient(cfg, clientOptions...)
	if err != nil {
		return startupError(err, cfg)
	}

	app := components.NewApp(client, cfg)
	if err := app.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}

	return nil
}

// ResolveConfigPath resolves the configuration file path.
func ResolveConfigPath(flagPath string) string {
	if flagPath != "" {
		return config.ExpandHomePath(flagPath)
	}

	if path, found := config.FindDefaultConfigPath(); found {
		return path
	}

	return ""
}

// applyFlagOverrides copies non-empty flag values over the environment
// derived configuration. Flags always win.
func applyFlagOverrides(cfg *config.Config, opts Options) {
	if opts.FlagAddr != "" {
		cfg.Addr = opts.FlagAddr
	}

	if opts.FlagRealm != "" {
		cfg.Realm = opts.FlagRealm
	}

	if opts.FlagAuthRealm != "" {
		cfg.AuthRealm = opts.FlagAuthRealm
	}

	if opts.FlagUser != "" {
		cfg.User = opts.FlagUser
	}

	if opts.FlagPassword != "" {
		cfg.Password = opts.FlagPassword
	}

	if opts.FlagToken != "" {
		cfg.Token = opts.FlagToken
	}

	if opts.FlagLocale != "" {
		cfg.UILocale = opts.FlagLocale
	}

	if opts.FlagInsecure {
		cfg.Insecure = true
	}

	if opts.FlagDebug {
		cfg.Debug = true
	}

	if opts.FlagCacheDir != "" {
		cfg.CacheDir = config.ExpandHomePath(opts.FlagCacheDir)
	}
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(user string) (string, error) {
	fmt.Printf("Password for %s: ", user)

	password, err := term.ReadPassword(int(os.Stdin.Fd()))

	fmt.Println()

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(password)), nil
}

// startupError provides actionable messages for common startup failures.
func startupError(err error, cfg *config.Config) error {
	switch {
	case strings.Contains(err.Error(), "authentication failed"):
		if cfg.IsUsingTokenAuth() {
			return fmt.Errorf("%w\n\nCheck that the bearer token is valid and not expired", err)
		}

		return fmt.Errorf("%w\n\nCheck the user and password for realm %q", err, cfg.AuthRealm)
	case strings.Contains(err.Error(), "connection refused"),
		strings.Contains(err.Error(), "no such host"):
		return fmt.Errorf("%w\n\nCheck that %s is reachable", err, cfg.Addr)
	default:
		return err
	}
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/gridkit/internal/app"
	"github.com/atomicstack/gridkit/internal/catalog"
	"github.com/atomicstack/gridkit/internal/datagrid"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	// File is the config file that was read, empty when none was used.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envConfig         = "GRIDKIT_CONFIG"
	envWidth          = "GRIDKIT_WIDTH"
	envHeight         = "GRIDKIT_HEIGHT"
	envShowFooter     = "GRIDKIT_FOOTER"
	envVerbose        = "GRIDKIT_VERBOSE"
	envTrace          = "GRIDKIT_TRACE"
	envLogFile        = "GRIDKIT_LOG_FILE"
	envPage           = "GRIDKIT_PAGE"
	envPageSize       = "GRIDKIT_PAGE_SIZE"
	envSearchMode     = "GRIDKIT_SEARCH_MODE"
	envPruneSelection = "GRIDKIT_PRUNE_SELECTION"
	envData           = "GRIDKIT_DATA"
	envReload         = "GRIDKIT_RELOAD"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve as
// flag, then GRIDKIT_* environment, then config file, then built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	configFile := configPath(args, env)
	file, err := readFile(configFile)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("gridkit", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", configFile, "path to a config file (yaml, toml or json)")
	width := fs.Int("width", envOrInt(env, envWidth, file.GetInt("width")), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.GetInt("height")), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, file.GetBool("footer")), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.GetBool("trace")), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, file.GetBool("verbose")), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.GetString("log-file")), "path to the log file")
	page := fs.String("page", envOrDefault(env, envPage, file.GetString("page")), "open a page directly instead of the catalog")
	pageSize := fs.Int("page-size", envOrInt(env, envPageSize, file.GetInt("page-size")), "rows per table page")
	searchMode := fs.String("search-mode", envOrDefault(env, envSearchMode, file.GetString("search-mode")), "table search matching: substring, fold or fuzzy")
	prune := fs.Bool("prune-selection", envOrBool(env, envPruneSelection, file.GetBool("prune-selection")), "drop selected rows hidden by search or filters")
	data := fs.String("data", envOrDefault(env, envData, file.GetString("data")), "YAML dataset to load instead of the built-in demo data")
	reload := fs.Duration("reload", envOrDuration(env, envReload, file.GetDuration("reload")), "poll the data file for changes at this interval (0 disables)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *reload < 0 {
		return Config{}, fmt.Errorf("reload must be >= 0 (got %s)", *reload)
	}
	if *pageSize <= 0 {
		return Config{}, fmt.Errorf("page-size must be > 0 (got %d)", *pageSize)
	}
	mode, err := datagrid.ParseSearchMode(*searchMode)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:          *width,
			Height:         *height,
			ShowFooter:     *footer,
			Verbose:        *verbose,
			Page:           strings.TrimSpace(*page),
			PageSize:       *pageSize,
			SearchMode:     mode,
			PruneSelection: *prune,
			DataPath:       *data,
			Reload:         *reload,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		File: file.ConfigFileUsed(),
		Flags: map[string]string{
			"config":         file.ConfigFileUsed(),
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"footer":         strconv.FormatBool(*footer),
			"trace":          strconv.FormatBool(*trace),
			"verbose":        strconv.FormatBool(*verbose),
			"logFile":        *logFile,
			"page":           *page,
			"pageSize":       strconv.Itoa(*pageSize),
			"searchMode":     string(mode),
			"pruneSelection": strconv.FormatBool(*prune),
			"data":           *data,
			"reload":         reload.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// readFile loads the optional config file. Defaults live here so a missing file still
// yields usable values. An explicitly named file that cannot be read is an error.
func readFile(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	v.SetDefault("footer", false)
	v.SetDefault("trace", false)
	v.SetDefault("verbose", false)
	v.SetDefault("log-file", "")
	v.SetDefault("page", "")
	v.SetDefault("page-size", datagrid.DefaultPageSize)
	v.SetDefault("search-mode", string(datagrid.SearchSubstring))
	v.SetDefault("prune-selection", false)
	v.SetDefault("data", "")
	v.SetDefault("reload", 2*time.Second)

	if path == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var unsupported viper.UnsupportedConfigError
		if errors.As(err, &unsupported) {
			return nil, fmt.Errorf("config file %s: unsupported format", path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}

// configPath finds --config ahead of the main parse so the file can seed flag defaults.
func configPath(args []string, env map[string]string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return envOrDefault(env, envConfig, "")
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values that depend on the page catalog.
func Validate(cfg Config) error {
	return catalog.Default().Validate(cfg.App.Page)
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/item-directory/internal/app"
	"github.com/atomicstack/item-directory/internal/catalog"
	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
	// EnvFile is the dotenv file that was merged, empty when none was found.
	EnvFile string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envFile        = "ITEM_DIRECTORY_ENV_FILE"
	envCatalog     = "ITEM_DIRECTORY_CATALOG"
	envPosts       = "ITEM_DIRECTORY_POSTS"
	envMarkers     = "ITEM_DIRECTORY_MARKERS"
	envDefaultItem = "ITEM_DIRECTORY_DEFAULT_ITEM"
	envDeveloper   = "ITEM_DIRECTORY_DEVELOPER"
	envScreen      = "ITEM_DIRECTORY_SCREEN"
	envWidth       = "ITEM_DIRECTORY_WIDTH"
	envHeight      = "ITEM_DIRECTORY_HEIGHT"
	envShowFooter  = "ITEM_DIRECTORY_FOOTER"
	envVerbose     = "ITEM_DIRECTORY_VERBOSE"
	envTrace       = "ITEM_DIRECTORY_TRACE"
	envLogFile     = "ITEM_DIRECTORY_LOG_FILE"

	defaultEnvFile = ".env"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values from a
// dotenv file sit beneath the supplied environment, which sits beneath flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	usedEnvFile, err := mergeEnvFile(env)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("item-directory", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a JSON or YAML item catalog (empty uses the bundled catalog)")
	postsPath := fs.String("posts", envOrDefault(env, envPosts, ""), "path to a JSON array of blog posts (empty uses sample posts)")
	markers := fs.String("markers", envOrDefault(env, envMarkers, ""), "path to the SQLite read-marker database (empty keeps markers in memory)")
	defaultItem := fs.String("default-item", envOrDefault(env, envDefaultItem, catalog.DefaultItemID), "item id shown when nothing else is selected")
	developer := fs.Bool("developer", envOrBool(env, envDeveloper, false), "show developer-only options such as post editing")
	screen := fs.String("screen", envOrDefault(env, envScreen, app.ScreenItems), "initial screen: items or blog")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show success messages for actions")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			CatalogPath: *catalogPath,
			PostsPath:   *postsPath,
			MarkersPath: *markers,
			DefaultItem: *defaultItem,
			Developer:   *developer,
			Screen:      strings.ToLower(strings.TrimSpace(*screen)),
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"catalog":     *catalogPath,
			"posts":       *postsPath,
			"markers":     *markers,
			"defaultItem": *defaultItem,
			"developer":   strconv.FormatBool(*developer),
			"screen":      *screen,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"verbose":     strconv.FormatBool(*verbose),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args:    append([]string(nil), args...),
		EnvFile: usedEnvFile,
	}

	return cfg, nil
}

// mergeEnvFile reads the dotenv file into env without overriding keys that
// are already set. A missing default file is ignored; a missing file named
// explicitly is an error.
func mergeEnvFile(env map[string]string) (string, error) {
	path, explicit := env[envFile]
	if strings.TrimSpace(path) == "" {
		path, explicit = defaultEnvFile, false
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read env file %s: %w", path, err)
	}
	for k, v := range values {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}
	return path, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
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

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values the flag parser cannot.
func Validate(cfg Config) error {
	var errs []error
	switch cfg.App.Screen {
	case app.ScreenItems, app.ScreenBlog:
	default:
		errs = append(errs, fmt.Errorf("screen must be %q or %q (got %q)", app.ScreenItems, app.ScreenBlog, cfg.App.Screen))
	}
	if strings.TrimSpace(cfg.App.DefaultItem) == "" {
		errs = append(errs, errors.New("default-item must not be empty"))
	}
	return errors.Join(errs...)
}

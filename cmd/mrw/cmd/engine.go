package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/msto63/mRW/foundation/core/config"
	rwerror "github.com/msto63/mRW/foundation/core/error"
	rwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/foundation/expr"
)

// envPrefix is the prefix for configuration environment overrides,
// e.g. MRW_LOGGING_LEVEL
const envPrefix = "MRW"

// configRules validates the known configuration keys. Violations are
// reported as warnings, the command still runs with usable values.
var configRules = config.ValidationRules{
	"engine.name":             {Type: "string"},
	"engine.max_input_length": {Type: "int", Min: 1},
	"logging.level":           {Type: "string", Pattern: "^(trace|debug|info|warn|error|fatal)$"},
	"logging.format":          {Type: "string", Pattern: "^(json|text|console|logfmt)$"},
	"repl.show_tokens":        {Type: "bool"},
	"repl.show_ast":           {Type: "bool"},
	"server.host":             {Type: "string"},
	"server.port":             {Type: "int", Min: 1, Max: 65535},
	"server.read_timeout":     {Type: "duration"},
	"server.write_timeout":    {Type: "duration"},
	"server.session_ttl":      {Type: "duration"},
	"server.max_sessions":     {Type: "int", Min: 1},
}

// loadConfig loads the configuration for a one-shot command invocation
func loadConfig() *config.Config {
	return loadConfigOptions(false)
}

// loadConfigOptions loads the configuration file named by --config, or
// discovers one in the standard locations. A missing configuration is not
// an error; commands fall back to their defaults. Warnings go to stderr
// so command output stays pipeable.
func loadConfigOptions(watch bool) *config.Config {
	var (
		cfg *config.Config
		err error
	)

	if cfgFile != "" {
		cfg, err = config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Watch:     watch,
		})
	} else {
		opts := config.DefaultDiscoveryOptions()
		opts.EnvPrefix = envPrefix
		opts.Watch = watch
		cfg, err = config.DiscoverWithOptions(opts)
	}

	if err != nil {
		if cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Warnung: Config nicht geladen (%v), nutze Defaults\n", err)
		}
		return nil
	}

	if result := cfg.Validate(configRules); !result.Valid {
		for _, msg := range result.Errors {
			fmt.Fprintf(os.Stderr, "Warnung: Config: %s\n", msg)
		}
	}

	return cfg
}

// configVariables extracts the [variables] table as environment preseeds
func configVariables(cfg *config.Config) map[string]float64 {
	if cfg == nil {
		return nil
	}

	raw, ok := cfg.GetAll()["variables"].(map[string]interface{})
	if !ok {
		return nil
	}

	vars := make(map[string]float64, len(raw))
	for name, value := range raw {
		switch v := value.(type) {
		case float64:
			vars[name] = v
		case int64:
			vars[name] = float64(v)
		case int:
			vars[name] = float64(v)
		}
	}

	return vars
}

// newEngine builds an expression engine from the configuration, with the
// [variables] table preseeded into its environment
func newEngine(cfg *config.Config) (*expr.Engine, error) {
	maxLen := 0
	if cfg != nil {
		maxLen = cfg.GetInt("engine.max_input_length", 0)
	}

	engine, err := expr.NewEngine(expr.Options{
		Logger:              cliLogger(cfg),
		MaxExpressionLength: maxLen,
	})
	if err != nil {
		return nil, err
	}

	for name, value := range configVariables(cfg) {
		engine.Environment().Set(name, value)
	}

	return engine, nil
}

// cliLogger builds the engine logger for one-shot commands. Output goes to
// stderr so results stay pipeable; without --verbose only errors surface.
func cliLogger(cfg *config.Config) *rwlog.Logger {
	level := rwlog.LevelError
	if verbose {
		level = rwlog.LevelDebug
	}

	format := rwlog.FormatConsole
	if cfg != nil {
		if parsed, err := rwlog.ParseFormat(cfg.GetString("logging.format", "console")); err == nil {
			format = parsed
		}
	}

	return rwlog.NewWithConfig(rwlog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "mrw-cli",
	})
}

// printExprError prints an expression error with its source position to
// stderr, e.g. "Fehler [EXPR_PARSE] an Position 0:5: ..."
func printExprError(err error) {
	var rwErr *rwerror.Error
	if !errors.As(err, &rwErr) {
		fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
		return
	}

	details := rwErr.Details()
	line, lineOK := details["line"].(int)
	column, colOK := details["column"].(int)
	if lineOK && colOK {
		fmt.Fprintf(os.Stderr, "Fehler [%s] an Position %d:%d: %v\n", rwErr.Code(), line, column, err)
		return
	}

	fmt.Fprintf(os.Stderr, "Fehler [%s]: %v\n", rwErr.Code(), err)
}

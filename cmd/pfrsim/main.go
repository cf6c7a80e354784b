package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/pfrsim/internal/config"
	"github.com/san-kum/pfrsim/internal/logging"
	"github.com/san-kum/pfrsim/internal/reactor"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	envFile    string
	preset     string
	overrides  []string
	integrator string
	logLevel   string
	// operating point
	tIn      float64
	velocity float64
	tJacket  float64
)

// settings is the resolved configuration for one command invocation.
type settings struct {
	cfg *config.Config
	log *log.Logger
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "pfrsim",
		Short:         "plug-flow reactor simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml or ini)")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
	pf.StringVar(&preset, "preset", "", "operating point preset")
	pf.StringArrayVar(&overrides, "set", nil, "reactor parameter override, name=value (repeatable)")
	pf.StringVar(&integrator, "integrator", "", "integrator (euler, rk4)")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newRunCmd(),
		newServeCmd(),
		newSweepCmd(),
		newCompareCmd(),
		newScenarioCmd(),
		newParamSweepCmd(),
		newExportCmd(),
		newTUICmd(),
		newPresetsCmd(),
		newParamsCmd(),
		newInitConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// addOperatingPointFlags registers the three boundary condition flags.
// Unset flags fall back to the preset, then the config file.
func addOperatingPointFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&tIn, "t-in", 310, "inlet temperature [K]")
	cmd.Flags().Float64Var(&velocity, "velocity", 1.5, "flow velocity [m/s]")
	cmd.Flags().Float64Var(&tJacket, "t-jacket", 280, "jacket temperature [K]")
}

// loadSettings resolves configuration in order: defaults, config file,
// environment, preset, --set, flags.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg.OperatingPoint = p.Request
	}

	for _, kv := range overrides {
		name, value, err := parseOverride(kv)
		if err != nil {
			return nil, err
		}
		if err := cfg.Reactor.SetParam(name, value); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	// sweep reuses these flag names for value lists
	if f := cmd.Flags().Lookup("t-in"); f != nil && f.Value.Type() == "float64" {
		if cmd.Flags().Changed("t-in") {
			cfg.OperatingPoint.TIn = tIn
		}
		if cmd.Flags().Changed("velocity") {
			cfg.OperatingPoint.Velocity = velocity
		}
		if cmd.Flags().Changed("t-jacket") {
			cfg.OperatingPoint.TJacket = tJacket
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	logger.WithFields(log.Fields{
		"integrator": cfg.Integrator,
		"t_in":       cfg.OperatingPoint.TIn,
		"velocity":   cfg.OperatingPoint.Velocity,
		"t_jacket":   cfg.OperatingPoint.TJacket,
	}).Debug("configuration resolved")

	return &settings{cfg: cfg, log: logger}, nil
}

func parseOverride(kv string) (string, float64, error) {
	name, raw, ok := strings.Cut(kv, "=")
	if !ok {
		return "", 0, fmt.Errorf("invalid --set %q, want name=value (names: %v)", kv, reactor.ParamNames())
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid --set %q: %w", kv, err)
	}
	return strings.TrimSpace(name), value, nil
}

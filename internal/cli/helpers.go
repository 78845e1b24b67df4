package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/svanherck/treesnap/internal/platform"
	"github.com/svanherck/treesnap/pkg/baseline"
	"github.com/svanherck/treesnap/pkg/config"
	"github.com/svanherck/treesnap/pkg/logging"
	"github.com/svanherck/treesnap/pkg/output"
	"github.com/svanherck/treesnap/pkg/scan"
)

// loadConfig loads the configuration, honoring --config when set
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if globalFlags.ConfigFile != "" {
		cfg, err = config.LoadFromFile(globalFlags.ConfigFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyFlagsToConfig(cfg)
	return cfg, nil
}

// applyFlagsToConfig overrides configuration with command-line flags
func applyFlagsToConfig(cfg *config.Config) {
	if globalFlags.Quiet {
		cfg.Output.Quiet = true
		cfg.Output.Progress = false
	}
	if globalFlags.Verbose {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
	if globalFlags.Output != "" {
		cfg.Output.Format = globalFlags.Output
	}
}

// newLogger builds the logger described by the configuration
func newLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NewNullLogger(), nil
	}

	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = filepath.Join(platform.LogDir(), "treesnap.log")
	}

	return logging.NewFileLogger(logging.FileConfig{
		Path:       logFile,
		Format:     logging.Format(cfg.Logging.Format),
		Level:      logging.ParseLevel(cfg.Logging.Level),
		MaxSize:    10 * 1024 * 1024,
		MaxBackups: 3,
	})
}

// newStore opens the baseline store at the configured directory
func newStore(cfg *config.Config, log logging.Logger) (*baseline.Store, error) {
	dir := cfg.Storage.Dir
	if dir == "" {
		dir = platform.BaselineDir()
	}
	return baseline.NewStore(dir, log)
}

// newFormatter builds the configured output formatter
func newFormatter(cfg *config.Config) (output.Formatter, error) {
	return output.New(cfg.Output.Format)
}

// newScanner builds a scanner, attaching a progress counter on stderr when
// the configuration asks for one. The returned finish func stops the
// counter and is safe to call unconditionally.
func newScanner(cfg *config.Config, log logging.Logger) (*scan.Scanner, func()) {
	opts := []scan.Option{scan.WithLogger(log)}
	finish := func() {}

	if cfg.Output.Progress && !cfg.Output.Quiet {
		progress := output.NewScanProgress(os.Stderr)
		opts = append(opts, scan.WithProgress(progress.Tick))
		finish = progress.Finish
	}

	return scan.NewScanner(opts...), finish
}

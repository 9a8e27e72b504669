package main

import (
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-negativo/algorithms/reflection"
	"github.com/RyanBlaney/sonido-negativo/config"
	"github.com/RyanBlaney/sonido-negativo/logging"
	"github.com/RyanBlaney/sonido-negativo/session"
)

// app carries what every subcommand needs once flags are parsed
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger logging.Logger
	engine *reflection.Engine
	styles styles
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "negativo",
		Short: "Reflect notes across a key center's axis (negative harmony)",
		Long: `negativo mirrors notes across the axis of a key center on the chromatic
circle. With C as key center the axis runs between C and G, so C becomes G,
F becomes D, and so on.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(
		a.reflectCmd(),
		a.axisCmd(),
		a.tableCmd(),
		a.spinCmd(),
		a.infoCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	// logs stay on stderr so stdout can be piped
	logger := logging.NewDefaultLoggerTo(cmd.ErrOrStderr(), cmd.ErrOrStderr())
	logger.SetLevel(cfg.Level())
	logger.SetColors(cfg.UseColors(isTerminal(cmd.ErrOrStderr())))
	ctx := logging.ContextWithFields(cmd.Context(), logging.Fields{"command": cmd.Name()})
	a.logger = logger.WithContext(ctx)
	logging.SetGlobalLogger(a.logger)

	a.engine = reflection.NewEngine(nil)
	a.styles = newStyles(cfg.UseColors(isTerminal(cmd.OutOrStdout())))

	logging.Debug("configuration loaded", logging.Fields{
		"key_center": cfg.KeyCenter,
		"log_level":  cfg.LogLevel,
	})
	return nil
}

// newSession opens a session positioned on key, or on the configured key
// center when key is empty
func (a *app) newSession(key string) (*session.Session, error) {
	s, err := session.New(a.engine, session.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}

	if key == "" {
		key = a.cfg.KeyCenter
	}
	if err := s.SetKeyCenter(key); err != nil {
		return nil, err
	}
	return s, nil
}

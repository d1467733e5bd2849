package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yukikurage/taskboard/internal/bootstrap"
	"github.com/yukikurage/taskboard/internal/config"
	"github.com/yukikurage/taskboard/internal/engine"
	"github.com/yukikurage/taskboard/internal/persistence"
	"github.com/yukikurage/taskboard/internal/services"
)

// app carries the global flags and the hooks the commands share.
type app struct {
	configPath string
	verbose    bool

	openGateway func(ctx context.Context, cfg *config.Config, logger *log.Logger) (*persistence.Gateway, func() error, error)
	now         func() time.Time
}

// NewRootCommand builds the taskboard command tree.
func NewRootCommand() *cobra.Command {
	a := &app{
		openGateway: bootstrap.OpenGateway,
		now:         time.Now,
	}
	return a.rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskboard",
		Short: "Taskboard - kanban boards from the command line",
		Long: `Taskboard manages boards, columns and tasks stored as a single saved state.

Every command loads the saved state, applies one change and saves it again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file overriding environment settings")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(a.boardCommand())
	rootCmd.AddCommand(a.columnCommand())
	rootCmd.AddCommand(a.taskCommand())
	rootCmd.AddCommand(a.showCommand())
	rootCmd.AddCommand(a.checkCommand())
	rootCmd.AddCommand(a.resetCommand())
	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd := NewRootCommand()
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if a.configPath != "" {
		if err := config.LoadFile(a.configPath, cfg); err != nil {
			return nil, err
		}
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

// session opens the configured store, loads the saved state into a BoardService and
// hands both to fn.
func (a *app) session(cmd *cobra.Command, fn func(ctx context.Context, svc *services.BoardService, gw *persistence.Gateway) error) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	logger := bootstrap.NewLogger(cfg.LogLevel)
	logger.SetOutput(cmd.ErrOrStderr())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	gw, closeStore, err := a.openGateway(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.WithError(err).Warn("failed to close state store")
		}
	}()

	svc := services.NewBoardService(engine.New(), gw, services.WithClock(a.now))
	if !svc.Load(ctx) {
		logger.Debug("starting from an empty state")
	}
	return fn(ctx, svc, gw)
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/peplxx/probability-explorer/internal/app"
	"github.com/peplxx/probability-explorer/internal/config"
	"github.com/peplxx/probability-explorer/internal/distribution"
	"github.com/peplxx/probability-explorer/internal/experiment"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// env is the state shared by all subcommands, filled in PersistentPreRunE.
type env struct {
	configPath string
	cfg        *config.Config
	log        *logrus.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:           "probexplorer",
		Short:         "Probability distributions and statistical experiments",
		Long:          `Interactive explorer of probability distributions and small statistical simulations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Apply(e.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log, err := cfg.Logger()
			if err != nil {
				return err
			}
			log.SetOutput(cmd.ErrOrStderr())
			e.cfg, e.log = cfg, log
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), logo())
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "YAML configuration file")
	config.Default().BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(newServeCmd(e))
	cmd.AddCommand(newRenderCmd(e))
	cmd.AddCommand(newExperimentCmd(e))
	cmd.AddCommand(newListCmd(e))
	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newApp wires the catalog and the registry from the configuration.
func (e *env) newApp() (*app.App, error) {
	m, err := e.cfg.TransitionMatrix()
	if err != nil {
		return nil, err
	}
	opts := []experiment.Option{experiment.WithSeed(e.cfg.Seed)}
	if m != nil {
		opts = append(opts, experiment.WithTransitionMatrix(m))
	}
	return app.New(distribution.NewCatalog(), experiment.NewRegistry(opts...), e.cfg.AutoUpdate, e.log), nil
}

func printSaved(w io.Writer, paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%d file(s) written\n", len(paths))
}

package commands

import (
	"github.com/peplxx/probability-explorer/internal/app"
	"github.com/peplxx/probability-explorer/internal/distribution"
	"github.com/peplxx/probability-explorer/internal/terminal"
	"github.com/spf13/cobra"
)

// surfaceFlags are the flags of commands rendering on the terminal.
type surfaceFlags struct {
	set []string
	out string
}

func (f *surfaceFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.set, "set", "s", nil, "control value as name=value, repeatable")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "directory for plot files (default: output-dir)")
}

func (f *surfaceFlags) terminal(cmd *cobra.Command, e *env) (*terminal.Terminal, error) {
	input, err := terminal.ParseSet(f.set)
	if err != nil {
		return nil, err
	}
	// На терминале нет кнопки, рисуем сразу.
	if _, ok := input[app.ControlAutoUpdate]; !ok {
		input[app.ControlCalculate] = "true"
	}
	dir := f.out
	if dir == "" {
		dir = e.cfg.OutputDir
	}
	return terminal.New(cmd.OutOrStdout(), input, dir, e.cfg.Plot, e.log), nil
}

func newRenderCmd(e *env) *cobra.Command {
	var flags surfaceFlags
	cmd := &cobra.Command{
		Use:     "render <distribution>",
		Aliases: []string{"r"},
		Short:   "Render a distribution: formula, parameters, plot and properties",
		Example: `  probexplorer render Normal --set mean=1 --set std=0.5 --out plots
  probexplorer render "Discrete Uniform" -s low=2 -s high=9`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.newApp()
			if err != nil {
				return err
			}
			d, err := a.Catalog.Find(args[0])
			if err != nil {
				return err
			}
			term, err := flags.terminal(cmd, e)
			if err != nil {
				return err
			}
			page := app.PageContinuous
			if d.Family() == distribution.Discrete {
				page = app.PageDiscrete
			}
			if err := a.Show(term, page, d.Name()); err != nil {
				return err
			}
			term.Flush()
			printSaved(cmd.OutOrStdout(), term.Saved)
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

package commands

import (
	"github.com/peplxx/probability-explorer/internal/app"
	"github.com/spf13/cobra"
)

func newExperimentCmd(e *env) *cobra.Command {
	var flags surfaceFlags
	cmd := &cobra.Command{
		Use:     "experiment <name>",
		Aliases: []string{"exp"},
		Short:   "Run a statistical experiment",
		Example: `  probexplorer experiment "Dice Roll" --set dice=3 --set rolls=5000
  probexplorer experiment "Markov Chain" --markov-matrix weather.txt --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.newApp()
			if err != nil {
				return err
			}
			term, err := flags.terminal(cmd, e)
			if err != nil {
				return err
			}
			if err := a.Show(term, app.PageExperiments, args[0]); err != nil {
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

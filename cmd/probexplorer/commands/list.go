package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/peplxx/probability-explorer/internal/distribution"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type listing struct {
	Continuous  []string `yaml:"continuous"`
	Discrete    []string `yaml:"discrete"`
	Experiments []string `yaml:"experiments"`
}

func newListCmd(e *env) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List distributions and experiments",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.newApp()
			if err != nil {
				return err
			}
			l := listing{
				Continuous:  a.Catalog.Names(distribution.Continuous),
				Discrete:    a.Catalog.Names(distribution.Discrete),
				Experiments: a.Registry.Names(),
			}

			switch output {
			case "yaml":
				out, err := yaml.Marshal(l)
				if err != nil {
					return errors.Wrap(err, "marshal listing")
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			case "table", "":
				table := tablewriter.NewWriter(cmd.OutOrStdout())
				table.SetHeader([]string{"Kind", "Name"})
				table.SetAutoMergeCells(true)
				for _, n := range l.Continuous {
					table.Append([]string{"continuous", n})
				}
				for _, n := range l.Discrete {
					table.Append([]string{"discrete", n})
				}
				for _, n := range l.Experiments {
					table.Append([]string{"experiment", n})
				}
				table.Render()
				return nil
			default:
				return errors.Errorf("unknown output format %q", output)
			}
		},
	}
	cmd.Flags().StringVar(&output, "output", "table", "output format (table, yaml)")
	return cmd
}

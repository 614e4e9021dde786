package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"venues-server/util"
)

func newChartCmd(configPath *string) *cobra.Command {
	var (
		flags queryFlags
		out   string
		title string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render an HTML bar chart of a query result",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, spec, err := flags.run(*configPath)
			if err != nil {
				return err
			}
			if title == "" {
				title = fmt.Sprintf("Venues by %s", spec.SortKey)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer f.Close()

			if err := util.PlotVenues(f, title, result); err != nil {
				return fmt.Errorf("failed to render chart: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d venues to %s\n", len(result), out)
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "venues_chart.html", "output HTML file")
	cmd.Flags().StringVar(&title, "title", "", "chart title")
	return cmd
}

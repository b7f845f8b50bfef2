package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jdlms/operadoras-dashboard/internal/api"
	"github.com/jdlms/operadoras-dashboard/internal/format"

	"github.com/spf13/cobra"
)

const statsBarWidth = 40

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate expense statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, closer, client, err := setup()
		if err != nil {
			return err
		}
		defer closer.Close()

		log.WithField("api_url", cfg.APIURL).Debug("fetching statistics")
		stats, err := client.Estatisticas(cmd.Context())
		if err != nil {
			log.WithError(err).Error("failed to load statistics")
			return fmt.Errorf("load statistics: %w", err)
		}
		return writeStats(cmd.OutOrStdout(), stats)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// writeStats prints the summary, the top 5 ranking and a UF bar chart
func writeStats(w io.Writer, stats *api.Estatisticas) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Total geral:\tR$ %s\n", format.Money(stats.TotalGeral))
	fmt.Fprintf(tw, "Média por lançamento:\tR$ %s\n", format.Money(stats.MediaLancamento))
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "#\tOperadora\tTotal")
	for i, top := range stats.TopOperadoras {
		fmt.Fprintf(tw, "%d\t%s\tR$ %s\n", i+1, top.RazaoSocial, format.Money(top.Total))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(stats.DistribuicaoUF) == 0 {
		return nil
	}
	fmt.Fprintln(w)

	peak := 0.0
	for _, uf := range stats.DistribuicaoUF {
		peak = max(peak, uf.Total.InexactFloat64())
	}

	tw = tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for _, uf := range stats.DistribuicaoUF {
		value := uf.Total.InexactFloat64()
		width := 0
		if peak > 0 {
			width = int(value / peak * statsBarWidth)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", uf.UF, strings.Repeat("█", width), format.Money(uf.Total))
	}
	return tw.Flush()
}

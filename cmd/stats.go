package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/mediastat/pkg/librarystats"
	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	statsServerID int64
	statsDays     int
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "show library statistics",
	Long:  `show the current library statistics and their daily history`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m := newManager(ctx, loadConfig())
		summary, err := m.GetLibraryStatistics(ctx, serverFilter(statsServerID), statsDays)
		if err != nil {
			log.Errorw("failed to read statistics", zap.Error(err))
		}

		printSummary(os.Stdout, summary)
	},
}

func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	hours := int64(d.Hours())
	if hours >= 24 {
		return fmt.Sprintf("%dd %dh", hours/24, hours%24)
	}
	return d.Round(time.Minute).String()
}

func printSummary(out io.Writer, summary *librarystats.Summary) {
	current := summary.Current

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERVER\tLIBRARY\tTYPE\tITEMS\tSIZE\tDURATION\tAVG BITRATE\tHDR\tUPDATED")
	for _, l := range current.Items {
		items := humanize.Comma(l.TotalItems)
		if l.Sampled {
			items = "~" + items
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ServerID,
			l.LibraryName,
			l.LibraryType,
			items,
			humanize.Bytes(uint64(max(l.TotalSizeBytes, 0))),
			formatDuration(l.TotalDurationMs),
			humanize.SI(float64(l.AvgBitrateKbps)*1000, "bps"),
			humanize.Comma(l.HDRItemCount),
			humanize.Time(l.LastUpdatedAt),
		)
	}
	fmt.Fprintf(w, "\t%d libraries\t\t%s\t%s\t%s\t\t%s\t\n",
		current.Libraries,
		humanize.Comma(current.TotalItems),
		humanize.Bytes(uint64(max(current.TotalSizeBytes, 0))),
		formatDuration(current.TotalDurationMs),
		humanize.Comma(current.HDRItemCount),
	)
	w.Flush()

	if len(summary.History) == 0 {
		return
	}

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tITEMS\tSIZE\tDURATION")
	for _, h := range summary.History {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			h.Date,
			humanize.Comma(h.TotalItems),
			humanize.Bytes(uint64(max(h.TotalSizeBytes, 0))),
			formatDuration(h.TotalDurationMs),
		)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Int64Var(&statsServerID, "server", 0, "only show this server")
	statsCmd.Flags().IntVar(&statsDays, "days", 0, "days of history to show (default stats.historyDays)")
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	collectServerID  int64
	snapshotServerID int64
)

// serverFilter turns an unset id flag into "every server"
func serverFilter(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

// collectCmd represents the collect command
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "collect library statistics",
	Long:  `collect the library statistics of one server or every registered server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m := newManager(ctx, loadConfig())
		results, err := m.RefreshStatistics(ctx, serverFilter(collectServerID))
		if err != nil {
			log.Fatalw("failed to collect statistics", zap.Error(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SERVER\tPROCESSED\tSKIPPED\tFAILED\tSAMPLED\tDURATION")
		for _, r := range results {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%s\n", r.ServerID, r.Processed, r.Skipped, r.Failed, r.Sampled, r.Duration.Round(time.Millisecond))
		}
		w.Flush()
	},
}

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "record today's library snapshot",
	Long:  `record today's snapshot of the current library statistics. Running it again the same day changes nothing`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		m := newManager(ctx, loadConfig())
		results, err := m.SnapshotStatistics(ctx, serverFilter(snapshotServerID))
		if err != nil {
			log.Fatalw("failed to snapshot statistics", zap.Error(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SERVER\tDATE\tCREATED\tEXISTING\tFAILED")
		for _, r := range results {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", r.ServerID, r.Date, r.Created, r.Existing, r.Failed)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(collectCmd, snapshotCmd)
	collectCmd.Flags().Int64Var(&collectServerID, "server", 0, "only collect this server")
	snapshotCmd.Flags().Int64Var(&snapshotServerID, "server", 0, "only snapshot this server")
}

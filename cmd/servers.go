package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/kasuboski/mediastat/pkg/manager"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addServerRequest manager.AddServerRequest

// serversCmd represents the server command
var serversCmd = &cobra.Command{
	Use:   "server",
	Short: "manage media servers",
	Long:  `register, list and remove the media servers statistics are collected from`,
}

var addServerCmd = &cobra.Command{
	Use:   "add",
	Short: "register a media server",
	Long:  `register a plex, jellyfin or emby server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		m := newManager(ctx, loadConfig())
		server, err := m.AddServer(ctx, addServerRequest)
		if err != nil {
			log.Fatalw("failed to add server", zap.Error(err))
		}

		fmt.Printf("added %s server %q with id %d\n", server.Type, server.Name, server.ID)
	},
}

var listServersCmd = &cobra.Command{
	Use:   "list",
	Short: "list media servers",
	Long:  `list the registered media servers`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		m := newManager(ctx, loadConfig())
		servers, err := m.ListServers(ctx)
		if err != nil {
			log.Fatalw("failed to list servers", zap.Error(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tURL\tADDED")
		for _, s := range servers {
			added := "-"
			if s.CreatedAt != nil {
				added = humanize.Time(*s.CreatedAt)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Type, s.URL, added)
		}
		w.Flush()
	},
}

var removeServerCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "remove a media server",
	Long:  `remove a media server along with its statistics and history`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := context.Background()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatalw("invalid server id", zap.String("id", args[0]), zap.Error(err))
		}

		m := newManager(ctx, loadConfig())
		if err := m.DeleteServer(ctx, id); err != nil {
			log.Fatalw("failed to remove server", zap.Int64("server_id", id), zap.Error(err))
		}

		fmt.Printf("removed server %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(serversCmd)
	serversCmd.AddCommand(addServerCmd, listServersCmd, removeServerCmd)

	addServerCmd.Flags().StringVar(&addServerRequest.Name, "name", "", "display name of the server")
	addServerCmd.Flags().StringVar(&addServerRequest.Type, "type", "plex", "server type: plex, jellyfin or emby")
	addServerCmd.Flags().StringVar(&addServerRequest.URL, "url", "", "base url of the server")
	addServerCmd.Flags().StringVar(&addServerRequest.Token, "token", "", "plex token or jellyfin/emby api key")
	addServerCmd.MarkFlagRequired("name")
	addServerCmd.MarkFlagRequired("url")
	addServerCmd.MarkFlagRequired("token")
}

package cmd

import (
	"context"
	"log"
	"os"

	"github.com/kasuboski/mediastat/pkg/storage/sqlite"
	"github.com/spf13/cobra"

	jet "github.com/go-jet/jet/v2/generator/sqlite"
)

var outputDirectory string

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "generate database code",
	Long:  `apply the embedded migrations to a scratch database and generate jet code from it`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		tmpStorage, err := sqlite.New(ctx, "tmp.sqlite")
		if err != nil {
			log.Fatal(err)
		}
		defer os.Remove("tmp.sqlite")

		err = tmpStorage.RunMigrations(ctx)
		if err != nil {
			log.Fatal(err)
		}

		err = jet.GenerateDSN("tmp.sqlite", outputDirectory)
		if err != nil {
			log.Fatal(err)
		}

		log.Printf("successfully generated to %s", outputDirectory)
	},
}

func init() {
	generateCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&outputDirectory, "out", "o", "./pkg/storage/sqlite/schema/gen", "directory to output generated code to")
}

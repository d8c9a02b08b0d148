package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jamezpolley/publicwhip/pkg/divisions"
	"github.com/jamezpolley/publicwhip/pkg/loader"
	"github.com/jamezpolley/publicwhip/pkg/members"
	"github.com/jamezpolley/publicwhip/pkg/store"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "publicwhip",
		Short: "Parliamentary division loader",
		Long: `Publicwhip ingests scraped parliamentary debate transcripts and
derives a normalized record for every division (recorded vote): the
debate heading context, the motion text that preceded the vote, the
source identifiers, and a canonicalized sitting time.

Records are upserted into the division store by (date, number, house).`,
		Version: version,
	}

	rootCmd.AddCommand(loadDivisionsCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadDivisionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loaddivisions",
		Short: "Extract and store divisions for a date range",
		Long: `Process the transcript for every configured house and every date
in the range, extracting division records and upserting them into the
division store. Dates without a transcript are skipped; malformed
transcripts abort that document only and are listed in the summary.

Example:
  publicwhip loaddivisions --from 2003-02-05 --to 2003-02-07
  publicwhip loaddivisions --from 2003-02-05 --house senate --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			if from == "" {
				return fmt.Errorf("--from flag is required")
			}
			if to == "" {
				to = from
			}

			run, err := newRun(cmd)
			if err != nil {
				return err
			}
			defer run.close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			summary, err := run.loader.LoadRange(ctx, from, to, run.houses)
			if summary != nil {
				fmt.Print(loader.FormatSummary(summary))
			}
			if err != nil {
				return err
			}
			if len(summary.Failures) > 0 {
				return fmt.Errorf("%d document(s) failed", len(summary.Failures))
			}
			return nil
		},
	}

	addRunFlags(cmd)
	cmd.Flags().String("from", "", "first date to process (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "last date to process (defaults to --from)")
	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the debates directories and load new transcripts",
		Long: `Watch each configured house's debates directory and reprocess
transcript files as the scraper creates or rewrites them. Runs until
interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := newRun(cmd)
			if err != nil {
				return err
			}
			defer run.close()

			watcher, err := loader.NewWatcher(run.loader, run.houses)
			if err != nil {
				return err
			}
			defer watcher.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			fmt.Printf("watching %s for new transcripts\n", run.loader.DataDir)
			if err := watcher.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	addRunFlags(cmd)
	return cmd
}

// addRunFlags registers the flags shared by loaddivisions and watch.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "YAML config file")
	cmd.Flags().String("data-dir", "", "root of the scraped transcript tree")
	cmd.Flags().String("members", "", "members XML file for speaker attribution")
	cmd.Flags().StringSlice("house", nil, "house to process: representatives or senate (repeatable)")
	cmd.Flags().Bool("dry-run", false, "extract without writing to the database")
}

// run bundles the collaborators a command needs.
type run struct {
	loader *loader.Loader
	houses []divisions.House
	store  store.DivisionStore
}

func (r *run) close() {
	if err := r.store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing store: %v\n", err)
	}
}

// newRun builds the loader from config file, environment, and flags,
// in that order of precedence (lowest first).
func newRun(cmd *cobra.Command) (*run, error) {
	configPath, _ := cmd.Flags().GetString("config")
	dataDir, _ := cmd.Flags().GetString("data-dir")
	membersFile, _ := cmd.Flags().GetString("members")
	houseNames, _ := cmd.Flags().GetStringSlice("house")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	config := loader.DefaultConfig()
	if configPath != "" {
		loaded, err := loader.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	config.ApplyEnvironment()

	if dataDir != "" {
		config.DataDir = dataDir
	}
	if membersFile != "" {
		config.MembersFile = membersFile
	}
	if len(houseNames) > 0 {
		config.Houses = houseNames
	}

	houses, err := config.HouseList()
	if err != nil {
		return nil, err
	}

	var lookup divisions.MemberLookup
	if config.MembersFile != "" {
		directory, err := members.LoadDirectory(config.MembersFile)
		if err != nil {
			return nil, err
		}
		lookup = directory
	}

	var divisionStore store.DivisionStore
	if dryRun || config.DatabaseURL == "" {
		if !dryRun {
			fmt.Println("no database configured; running dry")
		}
		divisionStore = store.NewMemory()
	} else {
		postgres, err := store.NewPostgres(cmd.Context(), config.DatabaseURL)
		if err != nil {
			return nil, err
		}
		divisionStore = postgres
	}

	return &run{
		loader: &loader.Loader{
			DataDir: config.DataDir,
			Lookup:  lookup,
			Store:   divisionStore,
			Out:     os.Stdout,
		},
		houses: houses,
		store:  divisionStore,
	}, nil
}

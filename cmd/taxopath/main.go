// Command taxopath builds training corpora from class hierarchies: it
// enumerates bounded, cycle-safe taxonomy paths from top-ranked seed nodes,
// deduplicates and combines them, and writes shuffled TSV batches.
//
// Subcommands:
//
//	paths    generate, deduplicate, combine, and batch paths per seed node
//	invert   turn a child→parents mapping into parent→children
//	extract  pull property triples out of a gzipped knowledge-base dump
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taxopath/taxopath/logging"
)

var (
	logLevel string
	logJSON  bool
	quiet    bool

	// log is built in PersistentPreRunE and shared by every subcommand.
	log *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "taxopath",
		Short: "Taxonomy path extraction toolkit",
		Long: `taxopath turns a class hierarchy into path-shaped training data:
bounded depth-first path enumeration from the most frequent seed nodes,
trie-based deduplication, upward/downward path combination, and shuffled
size-bounded TSV batch output with a per-node summary.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logging.Config{
				Level: logLevel,
				JSON:  logJSON,
				Quiet: quiet,
			})
			if err != nil {
				return err
			}
			log = l
			return nil
		},
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, or error")
	pf.BoolVar(&logJSON, "log-json", false, "emit logs as JSON instead of text")
	pf.BoolVar(&quiet, "quiet", false, "suppress all log output")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

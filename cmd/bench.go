package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rskv-p/trie/bench"
	"github.com/rskv-p/trie/pkg/x_log"
	"github.com/rskv-p/trie/store"
)

var noHistory bool

// benchCmd replays a query workload against a freshly built trie and
// reports construction and query figures.
var benchCmd = &cobra.Command{
	Use:   "bench <words-file> <queries-file>",
	Short: "Build a trie from a word list and time a query workload",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := x_log.New("bench")

		kind, err := engineKind()
		if err != nil {
			return err
		}

		words, err := bench.LoadWords(args[0])
		if err != nil {
			return err
		}
		queries, err := bench.LoadQueries(args[1])
		if err != nil {
			return err
		}

		report, err := bench.Run(kind, alphabet(), words, queries)
		if err != nil {
			return err
		}

		resultPath := bench.ResultPath(args[0], cfg.ResultDir)
		if err := bench.WriteResults(resultPath, report.Results); err != nil {
			return err
		}
		log.Info().Str("path", resultPath).Msg("results written")

		if cfg.HistoryDB != "" && !noHistory {
			if err := recordRun(report, args[0], args[1]); err != nil {
				log.Warn().Err(err).Msg("history not recorded")
			}
		}

		fmt.Printf("variant=%s words=%d queries=%d construction_ms=%.3f construction_mb=%.3f query_ms=%.3f\n",
			report.Variant, report.Words, report.Queries,
			float64(report.Build.Microseconds())/1e3,
			report.HeapMB(),
			float64(report.Query.Microseconds())/1e3)
		return nil
	},
}

func recordRun(report *bench.Report, wordFile, queryFile string) error {
	s, err := store.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Save(store.FromReport(report, wordFile, queryFile))
}

func init() {
	benchCmd.Flags().BoolVar(&noHistory, "no-history", false, "skip recording the run")
}

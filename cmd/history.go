package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rskv-p/trie/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent benchmark runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.HistoryDB == "" {
			return fmt.Errorf("history is disabled, set history_db in the config")
		}

		s, err := store.Open(cfg.HistoryDB)
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.Recent(historyLimit)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(runs))
		for _, r := range runs {
			rows = append(rows, []string{
				r.CreatedAt.Format("2006-01-02 15:04:05"),
				r.Variant,
				fmt.Sprint(r.Words),
				fmt.Sprint(r.Queries),
				fmt.Sprintf("%.3f", r.BuildMs),
				fmt.Sprintf("%.3f", r.QueryMs),
				fmt.Sprintf("%.3f", r.HeapMB),
			})
		}

		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("WHEN", "VARIANT", "WORDS", "QUERIES", "BUILD MS", "QUERY MS", "HEAP MB").
			Rows(rows...)
		fmt.Println(tbl)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show")
}

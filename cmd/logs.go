package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rskv-p/trie/pkg/x_log"
)

var logsLimit int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the tail of the log file",
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := x_log.GetLogs(cfg.Log.LogFile, logsLimit)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	logsCmd.Flags().IntVarP(&logsLimit, "limit", "n", 50, "number of lines to show")
}

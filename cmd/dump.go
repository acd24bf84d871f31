package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <words-file>",
	Short: "Build a trie from a word list and print its tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := buildTrie(args[0])
		if err != nil {
			return err
		}
		tr.Dump(os.Stdout)
		return nil
	},
}

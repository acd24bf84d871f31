package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rskv-p/trie/repl"
)

var replWords string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive trie session",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := buildTrie(replWords)
		if err != nil {
			return err
		}
		return repl.New(tr, os.Stdin, os.Stdout).Run()
	},
}

func init() {
	replCmd.Flags().StringVar(&replWords, "words", "", "preload words from file")
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rskv-p/trie/server"
)

var serveWords string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose a trie over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := buildTrie(serveWords)
		if err != nil {
			return err
		}
		return server.New(tr).ListenAndServe(cfg.Listen)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveWords, "words", "", "preload words from file")
}

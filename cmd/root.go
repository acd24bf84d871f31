// Package cmd wires the trie toolkit CLI.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rskv-p/trie/bench"
	"github.com/rskv-p/trie/config"
	"github.com/rskv-p/trie/pkg/x_log"
	"github.com/rskv-p/trie/pkg/x_trie"
)

var (
	cfgPath     string
	variantFlag string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "trie",
	Short: "Prefix-tree toolkit: build, query, benchmark and serve tries",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if variantFlag != "" {
			cfg.Variant = variantFlag
		}
		x_log.InitWithConfig(&cfg.Log, "trie")
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&variantFlag, "variant", "v", "",
		"storage variant: list|array|hash or 1|2|3")

	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(serveCmd)
}

// engineKind resolves the configured storage variant.
func engineKind() (x_trie.Kind, error) {
	return x_trie.ParseKind(cfg.Variant)
}

// alphabet is the full declaration for the array variant.
func alphabet() string {
	if cfg.Symbols == "" {
		return x_trie.DefaultAlphabet
	}
	return x_trie.WithTerminator(cfg.Symbols)
}

// buildTrie creates a trie of the configured variant, optionally
// preloaded from a word file.
func buildTrie(wordFile string) (x_trie.Trie, error) {
	kind, err := engineKind()
	if err != nil {
		return nil, err
	}

	var words [][]byte
	if wordFile != "" {
		words, err = bench.LoadWords(wordFile)
		if err != nil {
			return nil, err
		}
	}
	return x_trie.Create(kind, alphabet(), words...)
}

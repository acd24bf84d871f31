package bench

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rskv-p/trie/pkg/x_trie"
)

//---------------------
// Word Files
//---------------------

// LoadWords reads one word per line and appends the terminator to
// each. Blank lines are skipped.
func LoadWords(path string) ([][]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer file.Close()

	var words [][]byte
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		words = append(words, x_trie.Terminated(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word file: %w", err)
	}
	return words, nil
}

//---------------------
// Query Files
//---------------------

// LoadQueries reads lines of the form "<word> <op>" where op is one of
// i, d or c. The word is terminated before storing.
func LoadQueries(path string) ([]Query, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open query file: %w", err)
	}
	defer file.Close()

	var queries []Query
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		q, err := ParseQuery(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		queries = append(queries, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read query file: %w", err)
	}
	return queries, nil
}

// ParseQuery splits "<word> <op>": the final character is the
// operation, separated from the word by one space.
func ParseQuery(line string) (Query, error) {
	if len(line) < 3 || line[len(line)-2] != ' ' {
		return Query{}, fmt.Errorf("%w: %q", ErrBadQuery, line)
	}
	op := Op(line[len(line)-1])
	switch op {
	case OpInsert, OpDelete, OpContains:
	default:
		return Query{}, fmt.Errorf("%w: op %q", ErrBadQuery, line)
	}
	return Query{Word: x_trie.Terminated(line[:len(line)-2]), Op: op}, nil
}

//---------------------
// Result Files
//---------------------

// ResultPath places the result file next to the input file, named
// result_<input-stem>.txt, unless dir overrides the location.
func ResultPath(inputPath, dir string) string {
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(dir, "result_"+stem+".txt")
}

// WriteResults writes one lowercase boolean per line.
func WriteResults(path string, results []bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create result file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%t\n", r); err != nil {
			return fmt.Errorf("write result file: %w", err)
		}
	}
	return w.Flush()
}

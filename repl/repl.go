// Package repl runs an interactive line-oriented session against one
// trie: insert, contains, delete, dump.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/shlex"
	"github.com/mattn/go-isatty"

	"github.com/rskv-p/trie/pkg/x_trie"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4589ff")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#da1e28"))
)

type Session struct {
	trie x_trie.Trie
	in   io.Reader
	out  io.Writer
	tty  bool
}

// New wires a session to the given streams. The prompt is shown only
// when in is a terminal.
func New(t x_trie.Trie, in io.Reader, out io.Writer) *Session {
	tty := false
	if f, ok := in.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Session{trie: t, in: in, out: out, tty: tty}
}

// Run reads commands until EOF or quit.
func (s *Session) Run() error {
	scanner := bufio.NewScanner(s.in)
	for {
		s.prompt()
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields, err := shlex.Split(scanner.Text())
		if err != nil {
			s.errorf("parse error: %v", err)
			continue
		}
		if len(fields) == 0 {
			continue
		}
		if !s.dispatch(fields[0], fields[1:]) {
			return nil
		}
	}
}

// dispatch runs one command. It reports false when the session ends.
func (s *Session) dispatch(cmd string, args []string) bool {
	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return false
	case "help":
		s.help()
	case "dump":
		s.trie.Dump(s.out)
	case "insert", "add":
		s.apply(s.trie.Insert, args)
	case "contains", "has":
		s.apply(s.trie.Contains, args)
	case "delete", "del":
		s.apply(s.trie.Delete, args)
	default:
		s.errorf("unknown command %q, try help", cmd)
	}
	return true
}

func (s *Session) apply(op func([]byte) (bool, error), args []string) {
	if len(args) != 1 {
		s.errorf("expected exactly one word")
		return
	}
	ok, err := op(x_trie.Terminated(args[0]))
	if err != nil {
		s.errorf("%v", err)
		return
	}
	fmt.Fprintf(s.out, "%t\n", ok)
}

func (s *Session) help() {
	fmt.Fprint(s.out, ""+
		"insert <word>    add a word (true if new)\n"+
		"contains <word>  membership test\n"+
		"delete <word>    remove a word (true if it was present)\n"+
		"dump             print the tree\n"+
		"quit             end the session\n")
}

func (s *Session) prompt() {
	if !s.tty {
		return
	}
	fmt.Fprint(s.out, promptStyle.Render("trie> "))
}

func (s *Session) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if s.tty {
		msg = errStyle.Render(msg)
	}
	fmt.Fprintln(s.out, msg)
}

// Package repl provides an interactive read/classify/print loop.
//
// It supports readline-style command editing,
// and interrupts through Control-C.
//
// Each input line is trimmed and classified as a word; its report is
// printed in the loop's output format. The line ":strict" toggles
// strict mode for subsequent words.
package repl // import "github.com/estools/esutils/repl"

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/estools/esutils/keyword"
	"github.com/estools/esutils/report"
)

// A Session holds the state of one loop.
type Session struct {
	Validator *keyword.Validator
	Strict    bool
	Format    string // report.Text or report.JSON
	Out       io.Writer
}

// REPL executes a read, classify, print loop on the terminal.
func REPL(s *Session) {
	rl, err := readline.New(s.prompt())
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	for {
		rl.SetPrompt(s.prompt())
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
		if err := s.Eval(line); err != nil {
			PrintError(err)
		}
	}
	fmt.Println()
}

func (s *Session) prompt() string {
	if s.Strict {
		return "strict>>> "
	}
	return ">>> "
}

// Eval classifies one input line and writes its report to s.Out.
// Blank lines are ignored.
func (s *Session) Eval(line string) error {
	word := strings.TrimSpace(line)
	switch word {
	case "":
		return nil
	case ":strict":
		s.Strict = !s.Strict
		return nil
	}
	data, err := report.Marshal(report.Word(s.Validator, word, s.Strict), s.Format)
	if err != nil {
		return err
	}
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}

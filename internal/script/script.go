// Package script reads packing-list events from text, one per line, and
// replays them against a session.
//
//	# comment
//	add 3 Socks
//	add Hat            quantity defaults to 1
//	toggle 1           position in the current sort order
//	delete 2
//	sort a-z
//	clear
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/travelcheck/internal/logging"
	"github.com/idilsaglam/travelcheck/internal/model"
	"github.com/idilsaglam/travelcheck/internal/session"
	"github.com/idilsaglam/travelcheck/internal/view"
)

// Op is the kind of event on a line.
type Op string

const (
	OpAdd    Op = "add"
	OpToggle Op = "toggle"
	OpDelete Op = "delete"
	OpClear  Op = "clear"
	OpSort   Op = "sort"
)

var aliases = map[string]Op{
	"add":    OpAdd,
	"toggle": OpToggle,
	"pack":   OpToggle,
	"delete": OpDelete,
	"rm":     OpDelete,
	"clear":  OpClear,
	"sort":   OpSort,
}

// Command is one parsed line.
type Command struct {
	Line     int
	Op       Op
	Name     string
	Quantity int
	Pos      int
	Sort     view.SortKey
}

// ParseError points at the offending line.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads every command from r. It fails on the first malformed line.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseLine(n, line)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

func parseLine(n int, line string) (Command, error) {
	fields := strings.Fields(line)
	verb, args := strings.ToLower(fields[0]), fields[1:]
	op, ok := aliases[verb]
	if !ok {
		return Command{}, &ParseError{Line: n, Msg: "unknown command " + strconv.Quote(fields[0])}
	}
	c := Command{Line: n, Op: op}

	switch op {
	case OpAdd:
		c.Quantity = model.MinQuantity
		if len(args) > 1 {
			if q, err := strconv.Atoi(args[0]); err == nil {
				c.Quantity = q
				args = args[1:]
			}
		}
		if len(args) == 0 {
			return Command{}, &ParseError{Line: n, Msg: "usage: add [quantity] <name...>"}
		}
		c.Name = strings.Join(args, " ")

	case OpToggle, OpDelete:
		if len(args) != 1 {
			return Command{}, &ParseError{Line: n, Msg: fmt.Sprintf("usage: %s <position>", verb)}
		}
		p, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, &ParseError{Line: n, Msg: "not a number: " + args[0]}
		}
		c.Pos = p

	case OpSort:
		if len(args) != 1 {
			return Command{}, &ParseError{Line: n, Msg: "usage: sort <oldest|newest|a-z|packed>"}
		}
		k, err := view.ParseSortKey(args[0])
		if err != nil {
			return Command{}, &ParseError{Line: n, Msg: "bad sort key", Err: err}
		}
		c.Sort = k

	case OpClear:
		if len(args) != 0 {
			return Command{}, &ParseError{Line: n, Msg: "usage: clear"}
		}
	}
	return c, nil
}

// Apply replays cmds in order. Clears are put to confirm.
// Rejected adds and unknown positions are skipped, not errors.
func Apply(s *session.Session, cmds []Command, confirm session.Confirmer) {
	lg := logging.GetLogger("script")
	for _, c := range cmds {
		switch c.Op {
		case OpAdd:
			if _, ok := s.Add(c.Name, c.Quantity); !ok {
				lg.Warn().Int("line", c.Line).Str("name", c.Name).Int("quantity", c.Quantity).
					Msg("add rejected")
			}
		case OpToggle:
			if it, ok := s.ItemAt(c.Pos); ok {
				s.TogglePacked(it.ID)
			} else {
				lg.Debug().Int("line", c.Line).Int("pos", c.Pos).Msg("no item at position")
			}
		case OpDelete:
			if it, ok := s.ItemAt(c.Pos); ok {
				s.Delete(it.ID)
			} else {
				lg.Debug().Int("line", c.Line).Int("pos", c.Pos).Msg("no item at position")
			}
		case OpSort:
			s.SetSort(c.Sort)
		case OpClear:
			s.Clear(confirm)
		}
	}
}

// Run parses r and applies it. Nothing is applied if parsing fails.
func Run(s *session.Session, r io.Reader, confirm session.Confirmer) error {
	cmds, err := Parse(r)
	if err != nil {
		return err
	}
	Apply(s, cmds, confirm)
	return nil
}

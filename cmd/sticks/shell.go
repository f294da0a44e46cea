package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/2x3systems/sticks/libsticks"
	"github.com/2x3systems/sticks/sticks"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

type shellOpts struct {
	Members int
	Moves   string
	PyFile  string
	REPL    bool
	Color   string
}

// Prompter reads one line of user input per call.
// Returns io.EOF when the user is done.
type Prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

type linerPrompter struct {
	state *liner.State
}

func newLinerPrompter() *linerPrompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &linerPrompter{state: state}
}

func (lp *linerPrompter) Prompt(prompt string) (string, error) {
	line, err := lp.state.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	lp.state.AppendHistory(line)
	return line, nil
}

func (lp *linerPrompter) Close() error {
	return lp.state.Close()
}

// shell drives a single grid from prompted moves until it is complete.
type shell struct {
	opts  shellOpts
	in    Prompter
	out   io.Writer
	print sticks.PrintOpts
}

func newShell(opts shellOpts, in Prompter, out io.Writer) *shell {
	sh := &shell{
		opts:  opts,
		in:    in,
		out:   out,
		print: sticks.DefaultPrintOpts,
	}
	sh.print.Separators = true
	return sh
}

var errQuit = errors.New("quit")

func (sh *shell) Run() error {
	count, err := sh.askMembers()
	if err != nil {
		return quietQuit(err)
	}

	grid, err := libsticks.NewGrid(count)
	if err != nil {
		return err
	}

	if sh.opts.Moves != "" {
		eliminated, err := grid.ApplyScript(sh.opts.Moves)
		if err != nil {
			fmt.Fprintf(sh.out, "move script stopped: %v\n", err)
		}
		fmt.Fprintf(sh.out, "%d move(s) applied, %d cells eliminated\n", len(grid.Moves()), eliminated)
	}
	grid.WriteAsTable(sh.out, sh.print)

	for !grid.IsComplete() {
		mv, err := sh.askMove(grid)
		if err != nil {
			return quietQuit(err)
		}

		eliminated, err := grid.Connect(mv.From, mv.To, mv.Sign)
		if err != nil {
			fmt.Fprintf(sh.out, "rejected: %v\n", err)
			continue
		}

		fmt.Fprintf(sh.out, "%d cells eliminated\n", eliminated)
		grid.WriteAsTable(sh.out, sh.print)
	}

	fmt.Fprintf(sh.out, "grid complete after %d moves: %s\n", len(grid.Moves()), libsticks.FormatMoves(grid.Moves()))
	if ids := grid.Equilibrium(); len(ids) > 0 {
		fmt.Fprintf(sh.out, "sticks in equilibrium: %v\n", oneBased(ids))
	}
	return nil
}

func quietQuit(err error) error {
	if err == errQuit || err == io.EOF {
		return nil
	}
	return err
}

func (sh *shell) ask(prompt string) (string, error) {
	line, err := sh.in.Prompt(prompt)
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "q" || line == "quit" {
		return "", errQuit
	}
	return line, nil
}

func (sh *shell) askMembers() (int, error) {
	if validMemberCount(sh.opts.Members) {
		return sh.opts.Members, nil
	}
	for {
		line, err := sh.ask("number of sticks: ")
		if err != nil {
			return 0, err
		}
		count, err := strconv.Atoi(line)
		if err == nil && validMemberCount(count) {
			return count, nil
		}
		fmt.Fprintf(sh.out, "%v\n", sticks.ErrInvalidMemberCount)
	}
}

func validMemberCount(count int) bool {
	return count >= sticks.MinMembers && count <= sticks.MaxMembers
}

// askIndex reads a one-based point index and returns it zero-based.
// Range checking is left to the grid.
func (sh *shell) askIndex(prompt string, grid *libsticks.Grid) (int, error) {
	for {
		line, err := sh.ask(prompt)
		if err != nil {
			return 0, err
		}
		if line == "?" {
			sh.hint(grid)
			continue
		}
		idx, err := strconv.Atoi(line)
		if err == nil {
			return idx - 1, nil
		}
		fmt.Fprintf(sh.out, "enter a point from 1 to %d, '?' for a hint, or 'q' to quit\n", grid.PointCount())
	}
}

func (sh *shell) askMove(grid *libsticks.Grid) (sticks.Move, error) {
	var mv sticks.Move
	var err error

	rangeStr := fmt.Sprintf("(1-%d)", grid.PointCount())
	if mv.From, err = sh.askIndex("first point "+rangeStr+": ", grid); err != nil {
		return mv, err
	}
	if mv.To, err = sh.askIndex("second point "+rangeStr+": ", grid); err != nil {
		return mv, err
	}

	line, err := sh.ask("sign (+/-): ")
	if err != nil {
		return mv, err
	}

	// An unknown token is passed through as NoSign so the grid reports it
	mv.Sign, _ = sticks.ParseSign(line)
	return mv, nil
}

func (sh *shell) hint(grid *libsticks.Grid) {
	res, err := libsticks.Census(grid)
	if err != nil {
		klog.Warningf("census failed: %v", err)
		return
	}
	best := res.Best
	fmt.Fprintf(sh.out, "%d legal moves, %d distinct outcomes, %d completing; %d%v%d eliminates %d\n",
		res.LegalMoves, res.Outcomes, res.Completing, best.From+1, best.Sign, best.To+1, res.MaxEliminated)
}

func oneBased(ids []int) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = id + 1
	}
	return out
}

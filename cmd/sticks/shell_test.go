package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/2x3systems/sticks/sticks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers prompts from a fixed list, then returns io.EOF.
type scriptedPrompter struct {
	lines   []string
	prompts []string
}

func (sp *scriptedPrompter) Prompt(prompt string) (string, error) {
	sp.prompts = append(sp.prompts, prompt)
	if len(sp.lines) == 0 {
		return "", io.EOF
	}
	line := sp.lines[0]
	sp.lines = sp.lines[1:]
	return line, nil
}

func (sp *scriptedPrompter) Close() error {
	return nil
}

func runScripted(t *testing.T, opts shellOpts, lines ...string) (string, *scriptedPrompter) {
	t.Helper()
	in := &scriptedPrompter{lines: lines}
	out := &strings.Builder{}
	require.NoError(t, newShell(opts, in, out).Run())
	return out.String(), in
}

func TestShellPlaysToCompletion(t *testing.T) {
	out, in := runScripted(t, shellOpts{},
		"3", "abc", "4",
		"1", "4", "+",
		"2", "8", "-",
		"3", "10", "+",
		"5", "8", "+",
		"6", "12", "-",
		"9", "12", "+",
	)

	assert.Equal(t, 2, strings.Count(out, sticks.ErrInvalidMemberCount.Error()))
	assert.Contains(t, out, "34 cells eliminated")
	assert.Contains(t, out, "grid complete after 6 moves: 0+3, 1-7, 2+9, 4+7, 5-11, 8+11")
	assert.Empty(t, in.lines)
	assert.Equal(t, "first point (1-12): ", in.prompts[3])
}

func TestShellMemberBounds(t *testing.T) {
	out, in := runScripted(t, shellOpts{Members: sticks.MaxMembers + 1}, "5000", "5")
	assert.Equal(t, 1, strings.Count(out, sticks.ErrInvalidMemberCount.Error()))
	assert.Equal(t, "first point (1-15): ", in.prompts[2])
}

func TestShellRejections(t *testing.T) {
	out, _ := runScripted(t, shellOpts{Members: 4, Moves: "1+3"},
		"2", "4", "+",
		"1", "5", "*",
		"0", "4", "+",
		"x", "q",
	)

	assert.Contains(t, out, "1 move(s) applied, 30 cells eliminated")
	assert.Contains(t, out, sticks.ErrCellOccupied.Error())
	assert.Contains(t, out, sticks.ErrInvalidSign.Error())
	assert.Contains(t, out, sticks.ErrOutOfRange.Error())
	assert.Contains(t, out, "enter a point from 1 to 12")
	assert.NotContains(t, out, "grid complete")
}

func TestShellBadScript(t *testing.T) {
	out, _ := runScripted(t, shellOpts{Members: 4, Moves: "1+3, 1+3"})
	assert.Contains(t, out, "move script stopped")
	assert.Contains(t, out, "1 move(s) applied, 30 cells eliminated")
}

func TestShellHint(t *testing.T) {
	out, _ := runScripted(t, shellOpts{Members: 4}, "?")
	assert.Contains(t, out, "216 legal moves, 108 distinct outcomes, 0 completing; 1+4 eliminates 34")
}

func TestPainter(t *testing.T) {
	paint, err := newPainter("never", os.Stdout)
	require.NoError(t, err)
	assert.Nil(t, paint)

	_, err = newPainter("sometimes", os.Stdout)
	assert.Error(t, err)

	file, err := os.Create(filepath.Join(t.TempDir(), "table.txt"))
	require.NoError(t, err)
	defer file.Close()
	paint, err = newPainter("auto", file)
	require.NoError(t, err)
	assert.Nil(t, paint)

	paint, err = newPainter("always", os.Stdout)
	require.NoError(t, err)
	require.NotNil(t, paint)
	assert.Contains(t, paint(sticks.LinkedNeg, "  -1"), "-1")
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	pathname := filepath.Join(t.TempDir(), "script.py")
	require.NoError(t, os.WriteFile(pathname, []byte(src), 0600))
	return pathname
}

func TestRunScriptFile(t *testing.T) {
	pathname := writeScript(t, `
import sticks
g = sticks.NewGrid(4)
if g.Connect(1, 3, "+") != 30:
    raise ValueError("unexpected eliminated count")
if g.Apply("0+4") != 2:
    raise ValueError("unexpected script result")
`)
	require.NoError(t, go_gpython(pathname))

	pathname = writeScript(t, `
import sticks
sticks.NewGrid(3)
`)
	assert.Error(t, go_gpython(pathname))
}

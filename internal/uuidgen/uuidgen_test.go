package uuidgen

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"wicat/internal/clip"
	"wicat/internal/records"
	"wicat/internal/ui"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

var v4Pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestGenerateFive(t *testing.T) {
	var calls []int
	ids, err := Generate(5, func(done, total int) {
		require.Equal(t, 5, total)
		calls = append(calls, done)
	})
	require.NoError(t, err)
	require.Len(t, ids, 5)
	require.Equal(t, []int{1, 2, 3, 4, 5}, calls)

	seen := map[string]bool{}
	for _, id := range ids {
		require.Regexp(t, v4Pattern, id)
		require.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}
}

func TestParseCountRejectsOutOfRange(t *testing.T) {
	for _, bad := range []string{"0", "10001", "abc", "", "-3", "1.5"} {
		_, err := ParseCount(bad)
		require.ErrorIs(t, err, records.ErrValidation, "input %q", bad)
	}

	n, err := ParseCount(" 10000 ")
	require.NoError(t, err)
	require.Equal(t, MaxCount, n)
}

func TestGenerateRejectsOutOfRange(t *testing.T) {
	for _, n := range []int{0, 10001} {
		ids, err := Generate(n, nil)
		require.ErrorIs(t, err, records.ErrValidation)
		require.Empty(t, ids)
	}
}

func TestBar(t *testing.T) {
	require.Equal(t, "[█████░░░░░] 50% (5/10)", Bar(5, 10, 10))
	require.Equal(t, "[░░░░░░░░░░] 0% (0/3)", Bar(0, 3, 10))
	require.Equal(t, "[██████████] 100% (3/3)", Bar(3, 3, 10))
}

func TestBarProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("bar always has width cells", prop.ForAll(
		func(total, done int) bool {
			bar := Bar(done%(total+1), total, barWidth)
			cells := strings.Count(bar, "█") + strings.Count(bar, "░")
			return cells == barWidth
		},
		gen.IntRange(1, MaxCount),
		gen.IntRange(0, MaxCount),
	))

	properties.TestingRun(t)
}

func TestRunFlagPathCopiesAndEchoes(t *testing.T) {
	var out bytes.Buffer
	board := &clip.Memory{}
	f := &Flow{Prompt: &ui.Scripted{}, Clipboard: board, Out: &out}

	require.NoError(t, f.Run(Request{CountText: "3", Copy: true}))

	lines := strings.Split(board.Text, "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		require.Regexp(t, v4Pattern, l)
		require.Contains(t, out.String(), l)
	}
	require.Contains(t, out.String(), "copied to the clipboard")
}

func TestRunFlagPathInvalidCount(t *testing.T) {
	var out bytes.Buffer
	board := &clip.Memory{}
	f := &Flow{Prompt: &ui.Scripted{}, Clipboard: board, Out: &out}

	for _, bad := range []string{"0", "10001", "abc"} {
		err := f.Run(Request{CountText: bad, Copy: true})
		require.ErrorIs(t, err, records.ErrValidation)
		require.True(t, ui.IsReported(err))
	}
	require.Zero(t, board.Writes)
}

func TestRunInteractiveDefaultsToOne(t *testing.T) {
	var out bytes.Buffer
	board := &clip.Memory{}
	prompt := &ui.Scripted{Answers: []string{""}}
	f := &Flow{Prompt: prompt, Clipboard: board, Out: &out}

	require.NoError(t, f.Run(Request{Interactive: true, Copy: true}))
	require.Regexp(t, v4Pattern, board.Text)
	require.Len(t, prompt.Asked, 1)
}

func TestRunLargeBatchNotEchoedAndNoCopy(t *testing.T) {
	var out bytes.Buffer
	board := &clip.Memory{}
	f := &Flow{Prompt: &ui.Scripted{}, Clipboard: board, Out: &out}

	require.NoError(t, f.Run(Request{CountText: "11", Copy: false}))
	require.Zero(t, board.Writes)
	require.NotContains(t, out.String(), "Generated UUIDs:")
	require.Contains(t, out.String(), "(11/11)")
}

func TestRunClipboardFailureIsWarning(t *testing.T) {
	var out bytes.Buffer
	f := &Flow{Prompt: &ui.Scripted{}, Clipboard: &clip.Memory{Err: errors.New("no display")}, Out: &out}

	require.NoError(t, f.Run(Request{CountText: "2", Copy: true}))
	require.Contains(t, out.String(), "Could not copy to the clipboard")
}

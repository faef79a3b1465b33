package stackflow

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wicat/internal/clip"
	"wicat/internal/records"
	"wicat/internal/runner"
	"wicat/internal/store"
	"wicat/internal/ui"

	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls []runner.Command
	err   error
}

func (r *fakeRunner) Run(_ context.Context, c runner.Command) error {
	r.calls = append(r.calls, c)
	return r.err
}

type fixture struct {
	flow   *Flow
	store  *store.Store[records.Stack]
	runner *fakeRunner
	prompt *ui.Scripted
	clip   *clip.Memory
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newFixture(t *testing.T, seed ...records.Stack) *fixture {
	t.Helper()
	s := store.New[records.Stack](filepath.Join(t.TempDir(), "go-commands.json"))
	for _, st := range seed {
		require.NoError(t, s.Upsert(st))
	}
	fx := &fixture{
		store:  s,
		runner: &fakeRunner{},
		prompt: &ui.Scripted{},
		clip:   &clip.Memory{},
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
	}
	fx.flow = &Flow{
		Store:     s,
		Prompt:    fx.prompt,
		Runner:    fx.runner,
		Clipboard: fx.clip,
		Copy:      true,
		Out:       fx.out,
		Err:       fx.errOut,
	}
	return fx
}

func TestGetPathPrintsOnlyPath(t *testing.T) {
	dir := t.TempDir()
	fx := newFixture(t, records.Stack{Name: "web", Path: dir, ExecCommand: "npm run dev"})

	require.NoError(t, fx.flow.Execute(context.Background(), "web", Options{GetPath: true}))
	require.Equal(t, dir+"\n", fx.out.String())
	require.Empty(t, fx.runner.calls)
	require.Zero(t, fx.clip.Writes)
}

func TestGetExecPrintsOnlyCommand(t *testing.T) {
	dir := t.TempDir()
	fx := newFixture(t,
		records.Stack{Name: "web", Path: dir, ExecCommand: "npm run dev"},
		records.Stack{Name: "api", Path: dir},
	)

	require.NoError(t, fx.flow.Execute(context.Background(), "web", Options{GetExec: true}))
	require.NoError(t, fx.flow.Execute(context.Background(), "api", Options{GetExec: true}))
	require.Equal(t, "npm run dev\n\n", fx.out.String())
	require.Empty(t, fx.runner.calls)
}

func TestMissingPathFailsWithoutSpawning(t *testing.T) {
	gone := filepath.Join(t.TempDir(), "deleted")
	fx := newFixture(t, records.Stack{Name: "web", Path: gone, ExecCommand: "npm run dev"})

	for _, opts := range []Options{{}, {Exec: true}, {GetPath: true}} {
		err := fx.flow.Execute(context.Background(), "web", opts)
		require.ErrorIs(t, err, ErrPathMissing)
		require.True(t, ui.IsReported(err))
	}
	require.Empty(t, fx.runner.calls)
	require.Zero(t, fx.clip.Writes)
	require.Contains(t, fx.errOut.String(), "Path not found")
}

func TestExecuteWithExecRunsInDirectory(t *testing.T) {
	dir := t.TempDir()
	fx := newFixture(t, records.Stack{Name: "web", Path: dir, ExecCommand: "npm run dev"})

	require.NoError(t, fx.flow.Execute(context.Background(), "web", Options{Exec: true}))
	require.Equal(t, []runner.Command{{Line: "npm run dev", Dir: dir}}, fx.runner.calls)
	require.Zero(t, fx.clip.Writes)
}

func TestExecuteWithoutExecCopiesCd(t *testing.T) {
	dir := t.TempDir()
	fx := newFixture(t, records.Stack{Name: "web", Path: dir, ExecCommand: "npm run dev"})

	require.NoError(t, fx.flow.Execute(context.Background(), "web", Options{}))
	require.Empty(t, fx.runner.calls)
	require.Equal(t, `cd "`+dir+`"`, fx.clip.Text)
	require.Contains(t, fx.out.String(), "wicat go web -e")
}

func TestExecFlagWithoutCommandFallsBackToCd(t *testing.T) {
	dir := t.TempDir()
	fx := newFixture(t, records.Stack{Name: "web", Path: dir})

	require.NoError(t, fx.flow.Execute(context.Background(), "web", Options{Exec: true}))
	require.Empty(t, fx.runner.calls)
	require.Equal(t, 1, fx.clip.Writes)
	require.Contains(t, fx.out.String(), "No exec command configured")
}

func TestClipboardFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	fx := newFixture(t, records.Stack{Name: "web", Path: dir})
	fx.clip.Err = errors.New("no clipboard")

	require.NoError(t, fx.flow.Execute(context.Background(), "web", Options{}))
	require.Contains(t, fx.out.String(), "Type the command manually")
}

func TestUnknownStackSuggests(t *testing.T) {
	fx := newFixture(t, records.Stack{Name: "wicat-web", Path: t.TempDir()})

	err := fx.flow.Execute(context.Background(), "wweb", Options{})
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Contains(t, fx.out.String(), "Did you mean: wicat-web?")
}

func TestExecuteRequiresName(t *testing.T) {
	fx := newFixture(t)
	err := fx.flow.Execute(context.Background(), "", Options{})
	require.ErrorIs(t, err, records.ErrValidation)
}

func TestAddExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	require.NoError(t, os.Mkdir(filepath.Join(home, "proj"), 0o755))

	fx := newFixture(t)
	fx.prompt.Answers = []string{"proj", "~/proj", " make dev "}
	require.NoError(t, fx.flow.Add())

	got, found, err := fx.store.Get("proj")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, records.Stack{Name: "proj", Path: filepath.Join(home, "proj"), ExecCommand: "make dev"}, got)
}

func TestAddRejectsMissingPathAndReservedName(t *testing.T) {
	fx := newFixture(t)
	fx.prompt.Answers = []string{"proj", filepath.Join(t.TempDir(), "nope")}
	require.ErrorIs(t, fx.flow.Add(), records.ErrValidation)

	fx.prompt.Answers = []string{"list"}
	require.ErrorIs(t, fx.flow.Add(), records.ErrValidation)

	items, err := fx.store.Load()
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestEditRenameCollision(t *testing.T) {
	dir := t.TempDir()
	fx := newFixture(t,
		records.Stack{Name: "web", Path: dir},
		records.Stack{Name: "api", Path: dir},
	)
	fx.prompt.Answers = []string{"api", "", ""}

	err := fx.flow.Edit("web")
	require.ErrorIs(t, err, store.ErrConflict)

	names, err := fx.store.Names()
	require.NoError(t, err)
	require.Equal(t, []string{"web", "api"}, names)
}

func TestEditClearsExecCommand(t *testing.T) {
	dir := t.TempDir()
	fx := newFixture(t, records.Stack{Name: "web", Path: dir, ExecCommand: "npm start"})
	fx.prompt.Answers = []string{"", "", "-"}

	require.NoError(t, fx.flow.Edit("web"))
	got, _, err := fx.store.Get("web")
	require.NoError(t, err)
	require.Empty(t, got.ExecCommand)
	require.Equal(t, dir, got.Path)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	fx := newFixture(t, records.Stack{Name: "web", Path: dir})

	fx.prompt.Answers = []string{"excluir "}
	require.NoError(t, fx.flow.Remove("web"))
	_, found, err := fx.store.Get("web")
	require.NoError(t, err)
	require.True(t, found)

	fx.prompt.Answers = []string{"excluir"}
	require.NoError(t, fx.flow.Remove("web"))
	_, found, err = fx.store.Get("web")
	require.NoError(t, err)
	require.False(t, found)

	_, statErr := os.Stat(dir)
	require.NoError(t, statErr)
}

func TestListMarksMissingPaths(t *testing.T) {
	fx := newFixture(t,
		records.Stack{Name: "web", Path: t.TempDir(), ExecCommand: "npm start"},
		records.Stack{Name: "old", Path: filepath.Join(t.TempDir(), "gone")},
	)
	require.NoError(t, fx.flow.List())

	out := fx.out.String()
	require.Contains(t, out, "1. web")
	require.Contains(t, out, "⚡ npm start")
	require.Contains(t, out, "(missing)")
	require.Contains(t, out, "Total: 2 stack(s)")
}

func TestChooseExecutesSelection(t *testing.T) {
	dir := t.TempDir()
	fx := newFixture(t,
		records.Stack{Name: "web", Path: dir, ExecCommand: "npm start"},
		records.Stack{Name: "api", Path: dir, ExecCommand: "go run ."},
	)
	fx.prompt.Answers = []string{"api"}

	require.NoError(t, fx.flow.Choose(context.Background(), Options{Exec: true}))
	require.Equal(t, []runner.Command{{Line: "go run .", Dir: dir}}, fx.runner.calls)
}

func TestChooseEmptyStore(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.flow.Choose(context.Background(), Options{}))
	require.Empty(t, fx.prompt.Asked)
	require.Contains(t, fx.out.String(), "No stacks configured")
}

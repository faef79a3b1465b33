package dockerflow

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

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
	store  *store.Store[records.DockerCommand]
	runner *fakeRunner
	prompt *ui.Scripted
	out    *bytes.Buffer
}

func newFixture(t *testing.T, seed ...records.DockerCommand) *fixture {
	t.Helper()
	s := store.New[records.DockerCommand](filepath.Join(t.TempDir(), "docker-commands.json"))
	for _, c := range seed {
		require.NoError(t, s.Upsert(c))
	}
	fx := &fixture{store: s, runner: &fakeRunner{}, prompt: &ui.Scripted{}, out: &bytes.Buffer{}}
	fx.flow = &Flow{Store: s, Prompt: fx.prompt, Runner: fx.runner, Out: fx.out}
	return fx
}

func (fx *fixture) answer(answers ...string) {
	fx.prompt.Answers = append(fx.prompt.Answers, answers...)
}

var (
	webUp   = records.DockerCommand{Name: "web-up", Type: records.TypeUp, Command: "docker compose up -d", Shortcut: "wu"}
	webDown = records.DockerCommand{Name: "web-down", Type: records.TypeStop, Command: "docker compose down"}
	nuke    = records.DockerCommand{Name: "nuke", Type: records.TypeRemove, Command: "docker compose down -v --rmi all"}
	dbReset = records.DockerCommand{Name: "db-reset", Type: records.TypeReset, Command: "docker compose restart db"}
)

func TestGroupUsesDisplayOrder(t *testing.T) {
	groups := Group([]records.DockerCommand{nuke, webDown, webUp, dbReset})
	require.Len(t, groups, 4)
	require.Equal(t, records.TypeUp, groups[0].Type)
	require.Equal(t, records.TypeReset, groups[1].Type)
	require.Equal(t, records.TypeStop, groups[2].Type)
	require.Equal(t, records.TypeRemove, groups[3].Type)

	second := webUp
	second.Name = "api-up"
	groups = Group([]records.DockerCommand{webUp, nuke, second})
	require.Len(t, groups, 2)
	require.Equal(t, []records.DockerCommand{webUp, second}, groups[0].Commands)
}

func TestRunRecordRemoveRequiresExactPhrase(t *testing.T) {
	for _, answer := range []string{"Remove", "remove ", "", "REMOVE"} {
		fx := newFixture(t)
		fx.answer(answer)
		require.NoError(t, fx.flow.RunRecord(context.Background(), nuke))
		require.Empty(t, fx.runner.calls, "answer %q must not run the command", answer)
		require.Contains(t, fx.out.String(), "Operation cancelled")
	}

	fx := newFixture(t)
	fx.answer("remove")
	require.NoError(t, fx.flow.RunRecord(context.Background(), nuke))
	require.Equal(t, []runner.Command{{Line: nuke.Command}}, fx.runner.calls)
}

func TestRunRecordCancelledPromptDoesNotRun(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.flow.RunRecord(context.Background(), nuke))
	require.Empty(t, fx.runner.calls)
}

func TestRunRecordNonDestructiveSkipsConfirmation(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.flow.RunRecord(context.Background(), webUp))
	require.Empty(t, fx.prompt.Asked)
	require.Len(t, fx.runner.calls, 1)
	require.Contains(t, fx.out.String(), "Done.")
}

func TestRunRecordReportsExitCode(t *testing.T) {
	fx := newFixture(t)
	fx.runner.err = &runner.ExitError{Code: 2}

	err := fx.flow.RunRecord(context.Background(), webDown)
	require.Error(t, err)
	require.True(t, ui.IsReported(err))
	require.Equal(t, 2, runner.ExitCode(err))
	require.Contains(t, fx.out.String(), "exit code 2")
}

func TestInteractiveRunsSelection(t *testing.T) {
	fx := newFixture(t, webUp, webDown)
	fx.answer("web-down")

	require.NoError(t, fx.flow.Interactive(context.Background()))
	require.Equal(t, []runner.Command{{Line: webDown.Command}}, fx.runner.calls)
}

func TestInteractiveEmptyStore(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.flow.Interactive(context.Background()))
	require.Contains(t, fx.out.String(), "No commands configured")
	require.Empty(t, fx.prompt.Asked)
}

func TestAddStoresCommand(t *testing.T) {
	fx := newFixture(t, webUp)
	fx.answer("api-up", "UP", "  docker compose up -d api  ", " au ")

	require.NoError(t, fx.flow.Add())

	got, found, err := fx.store.Get("api-up")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, records.DockerCommand{Name: "api-up", Type: records.TypeUp, Command: "docker compose up -d api", Shortcut: "au"}, got)
	require.Contains(t, fx.out.String(), "wicat d au")
}

func TestAddRejectsTakenShortcut(t *testing.T) {
	fx := newFixture(t, webUp)
	fx.answer("api-up", "UP", "docker compose up -d api", "wu")

	err := fx.flow.Add()
	require.ErrorIs(t, err, records.ErrValidation)

	names, err := fx.store.Names()
	require.NoError(t, err)
	require.Equal(t, []string{"web-up"}, names)
}

func TestAddRejectsAliasAndDashShortcuts(t *testing.T) {
	for _, shortcut := range []string{"-", "rm", "ls", "-x"} {
		fx := newFixture(t)
		fx.answer("api-up", "UP", "docker compose up -d api", shortcut)

		err := fx.flow.Add()
		require.ErrorIs(t, err, records.ErrValidation, "shortcut %q", shortcut)

		items, err := fx.store.Load()
		require.NoError(t, err)
		require.Empty(t, items)
	}
}

func TestAddCancelled(t *testing.T) {
	fx := newFixture(t)
	fx.answer("api-up")
	require.NoError(t, fx.flow.Add())

	items, err := fx.store.Load()
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestEditKeepsCurrentValues(t *testing.T) {
	fx := newFixture(t, webUp, webDown)
	fx.answer("", "", "", "")

	require.NoError(t, fx.flow.Edit("web-up"))

	got, found, err := fx.store.Get("web-up")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, webUp, got)
}

func TestEditRenameAndClearShortcut(t *testing.T) {
	fx := newFixture(t, webUp, webDown)
	fx.answer("web-start", "", "", "-")

	require.NoError(t, fx.flow.Edit("web-up"))

	_, found, err := fx.store.Get("web-up")
	require.NoError(t, err)
	require.False(t, found)

	got, found, err := fx.store.Get("web-start")
	require.NoError(t, err)
	require.True(t, found)
	require.Empty(t, got.Shortcut)
	require.Equal(t, webUp.Command, got.Command)
}

func TestEditRenameCollisionIsRefused(t *testing.T) {
	fx := newFixture(t, webUp, webDown)
	before, err := os.ReadFile(fx.store.Path())
	require.NoError(t, err)

	fx.answer("web-down", "", "", "")
	err = fx.flow.Edit("web-up")
	require.ErrorIs(t, err, store.ErrConflict)
	require.True(t, ui.IsReported(err))

	after, err := os.ReadFile(fx.store.Path())
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestEditUnknownName(t *testing.T) {
	fx := newFixture(t)
	err := fx.flow.Edit("ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.True(t, ui.IsReported(err))
	require.Contains(t, fx.out.String(), "wicat docker list")
}

func TestRemoveRequiresDeletePhrase(t *testing.T) {
	fx := newFixture(t, webUp)
	fx.answer("Excluir")
	require.NoError(t, fx.flow.Remove("web-up"))
	_, found, err := fx.store.Get("web-up")
	require.NoError(t, err)
	require.True(t, found)

	fx.answer("excluir")
	require.NoError(t, fx.flow.Remove("web-up"))
	_, found, err = fx.store.Get("web-up")
	require.NoError(t, err)
	require.False(t, found)
}

func TestListGroupsAndCounts(t *testing.T) {
	fx := newFixture(t, nuke, webUp, webDown)
	require.NoError(t, fx.flow.List())

	out := fx.out.String()
	require.Less(t, bytes.Index(fx.out.Bytes(), []byte("UP:")), bytes.Index(fx.out.Bytes(), []byte("REMOVE:")))
	require.Contains(t, out, "1. web-up")
	require.Contains(t, out, "Total: 3 command(s)")
}

func TestCorruptStore(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, os.WriteFile(fx.store.Path(), []byte("{not json"), 0o640))

	require.NoError(t, fx.flow.List())
	require.Contains(t, fx.out.String(), "Could not parse")

	fx.answer("api-up", "UP", "true", "")
	err := fx.flow.Add()
	require.ErrorIs(t, err, store.ErrCorrupt)

	data, err := os.ReadFile(fx.store.Path())
	require.NoError(t, err)
	require.Equal(t, "{not json", string(data))
}

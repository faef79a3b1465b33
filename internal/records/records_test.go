package records

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	require.NoError(t, ValidateName("api-dev"))

	for _, bad := range []string{"", "   ", "two words", "tab\tname", " lead"} {
		err := ValidateName(bad)
		require.ErrorIs(t, err, ErrValidation, "name %q", bad)
	}
}

func TestParseCommandType(t *testing.T) {
	got, err := ParseCommandType("remove")
	require.NoError(t, err)
	require.Equal(t, TypeRemove, got)
	require.True(t, got.Destructive())

	_, err = ParseCommandType("RESTART")
	require.ErrorIs(t, err, ErrValidation)
}

func TestDockerCommandValidate(t *testing.T) {
	ok := DockerCommand{Name: "up-all", Type: TypeUp, Command: "docker compose up -d", Shortcut: "up"}
	require.NoError(t, ok.Validate())

	missingCmd := ok
	missingCmd.Command = "  "
	require.ErrorIs(t, missingCmd.Validate(), ErrValidation)

	spacedShortcut := ok
	spacedShortcut.Shortcut = "u p"
	require.ErrorIs(t, spacedShortcut.Validate(), ErrValidation)

	badType := ok
	badType.Type = "DOWN"
	require.ErrorIs(t, badType.Validate(), ErrValidation)
}

func TestStackValidateRejectsReservedNames(t *testing.T) {
	require.NoError(t, Stack{Name: "web", Path: "/tmp"}.Validate())
	for _, reserved := range []string{"add", "list", "ls", "edit", "remove", "rm", "help", "-e", "--get-path"} {
		require.ErrorIs(t, Stack{Name: reserved, Path: "/tmp"}.Validate(), ErrValidation, "name %q", reserved)
		require.ErrorIs(t, ValidateStackName(reserved), ErrValidation, "name %q", reserved)
	}
	require.ErrorIs(t, Stack{Name: "web", Path: ""}.Validate(), ErrValidation)
}

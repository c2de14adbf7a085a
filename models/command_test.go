package models

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iwtcode/robotActions/record"
)

func TestCommandToDict(t *testing.T) {
	definition := record.Record{"uf": 1, "ut": 2}
	cmd := NewCommand("robot-1", "MOVE.TCP.WORK", "перемещение", definition)

	require.NotEmpty(t, cmd.UID(), "Команда должна получать уникальный идентификатор при создании")

	dict := cmd.ToDict()
	require.Equal(t, cmd.UID(), dict["uid"])
	require.Equal(t, "robot-1", dict["target"])
	require.Equal(t, "MOVE.TCP.WORK", dict["action"])
	require.Equal(t, "перемещение", dict["description"])
	require.Equal(t, definition, dict["definition"])
}

func TestCommandUIDsAreUnique(t *testing.T) {
	first := NewCommand("robot-1", "WORK.DRILL", "", nil)
	second := NewCommand("robot-1", "WORK.DRILL", "", nil)
	require.NotEqual(t, first.UID(), second.UID())
}

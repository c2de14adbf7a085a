package motion

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iwtcode/robotActions/models"
	apperrors "github.com/iwtcode/robotActions/pkg/errors"
	"github.com/iwtcode/robotActions/record"
)

func movementRecord() record.Record {
	return record.Record{
		"cnt":      100,
		"speed":    2000,
		"type":     "LINEAR",
		"position": cartesianRecord(),
	}
}

func TestParseMovement(t *testing.T) {
	movement, err := ParseMovement(movementRecord())
	require.NoError(t, err, "Не удалось разобрать точку прохождения")

	require.Equal(t, 100, movement.Cnt())
	require.Equal(t, 2000, movement.Speed())
	require.Equal(t, models.MovementLinear, movement.Type())
	require.Equal(t, models.PositionCartesian, movement.PositionType())
}

func TestParseMovementUnknownType(t *testing.T) {
	rec := movementRecord()
	rec["type"] = "SPLINE"

	_, err := ParseMovement(rec)
	require.ErrorIs(t, err, apperrors.ErrUnknownDiscriminator)
}

func TestParseMovementMissingPosition(t *testing.T) {
	rec := movementRecord()
	delete(rec, "position")

	_, err := ParseMovement(rec)
	require.ErrorIs(t, err, apperrors.ErrMissingField)
}

func TestMovementToDict(t *testing.T) {
	movement, err := ParseMovement(movementRecord())
	require.NoError(t, err)

	dict := movement.ToDict()
	require.Equal(t, 100, dict["cnt"])
	require.Equal(t, 2000, dict["speed"])
	require.Equal(t, "LINEAR", dict["type"], "Архивное представление несет имя типа")

	reparsed, err := ParseMovement(dict)
	require.NoError(t, err)
	require.Equal(t, dict, reparsed.ToDict(), "Точка прохождения должна переживать круговой обход")
}

func TestMovementToCmdData(t *testing.T) {
	movement, err := ParseMovement(movementRecord())
	require.NoError(t, err)

	cmdData := movement.ToCmdData()

	parameters, ok := cmdData["parameters"].(record.Record)
	require.True(t, ok, "Представление для контроллера разделяет параметры и позицию")
	require.Equal(t, 100, parameters["cnt"])
	require.Equal(t, 2000, parameters["speed"])
	require.Equal(t, "L", parameters["type"], "Форма траектории передается сырым кодом")

	position, ok := cmdData["position"].(record.Record)
	require.True(t, ok)
	require.Equal(t, "crt", position["type"])
}

func TestConfigurationRoundTrip(t *testing.T) {
	rec := record.Record{
		"wrist": "FLIP", "forearm": "DOWN", "arm": "BACKWARD",
		"j4": 1, "j5": 0, "j6": -1,
	}

	config, err := ParseConfiguration(rec)
	require.NoError(t, err)
	require.Equal(t, models.WristFlip, config.Wrist())
	require.Equal(t, models.ForeArmDown, config.ForeArm())
	require.Equal(t, models.ArmBackward, config.Arm())

	dict := config.ToDict()
	require.Equal(t, rec, dict, "Коды поворота j4/j5/j6 сохраняются, а не сбрасываются")
	require.Equal(t, dict, config.ToCmdData())
}

func TestParseConfigurationUnknownWrist(t *testing.T) {
	rec := record.Record{
		"wrist": "TWIST", "forearm": "UP", "arm": "TOWARD",
		"j4": 0, "j5": 0, "j6": 0,
	}

	_, err := ParseConfiguration(rec)
	require.ErrorIs(t, err, apperrors.ErrUnknownDiscriminator)
}

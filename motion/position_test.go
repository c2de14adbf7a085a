package motion

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iwtcode/robotActions/models"
	apperrors "github.com/iwtcode/robotActions/pkg/errors"
	"github.com/iwtcode/robotActions/record"
)

func cartesianRecord() record.Record {
	return record.Record{
		"type": "CARTESIAN",
		"e1":   150,
		"vector": record.Record{
			"x": 1200.50312, "y": -340.21, "z": 855.0,
			"w": 179.9, "p": 0.02, "r": -45.0,
		},
		"config": record.Record{
			"wrist": "NOFLIP", "forearm": "UP", "arm": "TOWARD",
			"j4": 0, "j5": 0, "j6": 0,
		},
	}
}

func jointRecord() record.Record {
	return record.Record{
		"type": "JOINT",
		"e1":   0,
		"vector": record.Record{
			"j1": 0.0, "j2": -35.5, "j3": 12.25,
			"j4": 0.0, "j5": -90.0, "j6": 180.0,
		},
	}
}

func TestParseCartesianPosition(t *testing.T) {
	pos, err := ParsePosition(cartesianRecord())
	require.NoError(t, err, "Не удалось разобрать декартову позицию")

	require.Equal(t, models.PositionCartesian, pos.Type())
	require.Equal(t, 150, pos.E1())
	require.NotNil(t, pos.Configuration(), "Декартова позиция должна нести конфигурацию")
	require.Equal(t, []float64{1200.50312, -340.21, 855.0, 179.9, 0.02, -45.0}, pos.Vector())
	require.Equal(t, []string{"x", "y", "z", "w", "p", "r"}, pos.VectorKeys())
}

func TestParseJointPosition(t *testing.T) {
	pos, err := ParsePosition(jointRecord())
	require.NoError(t, err, "Не удалось разобрать осевую позицию")

	require.Equal(t, models.PositionJoint, pos.Type())
	require.Nil(t, pos.Configuration(), "Осевая позиция не несет конфигурации")
	require.Equal(t, []string{"j1", "j2", "j3", "j4", "j5", "j6"}, pos.VectorKeys())
}

func TestParsePositionUnknownType(t *testing.T) {
	rec := cartesianRecord()
	rec["type"] = "CYLINDRICAL"

	_, err := ParsePosition(rec)
	require.ErrorIs(t, err, apperrors.ErrUnknownDiscriminator)
}

func TestParseCartesianRequiresConfig(t *testing.T) {
	rec := cartesianRecord()
	delete(rec, "config")

	_, err := ParsePosition(rec)
	require.ErrorIs(t, err, apperrors.ErrMissingField,
		"Декартова позиция без конфигурации должна давать ошибку")
}

func TestCartesianToDict(t *testing.T) {
	pos, err := ParsePosition(cartesianRecord())
	require.NoError(t, err)

	dict := pos.ToDict()
	require.Equal(t, 0, dict["ut"])
	require.Equal(t, 0, dict["uf"])
	require.Equal(t, "CARTESIAN", dict["type"])
	require.Equal(t, 150, dict["e1"])

	vector, ok := dict["vector"].(record.Record)
	require.True(t, ok)
	require.Len(t, vector, 6, "Вектор декартовой позиции несет ровно шесть компонент")
	require.Equal(t, 1200.503, vector["x"], "Компоненты вектора округляются до 3 знаков")
	require.Equal(t, -340.21, vector["y"])

	config, ok := dict["config"].(record.Record)
	require.True(t, ok)
	require.Equal(t, "NOFLIP", config["wrist"])
	require.Equal(t, "UP", config["forearm"])
	require.Equal(t, "TOWARD", config["arm"])
}

func TestJointToDictConfigIsNull(t *testing.T) {
	pos, err := ParsePosition(jointRecord())
	require.NoError(t, err)

	dict := pos.ToDict()
	require.Contains(t, dict, "config", "Поле config присутствует и для осевой позиции")
	require.Nil(t, dict["config"], "Осевая позиция сериализует config как null, а не объект по умолчанию")

	vector, ok := dict["vector"].(record.Record)
	require.True(t, ok)
	for _, key := range []string{"j1", "j2", "j3", "j4", "j5", "j6"} {
		require.Contains(t, vector, key)
	}
	require.NotContains(t, vector, "x", "Ключи представлений не смешиваются")
}

func TestPositionToCmdData(t *testing.T) {
	pos, err := ParsePosition(cartesianRecord())
	require.NoError(t, err)

	cmdData := pos.ToCmdData()
	require.Equal(t, "crt", cmdData["type"], "Представление для контроллера передается сырым кодом")

	joint, err := ParsePosition(jointRecord())
	require.NoError(t, err)
	require.Equal(t, "jnt", joint.ToCmdData()["type"])
	require.Nil(t, joint.ToCmdData()["config"])
}

func TestPositionRoundTrip(t *testing.T) {
	first, err := ParsePosition(cartesianRecord())
	require.NoError(t, err)

	second, err := ParsePosition(first.ToDict())
	require.NoError(t, err, "Сериализованная позиция должна разбираться обратно")
	require.Equal(t, first.Type(), second.Type())
	require.Equal(t, first.E1(), second.E1())
	require.Equal(t, second.ToDict(), first.ToDict())
}

func TestVectorIsCopied(t *testing.T) {
	pos, err := ParsePosition(jointRecord())
	require.NoError(t, err)

	vector := pos.Vector()
	vector[0] = 999
	require.NotEqual(t, 999.0, pos.Vector()[0], "Vector должен возвращать копию")
}

package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/iwtcode/robotActions/pkg/errors"
)

func TestStringField(t *testing.T) {
	rec := Record{"type": "WORK.DRILL"}

	v, err := rec.String("type")
	require.NoError(t, err)
	require.Equal(t, "WORK.DRILL", v)
}

func TestMissingField(t *testing.T) {
	rec := Record{}

	_, err := rec.String("type")
	require.Error(t, err, "Отсутствующее поле должно давать ошибку")
	require.ErrorIs(t, err, apperrors.ErrMissingField)

	var fieldErr *apperrors.FieldError
	require.ErrorAs(t, err, &fieldErr)
	require.Equal(t, "type", fieldErr.Field, "Ошибка должна называть проблемное поле")
}

func TestInvalidField(t *testing.T) {
	rec := Record{"speed": "fast"}

	_, err := rec.Int("speed")
	require.ErrorIs(t, err, apperrors.ErrInvalidField)

	var fieldErr *apperrors.FieldError
	require.ErrorAs(t, err, &fieldErr)
	require.Equal(t, "fast", fieldErr.Value)
}

func TestNumericCoercion(t *testing.T) {
	// Записи, разобранные encoding/json, несут числа как float64.
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"speed": 1200, "feed": 5.5}`), &rec))

	speed, err := rec.Int("speed")
	require.NoError(t, err)
	require.Equal(t, 1200, speed)

	feed, err := rec.Float("feed")
	require.NoError(t, err)
	require.Equal(t, 5.5, feed)
}

func TestChildAndList(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"definition": {"speed": 1}, "movements": [{"cnt": 0}]}`), &rec))

	child, err := rec.Child("definition")
	require.NoError(t, err)
	require.True(t, child.Has("speed"))

	list, err := rec.List("movements")
	require.NoError(t, err)
	require.Len(t, list, 1)

	item, ok := AsRecord(list[0])
	require.True(t, ok, "Элемент списка должен приводиться к Record")
	require.True(t, item.Has("cnt"))
}

func TestStringify(t *testing.T) {
	require.Equal(t, "42", Stringify(42))
	require.Equal(t, "a-001", Stringify("a-001"))
}

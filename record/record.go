package record

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/iwtcode/robotActions/pkg/errors"
)

// Record представляет внешнюю сериализованную запись: вложенную структуру
// ключ/значение в том виде, в котором она приходит из хранилища или по сети.
// Числовые аксессоры принимают int, int64, float64 и json.Number, поэтому
// записи, разобранные encoding/json, читаются без предварительной конвертации.
type Record map[string]interface{}

// Has сообщает, присутствует ли поле field в записи.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// String читает строковое поле field.
func (r Record) String(field string) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", apperrors.NewFieldError(field, nil, apperrors.ErrMissingField)
	}
	s, ok := v.(string)
	if !ok {
		return "", apperrors.NewFieldError(field, v, apperrors.ErrInvalidField)
	}
	return s, nil
}

// Int читает целочисленное поле field.
func (r Record) Int(field string) (int, error) {
	f, err := r.Float(field)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// Float читает числовое поле field.
func (r Record) Float(field string) (float64, error) {
	v, ok := r[field]
	if !ok {
		return 0, apperrors.NewFieldError(field, nil, apperrors.ErrMissingField)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, apperrors.NewFieldError(field, v, apperrors.ErrInvalidField)
	}
	return f, nil
}

// Bool читает булево поле field.
func (r Record) Bool(field string) (bool, error) {
	v, ok := r[field]
	if !ok {
		return false, apperrors.NewFieldError(field, nil, apperrors.ErrMissingField)
	}
	b, ok := v.(bool)
	if !ok {
		return false, apperrors.NewFieldError(field, v, apperrors.ErrInvalidField)
	}
	return b, nil
}

// Child читает вложенную запись field.
func (r Record) Child(field string) (Record, error) {
	v, ok := r[field]
	if !ok {
		return nil, apperrors.NewFieldError(field, nil, apperrors.ErrMissingField)
	}
	child, ok := AsRecord(v)
	if !ok {
		return nil, apperrors.NewFieldError(field, v, apperrors.ErrInvalidField)
	}
	return child, nil
}

// List читает поле field со списком значений.
func (r Record) List(field string) ([]interface{}, error) {
	v, ok := r[field]
	if !ok {
		return nil, apperrors.NewFieldError(field, nil, apperrors.ErrMissingField)
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, apperrors.NewFieldError(field, v, apperrors.ErrInvalidField)
	}
	return list, nil
}

// AsRecord приводит произвольное значение к Record. Поддерживаются оба
// представления вложенных записей: Record и map[string]interface{}.
func AsRecord(v interface{}) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]interface{}:
		return Record(m), true
	default:
		return nil, false
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Stringify возвращает строковое представление произвольного значения поля.
// Используется для идентификаторов, которые в хранилище могут быть
// как строками, так и числами.
func Stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

package errors

import (
	"errors"
	"fmt"
)

// Сентинельные ошибки ядра модели. Все ошибки разбора и диспетчеризации
// оборачивают одну из них, поэтому вызывающий код проверяет категорию
// через errors.Is, не разбирая текст сообщения.
var (
	ErrMissingField          = errors.New("missing field")
	ErrInvalidField          = errors.New("invalid field")
	ErrUnknownDiscriminator  = errors.New("unknown discriminator")
	ErrUnknownSymbol         = errors.New("unknown symbol")
	ErrUnsupportedActionType = errors.New("unsupported action type")
	ErrImmutableField        = errors.New("immutable field reassignment")
)

// FieldError описывает ошибку разбора с указанием проблемного поля
// и его значения. Значение может быть nil, если поле отсутствует.
type FieldError struct {
	Field string
	Value interface{}
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%v (field: %q)", e.Err, e.Field)
	}
	return fmt.Sprintf("%v (field: %q, value: %v)", e.Err, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError создает FieldError для поля field со значением value,
// оборачивая категорию err.
func NewFieldError(field string, value interface{}, err error) *FieldError {
	return &FieldError{Field: field, Value: value, Err: err}
}

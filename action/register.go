package action

import (
	"github.com/iwtcode/robotActions/definition"
	"github.com/iwtcode/robotActions/models"
	apperrors "github.com/iwtcode/robotActions/pkg/errors"
	"github.com/iwtcode/robotActions/record"
)

// Generator строит упорядоченную последовательность команд контроллера из
// определения действия. Генераторы регистрируются извне по типу действия,
// поэтому новые типы добавляются без знания ядром правил кодирования
// конкретного контроллера.
type Generator func(def definition.Definition) ([]*models.Command, error)

// CommandRegister - реестр генераторов команд по типу действия.
// Заполняется один раз при старте процесса и дальше только читается.
type CommandRegister map[string]Generator

// Register связывает тип действия с генератором команд.
func (r CommandRegister) Register(actionType string, gen Generator) {
	r[actionType] = gen
}

// Lookup возвращает генератор для типа действия.
func (r CommandRegister) Lookup(actionType string) (Generator, error) {
	gen, ok := r[actionType]
	if !ok {
		return nil, apperrors.NewFieldError("type", actionType, apperrors.ErrUnsupportedActionType)
	}
	return gen, nil
}

// Commands строит команды действия через зарегистрированный генератор и
// возвращает их сериализованные представления в порядке генерации.
func (a *Action) Commands(register CommandRegister) ([]record.Record, error) {
	gen, err := register.Lookup(a.atype)
	if err != nil {
		return nil, err
	}

	commands, err := gen(a.definition)
	if err != nil {
		return nil, err
	}

	out := make([]record.Record, 0, len(commands))
	for _, command := range commands {
		out = append(out, command.ToDict())
	}
	return out, nil
}

package definition

import (
	"sort"

	apperrors "github.com/iwtcode/robotActions/pkg/errors"
	"github.com/iwtcode/robotActions/record"
	"github.com/iwtcode/robotActions/registry"
)

// Definition представляет определение действия робота: один из четырех
// вариантов (Path, Drilling, Probing, Manipulation). Каждый вариант
// независимо разбирается и сериализуется.
type Definition interface {
	// ToDict возвращает архивное представление определения.
	ToDict() record.Record
}

// ParseFunc разбирает сериализованное определение конкретного варианта.
// Реестры символов передаются явно: определения разрешают ссылки на
// оборудование и системы координат только через них.
type ParseFunc func(rec record.Record, regs *registry.Registries) (Definition, error)

// actionDefinitions - таблица диспетчеризации: тип действия -> вариант
// определения, отвечающий за его разбор.
var actionDefinitions = map[string]ParseFunc{
	"MOVE.TCP.WORK":      ParsePath,
	"MOVE.TCP.APPROACH":  ParsePath,
	"MOVE.TCP.CLEARANCE": ParsePath,
	"MOVE.STATION.WORK":  ParsePath,
	"MOVE.STATION.TOOL":  ParsePath,
	"MOVE.STATION.HOME":  ParsePath,
	"WORK.DRILL":         ParseDrilling,
	"WORK.PROBE":         ParseProbing,
	"LOAD.EFFECTOR":      ParseManipulation,
	"UNLOAD.EFFECTOR":    ParseManipulation,
}

// ParseByType разбирает определение по типу действия. Неизвестный тип -
// ошибка ErrUnknownDiscriminator; частично разобранное определение из
// функции выйти не может.
func ParseByType(actionType string, rec record.Record, regs *registry.Registries) (Definition, error) {
	parse, ok := actionDefinitions[actionType]
	if !ok {
		return nil, apperrors.NewFieldError("type", actionType, apperrors.ErrUnknownDiscriminator)
	}
	return parse(rec, regs)
}

// Types возвращает отсортированный список известных типов действий.
func Types() []string {
	types := make([]string, 0, len(actionDefinitions))
	for actionType := range actionDefinitions {
		types = append(types, actionType)
	}
	sort.Strings(types)
	return types
}

package registry

import (
	"fmt"

	"github.com/iwtcode/robotActions/models"
	apperrors "github.com/iwtcode/robotActions/pkg/errors"
)

// Виды символов, используемые ядром при разрешении ссылок определений.
const (
	EquipmentKindEffector = "EFFECTOR"
	ReferenceKindFrame    = "FRAME"
)

// Table - двухуровневая таблица символов: вид -> обозначение -> символ.
// Таблица заполняется один раз при старте процесса и дальше только
// читается, поэтому конкурентный доступ не требует синхронизации.
type Table map[string]map[string]models.Symbol

// Lookup разрешает символ по паре (вид, обозначение).
func (t Table) Lookup(kind, reference string) (models.Symbol, error) {
	refs, ok := t[kind]
	if !ok {
		return models.Symbol{}, apperrors.NewFieldError(
			fmt.Sprintf("%s.%s", kind, reference), nil, apperrors.ErrUnknownSymbol)
	}
	sym, ok := refs[reference]
	if !ok {
		return models.Symbol{}, apperrors.NewFieldError(
			fmt.Sprintf("%s.%s", kind, reference), nil, apperrors.ErrUnknownSymbol)
	}
	return sym, nil
}

// Kinds возвращает число видов в таблице.
func (t Table) Kinds() int { return len(t) }

// Registries объединяет реестры символов, необходимые при разборе
// определений: реестр оборудования и реестр систем координат.
// Передается явно во все функции разбора вместо глобальных таблиц.
type Registries struct {
	Equipment Table
	Reference Table
}

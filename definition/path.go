package definition

import (
	"github.com/iwtcode/robotActions/models"
	"github.com/iwtcode/robotActions/motion"
	apperrors "github.com/iwtcode/robotActions/pkg/errors"
	"github.com/iwtcode/robotActions/record"
	"github.com/iwtcode/robotActions/registry"
)

// Path представляет траекторию: упорядоченную последовательность точек
// прохождения с привязкой к системе координат (uf) и инструменту (ut).
// Порядок точек значим и сохраняется во всех представлениях.
type Path struct {
	uf        models.Symbol
	ut        models.Symbol
	movements []*motion.Movement
}

// NewPath создает траекторию.
func NewPath(uf, ut models.Symbol, movements []*motion.Movement) *Path {
	return &Path{uf: uf, ut: ut, movements: movements}
}

// ParsePath разбирает сериализованное определение траектории, разрешая
// инструмент в реестре оборудования, а систему координат - в реестре
// систем координат.
func ParsePath(rec record.Record, regs *registry.Registries) (Definition, error) {
	utName, err := rec.String("ut")
	if err != nil {
		return nil, err
	}
	ut, err := regs.Equipment.Lookup(registry.EquipmentKindEffector, utName)
	if err != nil {
		return nil, err
	}

	ufName, err := rec.String("uf")
	if err != nil {
		return nil, err
	}
	uf, err := regs.Reference.Lookup(registry.ReferenceKindFrame, ufName)
	if err != nil {
		return nil, err
	}

	rawMovements, err := rec.List("movements")
	if err != nil {
		return nil, err
	}

	movements := make([]*motion.Movement, 0, len(rawMovements))
	for _, raw := range rawMovements {
		movementRec, ok := record.AsRecord(raw)
		if !ok {
			return nil, apperrors.NewFieldError("movements", raw, apperrors.ErrInvalidField)
		}
		movement, err := motion.ParseMovement(movementRec)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}

	return NewPath(uf, ut, movements), nil
}

// UserFrame возвращает символ системы координат траектории.
func (p *Path) UserFrame() models.Symbol { return p.uf }

// UserTool возвращает символ инструмента траектории.
func (p *Path) UserTool() models.Symbol { return p.ut }

// Movements возвращает точки прохождения в порядке объявления.
func (p *Path) Movements() []*motion.Movement { return p.movements }

// ToDict возвращает архивное представление траектории.
func (p *Path) ToDict() record.Record {
	movements := make([]interface{}, 0, len(p.movements))
	for _, movement := range p.movements {
		movements = append(movements, movement.ToDict())
	}
	return record.Record{
		"uf":        p.uf.Reference,
		"ut":        p.ut.Reference,
		"movements": movements,
	}
}

// ToCmdData возвращает представление траектории для контроллера: сырые коды
// символов uf/ut и точки прохождения, разложенные на два параллельных
// упорядоченных списка - параметры движения и позиции.
func (p *Path) ToCmdData() record.Record {
	parameters := make([]interface{}, 0, len(p.movements))
	positions := make([]interface{}, 0, len(p.movements))

	for _, movement := range p.movements {
		cmdData := movement.ToCmdData()
		parameters = append(parameters, cmdData["parameters"])
		positions = append(positions, cmdData["position"])
	}

	return record.Record{
		"uf": p.uf.Code,
		"ut": p.ut.Code,
		"movements": record.Record{
			"parameters": parameters,
			"positions":  positions,
		},
	}
}

package definition

import (
	"github.com/iwtcode/robotActions/models"
	"github.com/iwtcode/robotActions/motion"
	"github.com/iwtcode/robotActions/record"
	"github.com/iwtcode/robotActions/registry"
)

// Probing представляет определение цикла измерения: ровно одну точку
// прохождения с привязкой к системе координат и инструменту.
type Probing struct {
	ut       models.Symbol
	uf       models.Symbol
	movement *motion.Movement
}

// NewProbing создает определение цикла измерения.
func NewProbing(ut, uf models.Symbol, movement *motion.Movement) *Probing {
	return &Probing{ut: ut, uf: uf, movement: movement}
}

// ParseProbing разбирает сериализованное определение цикла измерения.
func ParseProbing(rec record.Record, regs *registry.Registries) (Definition, error) {
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

	movementRec, err := rec.Child("movement")
	if err != nil {
		return nil, err
	}
	movement, err := motion.ParseMovement(movementRec)
	if err != nil {
		return nil, err
	}

	return NewProbing(ut, uf, movement), nil
}

// UserTool возвращает символ измерительного инструмента.
func (p *Probing) UserTool() models.Symbol { return p.ut }

// UserFrame возвращает символ системы координат.
func (p *Probing) UserFrame() models.Symbol { return p.uf }

// Movement возвращает точку прохождения измерения.
func (p *Probing) Movement() *motion.Movement { return p.movement }

// ToDict возвращает архивное представление определения.
func (p *Probing) ToDict() record.Record {
	return record.Record{
		"ut":       p.ut.Reference,
		"uf":       p.uf.Reference,
		"movement": p.movement.ToDict(),
	}
}

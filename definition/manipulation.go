package definition

import (
	"github.com/iwtcode/robotActions/models"
	"github.com/iwtcode/robotActions/record"
	"github.com/iwtcode/robotActions/registry"
)

// Manipulation представляет определение манипуляции с оснасткой: одну
// операцию (LOAD|UNLOAD) над одним символом оборудования.
type Manipulation struct {
	operation models.Operation
	equipment models.Symbol
}

// NewManipulation создает определение манипуляции.
func NewManipulation(operation models.Operation, equipment models.Symbol) *Manipulation {
	return &Manipulation{operation: operation, equipment: equipment}
}

// ParseManipulation разбирает сериализованное определение манипуляции,
// разрешая оборудование по паре (type, reference) из записи.
func ParseManipulation(rec record.Record, regs *registry.Registries) (Definition, error) {
	equipmentRec, err := rec.Child("equipment")
	if err != nil {
		return nil, err
	}
	kind, err := equipmentRec.String("type")
	if err != nil {
		return nil, err
	}
	reference, err := equipmentRec.String("reference")
	if err != nil {
		return nil, err
	}
	equipment, err := regs.Equipment.Lookup(kind, reference)
	if err != nil {
		return nil, err
	}

	operationName, err := rec.String("manipulation")
	if err != nil {
		return nil, err
	}
	operation, err := models.ParseOperation(operationName)
	if err != nil {
		return nil, err
	}

	return NewManipulation(operation, equipment), nil
}

// Operation возвращает имя операции манипуляции.
func (m *Manipulation) Operation() string { return m.operation.Name() }

// Equipment возвращает символ оснастки.
func (m *Manipulation) Equipment() models.Symbol { return m.equipment }

// ToDict возвращает результирующую запись операции над оснасткой.
// Намеренная асимметрия: форма результата строится операцией и не
// повторяет набор полей, из которого определение было разобрано.
func (m *Manipulation) ToDict() record.Record {
	return m.operation.Apply(m.equipment)
}

package motion

import (
	"github.com/iwtcode/robotActions/models"
	"github.com/iwtcode/robotActions/record"
)

// Movement представляет одну точку прохождения траектории: позицию TCP,
// форму траектории до точки, скорость и точность прохождения (cnt).
type Movement struct {
	cnt      int
	speed    int
	mtype    models.MovementType
	position *Position
}

// NewMovement создает точку прохождения траектории.
func NewMovement(cnt, speed int, mtype models.MovementType, position *Position) *Movement {
	return &Movement{cnt: cnt, speed: speed, mtype: mtype, position: position}
}

// ParseMovement разбирает сериализованную точку прохождения.
func ParseMovement(rec record.Record) (*Movement, error) {
	cnt, err := rec.Int("cnt")
	if err != nil {
		return nil, err
	}

	typeName, err := rec.String("type")
	if err != nil {
		return nil, err
	}
	mtype, err := models.ParseMovementType(typeName)
	if err != nil {
		return nil, err
	}

	speed, err := rec.Int("speed")
	if err != nil {
		return nil, err
	}

	positionRec, err := rec.Child("position")
	if err != nil {
		return nil, err
	}
	position, err := ParsePosition(positionRec)
	if err != nil {
		return nil, err
	}

	return NewMovement(cnt, speed, mtype, position), nil
}

// Cnt возвращает точность прохождения точки.
func (m *Movement) Cnt() int { return m.cnt }

// Speed возвращает скорость движения.
func (m *Movement) Speed() int { return m.speed }

// Type возвращает форму траектории.
func (m *Movement) Type() models.MovementType { return m.mtype }

// Position возвращает позицию TCP точки.
func (m *Movement) Position() *Position { return m.position }

// PositionType возвращает представление позиции точки.
func (m *Movement) PositionType() models.PositionType { return m.position.Type() }

// ToDict возвращает архивное представление точки прохождения.
func (m *Movement) ToDict() record.Record {
	return record.Record{
		"cnt":      m.cnt,
		"speed":    m.speed,
		"type":     m.mtype.Name(),
		"position": m.position.ToDict(),
	}
}

// ToCmdData возвращает представление точки для контроллера: параметры
// движения и позиция разделены на две группы, чтобы Path мог собрать из
// точек два параллельных упорядоченных списка.
func (m *Movement) ToCmdData() record.Record {
	return record.Record{
		"parameters": record.Record{
			"cnt":   m.cnt,
			"speed": m.speed,
			"type":  m.mtype.Code(),
		},
		"position": m.position.ToCmdData(),
	}
}

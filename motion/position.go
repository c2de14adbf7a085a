package motion

import (
	"math"

	"github.com/iwtcode/robotActions/models"
	apperrors "github.com/iwtcode/robotActions/pkg/errors"
	"github.com/iwtcode/robotActions/record"
)

// Фиксированные наборы ключей вектора позиции. Порядок ключей определяет
// порядок компонент вектора и никогда не смешивается между представлениями.
var (
	cartesianVectorKeys = []string{"x", "y", "z", "w", "p", "r"}
	jointVectorKeys     = []string{"j1", "j2", "j3", "j4", "j5", "j6"}
)

// Position представляет позицию TCP в одном из двух представлений:
// декартовом (x,y,z,w,p,r) или осевом (j1..j6). Конфигурация манипулятора
// присутствует только у декартова представления. Поля ut/uf в сериализованной
// позиции всегда равны 0.
type Position struct {
	vector []float64
	ptype  models.PositionType
	e1     int
	config *Configuration
}

// NewCartesianPosition создает позицию в декартовом представлении.
func NewCartesianPosition(vector []float64, e1 int, config *Configuration) *Position {
	return &Position{vector: vector, ptype: models.PositionCartesian, e1: e1, config: config}
}

// NewJointPosition создает позицию в осевом представлении.
// Конфигурация манипулятора осевому представлению не нужна.
func NewJointPosition(vector []float64, e1 int) *Position {
	return &Position{vector: vector, ptype: models.PositionJoint, e1: e1}
}

// ParsePosition разбирает сериализованную позицию, выбирая представление
// по дискриминатору type.
func ParsePosition(rec record.Record) (*Position, error) {
	ptype, err := rec.String("type")
	if err != nil {
		return nil, err
	}

	switch models.PositionType(ptype) {
	case models.PositionCartesian:
		return parseCartesian(rec)
	case models.PositionJoint:
		return parseJoint(rec)
	default:
		return nil, apperrors.NewFieldError("type", ptype, apperrors.ErrUnknownDiscriminator)
	}
}

func parseCartesian(rec record.Record) (*Position, error) {
	e1, err := rec.Int("e1")
	if err != nil {
		return nil, err
	}

	configRec, err := rec.Child("config")
	if err != nil {
		return nil, err
	}
	config, err := ParseConfiguration(configRec)
	if err != nil {
		return nil, err
	}

	vector, err := parseVector(rec, cartesianVectorKeys)
	if err != nil {
		return nil, err
	}

	return NewCartesianPosition(vector, e1, config), nil
}

func parseJoint(rec record.Record) (*Position, error) {
	e1, err := rec.Int("e1")
	if err != nil {
		return nil, err
	}

	vector, err := parseVector(rec, jointVectorKeys)
	if err != nil {
		return nil, err
	}

	return NewJointPosition(vector, e1), nil
}

func parseVector(rec record.Record, keys []string) ([]float64, error) {
	vectorRec, err := rec.Child("vector")
	if err != nil {
		return nil, err
	}

	vector := make([]float64, len(keys))
	for i, key := range keys {
		component, err := vectorRec.Float(key)
		if err != nil {
			return nil, err
		}
		vector[i] = component
	}
	return vector, nil
}

// Vector возвращает копию вектора позиции.
func (p *Position) Vector() []float64 {
	vector := make([]float64, len(p.vector))
	copy(vector, p.vector)
	return vector
}

// Type возвращает представление позиции.
func (p *Position) Type() models.PositionType { return p.ptype }

// E1 возвращает положение дополнительной седьмой оси.
func (p *Position) E1() int { return p.e1 }

// Configuration возвращает конфигурацию манипулятора.
// Для осевого представления всегда nil.
func (p *Position) Configuration() *Configuration { return p.config }

// VectorKeys возвращает упорядоченный набор ключей вектора для
// представления данной позиции.
func (p *Position) VectorKeys() []string {
	keys := cartesianVectorKeys
	if p.ptype == models.PositionJoint {
		keys = jointVectorKeys
	}
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// ToDict возвращает архивное представление позиции: имя представления,
// именованный вектор с округлением компонент до 3 знаков и конфигурацию
// либо nil.
func (p *Position) ToDict() record.Record {
	return p.serialize(p.ptype.Name(), func(c *Configuration) record.Record { return c.ToDict() })
}

// ToCmdData возвращает представление позиции для контроллера: вместо имени
// представления передается его сырой код.
func (p *Position) ToCmdData() record.Record {
	return p.serialize(p.ptype.Code(), func(c *Configuration) record.Record { return c.ToCmdData() })
}

func (p *Position) serialize(ptype string, configFn func(*Configuration) record.Record) record.Record {
	rec := record.Record{
		"ut":     0,
		"uf":     0,
		"type":   ptype,
		"e1":     p.e1,
		"vector": p.vectorToDict(),
	}
	if p.config != nil {
		rec["config"] = configFn(p.config)
	} else {
		rec["config"] = nil
	}
	return rec
}

func (p *Position) vectorToDict() record.Record {
	keys := cartesianVectorKeys
	if p.ptype == models.PositionJoint {
		keys = jointVectorKeys
	}

	vector := make(record.Record, len(keys))
	for i, key := range keys {
		vector[key] = round3(p.vector[i])
	}
	return vector
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

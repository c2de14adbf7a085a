package definition

import (
	"github.com/iwtcode/robotActions/record"
	"github.com/iwtcode/robotActions/registry"
)

// DrillingExtended содержит расширенный набор параметров цикла сверления.
type DrillingExtended struct {
	PeakFrequency  float64
	PeakAmplitude  float64
	ClampWeight    float64
	DrillThickness float64
}

// Drilling представляет определение цикла сверления: числовые параметры
// процесса без ссылок на оборудование. Базовая схема несет флаг peak,
// расширенная - дополнительно числовой блок вибрационного сверления.
type Drilling struct {
	speed    int
	feed     int
	peak     bool
	hasPeak  bool
	extended *DrillingExtended
}

// NewDrilling создает определение цикла сверления по базовой схеме.
func NewDrilling(speed, feed int, peak bool) *Drilling {
	return &Drilling{speed: speed, feed: feed, peak: peak, hasPeak: true}
}

// ParseDrilling разбирает сериализованное определение цикла сверления.
// Реестры символов циклу сверления не нужны.
func ParseDrilling(rec record.Record, _ *registry.Registries) (Definition, error) {
	speed, err := rec.Int("speed")
	if err != nil {
		return nil, err
	}
	feed, err := rec.Int("feed")
	if err != nil {
		return nil, err
	}

	d := &Drilling{speed: speed, feed: feed}

	// Расширенная схема опознается по наличию любого из ее полей,
	// после чего обязательны все четыре.
	if rec.Has("peak_frequency") || rec.Has("peak_amplitude") ||
		rec.Has("clamp_weight") || rec.Has("drill_thickness") {
		extended := &DrillingExtended{}
		if extended.PeakFrequency, err = rec.Float("peak_frequency"); err != nil {
			return nil, err
		}
		if extended.PeakAmplitude, err = rec.Float("peak_amplitude"); err != nil {
			return nil, err
		}
		if extended.ClampWeight, err = rec.Float("clamp_weight"); err != nil {
			return nil, err
		}
		if extended.DrillThickness, err = rec.Float("drill_thickness"); err != nil {
			return nil, err
		}
		d.extended = extended

		// Флаг peak в расширенной схеме опционален.
		if rec.Has("peak") {
			if d.peak, err = rec.Bool("peak"); err != nil {
				return nil, err
			}
			d.hasPeak = true
		}
		return d, nil
	}

	if d.peak, err = rec.Bool("peak"); err != nil {
		return nil, err
	}
	d.hasPeak = true
	return d, nil
}

// Speed возвращает скорость вращения.
func (d *Drilling) Speed() int { return d.speed }

// Feed возвращает подачу.
func (d *Drilling) Feed() int { return d.feed }

// Peak возвращает флаг цикла с выводом сверла.
func (d *Drilling) Peak() bool { return d.peak }

// Extended возвращает расширенный блок параметров либо nil.
func (d *Drilling) Extended() *DrillingExtended { return d.extended }

// ToDict возвращает архивное представление определения. Состав полей
// повторяет схему, по которой определение было разобрано.
func (d *Drilling) ToDict() record.Record {
	rec := record.Record{
		"speed": d.speed,
		"feed":  d.feed,
	}
	if d.hasPeak {
		rec["peak"] = d.peak
	}
	if d.extended != nil {
		rec["peak_frequency"] = d.extended.PeakFrequency
		rec["peak_amplitude"] = d.extended.PeakAmplitude
		rec["clamp_weight"] = d.extended.ClampWeight
		rec["drill_thickness"] = d.extended.DrillThickness
	}
	return rec
}

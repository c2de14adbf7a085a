package motion

import (
	"github.com/iwtcode/robotActions/models"
	"github.com/iwtcode/robotActions/record"
)

// Configuration представляет конфигурацию манипулятора: положения кисти,
// предплечья и плеча плюс три кода предельного поворота осей запястья.
// После создания не изменяется.
type Configuration struct {
	wrist   models.WristConfig
	forearm models.ForeArmConfig
	arm     models.ArmConfig
	j4      int
	j5      int
	j6      int
}

// NewConfiguration создает конфигурацию манипулятора. Коды поворота
// j4/j5/j6 по умолчанию равны 0.
func NewConfiguration(wrist models.WristConfig, forearm models.ForeArmConfig, arm models.ArmConfig, j4, j5, j6 int) *Configuration {
	return &Configuration{wrist: wrist, forearm: forearm, arm: arm, j4: j4, j5: j5, j6: j6}
}

// ParseConfiguration разбирает сериализованную конфигурацию манипулятора.
func ParseConfiguration(rec record.Record) (*Configuration, error) {
	wristName, err := rec.String("wrist")
	if err != nil {
		return nil, err
	}
	wrist, err := models.ParseWristConfig(wristName)
	if err != nil {
		return nil, err
	}

	forearmName, err := rec.String("forearm")
	if err != nil {
		return nil, err
	}
	forearm, err := models.ParseForeArmConfig(forearmName)
	if err != nil {
		return nil, err
	}

	armName, err := rec.String("arm")
	if err != nil {
		return nil, err
	}
	arm, err := models.ParseArmConfig(armName)
	if err != nil {
		return nil, err
	}

	j4, err := rec.Int("j4")
	if err != nil {
		return nil, err
	}
	j5, err := rec.Int("j5")
	if err != nil {
		return nil, err
	}
	j6, err := rec.Int("j6")
	if err != nil {
		return nil, err
	}

	return NewConfiguration(wrist, forearm, arm, j4, j5, j6), nil
}

// Wrist возвращает конфигурацию кисти.
func (c *Configuration) Wrist() models.WristConfig { return c.wrist }

// ForeArm возвращает конфигурацию предплечья.
func (c *Configuration) ForeArm() models.ForeArmConfig { return c.forearm }

// Arm возвращает конфигурацию плеча.
func (c *Configuration) Arm() models.ArmConfig { return c.arm }

// ToDict возвращает архивное представление конфигурации.
func (c *Configuration) ToDict() record.Record {
	return record.Record{
		"wrist":   c.wrist.Name(),
		"forearm": c.forearm.Name(),
		"arm":     c.arm.Name(),
		"j4":      c.j4,
		"j5":      c.j5,
		"j6":      c.j6,
	}
}

// ToCmdData возвращает представление конфигурации для контроллера.
// Структурно совпадает с архивным: конфигурация передается именами.
func (c *Configuration) ToCmdData() record.Record {
	return c.ToDict()
}

package models

import (
	apperrors "github.com/iwtcode/robotActions/pkg/errors"
	"github.com/iwtcode/robotActions/record"
)

// Закрытые перечисления модели движения. Имя (Name) используется в архивном
// представлении to_dict, сырой код (Code) - в представлении для контроллера.
// Коды соответствуют кодам контроллера FANUC.

// MovementType определяет форму траектории между точками.
type MovementType string

const (
	MovementCircular MovementType = "CIRCULAR"
	MovementLinear   MovementType = "LINEAR"
	MovementJoint    MovementType = "JOINT"
)

// Name возвращает символьное имя типа траектории.
func (t MovementType) Name() string { return string(t) }

// Code возвращает сырой код траектории для контроллера.
func (t MovementType) Code() string {
	switch t {
	case MovementCircular:
		return "C"
	case MovementLinear:
		return "L"
	default:
		return "J"
	}
}

// ParseMovementType разрешает тип траектории по имени.
func ParseMovementType(name string) (MovementType, error) {
	switch MovementType(name) {
	case MovementCircular, MovementLinear, MovementJoint:
		return MovementType(name), nil
	}
	return "", apperrors.NewFieldError("type", name, apperrors.ErrUnknownDiscriminator)
}

// PositionType определяет представление позиции TCP.
type PositionType string

const (
	PositionCartesian PositionType = "CARTESIAN"
	PositionJoint     PositionType = "JOINT"
)

// Name возвращает символьное имя представления позиции.
func (t PositionType) Name() string { return string(t) }

// Code возвращает сырой код представления позиции для контроллера.
func (t PositionType) Code() string {
	if t == PositionCartesian {
		return "crt"
	}
	return "jnt"
}

// WristConfig определяет конфигурацию кисти манипулятора.
type WristConfig string

const (
	WristFlip   WristConfig = "FLIP"
	WristNoFlip WristConfig = "NOFLIP"
)

func (c WristConfig) Name() string { return string(c) }

// Code возвращает сырой код конфигурации кисти.
func (c WristConfig) Code() string {
	if c == WristFlip {
		return "F"
	}
	return "N"
}

// ParseWristConfig разрешает конфигурацию кисти по имени.
func ParseWristConfig(name string) (WristConfig, error) {
	switch WristConfig(name) {
	case WristFlip, WristNoFlip:
		return WristConfig(name), nil
	}
	return "", apperrors.NewFieldError("wrist", name, apperrors.ErrUnknownDiscriminator)
}

// ForeArmConfig определяет конфигурацию предплечья манипулятора.
type ForeArmConfig string

const (
	ForeArmUp   ForeArmConfig = "UP"
	ForeArmDown ForeArmConfig = "DOWN"
)

func (c ForeArmConfig) Name() string { return string(c) }

// Code возвращает сырой код конфигурации предплечья.
func (c ForeArmConfig) Code() string {
	if c == ForeArmUp {
		return "U"
	}
	return "D"
}

// ParseForeArmConfig разрешает конфигурацию предплечья по имени.
func ParseForeArmConfig(name string) (ForeArmConfig, error) {
	switch ForeArmConfig(name) {
	case ForeArmUp, ForeArmDown:
		return ForeArmConfig(name), nil
	}
	return "", apperrors.NewFieldError("forearm", name, apperrors.ErrUnknownDiscriminator)
}

// ArmConfig определяет конфигурацию плеча манипулятора.
type ArmConfig string

const (
	ArmToward   ArmConfig = "TOWARD"
	ArmBackward ArmConfig = "BACKWARD"
)

func (c ArmConfig) Name() string { return string(c) }

// Code возвращает сырой код конфигурации плеча.
func (c ArmConfig) Code() string {
	if c == ArmToward {
		return "T"
	}
	return "D"
}

// ParseArmConfig разрешает конфигурацию плеча по имени.
func ParseArmConfig(name string) (ArmConfig, error) {
	switch ArmConfig(name) {
	case ArmToward, ArmBackward:
		return ArmConfig(name), nil
	}
	return "", apperrors.NewFieldError("arm", name, apperrors.ErrUnknownDiscriminator)
}

// Operation определяет операцию манипуляции с оснасткой.
type Operation string

const (
	OperationLoad   Operation = "LOAD"
	OperationUnload Operation = "UNLOAD"
)

func (o Operation) Name() string { return string(o) }

// ParseOperation разрешает операцию манипуляции по имени.
func ParseOperation(name string) (Operation, error) {
	switch Operation(name) {
	case OperationLoad, OperationUnload:
		return Operation(name), nil
	}
	return "", apperrors.NewFieldError("manipulation", name, apperrors.ErrUnknownDiscriminator)
}

// Apply строит результирующую запись операции над оснасткой. Именно эта
// запись является сериализованной формой определения Manipulation.
func (o Operation) Apply(equipment Symbol) record.Record {
	return record.Record{
		"manipulation": o.Name(),
		"equipment": record.Record{
			"type":      equipment.Kind,
			"reference": equipment.Reference,
		},
	}
}

package robot

import "os"

// Config хранит модель конфигурации библиотеки
type Config struct {
	EquipmentFile string
	ReferenceFile string
	LogLevel      string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	equipmentFile := os.Getenv("ROBOT_EQUIPMENT_FILE")
	if equipmentFile == "" {
		equipmentFile = "./equipment.yaml"
	}

	referenceFile := os.Getenv("ROBOT_REFERENCE_FILE")
	if referenceFile == "" {
		referenceFile = "./reference.yaml"
	}

	logLevel := os.Getenv("ROBOT_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		EquipmentFile: equipmentFile,
		ReferenceFile: referenceFile,
		LogLevel:      logLevel,
	}
}

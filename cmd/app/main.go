package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	robot "github.com/iwtcode/robotActions"
	"github.com/iwtcode/robotActions/action"
	"github.com/iwtcode/robotActions/definition"
	"github.com/iwtcode/robotActions/models"
	"github.com/iwtcode/robotActions/record"
)

// Сериализованные действия в том виде, в котором они приходят из хранилища.
const (
	samplePath = `{
		"_id": "a-001",
		"type": "MOVE.TCP.WORK",
		"description": "подход к панели",
		"definition": {
			"uf": "PANEL1",
			"ut": "GUN1",
			"movements": [
				{
					"cnt": 100, "speed": 2000, "type": "JOINT",
					"position": {
						"type": "JOINT", "e1": 0,
						"vector": {"j1": 0, "j2": -35.5, "j3": 12.25, "j4": 0, "j5": -90, "j6": 180}
					}
				},
				{
					"cnt": 0, "speed": 250, "type": "LINEAR",
					"position": {
						"type": "CARTESIAN", "e1": 150,
						"vector": {"x": 1200.5031, "y": -340.21, "z": 855.0, "w": 179.9, "p": 0.02, "r": -45.0},
						"config": {"wrist": "NOFLIP", "forearm": "UP", "arm": "TOWARD", "j4": 0, "j5": 0, "j6": 0}
					}
				}
			]
		}
	}`

	sampleDrilling = `{
		"_id": "a-002",
		"type": "WORK.DRILL",
		"description": "сверление отверстия A",
		"definition": {"speed": 1200, "feed": 5, "peak": true}
	}`

	sampleManipulation = `{
		"_id": "a-003",
		"type": "LOAD.EFFECTOR",
		"description": "установка клепального пистолета",
		"definition": {
			"equipment": {"type": "EFFECTOR", "reference": "GUN1"},
			"manipulation": "LOAD"
		}
	}`
)

// runStep выполняет один шаг демонстрации и останавливает программу
// при первой же ошибке.
func runStep(name string, fn func() error) {
	log.Printf("--- Запуск шага: %s ---", name)

	if err := fn(); err != nil {
		log.Fatalf("Ошибка выполнения на шаге %s: %v", name, err)
	}

	log.Printf("--- Шаг %s выполнен успешно ---", name)
	fmt.Println("==================================================")
}

func main() {
	// 1) Загрузка конфигурации
	err := godotenv.Load("./.env")
	if err != nil {
		log.Printf("Warning: Could not load .env file. Using default values or environment variables: %v", err)
	}

	cfg := robot.Load()
	log.Printf("Конфигурация загружена: equipment=%s, reference=%s", cfg.EquipmentFile, cfg.ReferenceFile)

	// 2) Создание клиента (загружает реестры символов)
	client, err := robot.New(cfg)
	if err != nil {
		log.Fatalf("Ошибка создания клиента: %v", err)
	}

	// 3) Регистрация демонстрационного генератора команд для траекторий
	client.RegisterGenerator("MOVE.TCP.WORK", func(def definition.Definition) ([]*models.Command, error) {
		path, ok := def.(*definition.Path)
		if !ok {
			return nil, fmt.Errorf("MOVE.TCP.WORK expects a path definition, got %T", def)
		}
		cmd := models.NewCommand("robot-1", "MOVE.TCP.WORK", "перемещение по траектории", path.ToCmdData())
		return []*models.Command{cmd}, nil
	})

	// 4) Разбор и сериализация действий каждого вида
	var pathAction *action.Action
	runStep("ParsePath", func() error {
		pathAction, err = client.ParseAction(mustRecord(samplePath))
		if err != nil {
			return err
		}
		printAsJSON("Path.to_dict", pathAction.ToDict(false))
		return nil
	})

	runStep("ParseDrilling", func() error {
		a, err := client.ParseAction(mustRecord(sampleDrilling))
		if err != nil {
			return err
		}
		printAsJSON("Drilling.to_dict", a.ToDict(false))
		return nil
	})

	runStep("ParseManipulation", func() error {
		a, err := client.ParseAction(mustRecord(sampleManipulation))
		if err != nil {
			return err
		}
		printAsJSON("Manipulation.to_dict", a.ToDict(false))
		return nil
	})

	// 5) Генерация команд контроллера для траектории
	runStep("GetCommands", func() error {
		commands, err := client.Commands(pathAction)
		if err != nil {
			return err
		}
		printAsJSON("Commands", commands)
		return nil
	})

	log.Println("Демонстрация завершена.")
}

func mustRecord(data string) record.Record {
	var rec record.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		log.Fatalf("Ошибка разбора JSON примера: %v", err)
	}
	return rec
}

// printAsJSON форматирует данные в JSON и выводит в лог
func printAsJSON(name string, data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Printf("Ошибка маршалинга JSON для %s: %v", name, err)
		return
	}
	fmt.Printf("--- %s ---\n%s\n", name, string(jsonData))
}

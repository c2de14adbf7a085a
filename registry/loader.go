package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iwtcode/robotActions/models"
)

// Parse строит таблицу символов из YAML-документа вида
//
//	EFFECTOR:
//	  GUN1: 1
//	  DRILL1: 2
//
// где листовое значение - сырой код символа для контроллера.
func Parse(data []byte) (Table, error) {
	var raw map[string]map[string]int
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse registry document: %w", err)
	}

	table := make(Table, len(raw))
	for kind, refs := range raw {
		table[kind] = make(map[string]models.Symbol, len(refs))
		for reference, code := range refs {
			table[kind][reference] = models.Symbol{
				Kind:      kind,
				Reference: reference,
				Code:      code,
			}
		}
	}
	return table, nil
}

// LoadFile читает таблицу символов из YAML-файла path.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}
	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("registry file %s: %w", path, err)
	}
	return table, nil
}

// Load читает оба реестра из YAML-файлов и возвращает их единой структурой.
func Load(equipmentFile, referenceFile string) (*Registries, error) {
	equipment, err := LoadFile(equipmentFile)
	if err != nil {
		return nil, err
	}
	reference, err := LoadFile(referenceFile)
	if err != nil {
		return nil, err
	}
	return &Registries{Equipment: equipment, Reference: reference}, nil
}

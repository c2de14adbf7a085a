package models

import (
	"github.com/google/uuid"

	"github.com/iwtcode/robotActions/record"
)

// Command представляет низкоуровневую адресованную инструкцию для
// контроллера. Создается только генератором команд при диспетчеризации
// действия и после создания не изменяется.
type Command struct {
	uid         string
	target      string
	action      string
	description string
	definition  record.Record
}

// NewCommand создает команду с уникальным идентификатором для цели target,
// порожденную действием типа action.
func NewCommand(target, action, description string, definition record.Record) *Command {
	return &Command{
		uid:         uuid.NewString(),
		target:      target,
		action:      action,
		description: description,
		definition:  definition,
	}
}

// UID возвращает уникальный идентификатор команды.
func (c *Command) UID() string { return c.uid }

// Target возвращает идентификатор целевого оборудования или станции.
func (c *Command) Target() string { return c.target }

// Action возвращает тип действия, породившего команду.
func (c *Command) Action() string { return c.action }

// Description возвращает человекочитаемое описание команды.
func (c *Command) Description() string { return c.description }

// ToDict возвращает сериализованное представление команды.
func (c *Command) ToDict() record.Record {
	return record.Record{
		"uid":         c.uid,
		"action":      c.action,
		"target":      c.target,
		"description": c.description,
		"definition":  c.definition,
	}
}

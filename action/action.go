package action

import (
	"sort"

	"github.com/iwtcode/robotActions/definition"
	apperrors "github.com/iwtcode/robotActions/pkg/errors"
	"github.com/iwtcode/robotActions/record"
	"github.com/iwtcode/robotActions/registry"
)

// Action представляет базовое действие робота: определение, обернутое
// идентичностью и метаданными. Поля id, type и definition после создания
// не изменяются; описание можно переопределять.
//
// Множества зависимостей и последователей хранят идентификаторы других
// действий. Это задел под планирование порядка исполнения: ядро
// транскодирования и генерации команд их не использует.
type Action struct {
	id           string
	atype        string
	definition   definition.Definition
	description  string
	dependencies map[string]struct{}
	next         map[string]struct{}
}

// New создает действие типа atype с определением def.
func New(id, atype string, def definition.Definition, description string) *Action {
	return &Action{
		id:           id,
		atype:        atype,
		definition:   def,
		description:  description,
		dependencies: make(map[string]struct{}),
		next:         make(map[string]struct{}),
	}
}

// Parse разбирает сериализованное действие. Тип действия выбирает вариант
// определения через таблицу диспетчеризации; поле _id, если оно есть,
// становится неизменяемым идентификатором. Разбор атомарен: либо
// возвращается полностью собранное действие, либо ошибка.
func Parse(rec record.Record, regs *registry.Registries) (*Action, error) {
	atype, err := rec.String("type")
	if err != nil {
		return nil, err
	}

	definitionRec, err := rec.Child("definition")
	if err != nil {
		return nil, err
	}
	def, err := definition.ParseByType(atype, definitionRec, regs)
	if err != nil {
		return nil, err
	}

	description, err := rec.String("description")
	if err != nil {
		return nil, err
	}

	var id string
	if rec.Has("_id") {
		id = record.Stringify(rec["_id"])
	}

	return New(id, atype, def, description), nil
}

// ID возвращает идентификатор действия.
func (a *Action) ID() string { return a.id }

// Type возвращает имя типа действия.
func (a *Action) Type() string { return a.atype }

// Definition возвращает определение действия.
func (a *Action) Definition() definition.Definition { return a.definition }

// Description возвращает описание действия.
func (a *Action) Description() string { return a.description }

// SetDescription переопределяет описание действия.
func (a *Action) SetDescription(description string) { a.description = description }

// AssignID присваивает действию идентификатор. Идентификатор присваивается
// ровно один раз: повторное присваивание - ошибка ErrImmutableField.
func (a *Action) AssignID(id string) error {
	if a.id != "" {
		return apperrors.NewFieldError("_id", id, apperrors.ErrImmutableField)
	}
	a.id = id
	return nil
}

// AddDependency добавляет идентификатор действия-зависимости.
func (a *Action) AddDependency(id string) {
	a.dependencies[id] = struct{}{}
}

// AddNext добавляет идентификатор действия-последователя.
func (a *Action) AddNext(id string) {
	a.next[id] = struct{}{}
}

// Dependencies возвращает отсортированные идентификаторы зависимостей.
func (a *Action) Dependencies() []string { return sortedIDs(a.dependencies) }

// Next возвращает отсортированные идентификаторы последователей.
func (a *Action) Next() []string { return sortedIDs(a.next) }

func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ToDict возвращает сериализованное представление действия. При dropID
// поле _id опускается (например, когда идентификатор выдает хранилище).
func (a *Action) ToDict(dropID bool) record.Record {
	rec := record.Record{
		"_id":         a.id,
		"type":        a.atype,
		"description": a.description,
		"definition":  a.definition.ToDict(),
	}
	if dropID {
		delete(rec, "_id")
	}
	return rec
}

// String возвращает человекочитаемое представление действия.
func (a *Action) String() string { return a.description }

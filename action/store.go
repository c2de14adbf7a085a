package action

import (
	"github.com/iwtcode/robotActions/record"
	"github.com/iwtcode/robotActions/registry"
)

// Store определяет контракт хранилища сериализованных действий.
// Реализация принадлежит внешнему слою персистентности.
type Store interface {
	FindByID(id string) (record.Record, error)
}

// FromStore загружает сериализованное действие из хранилища и разбирает
// его. Ошибки хранилища пробрасываются без изменения.
func FromStore(store Store, regs *registry.Registries, id string) (*Action, error) {
	rec, err := store.FindByID(id)
	if err != nil {
		return nil, err
	}
	return Parse(rec, regs)
}

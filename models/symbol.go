package models

// Symbol представляет символьный идентификатор оборудования или системы
// координат: пару (вид, обозначение) и сырой код для контроллера.
// Символы не конструируются по месту - они всегда разрешаются через
// реестр, заполненный при старте процесса.
type Symbol struct {
	Kind      string
	Reference string
	Code      int
}

// Pair возвращает пару (вид, обозначение), по которой символ ищется в реестре.
func (s Symbol) Pair() (kind, reference string) {
	return s.Kind, s.Reference
}

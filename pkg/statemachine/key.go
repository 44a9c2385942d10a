// pkg/statemachine/key.go
package statemachine

import "strconv"

type keyKind uint8

const (
	keyNone keyKind = iota
	keyID
	keyName
)

// Key — ключ зарегистрированного состояния. Числовые и строковые ключи
// не пересекаются: ID(1) и Name("1") — разные ключи.
type Key struct {
	kind keyKind
	id   int
	name string
}

// ID — ключ из целого числа.
func ID(id int) Key {
	return Key{kind: keyID, id: id}
}

// Name — ключ из имени. Имя хранится как есть, без хеширования,
// поэтому разные имена никогда не дают один ключ.
func Name(name string) Key {
	return Key{kind: keyName, name: name}
}

// IsZero — true для нулевого Key, то есть «нет ключа».
func (k Key) IsZero() bool {
	return k.kind == keyNone
}

// IsNamed — true, если ключ создан через Name.
func (k Key) IsNamed() bool {
	return k.kind == keyName
}

// Int возвращает число ключа, созданного через ID.
func (k Key) Int() (int, bool) {
	return k.id, k.kind == keyID
}

// NameValue возвращает имя ключа, созданного через Name.
func (k Key) NameValue() (string, bool) {
	return k.name, k.kind == keyName
}

func (k Key) String() string {
	switch k.kind {
	case keyID:
		return "#" + strconv.Itoa(k.id)
	case keyName:
		return strconv.Quote(k.name)
	default:
		return "<none>"
	}
}

func (k Key) validate() error {
	switch {
	case k.kind == keyNone:
		return &InvalidArgumentError{ParamName: "key", Message: "key must not be zero"}
	case k.kind == keyName && k.name == "":
		return &InvalidArgumentError{ParamName: "name", Message: "name must not be empty"}
	}
	return nil
}

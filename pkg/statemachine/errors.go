// pkg/statemachine/errors.go
package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateKey    = errors.New("duplicate state key")
	ErrStateNotFound   = errors.New("state not found")
)

// InvalidArgumentError — обязательный аргумент равен nil или пуст.
type InvalidArgumentError struct {
	ParamName string
	Message   string
}

func (e *InvalidArgumentError) Error() string {
	if e.ParamName != "" {
		return fmt.Sprintf("%s (parameter: %s)", e.Message, e.ParamName)
	}
	return e.Message
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// DuplicateKeyError — ключ уже зарегистрирован.
type DuplicateKeyError struct {
	Key Key
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("state with key %s is already registered", e.Key)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// StateNotFoundError — переход по ключу, под которым ничего не зарегистрировано.
type StateNotFoundError struct {
	Key Key
}

func (e *StateNotFoundError) Error() string {
	return fmt.Sprintf("no state registered with key %s", e.Key)
}

func (e *StateNotFoundError) Is(target error) bool {
	return target == ErrStateNotFound
}

func IsInvalidArgumentError(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

func IsDuplicateKeyError(err error) bool {
	var e *DuplicateKeyError
	return errors.As(err, &e)
}

func IsStateNotFoundError(err error) bool {
	var e *StateNotFoundError
	return errors.As(err, &e)
}

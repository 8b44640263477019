// Package apperror содержит типизированные ошибки диспетчерского движка.
// Каждая ошибка проверяется через errors.As и отображается в HTTP-статус в хендлерах.
package apperror

import (
	"fmt"
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Reason
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// CompositionError - состав экипажа не соответствует типу машины
type CompositionError struct {
	Reason string
}

func (e *CompositionError) Error() string {
	return "composition: " + e.Reason
}

// ExclusivityError - специалист или машина уже заняты в другом экипаже той же смены
type ExclusivityError struct {
	Resource      string
	ResourceID    string
	ConflictingID string
}

func (e *ExclusivityError) Error() string {
	return fmt.Sprintf("exclusivity: %s %s already assigned to team %s", e.Resource, e.ResourceID, e.ConflictingID)
}

type NoRouteError struct {
	From string
	To   string
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("no route from %q to %q", e.From, e.To)
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// AlreadyReservedError возвращается реестром, если машина уже не AVAILABLE
type AlreadyReservedError struct {
	AmbulanceID string
}

func (e *AlreadyReservedError) Error() string {
	return fmt.Sprintf("ambulance %s is already reserved", e.AmbulanceID)
}

// ConflictError - проигранная гонка за ресурс или нарушение уникальности
type ConflictError struct {
	Reason string
	Err    error
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

func (e *ConflictError) Unwrap() error { return e.Err }

// InvalidStateError - операция несовместима с текущим статусом сущности.
// Err может содержать *InvalidTransitionError для вызовов.
type InvalidStateError struct {
	Entity  string
	ID      string
	Current string
	Reason  string
	Err     error
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %s in state %s: %s", e.Entity, e.ID, e.Current, e.Reason)
}

func (e *InvalidStateError) Unwrap() error { return e.Err }

type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

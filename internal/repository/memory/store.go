// Package memory - хранилище в памяти процесса. Используется в тестах
// и при STORAGE_DRIVER=memory.
//
// Блокировка одна на всё хранилище: WithinTx держит её эксклюзивно до конца
// транзакции, чтения без транзакции берут её на чтение. Поэтому транзакции
// над разными машинами и вызовами выполняются по очереди, а не параллельно.
// Корректность от этого не зависит: Reserve, Release, SetStatus и
// UpdateOccurrenceStatus остаются сравнением-с-заменой по своему ключу, и
// конфликт возвращается только при изменении того же ключа. Параллельные
// транзакции по независимым ключам даёт драйвер postgres, где блокируются
// только изменяемые строки.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shenikar/ambulance_dispatch/internal/models"
)

type edgeKey struct{ a, b string }

func keyOf(e models.Edge) edgeKey {
	if e.From > e.To {
		return edgeKey{e.To, e.From}
	}
	return edgeKey{e.From, e.To}
}

// Store реализует все репозитории сервисного слоя и Transactor.
// Транзакция держит эксклюзивную блокировку всего хранилища, поэтому её
// промежуточное состояние не видно другим читателям.
type Store struct {
	mu sync.RWMutex

	areas         map[string]models.Area
	edges         map[edgeKey]models.Edge
	ambulances    map[uuid.UUID]*models.Ambulance
	professionals map[uuid.UUID]*models.Professional
	teams         map[uuid.UUID]*models.Team
	occurrences   map[uuid.UUID]*models.Occurrence
	attendances   map[uuid.UUID]*models.Attendance // ключ - id вызова
	history       map[uuid.UUID][]*models.HistoryEntry
	historySeq    int64
}

func NewStore() *Store {
	return &Store{
		areas:         make(map[string]models.Area),
		edges:         make(map[edgeKey]models.Edge),
		ambulances:    make(map[uuid.UUID]*models.Ambulance),
		professionals: make(map[uuid.UUID]*models.Professional),
		teams:         make(map[uuid.UUID]*models.Team),
		occurrences:   make(map[uuid.UUID]*models.Occurrence),
		attendances:   make(map[uuid.UUID]*models.Attendance),
		history:       make(map[uuid.UUID][]*models.HistoryEntry),
	}
}

type txKey struct{}

type txState struct {
	store *Store
	undo  []func()
}

func (tx *txState) onRollback(f func()) {
	if tx != nil {
		tx.undo = append(tx.undo, f)
	}
}

func (s *Store) txFrom(ctx context.Context) *txState {
	tx, ok := ctx.Value(txKey{}).(*txState)
	if ok && tx.store == s {
		return tx
	}
	return nil
}

// WithinTx выполняет fn под эксклюзивной блокировкой; при ошибке изменения
// откатываются в обратном порядке. Вложенный вызов выполняется в текущей транзакции.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txFrom(ctx) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txState{store: s}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		return err
	}
	return nil
}

func (s *Store) rlock(ctx context.Context) func() {
	if s.txFrom(ctx) != nil {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// lock возвращает текущую транзакцию (nil вне транзакции) и функцию разблокировки
func (s *Store) lock(ctx context.Context) (*txState, func()) {
	if tx := s.txFrom(ctx); tx != nil {
		return tx, func() {}
	}
	s.mu.Lock()
	return nil, s.mu.Unlock
}

func cloneAmbulance(a *models.Ambulance) *models.Ambulance {
	c := *a
	return &c
}

func cloneProfessional(p *models.Professional) *models.Professional {
	c := *p
	return &c
}

func cloneTeam(t *models.Team) *models.Team {
	c := *t
	if t.AmbulanceID != nil {
		id := *t.AmbulanceID
		c.AmbulanceID = &id
	}
	c.MemberIDs = append([]uuid.UUID(nil), t.MemberIDs...)
	return &c
}

func cloneOccurrence(o *models.Occurrence) *models.Occurrence {
	c := *o
	if o.ClosedAt != nil {
		t := *o.ClosedAt
		c.ClosedAt = &t
	}
	return &c
}

func cloneAttendance(a *models.Attendance) *models.Attendance {
	c := *a
	if a.TeamID != nil {
		id := *a.TeamID
		c.TeamID = &id
	}
	if a.ArrivedAt != nil {
		t := *a.ArrivedAt
		c.ArrivedAt = &t
	}
	if a.ActualMinutes != nil {
		m := *a.ActualMinutes
		c.ActualMinutes = &m
	}
	if a.OutsideSLA != nil {
		b := *a.OutsideSLA
		c.OutsideSLA = &b
	}
	c.Route = append([]string(nil), a.Route...)
	return &c
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/ambulance_dispatch/internal/models"
)

// AreaRepository определяет контракт хранения районов и рёбер графа
type AreaRepository interface {
	ListAreas(ctx context.Context) ([]models.Area, error)
	ListEdges(ctx context.Context) ([]models.Edge, error)
	UpsertArea(ctx context.Context, area *models.Area) error
	UpsertEdge(ctx context.Context, edge *models.Edge) error
}

// FleetRepository - реестр машин. Reserve и Release атомарны по id машины.
type FleetRepository interface {
	CreateAmbulance(ctx context.Context, ambulance *models.Ambulance) error
	GetAmbulance(ctx context.Context, id uuid.UUID) (*models.Ambulance, error)
	ListAmbulances(ctx context.Context) ([]*models.Ambulance, error)
	FindAvailableByType(ctx context.Context, t models.AmbulanceType) ([]*models.Ambulance, error)
	// Reserve переводит AVAILABLE -> BUSY; *apperror.AlreadyReservedError, если статус другой
	Reserve(ctx context.Context, id uuid.UUID) error
	// Release переводит BUSY -> status; повторный вызов с тем же статусом ничего не меняет
	Release(ctx context.Context, id uuid.UUID, status models.AmbulanceStatus) error
	// SetStatus меняет статус с from на to (административная операция)
	SetStatus(ctx context.Context, id uuid.UUID, from, to models.AmbulanceStatus) error
	DeleteAmbulance(ctx context.Context, id uuid.UUID) error
}

// RosterRepository - специалисты и экипажи
type RosterRepository interface {
	CreateProfessional(ctx context.Context, p *models.Professional) error
	GetProfessional(ctx context.Context, id uuid.UUID) (*models.Professional, error)
	ListProfessionals(ctx context.Context) ([]*models.Professional, error)
	UpdateProfessional(ctx context.Context, p *models.Professional) error
	DeleteProfessional(ctx context.Context, id uuid.UUID) error

	CreateTeam(ctx context.Context, team *models.Team) error
	UpdateTeam(ctx context.Context, team *models.Team) error
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context) ([]*models.Team, error)
	TeamsOnShift(ctx context.Context, shift models.Shift) ([]*models.Team, error)
}

// OccurrenceRepository - вызовы, выезды и история
type OccurrenceRepository interface {
	CreateOccurrence(ctx context.Context, o *models.Occurrence) error
	GetOccurrence(ctx context.Context, id uuid.UUID) (*models.Occurrence, error)
	// ListOccurrences; пустой status - все вызовы
	ListOccurrences(ctx context.Context, status models.OccurrenceStatus) ([]*models.Occurrence, error)
	// UpdateOccurrenceStatus сохраняет o, только если текущий статус равен from
	UpdateOccurrenceStatus(ctx context.Context, o *models.Occurrence, from models.OccurrenceStatus) error

	AppendHistory(ctx context.Context, entry *models.HistoryEntry) error
	ListHistory(ctx context.Context, occurrenceID uuid.UUID) ([]*models.HistoryEntry, error)

	CreateAttendance(ctx context.Context, a *models.Attendance) error
	// GetAttendanceByOccurrence возвращает nil, nil, если выезда нет
	GetAttendanceByOccurrence(ctx context.Context, occurrenceID uuid.UUID) (*models.Attendance, error)
	UpdateAttendance(ctx context.Context, a *models.Attendance) error
	// ListAttendances по времени выезда; нулевые границы не ограничивают выборку
	ListAttendances(ctx context.Context, from, to time.Time) ([]*models.Attendance, error)
	CountAttendancesByAmbulance(ctx context.Context, ambulanceID uuid.UUID) (int, error)
}

// Transactor выполняет fn в одной транзакции; ошибка fn откатывает все изменения.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DetailsCache - кеш карточки вызова. Get возвращает nil, nil при промахе.
// Version читается до загрузки из хранилища и передаётся в Set: запись, сделанная
// после Invalidate или InvalidateAll со старой версией, читателям не отдаётся.
type DetailsCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.OccurrenceDetails, error)
	Version(ctx context.Context, id uuid.UUID) (models.DetailsVersion, error)
	Set(ctx context.Context, details *models.OccurrenceDetails, version models.DetailsVersion) error
	// Invalidate сбрасывает карточку одного вызова
	Invalidate(ctx context.Context, id uuid.UUID) error
	// InvalidateAll сбрасывает все карточки (правки машин и экипажей)
	InvalidateAll(ctx context.Context) error
}

// Router считает кратчайшее расстояние между районами
type Router interface {
	HasArea(id string) bool
	ShortestDistance(from, to string) (float64, []string, error)
}

// Clock подменяется в тестах
type Clock func() time.Time

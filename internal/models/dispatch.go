package models

// Candidate - машина, прошедшая фильтры типа, SLA и наличия экипажа
type Candidate struct {
	Ambulance        *Ambulance `json:"ambulance"`
	Team             *Team      `json:"team"`
	Distance         float64    `json:"distance"`
	Route            []string   `json:"route"`
	EstimatedMinutes float64    `json:"estimated_minutes"`
}

// OccurrenceDetails - вызов вместе с выездом, экипажем и историей (для аудита)
type OccurrenceDetails struct {
	Occurrence *Occurrence     `json:"occurrence"`
	Attendance *Attendance     `json:"attendance,omitempty"`
	Ambulance  *Ambulance      `json:"ambulance,omitempty"`
	Team       *Team           `json:"team,omitempty"`
	History    []*HistoryEntry `json:"history"`
}

// DetailsVersion - поколения кеша карточки на момент чтения из хранилища.
// Occurrence растёт при переходах вызова, Resources - при правках машин и экипажей.
type DetailsVersion struct {
	Occurrence int64 `json:"occurrence"`
	Resources  int64 `json:"resources"`
}

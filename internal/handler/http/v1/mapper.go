package v1

import (
	"github.com/google/uuid"

	"github.com/shenikar/ambulance_dispatch/internal/models"
)

func ToOccurrenceModel(dto OpenOccurrenceRequest) *models.Occurrence {
	return &models.Occurrence{
		AreaID:       dto.AreaID,
		IncidentType: dto.IncidentType,
		Severity:     models.Severity(dto.Severity),
		Note:         dto.Note,
	}
}

func ToOccurrenceResponse(o *models.Occurrence) OccurrenceResponse {
	return OccurrenceResponse{
		ID:                  o.ID,
		AreaID:              o.AreaID,
		IncidentType:        o.IncidentType,
		Severity:            string(o.Severity),
		Status:              string(o.Status),
		OpenedAt:            o.OpenedAt,
		ClosedAt:            o.ClosedAt,
		Note:                o.Note,
		CancelJustification: o.CancelJustification,
	}
}

func ToOccurrenceResponses(list []*models.Occurrence) []OccurrenceResponse {
	out := make([]OccurrenceResponse, len(list))
	for i, o := range list {
		out[i] = ToOccurrenceResponse(o)
	}
	return out
}

func ToCandidateResponses(list []*models.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, len(list))
	for i, c := range list {
		out[i] = CandidateResponse{
			AmbulanceID:      c.Ambulance.ID,
			Plate:            c.Ambulance.Plate,
			Type:             string(c.Ambulance.Type),
			HomeAreaID:       c.Ambulance.HomeAreaID,
			Distance:         c.Distance,
			EstimatedMinutes: c.EstimatedMinutes,
			Route:            c.Route,
		}
		if c.Team != nil {
			id := c.Team.ID
			out[i].TeamID = &id
			out[i].TeamDescription = c.Team.Description
		}
	}
	return out
}

func ToAttendanceResponse(a *models.Attendance) *AttendanceResponse {
	if a == nil {
		return nil
	}
	return &AttendanceResponse{
		ID:               a.ID,
		OccurrenceID:     a.OccurrenceID,
		AmbulanceID:      a.AmbulanceID,
		TeamID:           a.TeamID,
		DispatchedAt:     a.DispatchedAt,
		ArrivedAt:        a.ArrivedAt,
		Distance:         a.Distance,
		Route:            a.Route,
		EstimatedMinutes: a.EstimatedMinutes,
		ActualMinutes:    a.ActualMinutes,
		SLAMaxMinutes:    a.SLAMaxMinutes,
		OutsideSLA:       a.OutsideSLA,
	}
}

func ToDetailsResponse(d *models.OccurrenceDetails) OccurrenceDetailsResponse {
	resp := OccurrenceDetailsResponse{
		Occurrence: ToOccurrenceResponse(d.Occurrence),
		Attendance: ToAttendanceResponse(d.Attendance),
		History:    make([]HistoryResponse, len(d.History)),
	}
	if d.Ambulance != nil {
		a := ToAmbulanceResponse(d.Ambulance)
		resp.Ambulance = &a
	}
	if d.Team != nil {
		t := ToTeamResponse(d.Team)
		resp.Team = &t
	}
	for i, h := range d.History {
		resp.History[i] = HistoryResponse{
			PreviousStatus: string(h.PreviousStatus),
			NewStatus:      string(h.NewStatus),
			ChangedAt:      h.ChangedAt,
			Note:           h.Note,
		}
	}
	return resp
}

func ToAmbulanceModel(dto CreateAmbulanceRequest) *models.Ambulance {
	return &models.Ambulance{
		Plate:      dto.Plate,
		Type:       models.AmbulanceType(dto.Type),
		HomeAreaID: dto.HomeAreaID,
		Status:     models.AmbulanceStatus(dto.Status),
	}
}

func ToAmbulanceResponse(a *models.Ambulance) AmbulanceResponse {
	return AmbulanceResponse{
		ID:         a.ID,
		Plate:      a.Plate,
		Type:       string(a.Type),
		Status:     string(a.Status),
		HomeAreaID: a.HomeAreaID,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func ToAmbulanceResponses(list []*models.Ambulance) []AmbulanceResponse {
	out := make([]AmbulanceResponse, len(list))
	for i, a := range list {
		out[i] = ToAmbulanceResponse(a)
	}
	return out
}

// ToProfessionalModel: если active не передан, специалист активен
func ToProfessionalModel(dto CreateProfessionalRequest) *models.Professional {
	active := true
	if dto.Active != nil {
		active = *dto.Active
	}
	return &models.Professional{
		Name:    dto.Name,
		Role:    models.Role(dto.Role),
		Shift:   models.Shift(dto.Shift),
		Active:  active,
		Contact: dto.Contact,
	}
}

func ToProfessionalUpdateModel(id uuid.UUID, dto UpdateProfessionalRequest) *models.Professional {
	return &models.Professional{
		ID:      id,
		Name:    dto.Name,
		Role:    models.Role(dto.Role),
		Shift:   models.Shift(dto.Shift),
		Active:  *dto.Active,
		Contact: dto.Contact,
	}
}

func ToProfessionalResponses(list []*models.Professional) []ProfessionalResponse {
	out := make([]ProfessionalResponse, len(list))
	for i, p := range list {
		out[i] = ToProfessionalResponse(p)
	}
	return out
}

func ToProfessionalResponse(p *models.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ID:      p.ID,
		Name:    p.Name,
		Role:    string(p.Role),
		Shift:   string(p.Shift),
		Active:  p.Active,
		Contact: p.Contact,
	}
}

func ToTeamModel(dto TeamRequest) *models.Team {
	return &models.Team{
		Description: dto.Description,
		Shift:       models.Shift(dto.Shift),
		AmbulanceID: dto.AmbulanceID,
		MemberIDs:   dto.MemberIDs,
	}
}

func ToTeamResponse(t *models.Team) TeamResponse {
	members := t.MemberIDs
	if members == nil {
		members = []uuid.UUID{}
	}
	return TeamResponse{
		ID:          t.ID,
		Description: t.Description,
		Shift:       string(t.Shift),
		AmbulanceID: t.AmbulanceID,
		MemberIDs:   members,
	}
}

func ToTeamResponses(list []*models.Team) []TeamResponse {
	out := make([]TeamResponse, len(list))
	for i, t := range list {
		out[i] = ToTeamResponse(t)
	}
	return out
}

func ToTopology(dto TopologyRequest) ([]models.Area, []models.Edge) {
	areas := make([]models.Area, len(dto.Areas))
	for i, a := range dto.Areas {
		areas[i] = models.Area{ID: a.ID, Name: a.Name}
	}
	edges := make([]models.Edge, len(dto.Edges))
	for i, e := range dto.Edges {
		edges[i] = models.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}
	return areas, edges
}

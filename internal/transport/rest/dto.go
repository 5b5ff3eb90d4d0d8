package rest

import (
	"time"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

type accountResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type authResponse struct {
	AccessToken string          `json:"accessToken"`
	Account     accountResponse `json:"account"`
}

type processResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Offense    string    `json:"offense"`
	LastUpdate time.Time `json:"lastUpdate"`
	Denounced  string    `json:"denounced"`
	Denouncer  string    `json:"denouncer"`
	Province   string    `json:"province"`
	Carton     string    `json:"carton"`
	AccountID  string    `json:"accountId"`
}

type processAggregateResponse struct {
	processResponse
	Timeline     *timelineResponse     `json:"timeline"`
	Events       []eventResponse       `json:"events"`
	Observations []observationResponse `json:"observations"`
}

type timelineResponse struct {
	ID           string `json:"id"`
	ProcessID    string `json:"processId"`
	NumberEvents int    `json:"numberEvents"`
}

type eventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Order       int       `json:"order"`
	TimelineID  string    `json:"timelineId"`
}

type observationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ProcessID string `json:"processId"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID.String(),
		Username:  a.Username,
		Email:     a.Email,
		Phone:     a.Phone,
		Role:      a.Role.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toProcessResponse(p *domain.Process) processResponse {
	return processResponse{
		ID:         p.ID.String(),
		Title:      p.Title,
		Type:       p.Type,
		Offense:    p.Offense,
		LastUpdate: p.LastUpdate,
		Denounced:  p.Denounced,
		Denouncer:  p.Denouncer,
		Province:   p.Province,
		Carton:     p.Carton,
		AccountID:  p.AccountID.String(),
	}
}

func toProcessList(list []domain.Process) []processResponse {
	out := make([]processResponse, len(list))
	for i := range list {
		out[i] = toProcessResponse(&list[i])
	}
	return out
}

func toAggregateResponse(agg *domain.ProcessAggregate) processAggregateResponse {
	resp := processAggregateResponse{
		processResponse: toProcessResponse(&agg.Process),
		Events:          toEventList(agg.Events),
		Observations:    toObservationList(agg.Observations),
	}
	if agg.Timeline != nil {
		tl := toTimelineResponse(agg.Timeline)
		resp.Timeline = &tl
	}
	return resp
}

func toTimelineResponse(t *domain.Timeline) timelineResponse {
	return timelineResponse{
		ID:           t.ID.String(),
		ProcessID:    t.ProcessID.String(),
		NumberEvents: t.NumberEvents,
	}
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		Order:       e.Order,
		TimelineID:  e.TimelineID.String(),
	}
}

func toEventList(list []domain.Event) []eventResponse {
	out := make([]eventResponse, len(list))
	for i := range list {
		out[i] = toEventResponse(&list[i])
	}
	return out
}

func toObservationResponse(o *domain.Observation) observationResponse {
	return observationResponse{
		ID:        o.ID.String(),
		Title:     o.Title,
		Content:   o.Content,
		ProcessID: o.ProcessID.String(),
	}
}

func toObservationList(list []domain.Observation) []observationResponse {
	out := make([]observationResponse, len(list))
	for i := range list {
		out[i] = toObservationResponse(&list[i])
	}
	return out
}

package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"gateops/internal/usecase/queries"
)

type RequestResponse struct {
	ID            uuid.UUID  `json:"id"`
	Kind          string     `json:"kind"`
	Subject       string     `json:"subject"`
	Branch        string     `json:"branch"`
	Status        string     `json:"status"`
	Purpose       *string    `json:"purpose,omitempty"`
	PersonToVisit *string    `json:"person_to_visit,omitempty"`
	PlateNumber   *string    `json:"plate_number,omitempty"`
	TruckType     *string    `json:"truck_type,omitempty"`
	TruckBrand    *string    `json:"truck_brand,omitempty"`
	ClientName    *string    `json:"client_name,omitempty"`
	SubmittedAt   time.Time  `json:"submitted_at"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	var resp RequestResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRequestList(views []*queries.RequestView) []*RequestResponse {
	res := make([]*RequestResponse, len(views))
	for i, v := range views {
		res[i] = FromRequestView(v)
	}
	return res
}

type VisitResponse struct {
	ID              uuid.UUID  `json:"id"`
	Kind            string     `json:"kind"`
	RequestID       *uuid.UUID `json:"request_id,omitempty"`
	ClientID        *uuid.UUID `json:"client_id,omitempty"`
	Subject         string     `json:"subject"`
	Branch          string     `json:"branch"`
	Bay             *string    `json:"bay,omitempty"`
	TimeIn          time.Time  `json:"time_in"`
	TimeOut         *time.Time `json:"time_out,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
}

func FromVisitView(v *queries.VisitView) *VisitResponse {
	var resp VisitResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromVisitList(views []*queries.VisitView) []*VisitResponse {
	res := make([]*VisitResponse, len(views))
	for i, v := range views {
		res[i] = FromVisitView(v)
	}
	return res
}

type ClientResponse struct {
	ID          uuid.UUID `json:"id"`
	ClientName  string    `json:"client_name"`
	PlateNumber string    `json:"plate_number"`
	TruckType   string    `json:"truck_type"`
	TruckBrand  string    `json:"truck_brand"`
	Branch      string    `json:"branch"`
}

func FromClientView(v *queries.ClientView) *ClientResponse {
	var resp ClientResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromClientList(views []*queries.ClientView) []*ClientResponse {
	res := make([]*ClientResponse, len(views))
	for i, v := range views {
		res[i] = FromClientView(v)
	}
	return res
}

type BayAvailabilityResponse struct {
	Branch    string   `json:"branch"`
	Available []string `json:"available"`
}

type BranchStatsResponse struct {
	Branch          string `json:"branch"`
	PendingRequests int    `json:"pending_requests"`
	ActiveVisits    int    `json:"active_visits"`
	OccupiedBays    int    `json:"occupied_bays"`
	FreeBays        int    `json:"free_bays"`
}

func FromBranchStats(v *queries.BranchStatsView) *BranchStatsResponse {
	var resp BranchStatsResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

type DurationResponse struct {
	Minutes int `json:"minutes"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

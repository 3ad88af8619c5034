package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RequestView struct {
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
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type VisitView struct {
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
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ClientView struct {
	ID          uuid.UUID `json:"id"`
	ClientName  string    `json:"client_name"`
	PlateNumber string    `json:"plate_number"`
	TruckType   string    `json:"truck_type"`
	TruckBrand  string    `json:"truck_brand"`
	Branch      string    `json:"branch"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BranchStatsView struct {
	Branch          string `json:"branch"`
	PendingRequests int    `json:"pending_requests"`
	ActiveVisits    int    `json:"active_visits"`
	OccupiedBays    int    `json:"occupied_bays"`
	FreeBays        int    `json:"free_bays"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Branch   *string   `json:"branch,omitempty"`
	IsActive bool      `json:"is_active"`
}

type RequestFilters struct {
	Branch *string
	Status *string
	Kind   *string
}

type VisitFilters struct {
	Branch     *string
	ActiveOnly bool
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}

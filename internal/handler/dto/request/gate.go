package request

import (
	"gateops/internal/usecase/commands"
)

type SubmitAppointmentRequest struct {
	Subject       string `json:"subject" binding:"required,max=255"`
	Branch        string `json:"branch" binding:"required,max=100"`
	Purpose       string `json:"purpose" binding:"required,max=500"`
	PersonToVisit string `json:"person_to_visit" binding:"omitempty,max=255"`
}

func (r *SubmitAppointmentRequest) ToInput() commands.SubmitAppointmentInput {
	return commands.SubmitAppointmentInput{
		Subject:       r.Subject,
		Branch:        r.Branch,
		Purpose:       r.Purpose,
		PersonToVisit: r.PersonToVisit,
	}
}

type SubmitTruckRequest struct {
	Subject     string `json:"subject" binding:"omitempty,max=255"`
	Branch      string `json:"branch" binding:"required,max=100"`
	PlateNumber string `json:"plate_number" binding:"required,max=20"`
	TruckType   string `json:"truck_type" binding:"omitempty,max=100"`
	TruckBrand  string `json:"truck_brand" binding:"omitempty,max=100"`
	ClientName  string `json:"client_name" binding:"required,max=255"`
}

func (r *SubmitTruckRequest) ToInput() commands.SubmitTruckInput {
	return commands.SubmitTruckInput{
		Subject:     r.Subject,
		Branch:      r.Branch,
		PlateNumber: r.PlateNumber,
		TruckType:   r.TruckType,
		TruckBrand:  r.TruckBrand,
		ClientName:  r.ClientName,
	}
}

// AcceptRequest carries the bay for truck accepts; appointments leave it
// empty.
type AcceptRequest struct {
	Bay *string `json:"bay" binding:"omitempty,max=10"`
}

type WalkInRequest struct {
	Subject string `json:"subject" binding:"required,max=255"`
	Branch  string `json:"branch" binding:"required,max=100"`
}

func (r *WalkInRequest) ToInput() commands.WalkInInput {
	return commands.WalkInInput{
		Subject: r.Subject,
		Branch:  r.Branch,
	}
}

type TruckLogRequest struct {
	PlateNumber string `json:"plate_number" binding:"required,max=20"`
	Branch      string `json:"branch" binding:"required,max=100"`
	Bay         string `json:"bay" binding:"required,max=10"`
}

func (r *TruckLogRequest) ToInput() commands.TruckLogInput {
	return commands.TruckLogInput{
		PlateNumber: r.PlateNumber,
		Branch:      r.Branch,
		BayCode:     r.Bay,
	}
}

// DurationRequest computes dwell minutes from wall-clock fields. time_out_date
// is only set when the visit crossed midnight.
type DurationRequest struct {
	Date        string `json:"date" binding:"required"`
	TimeIn      string `json:"time_in" binding:"required"`
	TimeOut     string `json:"time_out" binding:"required"`
	TimeOutDate string `json:"time_out_date" binding:"omitempty"`
}

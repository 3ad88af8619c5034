package commands

import (
	"gateops/internal/domain/bay"
	"gateops/internal/domain/request"
	"gateops/internal/domain/visit"
	"gateops/internal/usecase/shared"
)

func reconstructRequest(snap *shared.RequestSnapshot) (*request.Request, error) {
	kind, err := request.NewKind(snap.Kind)
	if err != nil {
		return nil, err
	}
	status, err := request.NewStatus(snap.Status)
	if err != nil {
		return nil, err
	}

	var appointment *request.AppointmentDetails
	var truck *request.TruckDetails
	switch kind {
	case request.KindAppointment:
		details, derr := request.NewAppointmentDetails(deref(snap.Purpose), deref(snap.PersonToVisit))
		if derr != nil {
			return nil, derr
		}
		appointment = &details
	case request.KindTruck:
		details, derr := request.NewTruckDetails(deref(snap.PlateNumber), deref(snap.TruckType), deref(snap.TruckBrand), deref(snap.ClientName))
		if derr != nil {
			return nil, derr
		}
		truck = &details
	}

	return request.ReconstructRequest(
		snap.ID, kind, snap.Subject, snap.Branch, status,
		appointment, truck,
		snap.SubmittedAt, snap.DecidedAt, snap.CreatedAt, snap.UpdatedAt,
	), nil
}

func reconstructVisit(snap *shared.VisitSnapshot) (*visit.Visit, error) {
	kind, err := request.NewKind(snap.Kind)
	if err != nil {
		return nil, err
	}

	var code *bay.Code
	if snap.Bay != nil {
		c, cerr := bay.NewCode(*snap.Bay)
		if cerr != nil {
			return nil, cerr
		}
		code = &c
	}

	return visit.ReconstructVisit(
		snap.ID, kind, snap.RequestID, snap.ClientID,
		snap.Subject, snap.Branch, code,
		snap.TimeIn, snap.TimeOut, snap.DurationMinutes,
		snap.CreatedAt, snap.UpdatedAt,
	), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package request

import (
	"errors"
	"strings"
)

var (
	ErrInvalidKind       = errors.New("invalid request kind")
	ErrInvalidStatus     = errors.New("invalid request status")
	ErrEmptySubject      = errors.New("subject must not be empty")
	ErrEmptyBranch       = errors.New("branch must not be empty")
	ErrMissingPlate      = errors.New("truck request requires a plate number")
	ErrMissingPurpose    = errors.New("appointment request requires a purpose")
	ErrDetailsKindMixup  = errors.New("request details do not match request kind")
	ErrInvalidTransition = errors.New("invalid request transition")
)

// AppointmentDetails carries the visitor-facing fields of an appointment request.
type AppointmentDetails struct {
	Purpose       string
	PersonToVisit string
}

func NewAppointmentDetails(purpose, personToVisit string) (AppointmentDetails, error) {
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return AppointmentDetails{}, ErrMissingPurpose
	}
	return AppointmentDetails{
		Purpose:       purpose,
		PersonToVisit: strings.TrimSpace(personToVisit),
	}, nil
}

// TruckDetails carries the registration fields of a truck request.
type TruckDetails struct {
	PlateNumber string
	TruckType   string
	TruckBrand  string
	ClientName  string
}

func NewTruckDetails(plateNumber, truckType, truckBrand, clientName string) (TruckDetails, error) {
	plateNumber = normalizePlate(plateNumber)
	if plateNumber == "" {
		return TruckDetails{}, ErrMissingPlate
	}
	return TruckDetails{
		PlateNumber: plateNumber,
		TruckType:   strings.TrimSpace(truckType),
		TruckBrand:  strings.TrimSpace(truckBrand),
		ClientName:  strings.TrimSpace(clientName),
	}, nil
}

// Plate numbers compare case-insensitively; stored upper case.
func normalizePlate(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

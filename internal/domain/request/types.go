package request

type Kind string

const (
	KindAppointment Kind = "appointment"
	KindTruck       Kind = "truck"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindAppointment, KindTruck:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusDone     Status = "done"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDone:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Rejected and done requests never transition again.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusDone
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

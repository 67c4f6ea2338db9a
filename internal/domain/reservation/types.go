package reservation

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}

// Label is the display form used by the status breakdown chart.
func (s Status) Label() string {
	if s == StatusActive {
		return "Active"
	}
	return "Completed"
}

package spot

type Status string

const (
	StatusAvailable Status = "A"
	StatusOccupied  Status = "O"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied:
		return true
	default:
		return false
	}
}

func (s Status) Label() string {
	if s == StatusOccupied {
		return "Occupied"
	}
	return "Available"
}

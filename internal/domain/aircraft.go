package domain

// Aircraft is identified by its unique name. Immutable after creation.
type Aircraft struct {
	Name     string
	Capacity int
}

func NewAircraft(name string, capacity int) (*Aircraft, error) {
	if name == "" {
		return nil, &InconsistentDataError{Reason: "aircraft name is required"}
	}
	if capacity <= 0 {
		return nil, &InconsistentDataError{Reason: "aircraft capacity must be positive"}
	}
	return &Aircraft{Name: name, Capacity: capacity}, nil
}

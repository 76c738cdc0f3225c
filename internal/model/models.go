package model

// PetModel is the application-facing view of a pet record.
// ID is assigned by the store; a zero ID means "not yet persisted".
type PetModel struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Race        string `json:"race"`
	Birthdate   string `json:"birthdate"` // ISO date, free-form
	Image       string `json:"image"`     // base64 data-URI
}

// PetResponse is what read operations publish: a success flag and the
// matching pets. A lookup that finds nothing is a successful empty response.
type PetResponse struct {
	Success bool       `json:"success"`
	Data    []PetModel `json:"data"`
}

// First returns the first pet in the response, if any.
func (r *PetResponse) First() (PetModel, bool) {
	if r == nil || len(r.Data) == 0 {
		return PetModel{}, false
	}
	return r.Data[0], true
}

// Contains reports whether a pet with the given ID is part of the response.
func (r *PetResponse) Contains(id int64) bool {
	if r == nil {
		return false
	}
	for _, p := range r.Data {
		if p.ID == id {
			return true
		}
	}
	return false
}

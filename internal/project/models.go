package project

import "time"

// Project is the persistent project entity. ID and CreatedAt are assigned by
// the store on create and never taken from client input.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Input carries the client-writable fields of a Project.
type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Project returns an unsaved Project holding only the writable fields.
func (in Input) Project() *Project {
	return &Project{Name: in.Name, Description: in.Description}
}

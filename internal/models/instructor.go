package models

// Instructor represents a course instructor
type Instructor struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CreateInstructorRequest represents a request to create an instructor.
// Updates are full-replace, so the same shape is used for PUT.
type CreateInstructorRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

package models

import "time"

// Course represents a course in the catalog.
// InstructorID references an Instructor; the store does not enforce the
// reference, it is validated at write time by the service layer.
type Course struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	InstructorID int       `json:"instructor"`
	Category     string    `json:"category"`
	Thumbnail    string    `json:"thumbnail"`
	Video        string    `json:"video"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CourseResponse represents a course enriched with its instructor's data.
// InstructorInfo is nil when the referenced instructor no longer exists.
type CourseResponse struct {
	ID             int         `json:"id"`
	Title          string      `json:"title"`
	InstructorID   int         `json:"instructor"`
	Category       string      `json:"category"`
	Thumbnail      string      `json:"thumbnail"`
	Video          string      `json:"video"`
	Description    string      `json:"description"`
	CreatedAt      time.Time   `json:"createdAt"`
	InstructorInfo *Instructor `json:"instructor_info,omitempty"`
}

// CreateCourseRequest represents a request to create a course.
// Updates are full-replace, so the same shape is used for PUT.
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Instructor  int    `json:"instructor"`
	Category    string `json:"category"`
	Thumbnail   string `json:"thumbnail"`
	Video       string `json:"video"`
	Description string `json:"description"`
}

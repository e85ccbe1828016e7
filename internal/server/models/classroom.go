package models

import "time"

type Classroom struct {
	ID        int64
	Name      string
	TeacherID int64
	CreatedAt time.Time
}

// ClassroomSummary is a classroom row joined with its student count,
// as returned by the teacher's classroom listing.
type ClassroomSummary struct {
	ID             int64
	Name           string
	NumberStudents int64
}

package models

import "time"

type Student struct {
	ID          int64
	Name        string
	Username    string
	ClassroomID int64
	CreatedAt   time.Time
}

package models

import "time"

type Survey struct {
	ID         int64
	SurveyCode string
	StudentID  int64
	TeacherID  int64
	Score      int64
	CreatedAt  time.Time
}

package models

import "time"

type RefreshToken struct {
	ID        int64
	UserID    int64
	Role      string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

package model

import (
	"time"
)

type UserProfile struct {
	ID        string    `json:"id,omitempty"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName,omitempty"`
	Email     string    `json:"email"`
	JoinDate  time.Time `json:"joinDate,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

package models

import "time"

type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	ModelPreference string    `json:"model_preference"`
	CreatedAt       time.Time `json:"created_at"`
}

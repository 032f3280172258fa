package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a follower identity. A user owns registered mobile devices and
// configured reaction rules per application they follow.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

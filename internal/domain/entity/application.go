package entity

import (
	"time"

	"github.com/google/uuid"
)

// Application is a registered message source. Its follower set is a
// many-to-many relation materialized through the follower repository.
type Application struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

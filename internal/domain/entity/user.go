package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// HashedPassword holds a bcrypt hash; plaintext never leaves the signup path.
type User struct {
	ID             int64
	Name           string
	Email          string
	HashedPassword string
	Tier           int
	AvatarURL      string
	CreatedAt      time.Time
}

// DefaultTier is assigned when signup does not specify a plan.
const DefaultTier = 1

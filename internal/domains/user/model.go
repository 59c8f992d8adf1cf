package user

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is an account allowed into the authoring area. The site has a
// single author in practice, but nothing depends on that.
type AdminUser struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	CreatedAt    time.Time
}

package repositories

import (
	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/models"
)

// ownerColumns is the owner-profile projection joined into enriched rows.
// Every recipe that attaches an owner/author selects these four aliases.
type ownerColumns struct {
	OwnerUserID   uuid.UUID `db:"owner_user_id"`
	OwnerUsername string    `db:"owner_username"`
	OwnerFullName string    `db:"owner_full_name"`
	OwnerAvatar   string    `db:"owner_avatar"`
}

func (c ownerColumns) ownerProfile() models.UserProfile {
	return models.UserProfile{
		UserID:   c.OwnerUserID,
		Username: c.OwnerUsername,
		FullName: c.OwnerFullName,
		Avatar:   c.OwnerAvatar,
	}
}

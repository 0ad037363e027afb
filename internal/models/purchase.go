package models

import (
	"time"

	"github.com/google/uuid"
)

// Purchase links a user to an EA they own. The composite unique index is what
// makes the ownership set a set: concurrent duplicate appends hit the
// constraint instead of producing a second row.
type Purchase struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_purchases_user_ea" json:"userId"`
	EAID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_purchases_user_ea" json:"eaId"`
	CreatedAt time.Time `json:"createdAt"`
}

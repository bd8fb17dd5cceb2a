// internal/model/token.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountVerificationToken activates a freshly registered learner.
type AccountVerificationToken struct {
	Token     string    `gorm:"primaryKey"`
	LearnerID uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (AccountVerificationToken) TableName() string {
	return "account_verification_tokens"
}

type PasswordResetToken struct {
	Token     string    `gorm:"primaryKey"`
	LearnerID uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

package domain

import "github.com/google/uuid"

// UserID identifies an authenticated API caller. Tokens carry it as the JWT
// subject.
type UserID uuid.UUID

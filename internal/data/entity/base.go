package entity

import (
	"time"

	"github.com/google/uuid"
)

type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

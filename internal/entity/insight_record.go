package entity

import (
	"time"

	"github.com/google/uuid"
)

// InsightRecord is a persisted insight envelope for data transfer between
// layers. UserID is nil for anonymous requests; persistence accepts a null
// user scope.
type InsightRecord struct {
	ID            uuid.UUID      `json:"id"`
	UserID        *string        `json:"user_id,omitempty"`
	Kind          string         `json:"kind"`
	RequestParams map[string]any `json:"request_parameters,omitempty"`
	Payload       map[string]any `json:"payload"`
	Origin        string         `json:"origin"`
	Confidence    int            `json:"confidence"`
	CreatedAt     time.Time      `json:"created_at"`
}

package order

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s is part of the status domain. Transitions are
// admin-driven and unrestricted within the domain.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order is one checkout line persisted as its own row. Rows created by the
// same submission share GroupID.
type Order struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	GroupID     uuid.UUID `json:"order_group_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderUser is the buyer identity joined into the admin listing.
type OrderUser struct {
	TelegramID int64   `json:"telegram_id"`
	Username   *string `json:"username,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Language   string  `json:"language"`
}

type OrderWithUser struct {
	Order
	User OrderUser `json:"user"`
}

// NewLine is a to-be-persisted order row, already denormalized.
type NewLine struct {
	ProductName string
	Price       float64
}

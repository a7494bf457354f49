package order

import (
	"time"

	"rentalhub/internal/core/domain/model/kernel"
)

// DefaultUpdatedBy is recorded on audit rows when the request did not name
// the updating actor.
const DefaultUpdatedBy = "admin"

// HistoryRecord is one append-only entry in the order status audit log.
// Exactly one record is written per status-bearing update; records are never
// mutated and only disappear through the database's cascade on order delete.
type HistoryRecord struct {
	OrderID   kernel.UUID
	Status    Status
	Notes     string
	UpdatedBy string
	CreatedAt time.Time
}

// NewHistoryRecord builds an audit entry for a status change.
// An empty updatedBy defaults to DefaultUpdatedBy.
func NewHistoryRecord(orderID kernel.UUID, status Status, notes, updatedBy string, now time.Time) HistoryRecord {
	if updatedBy == "" {
		updatedBy = DefaultUpdatedBy
	}
	return HistoryRecord{
		OrderID:   orderID,
		Status:    status,
		Notes:     notes,
		UpdatedBy: updatedBy,
		CreatedAt: now,
	}
}

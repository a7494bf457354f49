package order

import "strings"

// Status is an order's fulfilment state. Values are stored lower-case but
// compared case-insensitively because they originate from dashboard forms.
//
// The expected progression is
//
//	pending -> confirmed -> processing -> shipped -> delivered
//
// with cancelled and rejected as terminal side exits. The progression is not
// enforced: admins may move an order to any status to correct mistakes.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRejected   Status = "rejected"
)

// PaymentStatus is the payment sub-state carried independently of Status.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentCancelled PaymentStatus = "cancelled"
)

// statusEmojis maps each known status to the marker used in notification
// e-mail subjects. Unknown statuses fall back to the package emoji.
var statusEmojis = map[Status]string{
	StatusPending:    "⏳",
	StatusConfirmed:  "✓",
	StatusProcessing: "⚙️",
	StatusShipped:    "🚚",
	StatusDelivered:  "✅",
	StatusCancelled:  "❌",
	StatusRejected:   "❌",
}

// Canonical returns the lower-cased form of the status.
func (s Status) Canonical() Status {
	return Status(strings.ToLower(string(s)))
}

// IsCancelled reports whether the status is "cancelled", ignoring case.
func (s Status) IsCancelled() bool {
	return strings.EqualFold(string(s), string(StatusCancelled))
}

// Emoji returns the subject-line marker for the status, "📦" when unknown.
func (s Status) Emoji() string {
	if e, ok := statusEmojis[s.Canonical()]; ok {
		return e
	}
	return "📦"
}

func (s Status) String() string {
	return string(s)
}

func (p PaymentStatus) String() string {
	return string(p)
}

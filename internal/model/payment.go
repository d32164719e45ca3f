package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods and statuses accepted by the ledger.
const (
	PaymentMethodCash = "CASH"
	PaymentMethodUPI  = "UPI"
	PaymentMethodCard = "CARD"

	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

// Payment is an additive ledger entry against a session. Multiple partial
// payments per session are allowed; recording a payment never mutates the
// session's totals or status.
type Payment struct {
	ID                   uint64          // payments.id
	SessionID            uint64          // payments.session_id
	AmountPaid           decimal.Decimal // payments.amount_paid
	PaymentMethod        string          // payments.payment_method
	PaymentStatus        string          // payments.payment_status
	TransactionReference *string         // payments.transaction_reference (nullable)
	CreatedBy            *uint64         // payments.created_by (nullable)
	UpdatedBy            *uint64         // payments.updated_by (nullable)
	CreatedAt            time.Time       // payments.created_at
	UpdatedAt            time.Time       // payments.updated_at
	Archive              bool            // payments.archive
}

// ValidPaymentMethod reports whether m is one of CASH, UPI or CARD.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodCash || m == PaymentMethodUPI || m == PaymentMethodCard
}

// ValidPaymentStatus reports whether s is one of PENDING, COMPLETED or FAILED.
func ValidPaymentStatus(s string) bool {
	return s == PaymentPending || s == PaymentCompleted || s == PaymentFailed
}

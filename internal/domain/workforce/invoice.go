package workforce

import (
	"fmt"
	"strings"
	"time"

	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "Draft"
	InvoiceStatusSent  InvoiceStatus = "Sent"
	InvoiceStatusPaid  InvoiceStatus = "Paid"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid:
		return true
	}
	return false
}

func (s InvoiceStatus) rank() int {
	switch s {
	case InvoiceStatusDraft:
		return 0
	case InvoiceStatusSent:
		return 1
	case InvoiceStatusPaid:
		return 2
	}
	return -1
}

// CanTransitionTo allows only forward moves: Draft -> Sent -> Paid, or Draft
// straight to Paid. Staying in the same status is allowed.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return next.rank() >= s.rank()
}

type Invoice struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	VendorID    uint            `gorm:"not null;index" json:"vendor_id"`
	Month       string          `gorm:"size:20;not null" json:"month"`
	TotalAmount float64         `gorm:"not null" json:"total_amount"`
	Status      InvoiceStatus   `gorm:"size:20;default:'Draft'" json:"status"`
	DueDate     *datatypes.Date `json:"due_date"`
	SentDate    *datatypes.Date `json:"sent_date"`
	PaidDate    *datatypes.Date `json:"paid_date"`

	Vendor *Vendor `gorm:"foreignKey:VendorID" json:"-"`
}

func (Invoice) TableName() string {
	return "invoice"
}

// Transition moves the invoice to next and stamps the matching date with on.
func (i *Invoice) Transition(next InvoiceStatus, on time.Time) error {
	if !i.Status.CanTransitionTo(next) {
		return fmt.Errorf("invoice %d: cannot move from %s to %s", i.ID, i.Status, next)
	}
	day := datatypes.Date(on)
	switch next {
	case InvoiceStatusSent:
		if i.SentDate == nil {
			i.SentDate = &day
		}
	case InvoiceStatusPaid:
		if i.SentDate == nil {
			i.SentDate = &day
		}
		if i.PaidDate == nil {
			i.PaidDate = &day
		}
	}
	i.Status = next
	return nil
}

func (i *Invoice) Validate() error {
	switch {
	case i.VendorID == 0:
		return dberr.Missing("vendor_id")
	case strings.TrimSpace(i.Month) == "":
		return dberr.Missing("month")
	}
	if !i.Status.Valid() {
		return fmt.Errorf("invalid invoice status %q", i.Status)
	}
	return nil
}

func (i *Invoice) BeforeSave(tx *gorm.DB) error {
	if i.Status == "" {
		i.Status = InvoiceStatusDraft
	}
	return i.Validate()
}

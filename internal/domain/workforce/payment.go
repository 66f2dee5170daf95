package workforce

import (
	"time"

	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Payment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	InvoiceID uint           `gorm:"not null;index" json:"invoice_id"`
	Amount    float64        `gorm:"not null" json:"amount"`
	PaidOn    datatypes.Date `json:"paid_on"`

	Invoice *Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

func (Payment) TableName() string {
	return "payment"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.InvoiceID == 0 {
		return dberr.Missing("invoice_id")
	}
	if time.Time(p.PaidOn).IsZero() {
		p.PaidOn = datatypes.Date(time.Now().UTC())
	}
	return nil
}

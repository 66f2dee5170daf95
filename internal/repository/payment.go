package repository

import (
	"github.com/linskybing/bizportal/internal/domain/workforce"
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

type PaymentRepo interface {
	CreatePayment(p *workforce.Payment) error
	ListPaymentsByInvoice(invoiceID uint) ([]workforce.Payment, error)
	SumPaymentsByInvoice(invoiceID uint) (float64, error)
	WithTx(tx *gorm.DB) PaymentRepo
}

type DBPaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *DBPaymentRepo {
	return &DBPaymentRepo{
		db: db,
	}
}

func (r *DBPaymentRepo) CreatePayment(p *workforce.Payment) error {
	return dberr.Translate(r.db.Omit("Invoice").Create(p).Error)
}

func (r *DBPaymentRepo) ListPaymentsByInvoice(invoiceID uint) ([]workforce.Payment, error) {
	var payments []workforce.Payment
	err := r.db.Where("invoice_id = ?", invoiceID).Order("paid_on").Order("id").Find(&payments).Error
	return payments, err
}

func (r *DBPaymentRepo) SumPaymentsByInvoice(invoiceID uint) (float64, error) {
	var total float64
	err := r.db.Model(&workforce.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("invoice_id = ?", invoiceID).
		Scan(&total).Error
	return total, err
}

func (r *DBPaymentRepo) WithTx(tx *gorm.DB) PaymentRepo {
	if tx == nil {
		return r
	}
	return &DBPaymentRepo{
		db: tx,
	}
}

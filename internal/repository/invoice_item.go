package repository

import (
	"github.com/linskybing/bizportal/internal/domain/workforce"
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

type InvoiceItemRepo interface {
	CreateItem(item *workforce.InvoiceItem) error
	ListItemsByInvoice(invoiceID uint) ([]workforce.InvoiceItem, error)
	SumSubtotalsByInvoice(invoiceID uint) (float64, error)
	DeleteItem(id uint) error
	WithTx(tx *gorm.DB) InvoiceItemRepo
}

type DBInvoiceItemRepo struct {
	db *gorm.DB
}

func NewInvoiceItemRepo(db *gorm.DB) *DBInvoiceItemRepo {
	return &DBInvoiceItemRepo{
		db: db,
	}
}

func (r *DBInvoiceItemRepo) CreateItem(item *workforce.InvoiceItem) error {
	return dberr.Translate(r.db.Omit("Invoice", "Employee").Create(item).Error)
}

func (r *DBInvoiceItemRepo) ListItemsByInvoice(invoiceID uint) ([]workforce.InvoiceItem, error) {
	var items []workforce.InvoiceItem
	err := r.db.Where("invoice_id = ?", invoiceID).Order("id").Find(&items).Error
	return items, err
}

func (r *DBInvoiceItemRepo) SumSubtotalsByInvoice(invoiceID uint) (float64, error) {
	var total float64
	err := r.db.Model(&workforce.InvoiceItem{}).
		Select("COALESCE(SUM(subtotal), 0)").
		Where("invoice_id = ?", invoiceID).
		Scan(&total).Error
	return total, err
}

func (r *DBInvoiceItemRepo) DeleteItem(id uint) error {
	return deleteByID(r.db, &workforce.InvoiceItem{}, id)
}

func (r *DBInvoiceItemRepo) WithTx(tx *gorm.DB) InvoiceItemRepo {
	if tx == nil {
		return r
	}
	return &DBInvoiceItemRepo{
		db: tx,
	}
}

package repository

import (
	"github.com/linskybing/bizportal/internal/domain/workforce"
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceRepo interface {
	CreateInvoice(inv *workforce.Invoice) error
	GetInvoiceByID(id uint) (workforce.Invoice, error)
	GetInvoiceForUpdate(id uint) (workforce.Invoice, error)
	ListInvoicesByVendor(vendorID uint) ([]workforce.Invoice, error)
	ListInvoicesByStatus(status workforce.InvoiceStatus) ([]workforce.Invoice, error)
	SaveInvoice(inv *workforce.Invoice) error
	DeleteInvoice(id uint) error
	WithTx(tx *gorm.DB) InvoiceRepo
}

type DBInvoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) *DBInvoiceRepo {
	return &DBInvoiceRepo{
		db: db,
	}
}

func (r *DBInvoiceRepo) CreateInvoice(inv *workforce.Invoice) error {
	return dberr.Translate(r.db.Omit("Vendor").Create(inv).Error)
}

func (r *DBInvoiceRepo) GetInvoiceByID(id uint) (workforce.Invoice, error) {
	var inv workforce.Invoice
	if err := r.db.First(&inv, id).Error; err != nil {
		return inv, err
	}
	return inv, nil
}

// GetInvoiceForUpdate row-locks the invoice where the dialect supports it;
// call it inside a transaction.
func (r *DBInvoiceRepo) GetInvoiceForUpdate(id uint) (workforce.Invoice, error) {
	var inv workforce.Invoice
	q := r.db
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&inv, id).Error; err != nil {
		return inv, err
	}
	return inv, nil
}

func (r *DBInvoiceRepo) ListInvoicesByVendor(vendorID uint) ([]workforce.Invoice, error) {
	var invoices []workforce.Invoice
	err := r.db.Where("vendor_id = ?", vendorID).Order("id desc").Find(&invoices).Error
	return invoices, err
}

func (r *DBInvoiceRepo) ListInvoicesByStatus(status workforce.InvoiceStatus) ([]workforce.Invoice, error) {
	var invoices []workforce.Invoice
	err := r.db.Where("status = ?", status).Order("id desc").Find(&invoices).Error
	return invoices, err
}

func (r *DBInvoiceRepo) SaveInvoice(inv *workforce.Invoice) error {
	return dberr.Translate(r.db.Omit("Vendor").Save(inv).Error)
}

// DeleteInvoice does not cascade: an invoice with items or payments cannot be deleted.
func (r *DBInvoiceRepo) DeleteInvoice(id uint) error {
	return deleteByID(r.db, &workforce.Invoice{}, id)
}

func (r *DBInvoiceRepo) WithTx(tx *gorm.DB) InvoiceRepo {
	if tx == nil {
		return r
	}
	return &DBInvoiceRepo{
		db: tx,
	}
}

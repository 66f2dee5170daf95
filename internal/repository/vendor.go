package repository

import (
	"github.com/linskybing/bizportal/internal/domain/workforce"
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

type VendorRepo interface {
	CreateVendor(v *workforce.Vendor) error
	GetVendorByID(id uint) (workforce.Vendor, error)
	ListVendors() ([]workforce.Vendor, error)
	SaveVendor(v *workforce.Vendor) error
	DeleteVendor(id uint) error
	WithTx(tx *gorm.DB) VendorRepo
}

type DBVendorRepo struct {
	db *gorm.DB
}

func NewVendorRepo(db *gorm.DB) *DBVendorRepo {
	return &DBVendorRepo{
		db: db,
	}
}

func (r *DBVendorRepo) CreateVendor(v *workforce.Vendor) error {
	return dberr.Translate(r.db.Create(v).Error)
}

func (r *DBVendorRepo) GetVendorByID(id uint) (workforce.Vendor, error) {
	var v workforce.Vendor
	if err := r.db.First(&v, id).Error; err != nil {
		return v, err
	}
	return v, nil
}

func (r *DBVendorRepo) ListVendors() ([]workforce.Vendor, error) {
	var vendors []workforce.Vendor
	err := r.db.Order("name").Find(&vendors).Error
	return vendors, err
}

func (r *DBVendorRepo) SaveVendor(v *workforce.Vendor) error {
	return dberr.Translate(r.db.Save(v).Error)
}

// DeleteVendor cascades to employee links only; a vendor with invoices
// fails with a ReferentialIntegrityError.
func (r *DBVendorRepo) DeleteVendor(id uint) error {
	return deleteByID(r.db, &workforce.Vendor{}, id)
}

func (r *DBVendorRepo) WithTx(tx *gorm.DB) VendorRepo {
	if tx == nil {
		return r
	}
	return &DBVendorRepo{
		db: tx,
	}
}

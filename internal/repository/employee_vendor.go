package repository

import (
	"github.com/linskybing/bizportal/internal/domain/workforce"
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

type EmployeeVendorRepo interface {
	CreateLink(link *workforce.EmployeeVendor) error
	FindLink(employeeID, vendorID uint) (workforce.EmployeeVendor, error)
	ListLinksByEmployee(employeeID uint) ([]workforce.EmployeeVendor, error)
	ListLinksByVendor(vendorID uint) ([]workforce.EmployeeVendor, error)
	UpdateLinkRate(id uint, hourlyRate float64) error
	DeleteLink(id uint) error
	WithTx(tx *gorm.DB) EmployeeVendorRepo
}

type DBEmployeeVendorRepo struct {
	db *gorm.DB
}

func NewEmployeeVendorRepo(db *gorm.DB) *DBEmployeeVendorRepo {
	return &DBEmployeeVendorRepo{
		db: db,
	}
}

func (r *DBEmployeeVendorRepo) CreateLink(link *workforce.EmployeeVendor) error {
	return dberr.Translate(r.db.Omit("Employee", "Vendor").Create(link).Error)
}

func (r *DBEmployeeVendorRepo) FindLink(employeeID, vendorID uint) (workforce.EmployeeVendor, error) {
	var link workforce.EmployeeVendor
	err := r.db.Where("employee_id = ? AND vendor_id = ?", employeeID, vendorID).First(&link).Error
	return link, err
}

func (r *DBEmployeeVendorRepo) ListLinksByEmployee(employeeID uint) ([]workforce.EmployeeVendor, error) {
	var links []workforce.EmployeeVendor
	err := r.db.Where("employee_id = ?", employeeID).Order("vendor_id").Find(&links).Error
	return links, err
}

func (r *DBEmployeeVendorRepo) ListLinksByVendor(vendorID uint) ([]workforce.EmployeeVendor, error) {
	var links []workforce.EmployeeVendor
	err := r.db.Where("vendor_id = ?", vendorID).Order("employee_id").Find(&links).Error
	return links, err
}

func (r *DBEmployeeVendorRepo) UpdateLinkRate(id uint, hourlyRate float64) error {
	res := r.db.Model(&workforce.EmployeeVendor{}).Where("id = ?", id).UpdateColumn("hourly_rate", hourlyRate)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBEmployeeVendorRepo) DeleteLink(id uint) error {
	return deleteByID(r.db, &workforce.EmployeeVendor{}, id)
}

func (r *DBEmployeeVendorRepo) WithTx(tx *gorm.DB) EmployeeVendorRepo {
	if tx == nil {
		return r
	}
	return &DBEmployeeVendorRepo{
		db: tx,
	}
}

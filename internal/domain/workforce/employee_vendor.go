package workforce

import (
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

// EmployeeVendor assigns an employee to a vendor at a rate specific to that pair.
// Deleting either side removes the link.
type EmployeeVendor struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	EmployeeID uint    `gorm:"not null;uniqueIndex:uq_employee_vendor_combo" json:"employee_id"`
	VendorID   uint    `gorm:"not null;uniqueIndex:uq_employee_vendor_combo" json:"vendor_id"`
	HourlyRate float64 `gorm:"not null" json:"hourly_rate"`

	Employee *User   `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
	Vendor   *Vendor `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EmployeeVendor) TableName() string {
	return "employee_vendor"
}

func (l *EmployeeVendor) Validate() error {
	switch {
	case l.EmployeeID == 0:
		return dberr.Missing("employee_id")
	case l.VendorID == 0:
		return dberr.Missing("vendor_id")
	}
	return nil
}

func (l *EmployeeVendor) BeforeSave(tx *gorm.DB) error {
	return l.Validate()
}

package workforce

import (
	"time"

	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TimesheetStatus string

const (
	TimesheetStatusPending  TimesheetStatus = "Pending"
	TimesheetStatusApproved TimesheetStatus = "Approved"
	TimesheetStatusRejected TimesheetStatus = "Rejected"
)

func (s TimesheetStatus) Valid() bool {
	switch s {
	case TimesheetStatusPending, TimesheetStatusApproved, TimesheetStatusRejected:
		return true
	}
	return false
}

type Timesheet struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	EmployeeID         uint            `gorm:"not null;index" json:"employee_id"`
	Date               datatypes.Date  `gorm:"not null" json:"date"`
	Hours              float64         `gorm:"not null" json:"hours"`
	ProjectDescription *string         `gorm:"size:255" json:"project_description"`
	Status             TimesheetStatus `gorm:"size:20;default:'Pending'" json:"status"`

	Employee *User `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (Timesheet) TableName() string {
	return "timesheet"
}

func (t *Timesheet) Validate() error {
	switch {
	case t.EmployeeID == 0:
		return dberr.Missing("employee_id")
	case time.Time(t.Date).IsZero():
		return dberr.Missing("date")
	}
	return nil
}

func (t *Timesheet) BeforeSave(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = TimesheetStatusPending
	}
	return t.Validate()
}

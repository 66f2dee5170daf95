package repository

import (
	"time"

	"github.com/linskybing/bizportal/internal/domain/workforce"
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TimesheetRepo interface {
	CreateTimesheet(ts *workforce.Timesheet) error
	GetTimesheetByID(id uint) (workforce.Timesheet, error)
	ListTimesheetsByEmployee(employeeID uint, from, to *time.Time) ([]workforce.Timesheet, error)
	UpdateTimesheetStatus(id uint, status workforce.TimesheetStatus) error
	DeleteTimesheet(id uint) error
	WithTx(tx *gorm.DB) TimesheetRepo
}

type DBTimesheetRepo struct {
	db *gorm.DB
}

func NewTimesheetRepo(db *gorm.DB) *DBTimesheetRepo {
	return &DBTimesheetRepo{
		db: db,
	}
}

func (r *DBTimesheetRepo) CreateTimesheet(ts *workforce.Timesheet) error {
	return dberr.Translate(r.db.Omit("Employee").Create(ts).Error)
}

func (r *DBTimesheetRepo) GetTimesheetByID(id uint) (workforce.Timesheet, error) {
	var ts workforce.Timesheet
	if err := r.db.First(&ts, id).Error; err != nil {
		return ts, err
	}
	return ts, nil
}

// ListTimesheetsByEmployee returns entries ordered by date; from and to are
// inclusive and optional.
func (r *DBTimesheetRepo) ListTimesheetsByEmployee(employeeID uint, from, to *time.Time) ([]workforce.Timesheet, error) {
	var sheets []workforce.Timesheet
	q := r.db.Where("employee_id = ?", employeeID)
	if from != nil {
		q = q.Where("date >= ?", datatypes.Date(*from))
	}
	if to != nil {
		q = q.Where("date <= ?", datatypes.Date(*to))
	}
	err := q.Order("date").Order("id").Find(&sheets).Error
	return sheets, err
}

func (r *DBTimesheetRepo) UpdateTimesheetStatus(id uint, status workforce.TimesheetStatus) error {
	res := r.db.Model(&workforce.Timesheet{}).Where("id = ?", id).UpdateColumn("status", status)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBTimesheetRepo) DeleteTimesheet(id uint) error {
	return deleteByID(r.db, &workforce.Timesheet{}, id)
}

func (r *DBTimesheetRepo) WithTx(tx *gorm.DB) TimesheetRepo {
	if tx == nil {
		return r
	}
	return &DBTimesheetRepo{
		db: tx,
	}
}

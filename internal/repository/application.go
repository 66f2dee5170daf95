package repository

import (
	"github.com/linskybing/bizportal/internal/domain/intake"
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

type ApplicationRepo interface {
	CreateApplication(a *intake.Application) error
	GetApplicationByID(id uint) (intake.Application, error)
	ListApplications(status intake.ApplicationStatus) ([]intake.Application, error)
	UpdateApplicationStatus(id uint, status intake.ApplicationStatus) error
	WithTx(tx *gorm.DB) ApplicationRepo
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{
		db: db,
	}
}

func (r *DBApplicationRepo) CreateApplication(a *intake.Application) error {
	return dberr.Translate(r.db.Create(a).Error)
}

func (r *DBApplicationRepo) GetApplicationByID(id uint) (intake.Application, error) {
	var a intake.Application
	if err := r.db.First(&a, id).Error; err != nil {
		return a, err
	}
	return a, nil
}

// ListApplications returns newest first; an empty status lists all.
func (r *DBApplicationRepo) ListApplications(status intake.ApplicationStatus) ([]intake.Application, error) {
	var apps []intake.Application
	q := r.db.Model(&intake.Application{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at desc").Order("id desc").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) UpdateApplicationStatus(id uint, status intake.ApplicationStatus) error {
	res := r.db.Model(&intake.Application{}).Where("id = ?", id).UpdateColumn("status", status)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBApplicationRepo) WithTx(tx *gorm.DB) ApplicationRepo {
	if tx == nil {
		return r
	}
	return &DBApplicationRepo{
		db: tx,
	}
}

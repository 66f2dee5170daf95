package repository

import (
	"github.com/linskybing/bizportal/internal/domain/intake"
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

type IntakeUserRepo interface {
	CreateUser(u *intake.User) error
	GetUserByID(id uint) (intake.User, error)
	GetUserByEmail(email string) (intake.User, error)
	SaveUser(u *intake.User) error
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) IntakeUserRepo
}

type DBIntakeUserRepo struct {
	db *gorm.DB
}

func NewIntakeUserRepo(db *gorm.DB) *DBIntakeUserRepo {
	return &DBIntakeUserRepo{
		db: db,
	}
}

func (r *DBIntakeUserRepo) CreateUser(u *intake.User) error {
	return dberr.Translate(r.db.Create(u).Error)
}

func (r *DBIntakeUserRepo) GetUserByID(id uint) (intake.User, error) {
	var u intake.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBIntakeUserRepo) GetUserByEmail(email string) (intake.User, error) {
	var u intake.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBIntakeUserRepo) SaveUser(u *intake.User) error {
	return dberr.Translate(r.db.Save(u).Error)
}

func (r *DBIntakeUserRepo) DeleteUser(id uint) error {
	return deleteByID(r.db, &intake.User{}, id)
}

func (r *DBIntakeUserRepo) WithTx(tx *gorm.DB) IntakeUserRepo {
	if tx == nil {
		return r
	}
	return &DBIntakeUserRepo{
		db: tx,
	}
}

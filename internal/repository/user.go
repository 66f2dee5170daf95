package repository

import (
	"github.com/linskybing/bizportal/internal/domain/workforce"
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(u *workforce.User) error
	GetAllUsers() ([]workforce.User, error)
	ListUsersPaging(page, limit int) ([]workforce.User, error)
	ListUsersByRole(role workforce.Role) ([]workforce.User, error)
	GetUserByID(id uint) (workforce.User, error)
	GetUserByEmail(email string) (workforce.User, error)
	SaveUser(u *workforce.User) error
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) CreateUser(u *workforce.User) error {
	return dberr.Translate(r.db.Create(u).Error)
}

func (r *DBUserRepo) GetAllUsers() ([]workforce.User, error) {
	var users []workforce.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUsersPaging(page, limit int) ([]workforce.User, error) {
	var users []workforce.User

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	offset := (page - 1) * limit

	if err := r.db.Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *DBUserRepo) ListUsersByRole(role workforce.Role) ([]workforce.User, error) {
	var users []workforce.User
	err := r.db.Where("role = ?", role).Order("full_name").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) GetUserByID(id uint) (workforce.User, error) {
	var u workforce.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByEmail(email string) (workforce.User, error) {
	var u workforce.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) SaveUser(u *workforce.User) error {
	return dberr.Translate(r.db.Save(u).Error)
}

// DeleteUser removes the user and, through the storage cascade, its vendor
// links. Timesheets or invoice items still referencing the user block the delete.
func (r *DBUserRepo) DeleteUser(id uint) error {
	return deleteByID(r.db, &workforce.User{}, id)
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}

package repository

import (
	"github.com/linskybing/bizportal/internal/domain/intake"
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

// ContactRepo has no update or delete: a submission is a permanent record.
type ContactRepo interface {
	CreateContact(c *intake.Contact) error
	GetContactByID(id uint) (intake.Contact, error)
	ListContacts(inquiryType string) ([]intake.Contact, error)
	WithTx(tx *gorm.DB) ContactRepo
}

type DBContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *DBContactRepo {
	return &DBContactRepo{
		db: db,
	}
}

func (r *DBContactRepo) CreateContact(c *intake.Contact) error {
	return dberr.Translate(r.db.Create(c).Error)
}

func (r *DBContactRepo) GetContactByID(id uint) (intake.Contact, error) {
	var c intake.Contact
	if err := r.db.First(&c, id).Error; err != nil {
		return c, err
	}
	return c, nil
}

func (r *DBContactRepo) ListContacts(inquiryType string) ([]intake.Contact, error) {
	var contacts []intake.Contact
	q := r.db.Model(&intake.Contact{})
	if inquiryType != "" {
		q = q.Where("inquiry_type = ?", inquiryType)
	}
	err := q.Order("id desc").Find(&contacts).Error
	return contacts, err
}

func (r *DBContactRepo) WithTx(tx *gorm.DB) ContactRepo {
	if tx == nil {
		return r
	}
	return &DBContactRepo{
		db: tx,
	}
}

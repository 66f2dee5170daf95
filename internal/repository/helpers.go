package repository

import (
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

// deleteByID removes one row and reports gorm.ErrRecordNotFound when nothing matched.
func deleteByID(db *gorm.DB, model interface{}, id uint) error {
	res := db.Delete(model, id)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	IntakeUser     IntakeUserRepo
	Contact        ContactRepo
	Application    ApplicationRepo
	User           UserRepo
	Vendor         VendorRepo
	EmployeeVendor EmployeeVendorRepo
	Timesheet      TimesheetRepo
	Invoice        InvoiceRepo
	InvoiceItem    InvoiceItemRepo
	Payment        PaymentRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		IntakeUser:     NewIntakeUserRepo(db),
		Contact:        NewContactRepo(db),
		Application:    NewApplicationRepo(db),
		User:           NewUserRepo(db),
		Vendor:         NewVendorRepo(db),
		EmployeeVendor: NewEmployeeVendorRepo(db),
		Timesheet:      NewTimesheetRepo(db),
		Invoice:        NewInvoiceRepo(db),
		InvoiceItem:    NewInvoiceItemRepo(db),
		Payment:        NewPaymentRepo(db),
		db:             db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		IntakeUser:     r.IntakeUser.WithTx(tx),
		Contact:        r.Contact.WithTx(tx),
		Application:    r.Application.WithTx(tx),
		User:           r.User.WithTx(tx),
		Vendor:         r.Vendor.WithTx(tx),
		EmployeeVendor: r.EmployeeVendor.WithTx(tx),
		Timesheet:      r.Timesheet.WithTx(tx),
		Invoice:        r.Invoice.WithTx(tx),
		InvoiceItem:    r.InvoiceItem.WithTx(tx),
		Payment:        r.Payment.WithTx(tx),
		db:             tx,
	}
}

// ExecTx runs fn against repositories bound to a single transaction. When
// no database handle is attached (mocked repos), fn runs directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}

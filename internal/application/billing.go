package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/linskybing/bizportal/internal/domain/workforce"
	"github.com/linskybing/bizportal/internal/repository"
	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Upper bound for a single timesheet entry.
const maxHoursPerDay = 24

var (
	ErrNotAnEmployee       = errors.New("user is not an employee")
	ErrVendorNotFound      = errors.New("vendor not found")
	ErrAlreadyLinked       = errors.New("employee already linked to vendor")
	ErrInvalidRate         = errors.New("hourly rate must be positive")
	ErrInvalidHours        = errors.New("hours must be greater than 0 and at most 24")
	ErrTimesheetNotFound   = errors.New("timesheet not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceNotEditable  = errors.New("only draft invoices can be edited")
	ErrNoRateForEmployee   = errors.New("employee is not linked to the invoice vendor")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidTransition   = errors.New("invalid invoice status transition")
	ErrPaymentOnDraft      = errors.New("cannot record a payment on a draft invoice")
	ErrInvalidInvoiceMonth = errors.New("invoice month is required")
)

type BillingService struct {
	Repos *repository.Repos
	Now   func() time.Time
}

func NewBillingService(repos *repository.Repos) *BillingService {
	return &BillingService{
		Repos: repos,
		Now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *BillingService) employee(repos *repository.Repos, id uint) (workforce.User, error) {
	usr, err := repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usr, ErrUserNotFound
		}
		return usr, err
	}
	if !usr.IsEmployee() {
		return usr, ErrNotAnEmployee
	}
	return usr, nil
}

func (s *BillingService) LinkEmployeeVendor(employeeID, vendorID uint, hourlyRate float64) (workforce.EmployeeVendor, error) {
	if hourlyRate <= 0 {
		return workforce.EmployeeVendor{}, ErrInvalidRate
	}
	if _, err := s.employee(s.Repos, employeeID); err != nil {
		return workforce.EmployeeVendor{}, err
	}
	if _, err := s.Repos.Vendor.GetVendorByID(vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workforce.EmployeeVendor{}, ErrVendorNotFound
		}
		return workforce.EmployeeVendor{}, err
	}

	link := workforce.EmployeeVendor{
		EmployeeID: employeeID,
		VendorID:   vendorID,
		HourlyRate: hourlyRate,
	}
	if err := s.Repos.EmployeeVendor.CreateLink(&link); err != nil {
		if errors.Is(err, dberr.ErrDuplicateKey) {
			return workforce.EmployeeVendor{}, fmt.Errorf("%w: %w", ErrAlreadyLinked, err)
		}
		return workforce.EmployeeVendor{}, err
	}
	return link, nil
}

func (s *BillingService) LogTimesheet(ts *workforce.Timesheet) error {
	if ts.Hours <= 0 || ts.Hours > maxHoursPerDay {
		return ErrInvalidHours
	}
	if _, err := s.employee(s.Repos, ts.EmployeeID); err != nil {
		return err
	}
	ts.ID = 0
	ts.Status = workforce.TimesheetStatusPending
	return s.Repos.Timesheet.CreateTimesheet(ts)
}

func (s *BillingService) ReviewTimesheet(id uint, status workforce.TimesheetStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	err := s.Repos.Timesheet.UpdateTimesheetStatus(id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTimesheetNotFound
	}
	return err
}

func (s *BillingService) CreateInvoice(vendorID uint, month string, dueDate *time.Time) (workforce.Invoice, error) {
	if month == "" {
		return workforce.Invoice{}, ErrInvalidInvoiceMonth
	}
	if _, err := s.Repos.Vendor.GetVendorByID(vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workforce.Invoice{}, ErrVendorNotFound
		}
		return workforce.Invoice{}, err
	}

	inv := workforce.Invoice{
		VendorID: vendorID,
		Month:    month,
		Status:   workforce.InvoiceStatusDraft,
	}
	if dueDate != nil {
		d := datatypes.Date(*dueDate)
		inv.DueDate = &d
	}
	if err := s.Repos.Invoice.CreateInvoice(&inv); err != nil {
		return workforce.Invoice{}, err
	}
	return inv, nil
}

func (s *BillingService) lockInvoice(repos *repository.Repos, id uint) (workforce.Invoice, error) {
	inv, err := repos.Invoice.GetInvoiceForUpdate(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inv, ErrInvoiceNotFound
		}
		return inv, err
	}
	return inv, nil
}

// AddInvoiceItem bills hours for an employee at the rate of their link to the
// invoice vendor, and refreshes the invoice total in the same transaction.
func (s *BillingService) AddInvoiceItem(invoiceID, employeeID uint, hours float64) (workforce.InvoiceItem, error) {
	if hours <= 0 {
		return workforce.InvoiceItem{}, ErrInvalidHours
	}

	var item *workforce.InvoiceItem
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		inv, err := s.lockInvoice(tx, invoiceID)
		if err != nil {
			return err
		}
		if inv.Status != workforce.InvoiceStatusDraft {
			return ErrInvoiceNotEditable
		}
		if _, err := s.employee(tx, employeeID); err != nil {
			return err
		}

		link, err := tx.EmployeeVendor.FindLink(employeeID, inv.VendorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoRateForEmployee
			}
			return err
		}

		item = workforce.NewInvoiceItem(inv.ID, employeeID, hours, link.HourlyRate)
		if err := tx.InvoiceItem.CreateItem(item); err != nil {
			return err
		}

		total, err := tx.InvoiceItem.SumSubtotalsByInvoice(inv.ID)
		if err != nil {
			return err
		}
		inv.TotalAmount = total
		return tx.Invoice.SaveInvoice(&inv)
	})
	if err != nil {
		return workforce.InvoiceItem{}, err
	}
	return *item, nil
}

func (s *BillingService) UpdateInvoiceStatus(id uint, status workforce.InvoiceStatus) (workforce.Invoice, error) {
	var updated workforce.Invoice
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		inv, err := s.lockInvoice(tx, id)
		if err != nil {
			return err
		}
		if err := inv.Transition(status, s.Now()); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
		if err := tx.Invoice.SaveInvoice(&inv); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	return updated, err
}

// RecordPayment stores a payment and marks the invoice Paid once payments
// cover its total.
func (s *BillingService) RecordPayment(invoiceID uint, amount float64, paidOn *time.Time) (workforce.Payment, error) {
	if amount <= 0 {
		return workforce.Payment{}, ErrInvalidAmount
	}

	var payment workforce.Payment
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		inv, err := s.lockInvoice(tx, invoiceID)
		if err != nil {
			return err
		}
		if inv.Status == workforce.InvoiceStatusDraft {
			return ErrPaymentOnDraft
		}

		payment = workforce.Payment{InvoiceID: inv.ID, Amount: amount}
		if paidOn != nil {
			payment.PaidOn = datatypes.Date(*paidOn)
		}
		if err := tx.Payment.CreatePayment(&payment); err != nil {
			return err
		}

		paid, err := tx.Payment.SumPaymentsByInvoice(inv.ID)
		if err != nil {
			return err
		}
		if inv.Status != workforce.InvoiceStatusPaid && paid >= inv.TotalAmount {
			if err := inv.Transition(workforce.InvoiceStatusPaid, time.Time(payment.PaidOn)); err != nil {
				return err
			}
			return tx.Invoice.SaveInvoice(&inv)
		}
		return nil
	})
	if err != nil {
		return workforce.Payment{}, err
	}
	return payment, nil
}

func (s *BillingService) InvoiceSummary(id uint) (workforce.InvoiceSummary, error) {
	inv, err := s.Repos.Invoice.GetInvoiceByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return workforce.InvoiceSummary{}, ErrInvoiceNotFound
		}
		return workforce.InvoiceSummary{}, err
	}
	items, err := s.Repos.InvoiceItem.ListItemsByInvoice(id)
	if err != nil {
		return workforce.InvoiceSummary{}, err
	}
	payments, err := s.Repos.Payment.ListPaymentsByInvoice(id)
	if err != nil {
		return workforce.InvoiceSummary{}, err
	}

	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}
	return workforce.InvoiceSummary{
		Invoice:    inv,
		Items:      items,
		Payments:   payments,
		AmountPaid: paid,
		Balance:    inv.TotalAmount - paid,
	}, nil
}

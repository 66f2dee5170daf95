package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/bizportal/internal/config/db"
	"github.com/linskybing/bizportal/internal/domain/workforce"
	"github.com/linskybing/bizportal/internal/repository"
	"github.com/linskybing/bizportal/internal/repository/mock"
	"github.com/linskybing/bizportal/internal/testutils"
	"github.com/linskybing/bizportal/pkg/dberr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type billingFixture struct {
	svc      *BillingService
	repos    *repository.Repos
	employee workforce.User
	admin    workforce.User
	vendor   workforce.Vendor
}

func setupBilling(t *testing.T) *billingFixture {
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t, db.SchemaWorkforce))
	svc := NewBillingService(repos)
	svc.Now = func() time.Time { return fixedNow }

	f := &billingFixture{svc: svc, repos: repos}
	f.employee = workforce.User{FullName: "Emp", PhoneNumber: "1", Email: "emp@test.com", PasswordHash: "h", Role: workforce.RoleEmployee}
	f.admin = workforce.User{FullName: "Adm", PhoneNumber: "2", Email: "adm@test.com", PasswordHash: "h", Role: workforce.RoleAdmin}
	f.vendor = workforce.Vendor{Name: "Acme", Email: "billing@acme.test"}
	require.NoError(t, repos.User.CreateUser(&f.employee))
	require.NoError(t, repos.User.CreateUser(&f.admin))
	require.NoError(t, repos.Vendor.CreateVendor(&f.vendor))
	return f
}

// --------------------- LinkEmployeeVendor ---------------------
func TestLinkEmployeeVendor(t *testing.T) {
	f := setupBilling(t)

	link, err := f.svc.LinkEmployeeVendor(f.employee.ID, f.vendor.ID, 50)
	require.NoError(t, err)
	assert.NotZero(t, link.ID)

	_, err = f.svc.LinkEmployeeVendor(f.employee.ID, f.vendor.ID, 60)
	assert.ErrorIs(t, err, ErrAlreadyLinked)
	assert.ErrorIs(t, err, dberr.ErrDuplicateKey)

	_, err = f.svc.LinkEmployeeVendor(f.admin.ID, f.vendor.ID, 60)
	assert.ErrorIs(t, err, ErrNotAnEmployee)

	_, err = f.svc.LinkEmployeeVendor(f.employee.ID, 404, 60)
	assert.ErrorIs(t, err, ErrVendorNotFound)

	_, err = f.svc.LinkEmployeeVendor(f.employee.ID, f.vendor.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

// --------------------- Timesheets ---------------------
func TestLogAndReviewTimesheet(t *testing.T) {
	f := setupBilling(t)

	ts := &workforce.Timesheet{EmployeeID: f.employee.ID, Date: datatypes.Date(fixedNow), Hours: 7.5, Status: workforce.TimesheetStatusApproved}
	require.NoError(t, f.svc.LogTimesheet(ts))
	assert.Equal(t, workforce.TimesheetStatusPending, ts.Status)

	require.NoError(t, f.svc.ReviewTimesheet(ts.ID, workforce.TimesheetStatusApproved))
	got, err := f.repos.Timesheet.GetTimesheetByID(ts.ID)
	require.NoError(t, err)
	assert.Equal(t, workforce.TimesheetStatusApproved, got.Status)

	assert.ErrorIs(t, f.svc.ReviewTimesheet(ts.ID, "Done"), ErrInvalidStatus)
	assert.ErrorIs(t, f.svc.ReviewTimesheet(999, workforce.TimesheetStatusRejected), ErrTimesheetNotFound)
}

func TestLogTimesheet_Validation(t *testing.T) {
	f := setupBilling(t)

	err := f.svc.LogTimesheet(&workforce.Timesheet{EmployeeID: f.employee.ID, Date: datatypes.Date(fixedNow), Hours: 25})
	assert.ErrorIs(t, err, ErrInvalidHours)

	err = f.svc.LogTimesheet(&workforce.Timesheet{EmployeeID: 404, Date: datatypes.Date(fixedNow), Hours: 1})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// --------------------- Invoices ---------------------
func TestInvoiceLifecycle(t *testing.T) {
	f := setupBilling(t)
	_, err := f.svc.LinkEmployeeVendor(f.employee.ID, f.vendor.ID, 40)
	require.NoError(t, err)

	due := fixedNow.AddDate(0, 0, 30)
	inv, err := f.svc.CreateInvoice(f.vendor.ID, "2026-09", &due)
	require.NoError(t, err)
	assert.Equal(t, workforce.InvoiceStatusDraft, inv.Status)
	require.NotNil(t, inv.DueDate)

	item, err := f.svc.AddInvoiceItem(inv.ID, f.employee.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 40.0, item.Rate)
	assert.Equal(t, 400.0, item.Subtotal)

	_, err = f.svc.AddInvoiceItem(inv.ID, f.employee.ID, 2.5)
	require.NoError(t, err)

	_, err = f.svc.RecordPayment(inv.ID, 100, nil)
	assert.ErrorIs(t, err, ErrPaymentOnDraft)

	sent, err := f.svc.UpdateInvoiceStatus(inv.ID, workforce.InvoiceStatusSent)
	require.NoError(t, err)
	assert.Equal(t, 500.0, sent.TotalAmount)
	require.NotNil(t, sent.SentDate)

	_, err = f.svc.AddInvoiceItem(inv.ID, f.employee.ID, 1)
	assert.ErrorIs(t, err, ErrInvoiceNotEditable)

	_, err = f.svc.RecordPayment(inv.ID, 200, nil)
	require.NoError(t, err)
	summary, err := f.svc.InvoiceSummary(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, workforce.InvoiceStatusSent, summary.Invoice.Status)
	assert.Equal(t, 300.0, summary.Balance)
	assert.Len(t, summary.Items, 2)

	paidOn := fixedNow.AddDate(0, 0, 3)
	_, err = f.svc.RecordPayment(inv.ID, 300, &paidOn)
	require.NoError(t, err)

	summary, err = f.svc.InvoiceSummary(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, workforce.InvoiceStatusPaid, summary.Invoice.Status)
	assert.Zero(t, summary.Balance)
	assert.Len(t, summary.Payments, 2)
	require.NotNil(t, summary.Invoice.PaidDate)
	assert.Equal(t, paidOn.Format("2006-01-02"), time.Time(*summary.Invoice.PaidDate).UTC().Format("2006-01-02"))

	_, err = f.svc.UpdateInvoiceStatus(inv.ID, workforce.InvoiceStatusDraft)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAddInvoiceItem_RequiresLink(t *testing.T) {
	f := setupBilling(t)
	inv, err := f.svc.CreateInvoice(f.vendor.ID, "2026-09", nil)
	require.NoError(t, err)

	_, err = f.svc.AddInvoiceItem(inv.ID, f.employee.ID, 8)
	assert.ErrorIs(t, err, ErrNoRateForEmployee)

	items, err := f.repos.InvoiceItem.ListItemsByInvoice(inv.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = f.svc.AddInvoiceItem(404, f.employee.ID, 8)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestCreateInvoice_Validation(t *testing.T) {
	f := setupBilling(t)

	_, err := f.svc.CreateInvoice(f.vendor.ID, "", nil)
	assert.ErrorIs(t, err, ErrInvalidInvoiceMonth)

	_, err = f.svc.CreateInvoice(404, "2026-09", nil)
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

// --------------------- Mocked paths ---------------------
func TestRecordPayment_InvalidAmountSkipsStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	mockInvoice := mock.NewMockInvoiceRepo(ctrl)
	svc := NewBillingService(&repository.Repos{Invoice: mockInvoice})

	_, err := svc.RecordPayment(1, -5, nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestInvoiceSummary_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	mockInvoice := mock.NewMockInvoiceRepo(ctrl)
	mockInvoice.EXPECT().GetInvoiceByID(uint(8)).Return(workforce.Invoice{}, gorm.ErrRecordNotFound)
	svc := NewBillingService(&repository.Repos{Invoice: mockInvoice})

	_, err := svc.InvoiceSummary(8)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestUpdateInvoiceStatus_MockedTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	mockInvoice := mock.NewMockInvoiceRepo(ctrl)
	svc := NewBillingService(&repository.Repos{Invoice: mockInvoice})
	svc.Now = func() time.Time { return fixedNow }

	mockInvoice.EXPECT().GetInvoiceForUpdate(uint(3)).Return(workforce.Invoice{ID: 3, VendorID: 1, Month: "2026-09", Status: workforce.InvoiceStatusDraft}, nil)
	mockInvoice.EXPECT().SaveInvoice(gomock.Any()).DoAndReturn(func(inv *workforce.Invoice) error {
		assert.Equal(t, workforce.InvoiceStatusPaid, inv.Status)
		assert.NotNil(t, inv.SentDate)
		assert.NotNil(t, inv.PaidDate)
		return nil
	})

	inv, err := svc.UpdateInvoiceStatus(3, workforce.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, workforce.InvoiceStatusPaid, inv.Status)
}

type billingMocks struct {
	user        *mock.MockUserRepo
	vendor      *mock.MockVendorRepo
	link        *mock.MockEmployeeVendorRepo
	timesheet   *mock.MockTimesheetRepo
	invoice     *mock.MockInvoiceRepo
	invoiceItem *mock.MockInvoiceItemRepo
	payment     *mock.MockPaymentRepo
}

func setupBillingServiceMocks(t *testing.T) (*BillingService, *billingMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &billingMocks{
		user:        mock.NewMockUserRepo(ctrl),
		vendor:      mock.NewMockVendorRepo(ctrl),
		link:        mock.NewMockEmployeeVendorRepo(ctrl),
		timesheet:   mock.NewMockTimesheetRepo(ctrl),
		invoice:     mock.NewMockInvoiceRepo(ctrl),
		invoiceItem: mock.NewMockInvoiceItemRepo(ctrl),
		payment:     mock.NewMockPaymentRepo(ctrl),
	}
	repos := &repository.Repos{
		User:           m.user,
		Vendor:         m.vendor,
		EmployeeVendor: m.link,
		Timesheet:      m.timesheet,
		Invoice:        m.invoice,
		InvoiceItem:    m.invoiceItem,
		Payment:        m.payment,
	}
	svc := NewBillingService(repos)
	svc.Now = func() time.Time { return fixedNow }
	return svc, m
}

func TestLinkEmployeeVendor_VendorLookupFailure(t *testing.T) {
	svc, m := setupBillingServiceMocks(t)
	dbDown := errors.New("db down")
	m.user.EXPECT().GetUserByID(uint(1)).Return(workforce.User{ID: 1, Role: workforce.RoleEmployee}, nil)
	m.vendor.EXPECT().GetVendorByID(uint(2)).Return(workforce.Vendor{}, dbDown)

	_, err := svc.LinkEmployeeVendor(1, 2, 30)
	assert.ErrorIs(t, err, dbDown)
	assert.NotErrorIs(t, err, ErrVendorNotFound)
}

func TestLinkEmployeeVendor_DuplicateFromStorage(t *testing.T) {
	svc, m := setupBillingServiceMocks(t)
	m.user.EXPECT().GetUserByID(uint(1)).Return(workforce.User{ID: 1, Role: workforce.RoleEmployee}, nil)
	m.vendor.EXPECT().GetVendorByID(uint(2)).Return(workforce.Vendor{ID: 2}, nil)
	m.link.EXPECT().CreateLink(gomock.Any()).Return(&dberr.DuplicateKeyError{Constraint: "uq_employee_vendor_combo"})

	_, err := svc.LinkEmployeeVendor(1, 2, 30)
	assert.ErrorIs(t, err, ErrAlreadyLinked)
	assert.ErrorIs(t, err, dberr.ErrDuplicateKey)
}

func TestReviewTimesheet_MissingRow(t *testing.T) {
	svc, m := setupBillingServiceMocks(t)
	m.timesheet.EXPECT().UpdateTimesheetStatus(uint(4), workforce.TimesheetStatusApproved).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.ReviewTimesheet(4, workforce.TimesheetStatusApproved), ErrTimesheetNotFound)
}

func TestLogTimesheet_StorageFailure(t *testing.T) {
	svc, m := setupBillingServiceMocks(t)
	dbDown := errors.New("db down")
	m.user.EXPECT().GetUserByID(uint(1)).Return(workforce.User{ID: 1, Role: workforce.RoleEmployee}, nil)
	m.timesheet.EXPECT().CreateTimesheet(gomock.Any()).Return(dbDown)

	err := svc.LogTimesheet(&workforce.Timesheet{EmployeeID: 1, Date: datatypes.Date(fixedNow), Hours: 8})
	assert.ErrorIs(t, err, dbDown)
}

func TestAddInvoiceItem_TotalFailureSkipsSave(t *testing.T) {
	svc, m := setupBillingServiceMocks(t)
	dbDown := errors.New("db down")
	m.invoice.EXPECT().GetInvoiceForUpdate(uint(3)).Return(workforce.Invoice{ID: 3, VendorID: 2, Month: "2026-09", Status: workforce.InvoiceStatusDraft}, nil)
	m.user.EXPECT().GetUserByID(uint(1)).Return(workforce.User{ID: 1, Role: workforce.RoleEmployee}, nil)
	m.link.EXPECT().FindLink(uint(1), uint(2)).Return(workforce.EmployeeVendor{EmployeeID: 1, VendorID: 2, HourlyRate: 20}, nil)
	m.invoiceItem.EXPECT().CreateItem(gomock.Any()).DoAndReturn(func(item *workforce.InvoiceItem) error {
		assert.Equal(t, 80.0, item.Subtotal)
		return nil
	})
	m.invoiceItem.EXPECT().SumSubtotalsByInvoice(uint(3)).Return(0.0, dbDown)

	_, err := svc.AddInvoiceItem(3, 1, 4)
	assert.ErrorIs(t, err, dbDown)
}

func TestRecordPayment_PartialKeepsStatus(t *testing.T) {
	svc, m := setupBillingServiceMocks(t)
	m.invoice.EXPECT().GetInvoiceForUpdate(uint(3)).Return(workforce.Invoice{ID: 3, VendorID: 2, Month: "2026-09", Status: workforce.InvoiceStatusSent, TotalAmount: 100}, nil)
	m.payment.EXPECT().CreatePayment(gomock.Any()).Return(nil)
	m.payment.EXPECT().SumPaymentsByInvoice(uint(3)).Return(40.0, nil)

	paidOn := fixedNow
	p, err := svc.RecordPayment(3, 40, &paidOn)
	require.NoError(t, err)
	assert.Equal(t, 40.0, p.Amount)
	assert.Equal(t, uint(3), p.InvoiceID)
}

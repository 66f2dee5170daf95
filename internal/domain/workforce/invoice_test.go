package workforce

import (
	"testing"
	"time"

	"github.com/linskybing/bizportal/pkg/dberr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to InvoiceStatus
		ok       bool
	}{
		{InvoiceStatusDraft, InvoiceStatusSent, true},
		{InvoiceStatusSent, InvoiceStatusPaid, true},
		{InvoiceStatusDraft, InvoiceStatusPaid, true},
		{InvoiceStatusDraft, InvoiceStatusDraft, true},
		{InvoiceStatusPaid, InvoiceStatusDraft, false},
		{InvoiceStatusPaid, InvoiceStatusSent, false},
		{InvoiceStatusSent, InvoiceStatusDraft, false},
		{InvoiceStatusDraft, InvoiceStatus("Void"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestInvoice_TransitionStampsDates(t *testing.T) {
	inv := &Invoice{ID: 1, VendorID: 1, Month: "2026-09", Status: InvoiceStatusDraft}
	sent := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	paid := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, inv.Transition(InvoiceStatusSent, sent))
	require.NotNil(t, inv.SentDate)
	assert.Nil(t, inv.PaidDate)

	require.NoError(t, inv.Transition(InvoiceStatusPaid, paid))
	assert.Equal(t, InvoiceStatusPaid, inv.Status)
	assert.Equal(t, sent, time.Time(*inv.SentDate))
	assert.Equal(t, paid, time.Time(*inv.PaidDate))

	assert.Error(t, inv.Transition(InvoiceStatusDraft, paid))
	assert.Equal(t, InvoiceStatusPaid, inv.Status)
}

func TestInvoice_BeforeSaveDefaultsDraft(t *testing.T) {
	inv := &Invoice{VendorID: 2, Month: "2026-09"}
	require.NoError(t, inv.BeforeSave(nil))
	assert.Equal(t, InvoiceStatusDraft, inv.Status)
}

func TestInvoice_ValidateMissingVendor(t *testing.T) {
	inv := &Invoice{Month: "2026-09"}
	var missing *dberr.RequiredFieldMissingError
	require.ErrorAs(t, inv.BeforeSave(nil), &missing)
	assert.Equal(t, "vendor_id", missing.Field)
}

func TestNewInvoiceItem_Subtotal(t *testing.T) {
	it := NewInvoiceItem(1, 2, 7.5, 40)
	assert.InDelta(t, 300.0, it.Subtotal, 1e-9)
	assert.True(t, it.SubtotalMatches())

	it.Subtotal = 299
	assert.False(t, it.SubtotalMatches())
}

func TestTimesheet_Defaults(t *testing.T) {
	ts := &Timesheet{EmployeeID: 1}
	err := ts.BeforeSave(nil)
	assert.ErrorIs(t, err, dberr.ErrRequiredFieldMissing)
	assert.Equal(t, TimesheetStatusPending, ts.Status)
}

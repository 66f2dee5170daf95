package repository_test

import (
	"testing"
	"time"

	"github.com/linskybing/bizportal/internal/domain/intake"
	"github.com/linskybing/bizportal/internal/domain/workforce"
	"github.com/linskybing/bizportal/internal/repository"
	"github.com/linskybing/bizportal/internal/testutils"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

func ptrString(s string) *string { return &s }

func setupRepos(t *testing.T) *repository.Repos {
	t.Helper()
	return repository.NewRepositories(testutils.NewSQLiteDB(t))
}

func mustWorker(t *testing.T, repos *repository.Repos, email string, role workforce.Role) workforce.User {
	t.Helper()
	u := workforce.User{FullName: "Worker " + email, PhoneNumber: "555-0100", Email: email, Role: role}
	require.NoError(t, u.SetPasswordWithCost("123456", bcrypt.MinCost))
	require.NoError(t, repos.User.CreateUser(&u))
	return u
}

func mustVendor(t *testing.T, repos *repository.Repos, name string) workforce.Vendor {
	t.Helper()
	v := workforce.Vendor{Name: name, Email: name + "@vendor.test"}
	require.NoError(t, repos.Vendor.CreateVendor(&v))
	return v
}

func mustInvoice(t *testing.T, repos *repository.Repos, vendorID uint) workforce.Invoice {
	t.Helper()
	inv := workforce.Invoice{VendorID: vendorID, Month: "2026-09"}
	require.NoError(t, repos.Invoice.CreateInvoice(&inv))
	return inv
}

func mustIntakeUser(t *testing.T, repos *repository.Repos, email string) intake.User {
	t.Helper()
	u := intake.User{FullName: "Visitor", Email: email}
	require.NoError(t, u.SetPasswordWithCost("123456", bcrypt.MinCost))
	require.NoError(t, repos.IntakeUser.CreateUser(&u))
	return u
}

func day(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

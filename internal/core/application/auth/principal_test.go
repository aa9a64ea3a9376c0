package auth_test

import (
	"testing"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	id := kernel.NewUUID()
	p, err := auth.NewPrincipal(id, auth.RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, id, p.UserID())
	assert.Equal(t, auth.RoleVendor, p.Role())
	require.NoError(t, p.Validate())
}

func TestNewPrincipal_Invalid(t *testing.T) {
	_, err := auth.NewPrincipal(kernel.UUID{}, auth.RoleCustomer)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = auth.NewPrincipal(kernel.NewUUID(), auth.Role("admin"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseRole(t *testing.T) {
	r, err := auth.ParseRole("customer")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleCustomer, r)

	_, err = auth.ParseRole("Customer")
	require.Error(t, err)
}

func TestRequireRole(t *testing.T) {
	customer, _ := auth.NewPrincipal(kernel.NewUUID(), auth.RoleCustomer)
	vendor, _ := auth.NewPrincipal(kernel.NewUUID(), auth.RoleVendor)

	require.NoError(t, auth.RequireCustomer(customer))
	require.NoError(t, auth.RequireVendor(vendor))

	err := auth.RequireVendor(customer)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Equal(t, errs.KindForbidden, errs.KindOf(err))

	require.ErrorIs(t, auth.RequireCustomer(vendor), errs.ErrAccessDenied)
	require.ErrorIs(t, auth.RequireCustomer(auth.Principal{}), errs.ErrAccessDenied)
}

// Package auth holds the authenticated caller as the application layer sees it.
// Token issuance and verification happen in the transport; handlers only
// receive a Principal and run ownership checks against it.
package auth

import (
	"errors"
	"fmt"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

// Role is the marketplace side a user acts on.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
)

var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// ParseRole maps a lowercase role name to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleVendor:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Principal is the verified identity behind a request.
type Principal struct {
	userID kernel.UUID
	role   Role

	guard guard.ConstructorGuard
}

func NewPrincipal(userID kernel.UUID, role Role) (Principal, error) {
	if err := userID.Validate(); err != nil {
		return Principal{}, errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Principal{}, err
	}
	return Principal{userID: userID, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (p Principal) UserID() kernel.UUID {
	return p.userID
}

func (p Principal) Role() Role {
	return p.role
}

func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// RequireCustomer fails with AccessDenied unless p acts as a customer.
func RequireCustomer(p Principal) error {
	return require(p, RoleCustomer)
}

// RequireVendor fails with AccessDenied unless p acts as a vendor.
func RequireVendor(p Principal) error {
	return require(p, RoleVendor)
}

func require(p Principal, role Role) error {
	if err := p.Validate(); err != nil {
		return errs.NewAccessDeniedErrorWithCause("principal", "", err)
	}
	if p.role != role {
		return errs.NewAccessDeniedErrorWithCause(string(role)+" area", p.userID.String(),
			fmt.Errorf("role %q is required, got %q", role, p.role))
	}
	return nil
}

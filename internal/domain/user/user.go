package user

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleTechnician
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

// User is a workshop account: an admin or a technician with a capability
// set and an optional commission percentage override.
type User struct {
	id            uint
	username      string
	name          string
	passwordHash  string
	role          Role
	capabilities  Capabilities
	commissionPct *int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(
	username string,
	name string,
	passwordHash string,
	role Role,
	capabilities Capabilities,
	commissionPct *int,
) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if commissionPct != nil && (*commissionPct < 0 || *commissionPct > 100) {
		return nil, fmt.Errorf("commission percentage must be between 0 and 100")
	}
	if capabilities == nil {
		capabilities = Capabilities{}
	}

	now := time.Now().UTC()

	return &User{
		username:      username,
		name:          name,
		passwordHash:  passwordHash,
		role:          role,
		capabilities:  capabilities,
		commissionPct: commissionPct,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	name string,
	passwordHash string,
	role Role,
	capabilities Capabilities,
	commissionPct *int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if capabilities == nil {
		capabilities = Capabilities{}
	}

	return &User{
		id:            id,
		username:      username,
		name:          name,
		passwordHash:  passwordHash,
		role:          role,
		capabilities:  capabilities,
		commissionPct: commissionPct,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Name() string         { return u.name }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CommissionPct() *int  { return u.commissionPct }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) Capabilities() Capabilities {
	caps := make(Capabilities, len(u.capabilities))
	for k, v := range u.capabilities {
		caps[k] = v
	}
	return caps
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// IsAdminCapable reports whether the user carries full admin scope, either
// by role or by the admin-override capability.
func (u *User) IsAdminCapable() bool {
	return u.role == RoleAdmin || u.capabilities.Has(CapAdminOverride)
}

// HasCapability reports whether the user holds the flag. Admin-capable
// users implicitly hold every capability.
func (u *User) HasCapability(cap Capability) bool {
	if u.IsAdminCapable() {
		return true
	}
	return u.capabilities.Has(cap)
}

// CanViewAllRepairs reports whether the user may see every repair rather
// than only their own assignments.
func (u *User) CanViewAllRepairs() bool {
	return u.IsAdminCapable() ||
		u.capabilities.Has(CapCreateRepair) ||
		u.capabilities.Has(CapReceiveDevice)
}

// CanEditAllRepairFields reports whether the user bypasses the restricted
// technician field allow-list.
func (u *User) CanEditAllRepairFields() bool {
	return u.IsAdminCapable() || u.capabilities.Has(CapEditRepair)
}

func (u *User) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	u.name = name
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) ChangeUsername(username string) error {
	if len(username) == 0 {
		return fmt.Errorf("username cannot be empty")
	}
	u.username = username
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) SetPasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) SetCommissionPct(pct *int) error {
	if pct != nil && (*pct < 0 || *pct > 100) {
		return fmt.Errorf("commission percentage must be between 0 and 100")
	}
	u.commissionPct = pct
	u.updatedAt = time.Now().UTC()
	return nil
}

// GrantCapabilities overlays the given flags onto the existing set.
func (u *User) GrantCapabilities(caps Capabilities) {
	u.capabilities = u.capabilities.Merge(caps)
	u.updatedAt = time.Now().UTC()
}

// SetCapabilities replaces the whole flag set.
func (u *User) SetCapabilities(caps Capabilities) {
	if caps == nil {
		caps = Capabilities{}
	}
	u.capabilities = caps
	u.updatedAt = time.Now().UTC()
}

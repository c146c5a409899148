package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTechnician(t *testing.T, caps Capabilities) *User {
	t.Helper()
	u, err := NewUser("karim", "Karim", "$2a$10$hash", RoleTechnician, caps, nil)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("valid technician", func(t *testing.T) {
		u := newTechnician(t, nil)
		assert.Equal(t, RoleTechnician, u.Role())
		assert.Nil(t, u.CommissionPct())
		assert.NotNil(t, u.Capabilities())
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := NewUser("x", "X", "hash", Role("manager"), nil, nil)
		assert.Error(t, err)
	})

	t.Run("commission out of range", func(t *testing.T) {
		pct := 120
		_, err := NewUser("x", "X", "hash", RoleTechnician, nil, &pct)
		assert.Error(t, err)
	})
}

func TestUserCapabilities(t *testing.T) {
	t.Run("admin implies all capabilities", func(t *testing.T) {
		admin, err := NewUser("boss", "Boss", "hash", RoleAdmin, nil, nil)
		require.NoError(t, err)
		assert.True(t, admin.IsAdminCapable())
		assert.True(t, admin.HasCapability(CapDeleteRepair))
		assert.True(t, admin.CanViewAllRepairs())
		assert.True(t, admin.CanEditAllRepairFields())
	})

	t.Run("plain technician has nothing extra", func(t *testing.T) {
		u := newTechnician(t, nil)
		assert.False(t, u.IsAdminCapable())
		assert.False(t, u.HasCapability(CapEditRepair))
		assert.False(t, u.CanViewAllRepairs())
		assert.False(t, u.CanEditAllRepairFields())
	})

	t.Run("granted capabilities widen scope", func(t *testing.T) {
		u := newTechnician(t, NewCapabilities(CapCreateRepair, CapEditRepair))
		assert.True(t, u.HasCapability(CapCreateRepair))
		assert.True(t, u.CanViewAllRepairs(), "repair creators see all repairs")
		assert.True(t, u.CanEditAllRepairFields())
		assert.False(t, u.IsAdminCapable())
	})

	t.Run("receive capability grants broad view only", func(t *testing.T) {
		u := newTechnician(t, NewCapabilities(CapReceiveDevice))
		assert.True(t, u.CanViewAllRepairs())
		assert.False(t, u.CanEditAllRepairFields())
	})

	t.Run("admin override on a technician", func(t *testing.T) {
		u := newTechnician(t, NewCapabilities(CapAdminOverride))
		assert.True(t, u.IsAdminCapable())
		assert.True(t, u.HasCapability(CapDeleteRepair))
	})
}

func TestSetCommissionPct(t *testing.T) {
	u := newTechnician(t, nil)

	pct := 40
	require.NoError(t, u.SetCommissionPct(&pct))
	require.NotNil(t, u.CommissionPct())
	assert.Equal(t, 40, *u.CommissionPct())

	bad := -1
	assert.Error(t, u.SetCommissionPct(&bad))

	require.NoError(t, u.SetCommissionPct(nil), "clearing falls back to the shop default")
	assert.Nil(t, u.CommissionPct())
}

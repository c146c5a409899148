package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixtrack/internal/domain/repair"
	vo "fixtrack/internal/domain/repair/valueobjects"
	"fixtrack/internal/domain/user"
)

func namedUser(t *testing.T, id uint, name string, role user.Role) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, fmt.Sprintf("user%d", id), name, "$2a$10$hash", role, nil, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestGetRepair_ResolvesUserNames(t *testing.T) {
	techID := uint(7)
	stored := storedRepair(t, 10, vo.StatusPending, &techID)

	users := map[uint]*user.User{
		1: namedUser(t, 1, "Omar", user.RoleAdmin),
		7: namedUser(t, 7, "Hassan", user.RoleTechnician),
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if u, ok := users[id]; ok {
				return u, nil
			}
			return nil, fmt.Errorf("user %d not found", id)
		},
	}
	repairRepo := &mockRepairRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*repair.Repair, error) {
			return stored, nil
		},
	}

	uc := NewGetRepairUseCase(repairRepo, userRepo, &mockLogger{})
	d, err := uc.Execute(context.Background(), GetRepairQuery{RepairID: 10, ActorID: 1})
	require.NoError(t, err)

	require.NotNil(t, d.TechnicianName)
	assert.Equal(t, "Hassan", *d.TechnicianName)
	assert.Equal(t, "Omar", d.CreatedByName)
	assert.Nil(t, d.RecipientName)
}

func TestListRepairs_ResolvesUserNames(t *testing.T) {
	techID := uint(7)
	first := storedRepair(t, 10, vo.StatusPending, &techID)
	second := storedRepair(t, 11, vo.StatusInProgress, nil)

	users := map[uint]*user.User{
		1: namedUser(t, 1, "Omar", user.RoleAdmin),
		7: namedUser(t, 7, "Hassan", user.RoleTechnician),
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if u, ok := users[id]; ok {
				return u, nil
			}
			return nil, fmt.Errorf("user %d not found", id)
		},
	}
	repairRepo := &mockRepairRepository{
		ListFunc: func(ctx context.Context, filter repair.Filter) ([]*repair.Repair, int64, error) {
			return []*repair.Repair{first, second}, 2, nil
		},
	}

	uc := NewListRepairsUseCase(repairRepo, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListRepairsQuery{ActorID: 1})
	require.NoError(t, err)
	require.Len(t, result.Repairs, 2)

	require.NotNil(t, result.Repairs[0].TechnicianName)
	assert.Equal(t, "Hassan", *result.Repairs[0].TechnicianName)
	assert.Equal(t, "Omar", result.Repairs[0].CreatedByName)
	assert.Nil(t, result.Repairs[1].TechnicianName)
	assert.Equal(t, "Omar", result.Repairs[1].CreatedByName)
}

func TestListRepairs_DeletedUserKeepsBareID(t *testing.T) {
	techID := uint(9)
	stored := storedRepair(t, 10, vo.StatusPending, &techID)

	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if id == 1 {
				return namedUser(t, 1, "Omar", user.RoleAdmin), nil
			}
			return nil, fmt.Errorf("user %d not found", id)
		},
	}
	repairRepo := &mockRepairRepository{
		ListFunc: func(ctx context.Context, filter repair.Filter) ([]*repair.Repair, int64, error) {
			return []*repair.Repair{stored}, 1, nil
		},
	}

	uc := NewListRepairsUseCase(repairRepo, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListRepairsQuery{ActorID: 1})
	require.NoError(t, err)
	require.Len(t, result.Repairs, 1)

	d := result.Repairs[0]
	require.NotNil(t, d.TechnicianID)
	assert.Equal(t, uint(9), *d.TechnicianID)
	assert.Nil(t, d.TechnicianName)
}

package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixtrack/internal/domain/auditlog"
	"fixtrack/internal/domain/repair"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
)

// creatorRepo resolves every actor lookup to an admin.
func creatorRepo(t *testing.T) *mockUserRepository {
	t.Helper()
	return &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return adminUser(t, id), nil
		},
	}
}

func TestCreateRepair(t *testing.T) {
	t.Run("allocates sequential number and persists", func(t *testing.T) {
		repairRepo := &mockRepairRepository{}
		numbers := &mockNumberAllocator{
			NextRepairIDFunc: func(ctx context.Context) (int, error) { return 1042, nil },
		}
		logRepo := &mockLogRepository{}
		publisher := &mockEventPublisher{}

		var created *repair.Repair
		repairRepo.CreateFunc = func(ctx context.Context, r *repair.Repair) error {
			created = r
			return r.SetID(5)
		}

		uc := NewCreateRepairUseCase(repairRepo, numbers, creatorRepo(t), logRepo, publisher, &mockLogger{})
		result, err := uc.Execute(context.Background(), CreateRepairCommand{
			CustomerName: "Mona Ali",
			DeviceType:   "Samsung A54",
			Issue:        "no power",
			Price:        decimal.NewFromInt(400),
			CreatedBy:    1,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, 1042, result.RepairNumber)
		assert.Equal(t, uint(5), result.ID)
		assert.Equal(t, "pending", result.Status)
	})

	t.Run("audit entry recorded on create", func(t *testing.T) {
		repairRepo := &mockRepairRepository{
			CreateFunc: func(ctx context.Context, r *repair.Repair) error { return r.SetID(5) },
		}
		var recorded *auditlog.Entry
		logRepo := &mockLogRepository{
			CreateFunc: func(ctx context.Context, entry *auditlog.Entry) error {
				recorded = entry
				return nil
			},
		}

		uc := NewCreateRepairUseCase(repairRepo, &mockNumberAllocator{}, creatorRepo(t), logRepo, &mockEventPublisher{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateRepairCommand{
			CustomerName: "Mona Ali",
			DeviceType:   "Samsung A54",
			Price:        decimal.NewFromInt(400),
			CreatedBy:    1,
		})
		require.NoError(t, err)
		require.NotNil(t, recorded)
		assert.Equal(t, auditlog.ActionCreate, recorded.Action())
	})

	t.Run("created event published", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		repairRepo := &mockRepairRepository{
			CreateFunc: func(ctx context.Context, r *repair.Repair) error { return r.SetID(5) },
		}

		uc := NewCreateRepairUseCase(repairRepo, &mockNumberAllocator{}, creatorRepo(t), &mockLogRepository{}, publisher, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateRepairCommand{
			CustomerName: "Mona Ali",
			DeviceType:   "Samsung A54",
			Price:        decimal.NewFromInt(400),
			CreatedBy:    1,
		})
		require.NoError(t, err)
		require.Len(t, publisher.Published, 1)
		assert.Equal(t, repair.EventRepairCreated, publisher.Published[0].GetEventType())
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewCreateRepairUseCase(&mockRepairRepository{}, &mockNumberAllocator{}, creatorRepo(t), &mockLogRepository{}, &mockEventPublisher{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateRepairCommand{
			DeviceType: "Samsung A54",
			Price:      decimal.NewFromInt(400),
			CreatedBy:  1,
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("technician without create capability denied", func(t *testing.T) {
		called := false
		repairRepo := &mockRepairRepository{
			CreateFunc: func(ctx context.Context, r *repair.Repair) error {
				called = true
				return nil
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return technicianUser(t, id, user.NewCapabilities()), nil
			},
		}

		uc := NewCreateRepairUseCase(repairRepo, &mockNumberAllocator{}, userRepo, &mockLogRepository{}, &mockEventPublisher{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateRepairCommand{
			CustomerName: "Mona Ali",
			DeviceType:   "Samsung A54",
			Price:        decimal.NewFromInt(400),
			CreatedBy:    7,
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
		assert.False(t, called)
	})

	t.Run("technician with create capability allowed", func(t *testing.T) {
		repairRepo := &mockRepairRepository{
			CreateFunc: func(ctx context.Context, r *repair.Repair) error { return r.SetID(5) },
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return technicianUser(t, id, user.NewCapabilities(user.CapCreateRepair)), nil
			},
		}

		uc := NewCreateRepairUseCase(repairRepo, &mockNumberAllocator{}, userRepo, &mockLogRepository{}, &mockEventPublisher{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateRepairCommand{
			CustomerName: "Mona Ali",
			DeviceType:   "Samsung A54",
			Price:        decimal.NewFromInt(400),
			CreatedBy:    7,
		})
		require.NoError(t, err)
	})

	t.Run("unknown creator rejected", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return nil, fmt.Errorf("record not found")
			},
		}

		uc := NewCreateRepairUseCase(&mockRepairRepository{}, &mockNumberAllocator{}, userRepo, &mockLogRepository{}, &mockEventPublisher{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateRepairCommand{
			CustomerName: "Mona Ali",
			DeviceType:   "Samsung A54",
			Price:        decimal.NewFromInt(400),
			CreatedBy:    9,
		})
		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("allocator failure", func(t *testing.T) {
		numbers := &mockNumberAllocator{
			NextRepairIDFunc: func(ctx context.Context) (int, error) { return 0, fmt.Errorf("counter row locked") },
		}
		uc := NewCreateRepairUseCase(&mockRepairRepository{}, numbers, creatorRepo(t), &mockLogRepository{}, &mockEventPublisher{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateRepairCommand{
			CustomerName: "Mona Ali",
			DeviceType:   "Samsung A54",
			Price:        decimal.NewFromInt(400),
			CreatedBy:    1,
		})
		require.Error(t, err)
	})
}

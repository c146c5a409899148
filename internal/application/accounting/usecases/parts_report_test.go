package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixtrack/internal/domain/repair"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
)

func datep(t *testing.T, value string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &d
}

func repairWithParts(t *testing.T, id uint, customer string, parts []repair.PartEntry) *repair.Repair {
	t.Helper()
	r, err := repair.NewRepair(customer, "D", "i", "", "", decimal.NewFromInt(500), nil, nil, "", 1)
	require.NoError(t, err)
	require.NoError(t, r.SetID(id))
	require.NoError(t, r.SetRepairID(int(id)+1000))
	require.NoError(t, r.ApplyEdit(repair.EditRequest{Parts: parts}, 1, time.Now().UTC()))
	return r
}

func TestPartsReport(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return accountsUser(t, id, user.NewCapabilities(user.CapAccessAccounts), user.RoleTechnician), nil
		},
	}
	repairRepo := &mockRepairRepository{
		ListWithPartsFunc: func(ctx context.Context) ([]*repair.Repair, error) {
			return []*repair.Repair{
				repairWithParts(t, 1, "Mona", []repair.PartEntry{
					{Name: "screen", Supplier: "Al Noor", UnitCost: decimal.NewFromInt(200), Qty: 1, PurchaseDate: datep(t, "2026-03-10")},
					{Name: "battery", Supplier: "El Salam", UnitCost: decimal.NewFromInt(50), Qty: 2, PurchaseDate: datep(t, "2026-03-05")},
				}),
				repairWithParts(t, 2, "Omar", []repair.PartEntry{
					{Name: "flex", Supplier: "Al Noor", UnitCost: decimal.NewFromInt(30), Qty: 1, PurchaseDate: datep(t, "2026-03-20")},
					{Name: "glass", Supplier: "Al Noor", UnitCost: decimal.NewFromInt(40), Qty: 1, PurchaseDate: datep(t, "2026-04-02")},
					{Name: "undated", Supplier: "Al Noor", UnitCost: decimal.NewFromInt(999), Qty: 1},
				}),
			}, nil
		},
	}

	uc := NewGetPartsReportUseCase(repairRepo, userRepo, &mockLogger{})

	t.Run("filters by part purchase date across all repairs", func(t *testing.T) {
		report, err := uc.Execute(context.Background(), GetPartsReportQuery{
			ActorID:   2,
			StartDate: "2026-03-01",
			EndDate:   "2026-03-31",
		})
		require.NoError(t, err)

		require.Len(t, report.Lines, 3)
		assert.Equal(t, 3, report.Count)
		// sorted by purchase date, not by repair
		assert.Equal(t, "battery", report.Lines[0].PartName)
		assert.Equal(t, "screen", report.Lines[1].PartName)
		assert.Equal(t, "flex", report.Lines[2].PartName)
		assert.Equal(t, "330", report.TotalCost)

		require.Len(t, report.BySupplier, 2)
		assert.Equal(t, "Al Noor", report.BySupplier[0].Supplier)
		assert.Equal(t, "230", report.BySupplier[0].TotalCost)
		assert.Equal(t, 2, report.BySupplier[0].Count)
		assert.Equal(t, "El Salam", report.BySupplier[1].Supplier)
		assert.Equal(t, "100", report.BySupplier[1].TotalCost)
		assert.Equal(t, 1, report.BySupplier[1].Count)
	})

	t.Run("undated parts never appear", func(t *testing.T) {
		report, err := uc.Execute(context.Background(), GetPartsReportQuery{ActorID: 2})
		require.NoError(t, err)

		require.Len(t, report.Lines, 4)
		for _, line := range report.Lines {
			assert.NotEqual(t, "undated", line.PartName)
		}
		assert.Equal(t, "370", report.TotalCost)
	})

	t.Run("requires accounts access", func(t *testing.T) {
		deniedRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return accountsUser(t, id, user.NewCapabilities(), user.RoleTechnician), nil
			},
		}
		uc := NewGetPartsReportUseCase(repairRepo, deniedRepo, &mockLogger{})
		_, err := uc.Execute(context.Background(), GetPartsReportQuery{ActorID: 2})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}

package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixtrack/internal/domain/auditlog"
	"fixtrack/internal/domain/repair"
	vo "fixtrack/internal/domain/repair/valueobjects"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func adminUser(t *testing.T, id uint) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "admin", "Admin", "$2a$10$adminhash", user.RoleAdmin, nil, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func technicianUser(t *testing.T, id uint, caps user.Capabilities) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, fmt.Sprintf("tech%d", id), "Tech", "$2a$10$techhash", user.RoleTechnician, caps, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func storedRepair(t *testing.T, id uint, status vo.RepairStatus, technicianID *uint) *repair.Repair {
	t.Helper()
	now := time.Now().UTC()
	r, err := repair.ReconstructRepair(
		id, int(id)+1000,
		"Mona Ali", "Samsung A54", "no power", "blue", "01112223334",
		decimal.NewFromInt(400), nil, nil,
		status,
		technicianID, nil,
		"",
		nil, nil, nil,
		false, nil, nil,
		1, nil,
		now, now,
	)
	require.NoError(t, err)
	return r
}

func strp(s string) *string { return &s }

func decp(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

type updateFixture struct {
	repairRepo *mockRepairRepository
	userRepo   *mockUserRepository
	logRepo    *mockLogRepository
	verifier   *mockPasswordVerifier
	publisher  *mockEventPublisher
	uc         *UpdateRepairUseCase
}

func newUpdateFixture(actor *user.User, stored *repair.Repair) *updateFixture {
	f := &updateFixture{
		repairRepo: &mockRepairRepository{},
		userRepo:   &mockUserRepository{},
		logRepo:    &mockLogRepository{},
		verifier:   &mockPasswordVerifier{},
		publisher:  &mockEventPublisher{},
	}
	f.userRepo.GetByIDFunc = func(ctx context.Context, id uint) (*user.User, error) {
		if id == actor.ID() {
			return actor, nil
		}
		return nil, fmt.Errorf("user %d not found", id)
	}
	f.repairRepo.GetByIDFunc = func(ctx context.Context, id uint) (*repair.Repair, error) {
		if id == stored.ID() {
			return stored, nil
		}
		return nil, fmt.Errorf("repair %d not found", id)
	}
	f.uc = NewUpdateRepairUseCase(f.repairRepo, f.userRepo, f.logRepo, f.verifier, f.publisher, &mockLogger{})
	return f
}

// ---------------------------------------------------------------------------
// Elevated actors
// ---------------------------------------------------------------------------

func TestUpdateRepair_AdminEditsAnyField(t *testing.T) {
	admin := adminUser(t, 1)
	stored := storedRepair(t, 10, vo.StatusPending, nil)
	f := newUpdateFixture(admin, stored)

	var updated *repair.Repair
	f.repairRepo.UpdateFunc = func(ctx context.Context, r *repair.Repair) error {
		updated = r
		return nil
	}

	result, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID:     10,
		ActorID:      1,
		CustomerName: strp("Mona Ahmed"),
		Price:        decp(450),
		Notes:        strp("quoted after inspection"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Mona Ahmed", updated.CustomerName())
	assert.Equal(t, "pending", result.Status)
	assert.NotEmpty(t, result.Changes)
}

func TestUpdateRepair_AdminBypassesTransitionGraph(t *testing.T) {
	admin := adminUser(t, 1)
	stored := storedRepair(t, 10, vo.StatusRejected, nil)
	f := newUpdateFixture(admin, stored)

	result, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  1,
		Status:   strp("in_progress"),
	})
	require.NoError(t, err)
	assert.Equal(t, "rejected", result.OldStatus)
	assert.Equal(t, "in_progress", result.Status)
}

func TestUpdateRepair_AdminNeedsNoPassword(t *testing.T) {
	admin := adminUser(t, 1)
	stored := storedRepair(t, 10, vo.StatusPending, nil)
	f := newUpdateFixture(admin, stored)
	f.verifier.VerifyFunc = func(hash, pw string) error {
		t.Fatal("verifier must not be called for elevated actors")
		return nil
	}

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  1,
		Status:   strp("in_progress"),
	})
	require.NoError(t, err)
}

// ---------------------------------------------------------------------------
// Restricted technicians
// ---------------------------------------------------------------------------

func TestUpdateRepair_TechnicianMovesOwnRepair(t *testing.T) {
	techID := uint(7)
	tech := technicianUser(t, techID, nil)
	stored := storedRepair(t, 10, vo.StatusPending, &techID)
	f := newUpdateFixture(tech, stored)

	verified := false
	f.verifier.VerifyFunc = func(hash, pw string) error {
		verified = true
		assert.Equal(t, "$2a$10$techhash", hash)
		assert.Equal(t, "secret", pw)
		return nil
	}

	result, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  techID,
		Password: "secret",
		Status:   strp("in_progress"),
	})
	require.NoError(t, err)
	assert.True(t, verified)
	assert.Equal(t, "in_progress", result.Status)
}

func TestUpdateRepair_TechnicianMissingPassword(t *testing.T) {
	techID := uint(7)
	tech := technicianUser(t, techID, nil)
	stored := storedRepair(t, 10, vo.StatusPending, &techID)
	f := newUpdateFixture(tech, stored)

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  techID,
		Status:   strp("in_progress"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestUpdateRepair_TechnicianWrongPassword(t *testing.T) {
	techID := uint(7)
	tech := technicianUser(t, techID, nil)
	stored := storedRepair(t, 10, vo.StatusPending, &techID)
	f := newUpdateFixture(tech, stored)
	f.verifier.VerifyFunc = func(hash, pw string) error {
		return fmt.Errorf("hash mismatch")
	}

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  techID,
		Password: "wrong",
		Status:   strp("in_progress"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestUpdateRepair_TechnicianBlockedFromOtherFields(t *testing.T) {
	techID := uint(7)
	tech := technicianUser(t, techID, nil)
	stored := storedRepair(t, 10, vo.StatusPending, &techID)
	f := newUpdateFixture(tech, stored)

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  techID,
		Password: "secret",
		Status:   strp("in_progress"),
		Notes:    strp("trying to sneak in a note"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Contains(t, err.Error(), "notes")
}

func TestUpdateRepair_TechnicianNotAssigned(t *testing.T) {
	techID := uint(7)
	otherTech := uint(8)
	tech := technicianUser(t, techID, nil)
	stored := storedRepair(t, 10, vo.StatusPending, &otherTech)
	f := newUpdateFixture(tech, stored)

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  techID,
		Password: "secret",
		Status:   strp("in_progress"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdateRepair_TechnicianDeliveryMaySetPriceAndParts(t *testing.T) {
	techID := uint(7)
	tech := technicianUser(t, techID, nil)
	stored := storedRepair(t, 10, vo.StatusCompleted, &techID)
	f := newUpdateFixture(tech, stored)

	result, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID:   10,
		ActorID:    techID,
		Password:   "secret",
		Status:     strp("delivered"),
		FinalPrice: decp(550),
		Parts: []repair.PartEntry{
			{Name: "charging port", UnitCost: decimal.NewFromInt(80), Qty: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "delivered", result.Status)
	require.NotNil(t, stored.FinalPrice())
	assert.True(t, stored.FinalPrice().Equal(decimal.NewFromInt(550)))
	require.Len(t, stored.Parts(), 1)
}

func TestUpdateRepair_TechnicianFinalPriceOutsideDelivery(t *testing.T) {
	techID := uint(7)
	tech := technicianUser(t, techID, nil)
	stored := storedRepair(t, 10, vo.StatusPending, &techID)
	f := newUpdateFixture(tech, stored)

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID:   10,
		ActorID:    techID,
		Password:   "secret",
		Status:     strp("in_progress"),
		FinalPrice: decp(550),
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdateRepair_TechnicianRejectNeedsLocation(t *testing.T) {
	techID := uint(7)
	tech := technicianUser(t, techID, nil)
	stored := storedRepair(t, 10, vo.StatusInProgress, &techID)
	f := newUpdateFixture(tech, stored)

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  techID,
		Password: "secret",
		Status:   strp("rejected"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID:         10,
		ActorID:          techID,
		Password:         "secret",
		Status:           strp("rejected"),
		RejectedLocation: strp("at_shop"),
	})
	require.NoError(t, err)
	require.NotNil(t, stored.RejectedLocation())
}

func TestUpdateRepair_EditRepairCapabilityIsElevated(t *testing.T) {
	techID := uint(7)
	tech := technicianUser(t, techID, user.NewCapabilities(user.CapEditRepair))
	stored := storedRepair(t, 10, vo.StatusPending, nil)
	f := newUpdateFixture(tech, stored)

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  techID,
		Notes:    strp("unassigned repair, edited by capability holder"),
	})
	require.NoError(t, err)
	assert.Equal(t, "unassigned repair, edited by capability holder", stored.Notes())
}

// ---------------------------------------------------------------------------
// Lifecycle and audit behavior
// ---------------------------------------------------------------------------

func TestUpdateRepair_InvalidTransitionRejected(t *testing.T) {
	techID := uint(7)
	tech := technicianUser(t, techID, nil)
	stored := storedRepair(t, 10, vo.StatusPending, &techID)
	f := newUpdateFixture(tech, stored)

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  techID,
		Password: "secret",
		Status:   strp("returned"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, vo.StatusPending, stored.Status())
}

func TestUpdateRepair_UnknownStatusRejected(t *testing.T) {
	admin := adminUser(t, 1)
	stored := storedRepair(t, 10, vo.StatusPending, nil)
	f := newUpdateFixture(admin, stored)

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  1,
		Status:   strp("exploded"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateRepair_PricingFrozenAfterDelivery(t *testing.T) {
	admin := adminUser(t, 1)
	stored := storedRepair(t, 10, vo.StatusDelivered, nil)
	f := newUpdateFixture(admin, stored)

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID:   10,
		ActorID:    1,
		FinalPrice: decp(1),
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestUpdateRepair_AuditEntryRecorded(t *testing.T) {
	admin := adminUser(t, 1)
	stored := storedRepair(t, 10, vo.StatusPending, nil)
	f := newUpdateFixture(admin, stored)

	var recorded *auditlog.Entry
	f.logRepo.CreateFunc = func(ctx context.Context, entry *auditlog.Entry) error {
		recorded = entry
		return nil
	}

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  1,
		Status:   strp("in_progress"),
	})
	require.NoError(t, err)
	require.NotNil(t, recorded)
	assert.Equal(t, auditlog.ActionStatusChange, recorded.Action())
	assert.Equal(t, uint(1), recorded.ActorID())
	require.NotEmpty(t, recorded.Changes())
	assert.Equal(t, "status", recorded.Changes()[0].Field)
	assert.Equal(t, "pending", recorded.Changes()[0].From)
	assert.Equal(t, "in_progress", recorded.Changes()[0].To)
}

func TestUpdateRepair_AuditFailureDoesNotFailUpdate(t *testing.T) {
	admin := adminUser(t, 1)
	stored := storedRepair(t, 10, vo.StatusPending, nil)
	f := newUpdateFixture(admin, stored)
	f.logRepo.CreateFunc = func(ctx context.Context, entry *auditlog.Entry) error {
		return fmt.Errorf("log table unavailable")
	}

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  1,
		Status:   strp("in_progress"),
	})
	assert.NoError(t, err)
}

func TestUpdateRepair_EventPublished(t *testing.T) {
	admin := adminUser(t, 1)
	stored := storedRepair(t, 10, vo.StatusPending, nil)
	f := newUpdateFixture(admin, stored)

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  1,
		Status:   strp("in_progress"),
	})
	require.NoError(t, err)
	require.Len(t, f.publisher.Published, 1)

	evt, ok := f.publisher.Published[0].(repair.RepairUpdatedEvent)
	require.True(t, ok)
	assert.True(t, evt.StatusChange)
	assert.Equal(t, "pending", evt.OldStatus)
	assert.Equal(t, "in_progress", evt.NewStatus)
}

func TestUpdateRepair_PersistFailure(t *testing.T) {
	admin := adminUser(t, 1)
	stored := storedRepair(t, 10, vo.StatusPending, nil)
	f := newUpdateFixture(admin, stored)
	f.repairRepo.UpdateFunc = func(ctx context.Context, r *repair.Repair) error {
		return fmt.Errorf("connection reset")
	}

	_, err := f.uc.Execute(context.Background(), UpdateRepairCommand{
		RepairID: 10,
		ActorID:  1,
		Status:   strp("in_progress"),
	})
	require.Error(t, err)
	assert.Len(t, f.publisher.Published, 0, "no event on failed persist")
}

package usecases

import (
	"context"
	"time"

	"fixtrack/internal/domain/auditlog"
	"fixtrack/internal/domain/repair"
	"fixtrack/internal/domain/shared/events"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/logger"
)

type mockRepairRepository struct {
	CreateFunc               func(ctx context.Context, r *repair.Repair) error
	GetByIDFunc              func(ctx context.Context, id uint) (*repair.Repair, error)
	GetByRepairIDFunc        func(ctx context.Context, repairID int) (*repair.Repair, error)
	UpdateFunc               func(ctx context.Context, r *repair.Repair) error
	DeleteFunc               func(ctx context.Context, id uint) error
	ListFunc                 func(ctx context.Context, filter repair.Filter) ([]*repair.Repair, int64, error)
	ListByTechnicianFunc     func(ctx context.Context, technicianID uint) ([]*repair.Repair, error)
	ListDeliveredBetweenFunc func(ctx context.Context, start, end *time.Time) ([]*repair.Repair, error)
	ListWithPartsFunc        func(ctx context.Context) ([]*repair.Repair, error)
}

func (m *mockRepairRepository) Create(ctx context.Context, r *repair.Repair) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockRepairRepository) GetByID(ctx context.Context, id uint) (*repair.Repair, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRepairRepository) GetByRepairID(ctx context.Context, repairID int) (*repair.Repair, error) {
	if m.GetByRepairIDFunc != nil {
		return m.GetByRepairIDFunc(ctx, repairID)
	}
	return nil, nil
}

func (m *mockRepairRepository) Update(ctx context.Context, r *repair.Repair) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRepairRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRepairRepository) List(ctx context.Context, filter repair.Filter) ([]*repair.Repair, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRepairRepository) ListByTechnician(ctx context.Context, technicianID uint) ([]*repair.Repair, error) {
	if m.ListByTechnicianFunc != nil {
		return m.ListByTechnicianFunc(ctx, technicianID)
	}
	return nil, nil
}

func (m *mockRepairRepository) ListDeliveredBetween(ctx context.Context, start, end *time.Time) ([]*repair.Repair, error) {
	if m.ListDeliveredBetweenFunc != nil {
		return m.ListDeliveredBetweenFunc(ctx, start, end)
	}
	return nil, nil
}

func (m *mockRepairRepository) ListWithParts(ctx context.Context) ([]*repair.Repair, error) {
	if m.ListWithPartsFunc != nil {
		return m.ListWithPartsFunc(ctx)
	}
	return nil, nil
}

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	UpdateFunc           func(ctx context.Context, u *user.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListByRoleFunc       func(ctx context.Context, role user.Role) ([]*user.User, error)
	ListAdminCapableFunc func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

func (m *mockUserRepository) ListAdminCapable(ctx context.Context) ([]*user.User, error) {
	if m.ListAdminCapableFunc != nil {
		return m.ListAdminCapableFunc(ctx)
	}
	return nil, nil
}

type mockLogRepository struct {
	CreateFunc         func(ctx context.Context, entry *auditlog.Entry) error
	ListByRepairIDFunc func(ctx context.Context, repairID uint) ([]*auditlog.Entry, error)
}

func (m *mockLogRepository) Create(ctx context.Context, entry *auditlog.Entry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return nil
}

func (m *mockLogRepository) ListByRepairID(ctx context.Context, repairID uint) ([]*auditlog.Entry, error) {
	if m.ListByRepairIDFunc != nil {
		return m.ListByRepairIDFunc(ctx, repairID)
	}
	return nil, nil
}

type mockNumberAllocator struct {
	NextRepairIDFunc func(ctx context.Context) (int, error)
}

func (m *mockNumberAllocator) NextRepairID(ctx context.Context) (int, error) {
	if m.NextRepairIDFunc != nil {
		return m.NextRepairIDFunc(ctx)
	}
	return 1, nil
}

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
	Published      []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	m.Published = append(m.Published, evts...)
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

type mockPasswordVerifier struct {
	VerifyFunc func(hashedPassword, password string) error
}

func (m *mockPasswordVerifier) Verify(hashedPassword, password string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

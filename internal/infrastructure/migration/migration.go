// Package migration handles database schema migrations with
// environment-specific strategies.
package migration

import (
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"fixtrack/internal/infrastructure/persistence/models"
	"fixtrack/internal/shared/constants"
	"fixtrack/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager creates a migration manager for the given environment.
// Development reconciles the schema with GORM AutoMigrate; test and
// production apply versioned goose scripts.
func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvTest, constants.EnvProduction:
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGooseStrategy(scriptsPath)
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// NewManagerWithStrategy creates a migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB, migrationModels ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(migrationModels))

	if err := m.strategy.Migrate(db, migrationModels...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return err
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.GetName())
	return nil
}

// AllModels returns every persistence model the schema carries, in
// dependency-free order.
func AllModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.RepairModel{},
		&models.AuditLogModel{},
		&models.NotificationModel{},
		&models.PushSubscriptionModel{},
		&models.SettingModel{},
		&models.TransactionModel{},
		&models.CounterModel{},
	}
}

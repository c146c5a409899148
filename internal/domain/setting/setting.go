// Package setting holds workshop-wide configuration stored as a single
// row. The only tunable today is the default technician commission used
// when a technician has no personal percentage.
package setting

import (
	"fmt"
	"time"
)

type ShopSettings struct {
	id                       uint
	defaultTechCommissionPct int
	updatedBy                *uint
	createdAt                time.Time
	updatedAt                time.Time
}

func NewShopSettings(defaultTechCommissionPct int) (*ShopSettings, error) {
	if defaultTechCommissionPct < 0 || defaultTechCommissionPct > 100 {
		return nil, fmt.Errorf("default commission must be between 0 and 100, got %d", defaultTechCommissionPct)
	}

	now := time.Now().UTC()
	return &ShopSettings{
		defaultTechCommissionPct: defaultTechCommissionPct,
		createdAt:                now,
		updatedAt:                now,
	}, nil
}

func ReconstructShopSettings(
	id uint,
	defaultTechCommissionPct int,
	updatedBy *uint,
	createdAt, updatedAt time.Time,
) *ShopSettings {
	return &ShopSettings{
		id:                       id,
		defaultTechCommissionPct: defaultTechCommissionPct,
		updatedBy:                updatedBy,
		createdAt:                createdAt,
		updatedAt:                updatedAt,
	}
}

func (s *ShopSettings) ID() uint                      { return s.id }
func (s *ShopSettings) DefaultTechCommissionPct() int { return s.defaultTechCommissionPct }
func (s *ShopSettings) UpdatedBy() *uint              { return s.updatedBy }
func (s *ShopSettings) CreatedAt() time.Time          { return s.createdAt }
func (s *ShopSettings) UpdatedAt() time.Time          { return s.updatedAt }

func (s *ShopSettings) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("settings ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("settings ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *ShopSettings) UpdateDefaultCommission(pct int, actorID uint) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("default commission must be between 0 and 100, got %d", pct)
	}
	s.defaultTechCommissionPct = pct
	s.updatedBy = &actorID
	s.updatedAt = time.Now().UTC()
	return nil
}

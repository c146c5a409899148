package setting

import "context"

// SettingsRepository stores the singleton settings row. Get creates the
// row with defaults on first access so callers never see a missing row.
type SettingsRepository interface {
	Get(ctx context.Context) (*ShopSettings, error)
	Update(ctx context.Context, s *ShopSettings) error
}

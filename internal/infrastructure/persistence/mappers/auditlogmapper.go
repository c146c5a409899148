package mappers

import (
	"encoding/json"
	"fmt"

	"fixtrack/internal/domain/auditlog"
	"fixtrack/internal/infrastructure/persistence/models"
)

// AuditLogMapper handles the conversion between audit log entries and persistence models.
type AuditLogMapper interface {
	ToModel(e *auditlog.Entry) *models.AuditLogModel
	ToDomain(model *models.AuditLogModel) (*auditlog.Entry, error)
}

// AuditLogMapperImpl is the concrete implementation of AuditLogMapper.
type AuditLogMapperImpl struct{}

// NewAuditLogMapper creates a new AuditLogMapper.
func NewAuditLogMapper() AuditLogMapper {
	return &AuditLogMapperImpl{}
}

func (m *AuditLogMapperImpl) ToModel(e *auditlog.Entry) *models.AuditLogModel {
	model := &models.AuditLogModel{
		ID:        e.ID(),
		RepairID:  e.RepairID(),
		Action:    string(e.Action()),
		ActorID:   e.ActorID(),
		Detail:    e.Detail(),
		CreatedAt: e.CreatedAt().UnixMilli(),
	}

	if changes := e.Changes(); len(changes) > 0 {
		changeModels := make([]models.FieldChangeModel, 0, len(changes))
		for _, c := range changes {
			changeModels = append(changeModels, models.FieldChangeModel{
				Field: c.Field,
				From:  c.From,
				To:    c.To,
			})
		}
		changesJSON, _ := json.Marshal(changeModels)
		model.Changes = string(changesJSON)
	}

	return model
}

func (m *AuditLogMapperImpl) ToDomain(model *models.AuditLogModel) (*auditlog.Entry, error) {
	var changes []auditlog.FieldChange
	if model.Changes != "" {
		var changeModels []models.FieldChangeModel
		if err := json.Unmarshal([]byte(model.Changes), &changeModels); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit changes (id=%d): %w", model.ID, err)
		}
		changes = make([]auditlog.FieldChange, 0, len(changeModels))
		for _, cm := range changeModels {
			changes = append(changes, auditlog.FieldChange{
				Field: cm.Field,
				From:  cm.From,
				To:    cm.To,
			})
		}
	}

	return auditlog.ReconstructEntry(
		model.ID,
		model.RepairID,
		auditlog.Action(model.Action),
		model.ActorID,
		model.Detail,
		changes,
		millisToTime(model.CreatedAt),
	)
}

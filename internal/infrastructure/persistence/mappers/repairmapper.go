package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"fixtrack/internal/domain/repair"
	vo "fixtrack/internal/domain/repair/valueobjects"
	"fixtrack/internal/infrastructure/persistence/models"
)

// RepairMapper handles the conversion between Repair domain entities and persistence models.
type RepairMapper interface {
	// ToModel converts a repair domain entity to a persistence model.
	ToModel(r *repair.Repair) *models.RepairModel

	// ToDomain converts a repair persistence model to a domain entity.
	ToDomain(model *models.RepairModel) (*repair.Repair, error)
}

// RepairMapperImpl is the concrete implementation of RepairMapper.
type RepairMapperImpl struct{}

// NewRepairMapper creates a new RepairMapper.
func NewRepairMapper() RepairMapper {
	return &RepairMapperImpl{}
}

// ToModel converts a repair domain entity to a persistence model.
func (m *RepairMapperImpl) ToModel(r *repair.Repair) *models.RepairModel {
	model := &models.RepairModel{
		ID:           r.ID(),
		RepairID:     r.RepairID(),
		CustomerName: r.CustomerName(),
		DeviceType:   r.DeviceType(),
		Issue:        r.Issue(),
		Color:        r.Color(),
		Phone:        r.Phone(),
		Price:        r.Price(),
		FinalPrice:   r.FinalPrice(),
		Status:       r.Status().String(),
		TechnicianID: r.TechnicianID(),
		RecipientID:  r.RecipientID(),
		Notes:        r.Notes(),
		Returned:     r.Returned(),
		CreatedBy:    r.CreatedBy(),
		UpdatedBy:    r.UpdatedBy(),
		CreatedAt:    r.CreatedAt().UnixMilli(),
		UpdatedAt:    r.UpdatedAt().UnixMilli(),
	}

	if parts := r.Parts(); len(parts) > 0 {
		partModels := make([]models.PartModel, 0, len(parts))
		for _, p := range parts {
			pm := models.PartModel{
				Name:     p.Name,
				Supplier: p.Supplier,
				UnitCost: p.UnitCost,
				Qty:      p.Qty,
			}
			if p.PurchaseDate != nil {
				millis := p.PurchaseDate.UnixMilli()
				pm.PurchaseDate = &millis
			}
			partModels = append(partModels, pm)
		}
		partsJSON, _ := json.Marshal(partModels)
		model.Parts = string(partsJSON)
	}

	model.StartTime = millisPtr(r.StartTime())
	model.EndTime = millisPtr(r.EndTime())
	model.DeliveryDate = millisPtr(r.DeliveryDate())
	model.ReturnDate = millisPtr(r.ReturnDate())

	if loc := r.RejectedLocation(); loc != nil {
		s := loc.String()
		model.RejectedLocation = &s
	}

	return model
}

// ToDomain converts a repair persistence model to a domain entity.
func (m *RepairMapperImpl) ToDomain(model *models.RepairModel) (*repair.Repair, error) {
	status, err := vo.NewRepairStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid repair status (id=%d): %w", model.ID, err)
	}

	var parts []repair.PartEntry
	if model.Parts != "" {
		var partModels []models.PartModel
		if err := json.Unmarshal([]byte(model.Parts), &partModels); err != nil {
			return nil, fmt.Errorf("failed to unmarshal repair parts (id=%d): %w", model.ID, err)
		}
		parts = make([]repair.PartEntry, 0, len(partModels))
		for _, pm := range partModels {
			entry := repair.PartEntry{
				Name:     pm.Name,
				Supplier: pm.Supplier,
				UnitCost: pm.UnitCost,
				Qty:      pm.Qty,
			}
			if pm.PurchaseDate != nil {
				t := millisToTime(*pm.PurchaseDate)
				entry.PurchaseDate = &t
			}
			parts = append(parts, entry)
		}
	}

	var rejectedLocation *vo.DeviceLocation
	if model.RejectedLocation != nil {
		loc, err := vo.NewDeviceLocation(*model.RejectedLocation)
		if err != nil {
			return nil, fmt.Errorf("invalid rejected device location (id=%d): %w", model.ID, err)
		}
		rejectedLocation = &loc
	}

	return repair.ReconstructRepair(
		model.ID,
		model.RepairID,
		model.CustomerName,
		model.DeviceType,
		model.Issue,
		model.Color,
		model.Phone,
		model.Price,
		model.FinalPrice,
		parts,
		status,
		model.TechnicianID,
		model.RecipientID,
		model.Notes,
		timePtr(model.StartTime),
		timePtr(model.EndTime),
		timePtr(model.DeliveryDate),
		model.Returned,
		timePtr(model.ReturnDate),
		rejectedLocation,
		model.CreatedBy,
		model.UpdatedBy,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}

func millisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	millis := t.UnixMilli()
	return &millis
}

func timePtr(millis *int64) *time.Time {
	if millis == nil {
		return nil
	}
	t := millisToTime(*millis)
	return &t
}

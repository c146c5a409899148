package usecases

import (
	"context"

	"fixtrack/internal/application/repair/dto"
	"fixtrack/internal/domain/repair"
	vo "fixtrack/internal/domain/repair/valueobjects"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/biztime"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type ListRepairsQuery struct {
	ActorID      uint
	Query        string
	Status       string
	TechnicianID *uint
	StartDate    string
	EndDate      string
	Page         int
	PageSize     int
}

type ListRepairsResult struct {
	Repairs  []dto.RepairDTO
	Total    int64
	Page     int
	PageSize int
}

type ListRepairsUseCase struct {
	repairRepo repair.RepairRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewListRepairsUseCase(
	repairRepo repair.RepairRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListRepairsUseCase {
	return &ListRepairsUseCase{
		repairRepo: repairRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListRepairsUseCase) Execute(ctx context.Context, query ListRepairsQuery) (*ListRepairsResult, error) {
	actor, err := uc.userRepo.GetByID(ctx, query.ActorID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("unknown user")
	}

	filter, err := uc.buildFilter(actor, query)
	if err != nil {
		return nil, err
	}

	repairs, total, err := uc.repairRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list repairs", "actor_id", query.ActorID, "error", err)
		return nil, errors.NewInternalError("failed to list repairs")
	}

	dtos := dto.FromRepairs(repairs)
	names := lookupUserNames(ctx, uc.userRepo, repairUserIDs(repairs))
	for i := range dtos {
		dtos[i].ApplyUserNames(names)
	}

	return &ListRepairsResult{
		Repairs:  dtos,
		Total:    total,
		Page:     filter.Offset/filter.Limit + 1,
		PageSize: filter.Limit,
	}, nil
}

func (uc *ListRepairsUseCase) buildFilter(actor *user.User, query ListRepairsQuery) (repair.Filter, error) {
	filter := repair.Filter{
		Query:        query.Query,
		TechnicianID: query.TechnicianID,
	}

	// Narrow viewers only ever see their own assignments.
	if !actor.CanViewAllRepairs() {
		id := actor.ID()
		filter.TechnicianID = &id
	}

	if query.Status != "" {
		status, err := vo.NewRepairStatus(query.Status)
		if err != nil {
			return repair.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	start, end, err := biztime.DateRangeUTC(query.StartDate, query.EndDate)
	if err != nil {
		return repair.Filter{}, errors.NewValidationError(err.Error())
	}
	filter.StartDate = start
	filter.EndDate = end

	page := query.Page
	if page < 1 {
		page = 1
	}
	size := query.PageSize
	if size < 1 || size > 200 {
		size = 50
	}
	filter.Limit = size
	filter.Offset = (page - 1) * size

	return filter, nil
}

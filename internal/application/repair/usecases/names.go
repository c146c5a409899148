package usecases

import (
	"context"

	"fixtrack/internal/domain/repair"
	"fixtrack/internal/domain/user"
)

// repairUserIDs collects the unique user IDs a repair list refers to:
// creators, technicians and recipients.
func repairUserIDs(repairs []*repair.Repair) []uint {
	seen := make(map[uint]bool)
	var out []uint
	add := func(id uint) {
		if id == 0 || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}
	for _, r := range repairs {
		add(r.CreatedBy())
		if t := r.TechnicianID(); t != nil {
			add(*t)
		}
		if rc := r.RecipientID(); rc != nil {
			add(*rc)
		}
	}
	return out
}

// lookupUserNames resolves display names for the given IDs. Users that no
// longer exist are skipped; their repairs keep the bare ID.
func lookupUserNames(ctx context.Context, userRepo user.UserRepository, ids []uint) map[uint]string {
	names := make(map[uint]string, len(ids))
	for _, id := range ids {
		u, err := userRepo.GetByID(ctx, id)
		if err != nil || u == nil {
			continue
		}
		names[id] = u.Name()
	}
	return names
}

package usecases

import (
	"fmt"
	"sort"
	"strings"

	"fixtrack/internal/domain/repair"
	vo "fixtrack/internal/domain/repair/valueobjects"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
)

// Field names as they appear in update requests and audit entries.
const (
	FieldStatus           = "status"
	FieldCustomerName     = "customerName"
	FieldDeviceType       = "deviceType"
	FieldIssue            = "issue"
	FieldColor            = "color"
	FieldPhone            = "phone"
	FieldPrice            = "price"
	FieldFinalPrice       = "finalPrice"
	FieldParts            = "parts"
	FieldNotes            = "notes"
	FieldTechnician       = "technician"
	FieldRecipient        = "recipient"
	FieldRejectedLocation = "rejectedDeviceLocation"
)

// GateDecision is the outcome of authorizing an update request.
type GateDecision struct {
	// Elevated callers may edit any field and bypass the forward
	// transition graph.
	Elevated bool
}

// permissionGate decides which repair fields an actor may touch.
//
// Elevated actors (admins, admin overrides, edit_repair holders) pass
// through untouched. Everyone else is a hands-on technician who may only
// move their own assigned repairs through the workflow: status plus the
// fields the target status itself demands, confirmed with their password.
type permissionGate struct {
	verifier PasswordVerifier
}

func newPermissionGate(verifier PasswordVerifier) *permissionGate {
	return &permissionGate{verifier: verifier}
}

// Authorize validates the requested field set against the actor's scope.
// requested holds the field names present in the update; targetStatus is
// set when the update includes a status change.
func (g *permissionGate) Authorize(
	actor *user.User,
	rep *repair.Repair,
	requested []string,
	targetStatus *vo.RepairStatus,
	password string,
) (GateDecision, error) {
	if actor.CanEditAllRepairFields() {
		return GateDecision{Elevated: true}, nil
	}

	if rep.TechnicianID() == nil || *rep.TechnicianID() != actor.ID() {
		return GateDecision{}, errors.NewForbiddenError("repair is not assigned to you")
	}

	allowed := g.allowedFields(targetStatus)
	var denied []string
	for _, f := range requested {
		if !allowed[f] {
			denied = append(denied, f)
		}
	}
	if len(denied) > 0 {
		sort.Strings(denied)
		return GateDecision{}, errors.NewForbiddenError(
			fmt.Sprintf("you are not allowed to change: %s", strings.Join(denied, ", ")))
	}

	if len(requested) == 0 {
		return GateDecision{}, errors.NewValidationError("no changes provided")
	}

	// Sensitive changes are re-confirmed with the technician's own password.
	if password == "" {
		return GateDecision{}, errors.NewUnauthorizedError("password confirmation required")
	}
	if err := g.verifier.Verify(actor.PasswordHash(), password); err != nil {
		return GateDecision{}, errors.NewUnauthorizedError("password confirmation failed")
	}

	return GateDecision{}, nil
}

// allowedFields is the restricted technician's whitelist. It always
// contains status; delivery-specific and rejection-specific fields join
// only when the update targets that status.
func (g *permissionGate) allowedFields(targetStatus *vo.RepairStatus) map[string]bool {
	allowed := map[string]bool{
		FieldStatus: true,
	}
	if targetStatus != nil {
		switch *targetStatus {
		case vo.StatusDelivered:
			allowed[FieldFinalPrice] = true
			allowed[FieldParts] = true
		case vo.StatusRejected:
			allowed[FieldRejectedLocation] = true
		}
	}
	return allowed
}

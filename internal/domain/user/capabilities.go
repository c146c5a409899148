package user

// Capability is a named permission flag granted to a user independent of
// role.
type Capability string

const (
	CapCreateRepair   Capability = "create_repair"
	CapEditRepair     Capability = "edit_repair"
	CapDeleteRepair   Capability = "delete_repair"
	CapReceiveDevice  Capability = "receive_device"
	CapAccessAccounts Capability = "access_accounts"
	CapAdminOverride  Capability = "admin_override"
)

// AllCapabilities lists every recognized capability flag.
var AllCapabilities = []Capability{
	CapCreateRepair,
	CapEditRepair,
	CapDeleteRepair,
	CapReceiveDevice,
	CapAccessAccounts,
	CapAdminOverride,
}

// Capabilities is the set of flags granted to a user.
type Capabilities map[Capability]bool

func NewCapabilities(granted ...Capability) Capabilities {
	caps := make(Capabilities, len(granted))
	for _, c := range granted {
		caps[c] = true
	}
	return caps
}

func (c Capabilities) Has(cap Capability) bool {
	return c[cap]
}

// Merge overlays the given flags onto the set, keeping unrelated grants.
func (c Capabilities) Merge(other Capabilities) Capabilities {
	merged := make(Capabilities, len(c)+len(other))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// List returns the granted capabilities in declaration order.
func (c Capabilities) List() []Capability {
	var granted []Capability
	for _, cap := range AllCapabilities {
		if c[cap] {
			granted = append(granted, cap)
		}
	}
	return granted
}

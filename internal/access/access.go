package access

import "github.com/google/uuid"

// Capability is a named permission checked against a (Principal, file) pair.
type Capability string

const (
	CapabilityView     Capability = "view"
	CapabilityDownload Capability = "download"
	CapabilityDelete   Capability = "delete"
)

// Principal is an authenticated actor. Identity is established elsewhere;
// this package only decides what a principal may do.
type Principal struct {
	ID         uuid.UUID
	Privileged bool
}

// Subject is the slice of a file record the engine needs for a decision.
type Subject struct {
	OwnerID         uuid.UUID
	OwnerPrivileged bool
}

// CanView reports whether p may see the file. Files uploaded by privileged
// principals are visible to everyone; private files are visible only to
// their owner and to privileged principals.
func CanView(p Principal, s Subject) bool {
	return p.Privileged || p.ID == s.OwnerID || s.OwnerPrivileged
}

// CanDownload uses the same rule as CanView. It stays a distinct operation
// because download also resolves the blob, and a denial must look like
// "not found" to the caller.
func CanDownload(p Principal, s Subject) bool {
	return CanView(p, s)
}

// CanDelete permits only the owner. Privileged principals have no implicit
// delete right.
func CanDelete(p Principal, s Subject) bool {
	return p.ID == s.OwnerID
}

// Can dispatches a capability check. Unknown capabilities are denied.
func Can(c Capability, p Principal, s Subject) bool {
	switch c {
	case CapabilityView:
		return CanView(p, s)
	case CapabilityDownload:
		return CanDownload(p, s)
	case CapabilityDelete:
		return CanDelete(p, s)
	default:
		return false
	}
}

package domain

// ProfileKind tags the variant stored in a Profile.
type ProfileKind string

const (
	ProfileKindNone       ProfileKind = "NONE"
	ProfileKindClient     ProfileKind = "CLIENT"
	ProfileKindTechnician ProfileKind = "TECHNICIAN"
)

// Profile is the tagged variant linking a User to at most one of its
// role-specific profiles. Exactly one of Client/Technician is set, and only
// when Kind says so; the mutual exclusion is structural rather than a
// convention over two nullable fields.
type Profile struct {
	Kind       ProfileKind
	Client     *Client
	Technician *Technician
}

// NoProfile returns the empty variant.
func NoProfile() Profile {
	return Profile{Kind: ProfileKindNone}
}

// ClientProfile wraps a client profile.
func ClientProfile(client *Client) Profile {
	return Profile{Kind: ProfileKindClient, Client: client}
}

// TechnicianProfile wraps a technician profile.
func TechnicianProfile(technician *Technician) Profile {
	return Profile{Kind: ProfileKindTechnician, Technician: technician}
}

package errors

// ErrorFamily partitions the code registry into the two exception families
// surfaced to callers.
type ErrorFamily string

const (
	// FamilyConnectivity groups codes raised as a ConnectError.
	FamilyConnectivity ErrorFamily = "CONNECTIVITY"

	// FamilyResource groups codes raised as a ResourceError.
	FamilyResource ErrorFamily = "RESOURCE"
)

// families assigns every registered code to exactly one family. The table
// is the single source of truth: raising code picks the concrete error type
// by looking up the family here.
var families = map[ErrorCode]ErrorFamily{
	NotConnected:               FamilyConnectivity,
	InvalidAuthenticationToken: FamilyConnectivity,
	Unknown:                    FamilyConnectivity,

	Duplicate:                  FamilyResource,
	ClientNotFound:             FamilyResource,
	ClientOrIdentifierNotFound: FamilyResource,
	GroupNotFound:              FamilyResource,
	GroupOrRoleNotFound:        FamilyResource,
}

// Family returns the family the code belongs to. Unregistered codes are
// treated as connectivity failures, matching the Unknown fallback.
func Family(c ErrorCode) ErrorFamily {
	if f, ok := families[c]; ok {
		return f
	}
	return FamilyConnectivity
}

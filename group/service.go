package group

import "context"

// Service exposes the groups API. Every operation issues exactly one
// remote call and blocks until the transport produces an outcome. On
// failure the returned error is always one of the two SDK families:
// a *errors.ConnectError, or, for the single-resource operations, possibly
// a *errors.ResourceError. Listing operations surface connectivity errors
// only.
//
// Validation failures during serialization are returned before any network
// call is attempted and belong to neither family.
type Service interface {
	// Create creates a new group and returns the created entity as
	// acknowledged by the server.
	Create(ctx context.Context, g *Group) (*Group, error)

	// List retrieves a page of groups. opts may be nil; its parameters are
	// passed through to the platform unmodified.
	List(ctx context.Context, opts *ListOptions) (*PageableGroups, error)

	// Find retrieves one group by ID.
	Find(ctx context.Context, groupID int64) (*Group, error)

	// Update applies the populated fields of g to an existing group.
	Update(ctx context.Context, groupID int64, g *Group) error

	// Delete removes a group.
	Delete(ctx context.Context, groupID int64) error

	// AccountsSummary retrieves the group's accounts overview. fields may
	// be empty; when given, it restricts the sections the server includes.
	AccountsSummary(ctx context.Context, groupID int64, fields ...string) (*AccountsSummary, error)

	// Activate activates a pending group.
	Activate(ctx context.Context, groupID int64, cmd ActivateCommand) error

	// Close closes an active group.
	Close(ctx context.Context, groupID int64, cmd CloseCommand) error

	// AssignStaff assigns a staff member to the group.
	AssignStaff(ctx context.Context, groupID int64, cmd AssignStaffCommand) error

	// UnassignStaff removes the group's staff assignment.
	UnassignStaff(ctx context.Context, groupID int64, cmd AssignStaffCommand) error

	// AssociateClients adds existing clients to the group.
	AssociateClients(ctx context.Context, groupID int64, cmd ClientMembersCommand) error

	// DisassociateClients removes clients from the group.
	DisassociateClients(ctx context.Context, groupID int64, cmd ClientMembersCommand) error

	// TransferClients moves clients from the group to another group.
	TransferClients(ctx context.Context, groupID int64, cmd TransferClientsCommand) error

	// GenerateCollectionSheet produces the group's collection sheet for a
	// meeting date.
	GenerateCollectionSheet(ctx context.Context, groupID int64, cmd GenerateCollectionSheetCommand) error

	// SaveCollectionSheet submits a filled-in collection sheet.
	SaveCollectionSheet(ctx context.Context, groupID int64, cmd SaveCollectionSheetCommand) error

	// AssignRole assigns a role to a group member.
	AssignRole(ctx context.Context, groupID int64, cmd RoleCommand) error

	// UnassignRole removes an assigned role from the group.
	UnassignRole(ctx context.Context, groupID, roleID int64) error

	// UpdateRole changes an assigned role of the group.
	UpdateRole(ctx context.Context, groupID, roleID int64, cmd RoleCommand) error
}

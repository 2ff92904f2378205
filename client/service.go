package client

import "context"

// Service exposes the clients API. Every operation issues exactly one
// remote call and blocks until the transport produces an outcome. On
// failure the returned error is always one of the two SDK families:
// a *errors.ConnectError, or, for the single-resource operations, possibly
// a *errors.ResourceError. Listing operations surface connectivity errors
// only.
//
// Validation failures during serialization are returned before any network
// call is attempted and belong to neither family.
type Service interface {
	// Create creates a new client and returns the created entity as
	// acknowledged by the server.
	Create(ctx context.Context, c *Client) (*Client, error)

	// List retrieves a page of clients. opts may be nil; its parameters
	// are passed through to the platform unmodified.
	List(ctx context.Context, opts *ListOptions) (*PageableClients, error)

	// Find retrieves one client by ID.
	Find(ctx context.Context, clientID int64) (*Client, error)

	// Update applies the populated fields of c to an existing client.
	Update(ctx context.Context, clientID int64, c *Client) error

	// Delete removes a client.
	Delete(ctx context.Context, clientID int64) error

	// Activate activates a pending client.
	Activate(ctx context.Context, clientID int64, cmd ActivateCommand) error

	// Close closes an active client.
	Close(ctx context.Context, clientID int64, cmd CloseCommand) error

	// AssignStaff assigns a staff member to the client.
	AssignStaff(ctx context.Context, clientID int64, cmd AssignStaffCommand) error

	// UnassignStaff removes the client's staff assignment.
	UnassignStaff(ctx context.Context, clientID int64, cmd AssignStaffCommand) error

	// UpdateSavingsAccount links the client's default savings account.
	UpdateSavingsAccount(ctx context.Context, clientID int64, cmd UpdateSavingsAccountCommand) error

	// ProposeTransfer proposes transferring the client to another office.
	ProposeTransfer(ctx context.Context, clientID int64, cmd ProposeTransferCommand) error

	// WithdrawTransfer withdraws a proposed transfer.
	WithdrawTransfer(ctx context.Context, clientID int64, cmd TransferNoteCommand) error

	// RejectTransfer rejects a proposed transfer.
	RejectTransfer(ctx context.Context, clientID int64, cmd TransferNoteCommand) error

	// AcceptTransfer accepts a proposed transfer.
	AcceptTransfer(ctx context.Context, clientID int64, cmd TransferNoteCommand) error

	// ProposeAndAcceptTransfer proposes and immediately accepts a
	// transfer in one command.
	ProposeAndAcceptTransfer(ctx context.Context, clientID int64, cmd ProposeTransferCommand) error

	// CreateIdentifier attaches a new identifier to the client.
	CreateIdentifier(ctx context.Context, clientID int64, ident *Identifier) (*Identifier, error)

	// ListIdentifiers retrieves all identifiers of the client.
	ListIdentifiers(ctx context.Context, clientID int64) ([]*Identifier, error)

	// FindIdentifier retrieves one identifier of the client.
	FindIdentifier(ctx context.Context, clientID, identifierID int64) (*Identifier, error)

	// UpdateIdentifier applies the populated fields of ident to an
	// existing identifier.
	UpdateIdentifier(ctx context.Context, clientID, identifierID int64, ident *Identifier) error

	// DeleteIdentifier removes an identifier from the client.
	DeleteIdentifier(ctx context.Context, clientID, identifierID int64) error

	// UploadImage sets the client's profile image.
	UploadImage(ctx context.Context, clientID int64, image *Image) error

	// UpdateImage replaces the client's profile image.
	UpdateImage(ctx context.Context, clientID int64, image *Image) error

	// DeleteImage removes the client's profile image.
	DeleteImage(ctx context.Context, clientID int64) error
}

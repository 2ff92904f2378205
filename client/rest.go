package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"

	"github.com/binaryking/mifosx-api/errors"
	"github.com/binaryking/mifosx-api/internal/codec"
	"github.com/binaryking/mifosx-api/internal/rest"
	"github.com/binaryking/mifosx-api/transport"
)

// Operation contexts, fixed at definition time. Listing clients is a
// collection operation; everything else addresses a single resource.
// Identifier operations that address the identifier itself use the
// combined not-found code, while the identifier listing hangs off the
// client only.
var (
	listCtx       = rest.Collection()
	clientCtx     = rest.Resource(errors.ClientNotFound)
	identifierCtx = rest.Resource(errors.ClientOrIdentifierNotFound)
)

type restService struct {
	sender transport.Sender
}

// NewService creates the clients API facade on top of the given transport.
func NewService(sender transport.Sender) Service {
	return &restService{sender: sender}
}

func (s *restService) Create(ctx context.Context, c *Client) (*Client, error) {
	payload, err := marshalClient(c)
	if err != nil {
		return nil, err
	}
	raw, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "clients",
		Body:   payload,
	})
	if err != nil {
		return nil, rest.Raise(err, clientCtx)
	}
	return s.decodeOne(raw, clientCtx)
}

func (s *restService) List(ctx context.Context, opts *ListOptions) (*PageableClients, error) {
	values, err := listQuery(opts)
	if err != nil {
		return nil, err
	}
	raw, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "clients",
		Query:  values,
	})
	if err != nil {
		return nil, rest.Raise(err, listCtx)
	}

	obj, err := codec.Decode(raw)
	if err != nil {
		return nil, rest.Raise(transport.ConversionFault(err), listCtx)
	}
	page, err := decodePage(obj)
	if err != nil {
		return nil, rest.Raise(transport.ConversionFault(err), listCtx)
	}
	return page, nil
}

func (s *restService) Find(ctx context.Context, clientID int64) (*Client, error) {
	raw, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   clientPath(clientID),
	})
	if err != nil {
		return nil, rest.Raise(err, clientCtx)
	}
	return s.decodeOne(raw, clientCtx)
}

func (s *restService) Update(ctx context.Context, clientID int64, c *Client) error {
	payload, err := marshalClient(c)
	if err != nil {
		return err
	}
	_, err = s.sender.Send(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   clientPath(clientID),
		Body:   payload,
	})
	if err != nil {
		return rest.Raise(err, clientCtx)
	}
	return nil
}

func (s *restService) Delete(ctx context.Context, clientID int64) error {
	_, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   clientPath(clientID),
	})
	if err != nil {
		return rest.Raise(err, clientCtx)
	}
	return nil
}

func (s *restService) Activate(ctx context.Context, clientID int64, cmd ActivateCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, clientID, "activate", payload)
}

func (s *restService) Close(ctx context.Context, clientID int64, cmd CloseCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, clientID, "close", payload)
}

func (s *restService) AssignStaff(ctx context.Context, clientID int64, cmd AssignStaffCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, clientID, "assignStaff", payload)
}

func (s *restService) UnassignStaff(ctx context.Context, clientID int64, cmd AssignStaffCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, clientID, "unassignStaff", payload)
}

func (s *restService) UpdateSavingsAccount(ctx context.Context, clientID int64, cmd UpdateSavingsAccountCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, clientID, "updateSavingsAccount", payload)
}

func (s *restService) ProposeTransfer(ctx context.Context, clientID int64, cmd ProposeTransferCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, clientID, "proposeTransfer", payload)
}

func (s *restService) WithdrawTransfer(ctx context.Context, clientID int64, cmd TransferNoteCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, clientID, "withdrawTransfer", payload)
}

func (s *restService) RejectTransfer(ctx context.Context, clientID int64, cmd TransferNoteCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, clientID, "rejectTransfer", payload)
}

func (s *restService) AcceptTransfer(ctx context.Context, clientID int64, cmd TransferNoteCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, clientID, "acceptTransfer", payload)
}

func (s *restService) ProposeAndAcceptTransfer(ctx context.Context, clientID int64, cmd ProposeTransferCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, clientID, "proposeAndAcceptTransfer", payload)
}

func (s *restService) CreateIdentifier(ctx context.Context, clientID int64, ident *Identifier) (*Identifier, error) {
	payload, err := marshalIdentifier(ident)
	if err != nil {
		return nil, err
	}
	raw, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   clientPath(clientID) + "/identifiers",
		Body:   payload,
	})
	if err != nil {
		return nil, rest.Raise(err, clientCtx)
	}

	obj, err := codec.Decode(raw)
	if err != nil {
		return nil, rest.Raise(transport.ConversionFault(err), clientCtx)
	}
	return decodeIdentifier(obj)
}

func (s *restService) ListIdentifiers(ctx context.Context, clientID int64) ([]*Identifier, error) {
	raw, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   clientPath(clientID) + "/identifiers",
	})
	if err != nil {
		return nil, rest.Raise(err, clientCtx)
	}

	items, err := codec.DecodeArray(raw)
	if err != nil {
		return nil, rest.Raise(transport.ConversionFault(err), clientCtx)
	}
	identifiers := make([]*Identifier, 0, len(items))
	for _, item := range items {
		ident, err := decodeIdentifier(item)
		if err != nil {
			return nil, rest.Raise(transport.ConversionFault(err), clientCtx)
		}
		identifiers = append(identifiers, ident)
	}
	return identifiers, nil
}

func (s *restService) FindIdentifier(ctx context.Context, clientID, identifierID int64) (*Identifier, error) {
	raw, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   identifierPath(clientID, identifierID),
	})
	if err != nil {
		return nil, rest.Raise(err, identifierCtx)
	}

	obj, err := codec.Decode(raw)
	if err != nil {
		return nil, rest.Raise(transport.ConversionFault(err), identifierCtx)
	}
	return decodeIdentifier(obj)
}

func (s *restService) UpdateIdentifier(ctx context.Context, clientID, identifierID int64, ident *Identifier) error {
	payload, err := marshalIdentifier(ident)
	if err != nil {
		return err
	}
	_, err = s.sender.Send(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   identifierPath(clientID, identifierID),
		Body:   payload,
	})
	if err != nil {
		return rest.Raise(err, identifierCtx)
	}
	return nil
}

func (s *restService) DeleteIdentifier(ctx context.Context, clientID, identifierID int64) error {
	_, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   identifierPath(clientID, identifierID),
	})
	if err != nil {
		return rest.Raise(err, identifierCtx)
	}
	return nil
}

func (s *restService) UploadImage(ctx context.Context, clientID int64, image *Image) error {
	return s.sendImage(ctx, http.MethodPost, clientID, image)
}

func (s *restService) UpdateImage(ctx context.Context, clientID int64, image *Image) error {
	return s.sendImage(ctx, http.MethodPut, clientID, image)
}

func (s *restService) DeleteImage(ctx context.Context, clientID int64) error {
	_, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   clientPath(clientID) + "/images",
	})
	if err != nil {
		return rest.Raise(err, clientCtx)
	}
	return nil
}

func (s *restService) sendImage(ctx context.Context, method string, clientID int64, image *Image) error {
	if err := image.validate(); err != nil {
		return err
	}
	_, err := s.sender.Send(ctx, transport.Request{
		Method: method,
		Path:   clientPath(clientID) + "/images",
		Body:   image.DataURI(),
	})
	if err != nil {
		return rest.Raise(err, clientCtx)
	}
	return nil
}

// command issues one of the clients API state-transition commands:
// POST clients/{id}?command=<name>.
func (s *restService) command(ctx context.Context, clientID int64, name string, payload map[string]any) error {
	_, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   clientPath(clientID),
		Query:  url.Values{"command": {name}},
		Body:   payload,
	})
	if err != nil {
		return rest.Raise(err, clientCtx)
	}
	return nil
}

func (s *restService) decodeOne(raw []byte, opCtx rest.Context) (*Client, error) {
	obj, err := codec.Decode(raw)
	if err != nil {
		return nil, rest.Raise(transport.ConversionFault(err), opCtx)
	}
	c, err := decodeClient(obj)
	if err != nil {
		return nil, rest.Raise(transport.ConversionFault(err), opCtx)
	}
	return c, nil
}

func clientPath(clientID int64) string {
	return fmt.Sprintf("clients/%d", clientID)
}

func identifierPath(clientID, identifierID int64) string {
	return fmt.Sprintf("clients/%d/identifiers/%d", clientID, identifierID)
}

func listQuery(opts *ListOptions) (url.Values, error) {
	if opts == nil {
		return nil, nil
	}
	values, err := query.Values(opts)
	if err != nil {
		return nil, codec.Invalidf("list options could not be encoded: %v", err)
	}
	return values, nil
}

package group

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"

	"github.com/binaryking/mifosx-api/errors"
	"github.com/binaryking/mifosx-api/internal/codec"
	"github.com/binaryking/mifosx-api/internal/rest"
	"github.com/binaryking/mifosx-api/transport"
)

// Operation contexts, fixed at definition time. Listing groups is a
// collection operation; everything else addresses a single resource. The
// role commands address a role of the group and use the combined
// not-found code.
var (
	listCtx  = rest.Collection()
	groupCtx = rest.Resource(errors.GroupNotFound)
	roleCtx  = rest.Resource(errors.GroupOrRoleNotFound)
)

type restService struct {
	sender transport.Sender
}

// NewService creates the groups API facade on top of the given transport.
func NewService(sender transport.Sender) Service {
	return &restService{sender: sender}
}

func (s *restService) Create(ctx context.Context, g *Group) (*Group, error) {
	payload, err := marshalGroup(g)
	if err != nil {
		return nil, err
	}
	raw, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "groups",
		Body:   payload,
	})
	if err != nil {
		return nil, rest.Raise(err, groupCtx)
	}
	return s.decodeOne(raw)
}

func (s *restService) List(ctx context.Context, opts *ListOptions) (*PageableGroups, error) {
	values, err := listQuery(opts)
	if err != nil {
		return nil, err
	}
	raw, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "groups",
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

func (s *restService) Find(ctx context.Context, groupID int64) (*Group, error) {
	raw, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   groupPath(groupID),
	})
	if err != nil {
		return nil, rest.Raise(err, groupCtx)
	}
	return s.decodeOne(raw)
}

func (s *restService) Update(ctx context.Context, groupID int64, g *Group) error {
	payload, err := marshalGroup(g)
	if err != nil {
		return err
	}
	_, err = s.sender.Send(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   groupPath(groupID),
		Body:   payload,
	})
	if err != nil {
		return rest.Raise(err, groupCtx)
	}
	return nil
}

func (s *restService) Delete(ctx context.Context, groupID int64) error {
	_, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   groupPath(groupID),
	})
	if err != nil {
		return rest.Raise(err, groupCtx)
	}
	return nil
}

func (s *restService) AccountsSummary(ctx context.Context, groupID int64, fields ...string) (*AccountsSummary, error) {
	var values url.Values
	if len(fields) > 0 {
		values = url.Values{"fields": {strings.Join(fields, ",")}}
	}
	raw, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   groupPath(groupID) + "/accounts",
		Query:  values,
	})
	if err != nil {
		return nil, rest.Raise(err, groupCtx)
	}

	obj, err := codec.Decode(raw)
	if err != nil {
		return nil, rest.Raise(transport.ConversionFault(err), groupCtx)
	}
	return decodeAccountsSummary(obj), nil
}

func (s *restService) Activate(ctx context.Context, groupID int64, cmd ActivateCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, groupID, "activate", nil, payload, groupCtx)
}

func (s *restService) Close(ctx context.Context, groupID int64, cmd CloseCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, groupID, "close", nil, payload, groupCtx)
}

func (s *restService) AssignStaff(ctx context.Context, groupID int64, cmd AssignStaffCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, groupID, "assignStaff", nil, payload, groupCtx)
}

func (s *restService) UnassignStaff(ctx context.Context, groupID int64, cmd AssignStaffCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, groupID, "unassignStaff", nil, payload, groupCtx)
}

func (s *restService) AssociateClients(ctx context.Context, groupID int64, cmd ClientMembersCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, groupID, "associateClients", nil, payload, groupCtx)
}

func (s *restService) DisassociateClients(ctx context.Context, groupID int64, cmd ClientMembersCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, groupID, "disassociateClients", nil, payload, groupCtx)
}

func (s *restService) TransferClients(ctx context.Context, groupID int64, cmd TransferClientsCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, groupID, "transferClients", nil, payload, groupCtx)
}

func (s *restService) GenerateCollectionSheet(ctx context.Context, groupID int64, cmd GenerateCollectionSheetCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, groupID, "generateCollectionSheet", nil, payload, groupCtx)
}

func (s *restService) SaveCollectionSheet(ctx context.Context, groupID int64, cmd SaveCollectionSheetCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, groupID, "saveCollectionSheet", nil, payload, groupCtx)
}

func (s *restService) AssignRole(ctx context.Context, groupID int64, cmd RoleCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, groupID, "assignRole", nil, payload, groupCtx)
}

func (s *restService) UnassignRole(ctx context.Context, groupID, roleID int64) error {
	return s.command(ctx, groupID, "unassignRole", roleQuery(roleID), nil, roleCtx)
}

func (s *restService) UpdateRole(ctx context.Context, groupID, roleID int64, cmd RoleCommand) error {
	payload, err := cmd.payload()
	if err != nil {
		return err
	}
	return s.command(ctx, groupID, "updateRole", roleQuery(roleID), payload, roleCtx)
}

// command issues one of the groups API state-transition commands:
// POST groups/{id}?command=<name>. The role commands additionally carry
// the addressed role as a query parameter.
func (s *restService) command(ctx context.Context, groupID int64, name string, extra url.Values, payload map[string]any, opCtx rest.Context) error {
	values := url.Values{"command": {name}}
	for key, vals := range extra {
		values[key] = vals
	}

	var body any
	if payload != nil {
		body = payload
	}
	_, err := s.sender.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   groupPath(groupID),
		Query:  values,
		Body:   body,
	})
	if err != nil {
		return rest.Raise(err, opCtx)
	}
	return nil
}

func (s *restService) decodeOne(raw []byte) (*Group, error) {
	obj, err := codec.Decode(raw)
	if err != nil {
		return nil, rest.Raise(transport.ConversionFault(err), groupCtx)
	}
	g, err := decodeGroup(obj)
	if err != nil {
		return nil, rest.Raise(transport.ConversionFault(err), groupCtx)
	}
	return g, nil
}

func groupPath(groupID int64) string {
	return fmt.Sprintf("groups/%d", groupID)
}

func roleQuery(roleID int64) url.Values {
	return url.Values{"roleId": {strconv.FormatInt(roleID, 10)}}
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

package group

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/binaryking/mifosx-api/errors"
	"github.com/binaryking/mifosx-api/transport"
)

type mockSender struct {
	send func(ctx context.Context, req transport.Request) (json.RawMessage, error)
}

func (m *mockSender) Send(ctx context.Context, req transport.Request) (json.RawMessage, error) {
	return m.send(ctx, req)
}

func newTestGroup() *Group {
	return New(
		WithName("Center A"),
		WithOfficeID(1),
	)
}

func TestServiceCreate(t *testing.T) {
	var got transport.Request
	svc := NewService(&mockSender{
		send: func(_ context.Context, req transport.Request) (json.RawMessage, error) {
			got = req
			return json.RawMessage(`{"officeId": 1, "groupId": 5, "resourceId": 5}`), nil
		},
	})

	created, err := svc.Create(context.Background(), newTestGroup())
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, got.Method)
	require.Equal(t, "groups", got.Path)
	require.Equal(t, map[string]any{
		"officeId": int64(1),
		"name":     "Center A",
		"active":   false,
	}, got.Body)
	require.Equal(t, int64(5), *created.ID)
}

func TestServiceCreateValidationSkipsSend(t *testing.T) {
	sent := false
	svc := NewService(&mockSender{
		send: func(_ context.Context, _ transport.Request) (json.RawMessage, error) {
			sent = true
			return nil, nil
		},
	})

	_, err := svc.Create(context.Background(), New(WithName("Center A")))
	require.ErrorContains(t, err, "officeId is required")
	require.False(t, sent)
}

func TestServiceCreateDuplicate(t *testing.T) {
	body := []byte(`{"errors": [{"developerMessage": "Group with name Center A already exists"}]}`)
	svc := NewService(&mockSender{
		send: func(_ context.Context, _ transport.Request) (json.RawMessage, error) {
			return nil, transport.HTTPFault(http.StatusForbidden, body)
		},
	})

	_, err := svc.Create(context.Background(), newTestGroup())
	require.True(t, errors.IsResource(err))
	require.Equal(t, errors.Duplicate, errors.GetCode(err))
	require.ErrorContains(t, err, "already exists")
}

func TestServiceFindNotFound(t *testing.T) {
	svc := NewService(&mockSender{
		send: func(_ context.Context, _ transport.Request) (json.RawMessage, error) {
			return nil, transport.HTTPFault(http.StatusNotFound, nil)
		},
	})

	_, err := svc.Find(context.Background(), 5)
	require.True(t, errors.IsResource(err))
	require.True(t, errors.IsNotFound(err))
	require.Equal(t, errors.GroupNotFound, errors.GetCode(err))
}

func TestServiceList(t *testing.T) {
	var got transport.Request
	svc := NewService(&mockSender{
		send: func(_ context.Context, req transport.Request) (json.RawMessage, error) {
			got = req
			return json.RawMessage(`{
				"totalFilteredRecords": 1,
				"pageItems": [{"id": 5, "name": "Center A", "officeId": 1}]
			}`), nil
		},
	})

	page, err := svc.List(context.Background(), &ListOptions{OfficeID: 1, UnderHierarchy: ".1."})
	require.NoError(t, err)

	require.Equal(t, "groups", got.Path)
	require.Equal(t, "1", got.Query.Get("officeId"))
	require.Equal(t, ".1.", got.Query.Get("underHierarchy"))
	require.Len(t, page.Groups, 1)
}

func TestServiceListNeverRaisesResourceErrors(t *testing.T) {
	svc := NewService(&mockSender{
		send: func(_ context.Context, _ transport.Request) (json.RawMessage, error) {
			return nil, transport.HTTPFault(http.StatusNotFound, nil)
		},
	})

	_, err := svc.List(context.Background(), nil)
	require.True(t, errors.IsConnect(err))
	require.Equal(t, errors.Unknown, errors.GetCode(err))
}

func TestServiceNetworkFailure(t *testing.T) {
	svc := NewService(&mockSender{
		send: func(_ context.Context, _ transport.Request) (json.RawMessage, error) {
			return nil, transport.NetworkFault(context.DeadlineExceeded)
		},
	})

	err := svc.Delete(context.Background(), 5)
	require.True(t, errors.IsConnect(err))
	require.Equal(t, errors.NotConnected, errors.GetCode(err))
}

func TestServiceUpdateAndDelete(t *testing.T) {
	var requests []transport.Request
	svc := NewService(&mockSender{
		send: func(_ context.Context, req transport.Request) (json.RawMessage, error) {
			requests = append(requests, req)
			return nil, nil
		},
	})

	require.NoError(t, svc.Update(context.Background(), 5, newTestGroup()))
	require.NoError(t, svc.Delete(context.Background(), 5))

	require.Len(t, requests, 2)
	require.Equal(t, http.MethodPut, requests[0].Method)
	require.Equal(t, "groups/5", requests[0].Path)
	require.Equal(t, http.MethodDelete, requests[1].Method)
}

func TestServiceAccountsSummary(t *testing.T) {
	var got transport.Request
	svc := NewService(&mockSender{
		send: func(_ context.Context, req transport.Request) (json.RawMessage, error) {
			got = req
			return json.RawMessage(`{"loanAccounts": [{"id": 21}]}`), nil
		},
	})

	summary, err := svc.AccountsSummary(context.Background(), 5, "loanAccounts", "savingsAccounts")
	require.NoError(t, err)
	require.Equal(t, "groups/5/accounts", got.Path)
	require.Equal(t, "loanAccounts,savingsAccounts", got.Query.Get("fields"))
	require.Len(t, summary.LoanAccounts, 1)
}

func TestServiceAccountsSummaryNoFields(t *testing.T) {
	svc := NewService(&mockSender{
		send: func(_ context.Context, req transport.Request) (json.RawMessage, error) {
			require.Empty(t, req.Query)
			return json.RawMessage(`{}`), nil
		},
	})

	summary, err := svc.AccountsSummary(context.Background(), 5)
	require.NoError(t, err)
	require.Nil(t, summary.LoanAccounts)
}

func TestServiceCommands(t *testing.T) {
	date := time.Date(2014, time.July, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		call    func(Service) error
		command string
		body    map[string]any
	}{
		{
			name: "activate",
			call: func(s Service) error {
				return s.Activate(context.Background(), 5, ActivateCommand{
					ActivationDate: date, DateFormat: "dd MMMM yyyy", Locale: "en",
				})
			},
			command: "activate",
			body: map[string]any{
				"activationDate": "01 July 2014",
				"dateFormat":     "dd MMMM yyyy",
				"locale":         "en",
			},
		},
		{
			name: "close",
			call: func(s Service) error {
				return s.Close(context.Background(), 5, CloseCommand{
					ClosureDate: date, DateFormat: "dd MMMM yyyy", Locale: "en",
				})
			},
			command: "close",
			body: map[string]any{
				"closureDate": "01 July 2014",
				"dateFormat":  "dd MMMM yyyy",
				"locale":      "en",
			},
		},
		{
			name: "assign staff",
			call: func(s Service) error {
				return s.AssignStaff(context.Background(), 5, AssignStaffCommand{StaffID: 2})
			},
			command: "assignStaff",
			body:    map[string]any{"staffId": int64(2), "inheritStaffForClientAccounts": false},
		},
		{
			name: "unassign staff",
			call: func(s Service) error {
				return s.UnassignStaff(context.Background(), 5, AssignStaffCommand{StaffID: 2})
			},
			command: "unassignStaff",
			body:    map[string]any{"staffId": int64(2), "inheritStaffForClientAccounts": false},
		},
		{
			name: "associate clients",
			call: func(s Service) error {
				return s.AssociateClients(context.Background(), 5, ClientMembersCommand{ClientIDs: []int64{17}})
			},
			command: "associateClients",
			body:    map[string]any{"clientMembers": []int64{17}},
		},
		{
			name: "disassociate clients",
			call: func(s Service) error {
				return s.DisassociateClients(context.Background(), 5, ClientMembersCommand{ClientIDs: []int64{17}})
			},
			command: "disassociateClients",
			body:    map[string]any{"clientMembers": []int64{17}},
		},
		{
			name: "transfer clients",
			call: func(s Service) error {
				return s.TransferClients(context.Background(), 5, TransferClientsCommand{
					DestinationGroupID: 6, ClientIDs: []int64{17},
				})
			},
			command: "transferClients",
			body: map[string]any{
				"destinationGroupId":                 int64(6),
				"clients":                            []int64{17},
				"inheritDestinationGroupLoanOfficer": false,
			},
		},
		{
			name: "generate collection sheet",
			call: func(s Service) error {
				return s.GenerateCollectionSheet(context.Background(), 5, GenerateCollectionSheetCommand{
					CalendarID: 8, TransactionDate: date, DateFormat: "dd MMMM yyyy", Locale: "en",
				})
			},
			command: "generateCollectionSheet",
			body: map[string]any{
				"calendarId":      int64(8),
				"transactionDate": "01 July 2014",
				"dateFormat":      "dd MMMM yyyy",
				"locale":          "en",
			},
		},
		{
			name: "save collection sheet",
			call: func(s Service) error {
				return s.SaveCollectionSheet(context.Background(), 5, SaveCollectionSheetCommand{
					CalendarID: 8, TransactionDate: date, DateFormat: "dd MMMM yyyy", Locale: "en",
				})
			},
			command: "saveCollectionSheet",
			body: map[string]any{
				"calendarId":      int64(8),
				"transactionDate": "01 July 2014",
				"dateFormat":      "dd MMMM yyyy",
				"locale":          "en",
			},
		},
		{
			name: "assign role",
			call: func(s Service) error {
				return s.AssignRole(context.Background(), 5, RoleCommand{RoleID: 2, ClientID: 17})
			},
			command: "assignRole",
			body:    map[string]any{"role": int64(2), "clientId": int64(17)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got transport.Request
			svc := NewService(&mockSender{
				send: func(_ context.Context, req transport.Request) (json.RawMessage, error) {
					got = req
					return nil, nil
				},
			})

			require.NoError(t, tt.call(svc))
			require.Equal(t, http.MethodPost, got.Method)
			require.Equal(t, "groups/5", got.Path)
			require.Equal(t, tt.command, got.Query.Get("command"))
			require.Equal(t, tt.body, got.Body)
		})
	}
}

func TestServiceUnassignRole(t *testing.T) {
	var got transport.Request
	svc := NewService(&mockSender{
		send: func(_ context.Context, req transport.Request) (json.RawMessage, error) {
			got = req
			return nil, nil
		},
	})

	require.NoError(t, svc.UnassignRole(context.Background(), 5, 2))
	require.Equal(t, "groups/5", got.Path)
	require.Equal(t, "unassignRole", got.Query.Get("command"))
	require.Equal(t, "2", got.Query.Get("roleId"))
	require.Nil(t, got.Body)
}

func TestServiceUpdateRole(t *testing.T) {
	var got transport.Request
	svc := NewService(&mockSender{
		send: func(_ context.Context, req transport.Request) (json.RawMessage, error) {
			got = req
			return nil, nil
		},
	})

	require.NoError(t, svc.UpdateRole(context.Background(), 5, 2, RoleCommand{RoleID: 3, ClientID: 17}))
	require.Equal(t, "updateRole", got.Query.Get("command"))
	require.Equal(t, "2", got.Query.Get("roleId"))
	require.Equal(t, map[string]any{"role": int64(3), "clientId": int64(17)}, got.Body)
}

func TestServiceRoleNotFoundCode(t *testing.T) {
	svc := NewService(&mockSender{
		send: func(_ context.Context, _ transport.Request) (json.RawMessage, error) {
			return nil, transport.HTTPFault(http.StatusNotFound, nil)
		},
	})

	// Role commands address a role of the group and use the combined code;
	// the other commands report the group alone.
	err := svc.UnassignRole(context.Background(), 5, 2)
	require.Equal(t, errors.GroupOrRoleNotFound, errors.GetCode(err))

	err = svc.UpdateRole(context.Background(), 5, 2, RoleCommand{RoleID: 3, ClientID: 17})
	require.Equal(t, errors.GroupOrRoleNotFound, errors.GetCode(err))

	err = svc.AssignRole(context.Background(), 5, RoleCommand{RoleID: 3, ClientID: 17})
	require.Equal(t, errors.GroupNotFound, errors.GetCode(err))
}

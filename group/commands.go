package group

import (
	"time"

	"github.com/binaryking/mifosx-api/internal/codec"
)

// ActivateCommand activates a pending group.
type ActivateCommand struct {
	ActivationDate time.Time
	DateFormat     string
	Locale         string
}

func (cmd ActivateCommand) payload() (map[string]any, error) {
	return datedPayload("activationDate", cmd.ActivationDate, cmd.DateFormat, cmd.Locale, nil)
}

// CloseCommand closes an active group.
type CloseCommand struct {
	ClosureDate     time.Time
	DateFormat      string
	Locale          string
	ClosureReasonID int64
}

func (cmd CloseCommand) payload() (map[string]any, error) {
	extra := []codec.Field{
		{Name: "closureReasonId", Value: func() (any, bool) {
			if cmd.ClosureReasonID == 0 {
				return nil, false
			}
			return cmd.ClosureReasonID, true
		}},
	}
	return datedPayload("closureDate", cmd.ClosureDate, cmd.DateFormat, cmd.Locale, extra)
}

// AssignStaffCommand assigns or unassigns a staff member. When
// InheritStaffForClientAccounts is set on assignment, the staff member is
// propagated to the member clients' accounts.
type AssignStaffCommand struct {
	StaffID                       int64
	InheritStaffForClientAccounts bool
}

func (cmd AssignStaffCommand) payload() (map[string]any, error) {
	return codec.Marshal([]codec.Field{
		{Name: "staffId", Required: true, Value: func() (any, bool) {
			if cmd.StaffID == 0 {
				return nil, false
			}
			return cmd.StaffID, true
		}},
		{Name: "inheritStaffForClientAccounts", Value: func() (any, bool) {
			return cmd.InheritStaffForClientAccounts, true
		}},
	})
}

// ClientMembersCommand names the clients to associate with or disassociate
// from a group.
type ClientMembersCommand struct {
	ClientIDs []int64
}

func (cmd ClientMembersCommand) payload() (map[string]any, error) {
	return codec.Marshal([]codec.Field{
		{Name: "clientMembers", Required: true, Value: func() (any, bool) {
			if len(cmd.ClientIDs) == 0 {
				return nil, false
			}
			return cmd.ClientIDs, true
		}},
	})
}

// TransferClientsCommand moves clients from the group to another group.
type TransferClientsCommand struct {
	DestinationGroupID                 int64
	ClientIDs                          []int64
	InheritDestinationGroupLoanOfficer bool
}

func (cmd TransferClientsCommand) payload() (map[string]any, error) {
	return codec.Marshal([]codec.Field{
		{Name: "destinationGroupId", Required: true, Value: func() (any, bool) {
			if cmd.DestinationGroupID == 0 {
				return nil, false
			}
			return cmd.DestinationGroupID, true
		}},
		{Name: "clients", Required: true, Value: func() (any, bool) {
			if len(cmd.ClientIDs) == 0 {
				return nil, false
			}
			return cmd.ClientIDs, true
		}},
		{Name: "inheritDestinationGroupLoanOfficer", Value: func() (any, bool) {
			return cmd.InheritDestinationGroupLoanOfficer, true
		}},
	})
}

// GenerateCollectionSheetCommand requests the group's collection sheet for
// a meeting date.
type GenerateCollectionSheetCommand struct {
	CalendarID      int64
	TransactionDate time.Time
	DateFormat      string
	Locale          string
}

func (cmd GenerateCollectionSheetCommand) payload() (map[string]any, error) {
	extra := []codec.Field{
		{Name: "calendarId", Required: true, Value: func() (any, bool) {
			if cmd.CalendarID == 0 {
				return nil, false
			}
			return cmd.CalendarID, true
		}},
	}
	return datedPayload("transactionDate", cmd.TransactionDate, cmd.DateFormat, cmd.Locale, extra)
}

// SaveCollectionSheetCommand submits the filled-in collection sheet of a
// meeting.
type SaveCollectionSheetCommand struct {
	CalendarID             int64
	TransactionDate        time.Time
	DateFormat             string
	Locale                 string
	ActualDisbursementDate *time.Time
}

func (cmd SaveCollectionSheetCommand) payload() (map[string]any, error) {
	var disbursement string

	extra := []codec.Field{
		{Name: "calendarId", Required: true, Value: func() (any, bool) {
			if cmd.CalendarID == 0 {
				return nil, false
			}
			return cmd.CalendarID, true
		}},
		{Name: "actualDisbursementDate", Value: func() (any, bool) {
			if disbursement == "" {
				return nil, false
			}
			return disbursement, true
		}},
	}

	if cmd.ActualDisbursementDate != nil {
		rendered, err := codec.FormatDate(*cmd.ActualDisbursementDate, cmd.DateFormat, cmd.Locale)
		if err != nil {
			return nil, err
		}
		disbursement = rendered
	}
	return datedPayload("transactionDate", cmd.TransactionDate, cmd.DateFormat, cmd.Locale, extra)
}

// RoleCommand assigns a role to a group member, or changes an assigned
// role.
type RoleCommand struct {
	RoleID   int64
	ClientID int64
}

func (cmd RoleCommand) payload() (map[string]any, error) {
	return codec.Marshal([]codec.Field{
		{Name: "role", Required: true, Value: func() (any, bool) {
			if cmd.RoleID == 0 {
				return nil, false
			}
			return cmd.RoleID, true
		}},
		{Name: "clientId", Required: true, Value: func() (any, bool) {
			if cmd.ClientID == 0 {
				return nil, false
			}
			return cmd.ClientID, true
		}},
	})
}

// datedPayload builds the common command shape of one rendered date plus
// its format and locale, with any extra fields appended.
func datedPayload(dateKey string, date time.Time, dateFormat, locale string, extra []codec.Field) (map[string]any, error) {
	var rendered string

	check := func() error {
		if date.IsZero() {
			return codec.Invalidf("%s is required", dateKey)
		}
		s, err := codec.FormatDate(date, dateFormat, locale)
		if err != nil {
			return err
		}
		rendered = s
		return nil
	}

	fields := []codec.Field{
		{Name: dateKey, Required: true, Value: func() (any, bool) { return rendered, true }},
		{Name: "dateFormat", Value: func() (any, bool) { return dateFormat, true }},
		{Name: "locale", Value: func() (any, bool) { return locale, true }},
	}
	fields = append(fields, extra...)
	return codec.Marshal(fields, check)
}

package client

import (
	"time"

	"github.com/binaryking/mifosx-api/internal/codec"
)

// ActivateCommand activates a pending client.
type ActivateCommand struct {
	ActivationDate time.Time
	DateFormat     string
	Locale         string
}

func (cmd ActivateCommand) payload() (map[string]any, error) {
	return datedPayload("activationDate", cmd.ActivationDate, cmd.DateFormat, cmd.Locale, nil)
}

// CloseCommand closes an active client.
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

// AssignStaffCommand assigns or unassigns a staff member.
type AssignStaffCommand struct {
	StaffID int64
}

func (cmd AssignStaffCommand) payload() (map[string]any, error) {
	return codec.Marshal([]codec.Field{
		{Name: "staffId", Required: true, Value: func() (any, bool) {
			if cmd.StaffID == 0 {
				return nil, false
			}
			return cmd.StaffID, true
		}},
	})
}

// UpdateSavingsAccountCommand links the client's default savings account.
type UpdateSavingsAccountCommand struct {
	SavingsAccountID int64
}

func (cmd UpdateSavingsAccountCommand) payload() (map[string]any, error) {
	return codec.Marshal([]codec.Field{
		{Name: "savingsAccountId", Required: true, Value: func() (any, bool) {
			if cmd.SavingsAccountID == 0 {
				return nil, false
			}
			return cmd.SavingsAccountID, true
		}},
	})
}

// ProposeTransferCommand proposes transferring the client to another
// office.
type ProposeTransferCommand struct {
	DestinationOfficeID int64
	TransferDate        *time.Time
	DateFormat          string
	Locale              string
	Note                string
}

func (cmd ProposeTransferCommand) payload() (map[string]any, error) {
	var transferDate string

	checks := []codec.Check{
		func() error {
			if cmd.TransferDate == nil {
				return nil
			}
			rendered, err := codec.FormatDate(*cmd.TransferDate, cmd.DateFormat, cmd.Locale)
			if err != nil {
				return err
			}
			transferDate = rendered
			return nil
		},
	}

	fields := []codec.Field{
		{Name: "destinationOfficeId", Required: true, Value: func() (any, bool) {
			if cmd.DestinationOfficeID == 0 {
				return nil, false
			}
			return cmd.DestinationOfficeID, true
		}},
		{Name: "transferDate", Value: func() (any, bool) {
			if transferDate == "" {
				return nil, false
			}
			return transferDate, true
		}},
		{Name: "dateFormat", Value: func() (any, bool) {
			if transferDate == "" {
				return nil, false
			}
			return cmd.DateFormat, true
		}},
		{Name: "locale", Value: func() (any, bool) {
			if transferDate == "" {
				return nil, false
			}
			return cmd.Locale, true
		}},
		{Name: "note", Value: optionalString(cmd.Note)},
	}
	return codec.Marshal(fields, checks...)
}

// TransferNoteCommand carries the optional note for the withdraw, reject,
// and accept transfer commands.
type TransferNoteCommand struct {
	Note string
}

func (cmd TransferNoteCommand) payload() (map[string]any, error) {
	return codec.Marshal([]codec.Field{
		{Name: "note", Value: optionalString(cmd.Note)},
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

func optionalString(s string) func() (any, bool) {
	return func() (any, bool) {
		if s == "" {
			return nil, false
		}
		return s, true
	}
}

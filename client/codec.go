package client

import (
	"time"

	"github.com/binaryking/mifosx-api/internal/codec"
)

// marshalClient produces the client create/update wire object. The rules
// mirror the platform contract: office is required, the name must take
// exactly one of its two forms, and an active client carries a rendered
// activation date.
func marshalClient(c *Client) (map[string]any, error) {
	var activationDate string

	checks := []codec.Check{
		func() error { return checkName(c) },
		func() error {
			if c.MobileNo != nil && *c.MobileNo == "" {
				return codec.Invalidf("mobile number cannot be empty")
			}
			return nil
		},
		func() error {
			if !c.Active {
				return nil
			}
			if c.ActivationDate == nil {
				return codec.Invalidf("activation date is required when active is true")
			}
			if strEmpty(c.DateFormat) || strEmpty(c.Locale) {
				return codec.Invalidf("date format and locale are required when an activation date is provided")
			}
			rendered, err := codec.FormatDate(*c.ActivationDate, *c.DateFormat, *c.Locale)
			if err != nil {
				return err
			}
			activationDate = rendered
			return nil
		},
	}

	useFullname := c.Fullname != nil

	fields := []codec.Field{
		{Name: "officeId", Required: true, Value: int64Value(c.OfficeID)},
		{Name: "fullname", Value: func() (any, bool) {
			if !useFullname {
				return nil, false
			}
			return *c.Fullname, true
		}},
		{Name: "firstname", Value: splitName(useFullname, c.Firstname)},
		{Name: "middlename", Value: splitName(useFullname, c.Middlename)},
		{Name: "lastname", Value: splitName(useFullname, c.Lastname)},
		{Name: "active", Value: func() (any, bool) { return c.Active, true }},
		{Name: "activationDate", Value: func() (any, bool) {
			if activationDate == "" {
				return nil, false
			}
			return activationDate, true
		}},
		{Name: "dateFormat", Value: func() (any, bool) {
			if activationDate == "" {
				return nil, false
			}
			return *c.DateFormat, true
		}},
		{Name: "locale", Value: func() (any, bool) {
			if activationDate == "" {
				return nil, false
			}
			return *c.Locale, true
		}},
		{Name: "groupId", Value: int64Value(c.GroupID)},
		{Name: "externalId", MaxLen: 100, Value: stringValue(c.ExternalID)},
		{Name: "accountNo", Value: stringValue(c.AccountNo)},
		{Name: "staffId", Value: int64Value(c.StaffID)},
		{Name: "mobileNo", Value: stringValue(c.MobileNo)},
		{Name: "savingsProductId", Value: int64Value(c.SavingsProductID)},
		{Name: "genderId", Value: int64Value(c.GenderID)},
		{Name: "clientTypeId", Value: int64Value(c.ClientTypeID)},
		{Name: "clientClassificationId", Value: int64Value(c.ClientClassificationID)},
	}

	return codec.Marshal(fields, checks...)
}

// checkName enforces the name invariant: exactly one of the full-name form
// or the first+last form, the latter with both parts non-empty.
func checkName(c *Client) error {
	hasSplit := c.Firstname != nil || c.Lastname != nil

	if c.Fullname == nil {
		if !hasSplit {
			return codec.Invalidf("client full name or first name and last name must be provided")
		}
		if strEmpty(c.Firstname) || strEmpty(c.Lastname) {
			return codec.Invalidf("client first name and last name cannot be empty when full name is not provided")
		}
		return nil
	}

	if hasSplit {
		return codec.Invalidf("client full name and first/last name are mutually exclusive")
	}
	if *c.Fullname == "" {
		return codec.Invalidf("client full name cannot be empty")
	}
	return nil
}

// decodeClient hydrates a Client from a server response object. Extraction
// is presence-driven; the only fatal condition is a malformed date array.
func decodeClient(obj codec.Object) (*Client, error) {
	c := &Client{}

	if fullname, ok := obj.String("fullname"); ok {
		c.Fullname = &fullname
	} else {
		c.Firstname = stringPtr(obj, "firstname")
		c.Middlename = stringPtr(obj, "middlename")
		c.Lastname = stringPtr(obj, "lastname")
	}

	c.OfficeID = int64Ptr(obj, "officeId")
	c.Active, _ = obj.Bool("active")
	c.ExternalID = stringPtr(obj, "externalId")
	c.AccountNo = stringPtr(obj, "accountNo")
	c.MobileNo = stringPtr(obj, "mobileNo")
	c.StaffID = int64Ptr(obj, "staffId")

	if date, ok, err := obj.Date("activationDate"); err != nil {
		return nil, err
	} else if ok {
		c.ActivationDate = &date
	}

	// Nested references flatten to an id and, when present, a name.
	c.GenderID = refIDPtr(obj, "gender")
	c.GenderName = refNamePtr(obj, "gender")
	c.ClientTypeID = refIDPtr(obj, "clientType")
	c.ClientTypeName = refNamePtr(obj, "clientType")
	c.ClientClassificationID = refIDPtr(obj, "clientClassification")
	c.ClientClassificationName = refNamePtr(obj, "clientClassification")

	// The identifier arrives under clientId or id; clientId wins.
	if id, ok := obj.Int64("clientId"); ok {
		c.ID = &id
	} else if id, ok := obj.Int64("id"); ok {
		c.ID = &id
	}

	c.DisplayName = stringPtr(obj, "displayName")
	c.OfficeName = stringPtr(obj, "officeName")
	c.StaffName = stringPtr(obj, "staffName")
	c.ImageID = int64Ptr(obj, "imageId")
	c.ResourceID = int64Ptr(obj, "resourceId")
	c.SavingsAccountID = int64Ptr(obj, "savingsAccountId")
	c.SavingsID = int64Ptr(obj, "savingsId")

	if imagePresent, ok := obj.Bool("imagePresent"); ok {
		c.ImagePresent = &imagePresent
	}

	if statusObj, ok := obj.Child("status"); ok {
		c.Status = decodeStatus(statusObj)
	}

	if timelineObj, ok := obj.Child("timeline"); ok {
		timeline, err := decodeTimeline(timelineObj)
		if err != nil {
			return nil, err
		}
		c.Timeline = timeline
		c.SubmittedOnDate = timeline.SubmittedOnDate
	}

	return c, nil
}

func decodeStatus(obj codec.Object) *Status {
	status := &Status{}
	status.ID, _ = obj.Int64("id")
	status.Code, _ = obj.String("code")
	status.Value, _ = obj.String("value")
	return status
}

func decodeTimeline(obj codec.Object) (*Timeline, error) {
	timeline := &Timeline{}

	dates := []struct {
		key    string
		target **time.Time
	}{
		{"submittedOnDate", &timeline.SubmittedOnDate},
		{"activatedOnDate", &timeline.ActivatedOnDate},
		{"closedOnDate", &timeline.ClosedOnDate},
	}
	for _, d := range dates {
		date, ok, err := obj.Date(d.key)
		if err != nil {
			return nil, err
		}
		if ok {
			*d.target = &date
		}
	}

	timeline.SubmittedByUsername = stringPtr(obj, "submittedByUsername")
	timeline.ActivatedByUsername = stringPtr(obj, "activatedByUsername")
	timeline.ClosedByUsername = stringPtr(obj, "closedByUsername")
	return timeline, nil
}

// Small value/pointer adapters shared by the codecs in this package.

func strEmpty(s *string) bool {
	return s == nil || *s == ""
}

func stringValue(s *string) func() (any, bool) {
	return func() (any, bool) {
		if s == nil {
			return nil, false
		}
		return *s, true
	}
}

func int64Value(i *int64) func() (any, bool) {
	return func() (any, bool) {
		if i == nil {
			return nil, false
		}
		return *i, true
	}
}

func splitName(useFullname bool, s *string) func() (any, bool) {
	return func() (any, bool) {
		if useFullname || s == nil {
			return nil, false
		}
		return *s, true
	}
}

func stringPtr(obj codec.Object, key string) *string {
	if s, ok := obj.String(key); ok {
		return &s
	}
	return nil
}

func int64Ptr(obj codec.Object, key string) *int64 {
	if i, ok := obj.Int64(key); ok {
		return &i
	}
	return nil
}

func refIDPtr(obj codec.Object, key string) *int64 {
	if i, ok := obj.RefID(key); ok {
		return &i
	}
	return nil
}

func refNamePtr(obj codec.Object, key string) *string {
	if s, ok := obj.RefName(key); ok {
		return &s
	}
	return nil
}

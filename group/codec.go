package group

import (
	"time"

	"github.com/binaryking/mifosx-api/internal/codec"
)

// marshalGroup produces the group create/update wire object. Office and
// name are required; an active group carries a rendered activation date.
func marshalGroup(g *Group) (map[string]any, error) {
	var activationDate string

	checks := []codec.Check{
		func() error {
			if g.Name != nil && *g.Name == "" {
				return codec.Invalidf("group name cannot be empty")
			}
			return nil
		},
		func() error {
			if !g.Active {
				return nil
			}
			if g.ActivationDate == nil {
				return codec.Invalidf("activation date is required when active is true")
			}
			if strEmpty(g.DateFormat) || strEmpty(g.Locale) {
				return codec.Invalidf("date format and locale are required when an activation date is provided")
			}
			rendered, err := codec.FormatDate(*g.ActivationDate, *g.DateFormat, *g.Locale)
			if err != nil {
				return err
			}
			activationDate = rendered
			return nil
		},
	}

	fields := []codec.Field{
		{Name: "officeId", Required: true, Value: int64Value(g.OfficeID)},
		{Name: "name", Required: true, Value: stringValue(g.Name)},
		{Name: "active", Value: func() (any, bool) { return g.Active, true }},
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
			return *g.DateFormat, true
		}},
		{Name: "locale", Value: func() (any, bool) {
			if activationDate == "" {
				return nil, false
			}
			return *g.Locale, true
		}},
		{Name: "externalId", MaxLen: 100, Value: stringValue(g.ExternalID)},
		{Name: "staffId", Value: int64Value(g.StaffID)},
		{Name: "clientMembers", Value: func() (any, bool) {
			if len(g.ClientMembers) == 0 {
				return nil, false
			}
			return g.ClientMembers, true
		}},
	}

	return codec.Marshal(fields, checks...)
}

// decodeGroup hydrates a Group from a server response object. Extraction is
// presence-driven; the only fatal condition is a malformed date array.
func decodeGroup(obj codec.Object) (*Group, error) {
	g := &Group{}

	g.Name = stringPtr(obj, "name")
	g.OfficeID = int64Ptr(obj, "officeId")
	g.OfficeName = stringPtr(obj, "officeName")
	g.StaffID = int64Ptr(obj, "staffId")
	g.StaffName = stringPtr(obj, "staffName")
	g.Hierarchy = stringPtr(obj, "hierarchy")
	g.ExternalID = stringPtr(obj, "externalId")
	g.ResourceID = int64Ptr(obj, "resourceId")
	g.Active, _ = obj.Bool("active")

	if date, ok, err := obj.Date("activationDate"); err != nil {
		return nil, err
	} else if ok {
		g.ActivationDate = &date
	}

	// The identifier arrives under groupId or id; groupId wins.
	if id, ok := obj.Int64("groupId"); ok {
		g.ID = &id
	} else if id, ok := obj.Int64("id"); ok {
		g.ID = &id
	}

	if statusObj, ok := obj.Child("status"); ok {
		g.Status = decodeStatus(statusObj)
	}

	if timelineObj, ok := obj.Child("timeline"); ok {
		timeline, err := decodeTimeline(timelineObj)
		if err != nil {
			return nil, err
		}
		g.Timeline = timeline
	}

	return g, nil
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

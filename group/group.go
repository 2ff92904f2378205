package group

import "time"

// Group represents a MifosX group, a set of clients managed together.
// Construct request entities with New and the With* options;
// server-assigned fields are populated only when an entity is decoded from
// a platform response.
//
//	g := group.New(
//	    group.WithName("Center A"),
//	    group.WithOfficeID(1),
//	)
type Group struct {
	// Request fields.

	OfficeID *int64
	Name     *string

	// Active is always serialized. When true, ActivationDate, DateFormat,
	// and Locale are all required.
	Active         bool
	ActivationDate *time.Time
	DateFormat     *string
	Locale         *string

	ExternalID    *string
	StaffID       *int64
	ClientMembers []int64

	// Server-assigned fields, populated on deserialization only.

	ID         *int64
	OfficeName *string
	StaffName  *string
	Hierarchy  *string
	ResourceID *int64
	Status     *Status
	Timeline   *Timeline
}

// Status is the platform's status reference for a group.
type Status struct {
	ID    int64
	Code  string
	Value string
}

// Timeline records when and by whom a group moved through its lifecycle.
// All fields are optional; the platform includes only the events that
// happened.
type Timeline struct {
	SubmittedOnDate     *time.Time
	SubmittedByUsername *string
	ActivatedOnDate     *time.Time
	ActivatedByUsername *string
	ClosedOnDate        *time.Time
	ClosedByUsername    *string
}

// Option configures a Group under construction.
type Option func(*Group)

// New assembles a Group from the given options.
func New(opts ...Option) *Group {
	g := &Group{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithOfficeID sets the office the group belongs to. Required.
func WithOfficeID(id int64) Option {
	return func(g *Group) { g.OfficeID = &id }
}

// WithName sets the group name. Required.
func WithName(name string) Option {
	return func(g *Group) { g.Name = &name }
}

// WithActive sets the active flag. An active group must also carry an
// activation date, date format, and locale.
func WithActive(active bool) Option {
	return func(g *Group) { g.Active = active }
}

// WithActivationDate sets the activation date together with the date
// format and locale used to render it.
func WithActivationDate(date time.Time, dateFormat, locale string) Option {
	return func(g *Group) {
		g.ActivationDate = &date
		g.DateFormat = &dateFormat
		g.Locale = &locale
	}
}

// WithExternalID sets the external identifier. At most 100 characters.
func WithExternalID(externalID string) Option {
	return func(g *Group) { g.ExternalID = &externalID }
}

// WithStaffID sets the assigned staff member.
func WithStaffID(id int64) Option {
	return func(g *Group) { g.StaffID = &id }
}

// WithClientMembers attaches clients to the group on creation.
func WithClientMembers(clientIDs ...int64) Option {
	return func(g *Group) { g.ClientMembers = clientIDs }
}

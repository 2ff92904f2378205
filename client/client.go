package client

import "time"

// Client represents a MifosX client. Construct request entities with New
// and the With* options; server-assigned fields are populated only when an
// entity is decoded from a platform response.
//
//	c := client.New(
//	    client.WithFullname("Davis Jones"),
//	    client.WithOfficeID(1),
//	    client.WithActive(false),
//	)
type Client struct {
	// Request fields.

	OfficeID *int64

	// Fullname is mutually exclusive with the Firstname/Lastname pair.
	Fullname   *string
	Firstname  *string
	Middlename *string
	Lastname   *string

	// Active is always serialized. When true, ActivationDate, DateFormat,
	// and Locale are all required.
	Active         bool
	ActivationDate *time.Time
	DateFormat     *string
	Locale         *string

	ExternalID             *string
	AccountNo              *string
	MobileNo               *string
	StaffID                *int64
	SavingsProductID       *int64
	GenderID               *int64
	ClientTypeID           *int64
	ClientClassificationID *int64
	GroupID                *int64

	// Server-assigned fields, populated on deserialization only.

	ID                       *int64
	DisplayName              *string
	OfficeName               *string
	StaffName                *string
	GenderName               *string
	ClientTypeName           *string
	ClientClassificationName *string
	ImageID                  *int64
	ImagePresent             *bool
	ResourceID               *int64
	SavingsAccountID         *int64
	SavingsID                *int64
	SubmittedOnDate          *time.Time
	Status                   *Status
	Timeline                 *Timeline
}

// Status is the platform's status reference for a client or group.
type Status struct {
	ID    int64
	Code  string
	Value string
}

// Timeline records when and by whom a resource moved through its
// lifecycle. All fields are optional; the platform includes only the
// events that happened.
type Timeline struct {
	SubmittedOnDate     *time.Time
	SubmittedByUsername *string
	ActivatedOnDate     *time.Time
	ActivatedByUsername *string
	ClosedOnDate        *time.Time
	ClosedByUsername    *string
}

// Option configures a Client under construction.
type Option func(*Client)

// New assembles a Client from the given options.
func New(opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithOfficeID sets the office the client belongs to. Required.
func WithOfficeID(id int64) Option {
	return func(c *Client) { c.OfficeID = &id }
}

// WithFullname sets the client's full name. Mutually exclusive with
// WithName.
func WithFullname(fullname string) Option {
	return func(c *Client) { c.Fullname = &fullname }
}

// WithName sets the client's first and last name. Mutually exclusive with
// WithFullname.
func WithName(firstname, lastname string) Option {
	return func(c *Client) {
		c.Firstname = &firstname
		c.Lastname = &lastname
	}
}

// WithMiddlename sets the client's middle name. Only serialized with the
// split name form.
func WithMiddlename(middlename string) Option {
	return func(c *Client) { c.Middlename = &middlename }
}

// WithActive sets the active flag. An active client must also carry an
// activation date, date format, and locale.
func WithActive(active bool) Option {
	return func(c *Client) { c.Active = active }
}

// WithActivationDate sets the activation date together with the date
// format and locale used to render it.
func WithActivationDate(date time.Time, dateFormat, locale string) Option {
	return func(c *Client) {
		c.ActivationDate = &date
		c.DateFormat = &dateFormat
		c.Locale = &locale
	}
}

// WithExternalID sets the external identifier. At most 100 characters.
func WithExternalID(externalID string) Option {
	return func(c *Client) { c.ExternalID = &externalID }
}

// WithAccountNo sets the account number.
func WithAccountNo(accountNo string) Option {
	return func(c *Client) { c.AccountNo = &accountNo }
}

// WithMobileNo sets the mobile number. Must be non-empty when set.
func WithMobileNo(mobileNo string) Option {
	return func(c *Client) { c.MobileNo = &mobileNo }
}

// WithStaffID sets the assigned staff member.
func WithStaffID(id int64) Option {
	return func(c *Client) { c.StaffID = &id }
}

// WithSavingsProductID sets the savings product to open with the client.
func WithSavingsProductID(id int64) Option {
	return func(c *Client) { c.SavingsProductID = &id }
}

// WithGenderID sets the gender code value.
func WithGenderID(id int64) Option {
	return func(c *Client) { c.GenderID = &id }
}

// WithClientTypeID sets the client type code value.
func WithClientTypeID(id int64) Option {
	return func(c *Client) { c.ClientTypeID = &id }
}

// WithClientClassificationID sets the client classification code value.
func WithClientClassificationID(id int64) Option {
	return func(c *Client) { c.ClientClassificationID = &id }
}

// WithGroupID attaches the client to a group on creation.
func WithGroupID(id int64) Option {
	return func(c *Client) { c.GroupID = &id }
}

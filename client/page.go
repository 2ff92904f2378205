package client

import "github.com/binaryking/mifosx-api/internal/codec"

// PageableClients is one page of a client listing.
type PageableClients struct {
	TotalFilteredRecords int64
	Clients              []*Client
}

func decodePage(obj codec.Object) (*PageableClients, error) {
	page := &PageableClients{}
	page.TotalFilteredRecords, _ = obj.Int64("totalFilteredRecords")

	items, ok := obj.Objects("pageItems")
	if !ok {
		return page, nil
	}
	page.Clients = make([]*Client, 0, len(items))
	for _, item := range items {
		c, err := decodeClient(item)
		if err != nil {
			return nil, err
		}
		page.Clients = append(page.Clients, c)
	}
	return page, nil
}

// ListOptions are the query parameters accepted by the client listing
// endpoint. They are passed through to the platform unmodified.
type ListOptions struct {
	Offset      int    `url:"offset,omitempty"`
	Limit       int    `url:"limit,omitempty"`
	OrderBy     string `url:"orderBy,omitempty"`
	SortOrder   string `url:"sortOrder,omitempty"`
	OfficeID    int64  `url:"officeId,omitempty"`
	ExternalID  string `url:"externalId,omitempty"`
	DisplayName string `url:"displayName,omitempty"`
	FirstName   string `url:"firstName,omitempty"`
	LastName    string `url:"lastName,omitempty"`
	SQLSearch   string `url:"sqlSearch,omitempty"`
}

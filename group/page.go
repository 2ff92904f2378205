package group

import "github.com/binaryking/mifosx-api/internal/codec"

// PageableGroups is one page of a group listing.
type PageableGroups struct {
	TotalFilteredRecords int64
	Groups               []*Group
}

func decodePage(obj codec.Object) (*PageableGroups, error) {
	page := &PageableGroups{}
	page.TotalFilteredRecords, _ = obj.Int64("totalFilteredRecords")

	items, ok := obj.Objects("pageItems")
	if !ok {
		return page, nil
	}
	page.Groups = make([]*Group, 0, len(items))
	for _, item := range items {
		g, err := decodeGroup(item)
		if err != nil {
			return nil, err
		}
		page.Groups = append(page.Groups, g)
	}
	return page, nil
}

// ListOptions are the query parameters accepted by the group listing
// endpoint. They are passed through to the platform unmodified.
type ListOptions struct {
	Offset         int    `url:"offset,omitempty"`
	Limit          int    `url:"limit,omitempty"`
	OrderBy        string `url:"orderBy,omitempty"`
	SortOrder      string `url:"sortOrder,omitempty"`
	OfficeID       int64  `url:"officeId,omitempty"`
	StaffID        int64  `url:"staffId,omitempty"`
	ExternalID     string `url:"externalId,omitempty"`
	Name           string `url:"name,omitempty"`
	UnderHierarchy string `url:"underHierarchy,omitempty"`
	SQLSearch      string `url:"sqlSearch,omitempty"`
}

package client

import "github.com/binaryking/mifosx-api/internal/codec"

// Identifier is a document-backed identity attached to a client, such as a
// passport or driver's license entry.
type Identifier struct {
	// Request fields.

	DocumentTypeID *int64
	DocumentKey    *string
	Description    *string

	// Server-assigned fields.

	ID               *int64
	ClientID         *int64
	DocumentTypeName *string
	ResourceID       *int64
}

// IdentifierOption configures an Identifier under construction.
type IdentifierOption func(*Identifier)

// NewIdentifier assembles an Identifier from the given options.
func NewIdentifier(opts ...IdentifierOption) *Identifier {
	ident := &Identifier{}
	for _, opt := range opts {
		opt(ident)
	}
	return ident
}

// WithDocumentTypeID sets the document type code value. Required.
func WithDocumentTypeID(id int64) IdentifierOption {
	return func(i *Identifier) { i.DocumentTypeID = &id }
}

// WithDocumentKey sets the document key, e.g. the passport number.
// Required.
func WithDocumentKey(key string) IdentifierOption {
	return func(i *Identifier) { i.DocumentKey = &key }
}

// WithDescription sets the optional free-form description.
func WithDescription(description string) IdentifierOption {
	return func(i *Identifier) { i.Description = &description }
}

func marshalIdentifier(ident *Identifier) (map[string]any, error) {
	check := func() error {
		if ident.DocumentKey != nil && *ident.DocumentKey == "" {
			return codec.Invalidf("document key cannot be empty")
		}
		return nil
	}

	return codec.Marshal([]codec.Field{
		{Name: "documentTypeId", Required: true, Value: int64Value(ident.DocumentTypeID)},
		{Name: "documentKey", Required: true, Value: stringValue(ident.DocumentKey)},
		{Name: "description", Value: stringValue(ident.Description)},
	}, check)
}

func decodeIdentifier(obj codec.Object) (*Identifier, error) {
	ident := &Identifier{}

	ident.DocumentKey = stringPtr(obj, "documentKey")
	ident.Description = stringPtr(obj, "description")
	ident.ClientID = int64Ptr(obj, "clientId")
	ident.ResourceID = int64Ptr(obj, "resourceId")

	// The document type arrives nested on reads and flat on creation
	// acknowledgements.
	if id, ok := obj.RefID("documentType"); ok {
		ident.DocumentTypeID = &id
	} else {
		ident.DocumentTypeID = int64Ptr(obj, "documentTypeId")
	}
	ident.DocumentTypeName = refNamePtr(obj, "documentType")

	if id, ok := obj.Int64("id"); ok {
		ident.ID = &id
	}

	return ident, nil
}

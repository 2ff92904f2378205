package client

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binaryking/mifosx-api/internal/codec"
)

func TestMarshalIdentifier(t *testing.T) {
	got, err := marshalIdentifier(NewIdentifier(
		WithDocumentTypeID(1),
		WithDocumentKey("KA-54"),
		WithDescription("driver's license"),
	))
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"documentTypeId": int64(1),
		"documentKey":    "KA-54",
		"description":    "driver's license",
	}, got)
}

func TestMarshalIdentifierInvariants(t *testing.T) {
	tests := []struct {
		name    string
		ident   *Identifier
		wantErr string
	}{
		{
			name:    "missing document type",
			ident:   NewIdentifier(WithDocumentKey("KA-54")),
			wantErr: "documentTypeId is required",
		},
		{
			name:    "missing document key",
			ident:   NewIdentifier(WithDocumentTypeID(1)),
			wantErr: "documentKey is required",
		},
		{
			name:    "empty document key",
			ident:   NewIdentifier(WithDocumentTypeID(1), WithDocumentKey("")),
			wantErr: "document key cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := marshalIdentifier(tt.ident)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDecodeIdentifierNestedType(t *testing.T) {
	obj, err := codec.Decode([]byte(`{
		"id": 3,
		"clientId": 17,
		"documentType": {"id": 1, "name": "Passport"},
		"documentKey": "KA-54",
		"description": "expires 2031"
	}`))
	require.NoError(t, err)

	ident, err := decodeIdentifier(obj)
	require.NoError(t, err)

	require.Equal(t, int64(3), *ident.ID)
	require.Equal(t, int64(17), *ident.ClientID)
	require.Equal(t, int64(1), *ident.DocumentTypeID)
	require.Equal(t, "Passport", *ident.DocumentTypeName)
	require.Equal(t, "KA-54", *ident.DocumentKey)
	require.Equal(t, "expires 2031", *ident.Description)
}

func TestDecodeIdentifierFlatType(t *testing.T) {
	obj, err := codec.Decode([]byte(`{"resourceId": 3, "documentTypeId": 1}`))
	require.NoError(t, err)

	ident, err := decodeIdentifier(obj)
	require.NoError(t, err)

	require.Equal(t, int64(3), *ident.ResourceID)
	require.Equal(t, int64(1), *ident.DocumentTypeID)
	require.Nil(t, ident.DocumentTypeName)
	require.Nil(t, ident.ID)
}

func TestImageDataURI(t *testing.T) {
	png := NewImage([]byte{0x89, 0x50, 0x4e, 0x47}, PNG)
	require.Equal(t, "data:image/png;base64,iVBORw==", png.DataURI())

	jpeg := NewImage([]byte{0xff, 0xd8}, JPEG)
	require.Equal(t, "data:image/jpeg;base64,/9g=", jpeg.DataURI())
}

func TestImageValidate(t *testing.T) {
	require.NoError(t, NewImage([]byte{0x01}, PNG).validate())
	require.ErrorContains(t, NewImage(nil, PNG).validate(), "image data cannot be empty")
}

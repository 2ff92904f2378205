package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *ErrorResponse
	}{
		{
			name: "nil error",
			err:  nil,
			want: nil,
		},
		{
			name: "connect error",
			err:  NewConnect(NotConnected),
			want: &ErrorResponse{
				Code:    "NOT_CONNECTED",
				Family:  "CONNECTIVITY",
				Message: NotConnected.Message(),
			},
		},
		{
			name: "resource error with dynamic message",
			err:  NewResourceMessage(Duplicate, "client already exists"),
			want: &ErrorResponse{
				Code:    "DUPLICATE",
				Family:  "RESOURCE",
				Message: "client already exists",
			},
		},
		{
			name: "plain error reported as unknown",
			err:  stderrors.New("boom"),
			want: &ErrorResponse{
				Code:    "UNKNOWN",
				Family:  "CONNECTIVITY",
				Message: "boom",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ToJSON(tt.err))
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewResourceMessage(Duplicate, "some random message"))
	require.NoError(t, err)
	require.JSONEq(t,
		`{"code":"DUPLICATE","family":"RESOURCE","message":"some random message"}`,
		string(data))

	data, err = json.Marshal(NewConnect(Unknown))
	require.NoError(t, err)
	require.JSONEq(t,
		`{"code":"UNKNOWN","family":"CONNECTIVITY","message":"`+Unknown.Message()+`"}`,
		string(data))
}

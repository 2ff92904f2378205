package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "nil error",
			err:  nil,
			want: Unknown,
		},
		{
			name: "connect error",
			err:  NewConnect(NotConnected),
			want: NotConnected,
		},
		{
			name: "resource error",
			err:  NewResource(ClientNotFound),
			want: ClientNotFound,
		},
		{
			name: "wrapped in plain error",
			err:  fmt.Errorf("operation failed: %w", NewResource(Duplicate)),
			want: Duplicate,
		},
		{
			name: "plain error",
			err:  stderrors.New("something broke"),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestIsConnect(t *testing.T) {
	require.True(t, IsConnect(NewConnect(Unknown)))
	require.True(t, IsConnect(fmt.Errorf("wrapped: %w", NewConnect(NotConnected))))
	require.False(t, IsConnect(NewResource(Duplicate)))
	require.False(t, IsConnect(stderrors.New("plain")))
	require.False(t, IsConnect(nil))
}

func TestIsResource(t *testing.T) {
	require.True(t, IsResource(NewResource(ClientNotFound)))
	require.True(t, IsResource(fmt.Errorf("wrapped: %w", NewResource(Duplicate))))
	require.False(t, IsResource(NewConnect(Unknown)))
	require.False(t, IsResource(nil))
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"client not found", NewResource(ClientNotFound), true},
		{"client or identifier not found", NewResource(ClientOrIdentifierNotFound), true},
		{"group not found", NewResource(GroupNotFound), true},
		{"group or role not found", NewResource(GroupOrRoleNotFound), true},
		{"duplicate", NewResource(Duplicate), false},
		{"not connected", NewConnect(NotConnected), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}

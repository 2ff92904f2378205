package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// allCodes lists every registered code. Tests below assert the registry is
// closed and total: each code has a default message and a family.
var allCodes = []ErrorCode{
	NotConnected,
	InvalidAuthenticationToken,
	Unknown,
	Duplicate,
	ClientNotFound,
	ClientOrIdentifierNotFound,
	GroupNotFound,
	GroupOrRoleNotFound,
}

func TestErrorCode_Message(t *testing.T) {
	for _, code := range allCodes {
		t.Run(string(code), func(t *testing.T) {
			require.NotEmpty(t, code.Message())
		})
	}
}

func TestErrorCode_MessageUnregisteredFallsBack(t *testing.T) {
	got := ErrorCode("SOMETHING_ELSE").Message()
	require.Equal(t, Unknown.Message(), got)
}

func TestErrorCode_String(t *testing.T) {
	require.Equal(t, "CLIENT_NOT_FOUND", ClientNotFound.String())
	require.Equal(t, "NOT_CONNECTED", NotConnected.String())
}

func TestFamily_Partition(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want ErrorFamily
	}{
		{NotConnected, FamilyConnectivity},
		{InvalidAuthenticationToken, FamilyConnectivity},
		{Unknown, FamilyConnectivity},
		{Duplicate, FamilyResource},
		{ClientNotFound, FamilyResource},
		{ClientOrIdentifierNotFound, FamilyResource},
		{GroupNotFound, FamilyResource},
		{GroupOrRoleNotFound, FamilyResource},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			require.Equal(t, tt.want, Family(tt.code))
		})
	}
}

func TestFamily_Total(t *testing.T) {
	// Every registered code must have an explicit family assignment.
	for _, code := range allCodes {
		_, ok := families[code]
		require.True(t, ok, "code %s has no family assignment", code)
	}
	require.Len(t, families, len(allCodes))
}

func TestFamily_UnregisteredDefaultsToConnectivity(t *testing.T) {
	require.Equal(t, FamilyConnectivity, Family(ErrorCode("SOMETHING_ELSE")))
}

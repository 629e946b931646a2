package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"user", RoleUser, false},
		{"admin", RoleAdmin, false},
		{"superadmin", RoleSuperAdmin, false},
		{"Admin", "", true},
		{"", "", true},
		{"root", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_Can(t *testing.T) {
	assert.True(t, RoleUser.Can(CapCreateRequests))
	assert.False(t, RoleUser.Can(CapApproveRequests))

	assert.True(t, RoleAdmin.Can(CapApproveRequests))
	assert.False(t, RoleAdmin.Can(CapManageBalances))
	assert.False(t, RoleAdmin.Can(CapDeleteRequests))

	assert.True(t, RoleSuperAdmin.Can(CapManageBalances))
	assert.True(t, RoleSuperAdmin.Can(CapManageSettings))

	assert.False(t, Role("ghost").Can(CapViewOwn))
}

func TestLedgerEvent_DedupeKey(t *testing.T) {
	e := LedgerEvent{Kind: EventDepositApproved, AggregateID: 42}
	assert.Equal(t, "deposit.approved:42", e.DedupeKey())
}

func TestDepositPayload_Scan(t *testing.T) {
	var p DepositPayload
	require.NoError(t, p.Scan([]byte(`{"transaction_ref":"UTR1","network":"TRC20"}`)))
	assert.Equal(t, "UTR1", p.TransactionRef)
	assert.Equal(t, "TRC20", p.Network)

	assert.Error(t, p.Scan(42))
}

package caspergo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T, fill byte) PublicKey {
	t.Helper()
	pk, err := NewEd25519PublicKey(bytes.Repeat([]byte{fill}, Ed25519PublicKeyLength))
	require.NoError(t, err)
	return pk
}

func TestAddAssociatedKey(t *testing.T) {
	mock := NewMockRuntime()
	UseRuntime(mock)
	pk := testKey(t, 1)

	require.NoError(t, AddAssociatedKey(pk, 3))

	assert.Equal(t, Weight(3), mock.AssociatedKeys[pk.AccountHash()])
	calls := mock.CallsTo("add_associated_key")
	require.Len(t, calls, 1)
	assert.Equal(t, []any{pk.AccountHash(), Weight(3)}, calls[0].Args)
}

func TestAddAssociatedKeyFailures(t *testing.T) {
	tests := []struct {
		code int32
		want AddKeyFailure
		text string
	}{
		{1, AddKeyMaxKeysLimit, "add associated key: max keys limit"},
		{2, AddKeyDuplicateKey, "add associated key: duplicate key"},
		{3, AddKeyPermissionDenied, "add associated key: permission denied"},
		{9, AddKeyFailure(9), "add associated key: unknown add key failure (9)"},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			mock := NewMockRuntime()
			UseRuntime(mock)
			mock.Fail("add_associated_key", tt.code)

			err := AddAssociatedKey(testKey(t, 1), 1)
			require.Error(t, err)
			assert.Equal(t, tt.want, err)
			assert.EqualError(t, err, tt.text)
			assert.Empty(t, mock.AssociatedKeys)
		})
	}
}

func TestUpdateAssociatedKey(t *testing.T) {
	mock := NewMockRuntime()
	UseRuntime(mock)
	pk := testKey(t, 2)

	require.NoError(t, AddAssociatedKey(pk, 1))
	require.NoError(t, UpdateAssociatedKey(pk, 5))
	assert.Equal(t, Weight(5), mock.AssociatedKeys[pk.AccountHash()])
	assert.Len(t, mock.CallsTo("update_associated_key"), 1)
}

func TestUpdateAssociatedKeyFailures(t *testing.T) {
	tests := []struct {
		code int32
		want UpdateKeyFailure
		text string
	}{
		{1, UpdateKeyMissingKey, "update associated key: missing key"},
		{2, UpdateKeyPermissionDenied, "update associated key: permission denied"},
		{3, UpdateKeyThresholdViolation, "update associated key: threshold violation"},
		{-1, UpdateKeyFailure(-1), "update associated key: unknown update key failure (-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			mock := NewMockRuntime()
			UseRuntime(mock)
			pk := testKey(t, 2)
			require.NoError(t, AddAssociatedKey(pk, 5))
			mock.Fail("update_associated_key", tt.code)

			err := UpdateAssociatedKey(pk, 0)
			require.Error(t, err)
			assert.Equal(t, tt.want, err)
			assert.EqualError(t, err, tt.text)
			assert.Equal(t, Weight(5), mock.AssociatedKeys[pk.AccountHash()])
		})
	}
}

func TestRemoveAssociatedKey(t *testing.T) {
	mock := NewMockRuntime()
	UseRuntime(mock)
	pk := testKey(t, 3)

	require.NoError(t, AddAssociatedKey(pk, 1))
	require.NoError(t, RemoveAssociatedKey(pk))
	assert.NotContains(t, mock.AssociatedKeys, pk.AccountHash())
}

func TestRemoveAssociatedKeyFailures(t *testing.T) {
	tests := []struct {
		code int32
		want RemoveKeyFailure
		text string
	}{
		{1, RemoveKeyMissingKey, "remove associated key: missing key"},
		{2, RemoveKeyPermissionDenied, "remove associated key: permission denied"},
		{3, RemoveKeyThresholdViolation, "remove associated key: threshold violation"},
		{4, RemoveKeyFailure(4), "remove associated key: unknown remove key failure (4)"},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			mock := NewMockRuntime()
			UseRuntime(mock)
			pk := testKey(t, 3)
			require.NoError(t, AddAssociatedKey(pk, 1))
			mock.Fail("remove_associated_key", tt.code)

			err := RemoveAssociatedKey(pk)
			require.Error(t, err)
			assert.Equal(t, tt.want, err)
			assert.EqualError(t, err, tt.text)
			assert.Contains(t, mock.AssociatedKeys, pk.AccountHash())
		})
	}
}

func TestSetActionThreshold(t *testing.T) {
	mock := NewMockRuntime()
	UseRuntime(mock)

	require.NoError(t, SetActionThreshold(ActionKeyManagement, 4))
	require.NoError(t, SetActionThreshold(ActionDeployment, 2))
	assert.Equal(t, uint8(4), mock.Thresholds[ActionKeyManagement])
	assert.Equal(t, uint8(2), mock.Thresholds[ActionDeployment])

	calls := mock.CallsTo("set_action_threshold")
	require.Len(t, calls, 2)
	assert.Equal(t, []any{ActionKeyManagement, uint8(4)}, calls[0].Args)
}

func TestSetActionThresholdFailures(t *testing.T) {
	tests := []struct {
		code int32
		want SetThresholdFailure
		text string
	}{
		{1, SetThresholdKeyManagementThreshold, "set action threshold: key management threshold"},
		{2, SetThresholdDeploymentThreshold, "set action threshold: deployment threshold"},
		{3, SetThresholdPermissionDeniedError, "set action threshold: permission denied"},
		{4, SetThresholdInsufficientTotalWeight, "set action threshold: insufficient total weight"},
		{5, SetThresholdFailure(5), "set action threshold: unknown set threshold failure (5)"},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			mock := NewMockRuntime()
			UseRuntime(mock)
			mock.Fail("set_action_threshold", tt.code)

			err := SetActionThreshold(ActionDeployment, 9)
			require.Error(t, err)
			assert.Equal(t, tt.want, err)
			assert.EqualError(t, err, tt.text)
			assert.Equal(t, uint8(1), mock.Thresholds[ActionDeployment])
		})
	}
}

func TestActionTypeString(t *testing.T) {
	assert.Equal(t, "deployment", ActionDeployment.String())
	assert.Equal(t, "key management", ActionKeyManagement.String())
	assert.Equal(t, "unknown action (2)", ActionType(2).String())
}

func TestGetMainPurse(t *testing.T) {
	mock := NewMockRuntime()
	UseRuntime(mock)

	purse, err := GetMainPurse()
	require.NoError(t, err)
	assert.Equal(t, mock.MainPurse.Addr, purse.Addr)
	require.NotNil(t, purse.Rights)
	assert.Equal(t, AccessReadAddWrite, *purse.Rights)
	assert.True(t, purse.Readable())
	assert.True(t, purse.Writeable())
	assert.True(t, purse.Addable())
}

func TestGetMainPurseUnwritten(t *testing.T) {
	mock := NewMockRuntime()
	UseRuntime(mock)
	mock.MainPurseBytes = []byte{}

	purse, err := GetMainPurse()
	require.NoError(t, err)
	assert.Equal(t, [UrefAddrLength]byte{}, purse.Addr)
	assert.Nil(t, purse.Rights)
	assert.False(t, purse.Readable())
}

func TestGetMainPurseMalformed(t *testing.T) {
	mock := NewMockRuntime()
	UseRuntime(mock)
	b := make([]byte, UrefSerializedLength)
	b[UrefAddrLength] = 2
	mock.MainPurseBytes = b

	_, err := GetMainPurse()
	assert.ErrorIs(t, err, ErrFormatting)
}

func TestGetMainPurseHostFailure(t *testing.T) {
	mock := NewMockRuntime()
	UseRuntime(mock)
	mock.FailNext("get_main_purse", 1)

	purse, err := GetMainPurse()
	require.NoError(t, err)
	assert.Nil(t, purse.Rights)
	assert.Equal(t, [UrefAddrLength]byte{}, purse.Addr)

	purse, err = GetMainPurse()
	require.NoError(t, err)
	assert.Equal(t, mock.MainPurse.Addr, purse.Addr)
}

func TestHostImportsRequireRuntime(t *testing.T) {
	UseRuntime(nil)
	defer UseRuntime(NewMockRuntime())

	assert.PanicsWithValue(t, "mock runtime not initialized", func() {
		_ = SetActionThreshold(ActionDeployment, 1)
	})
}

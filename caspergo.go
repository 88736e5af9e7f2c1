// Package caspergo exposes the account-management host functions of a Casper
// execution host to contracts compiled with TinyGo.
//
// Under TinyGo the Host* variables are bound to the real wasm imports. Under
// the standard Go toolchain they are bound to an in-memory MockRuntime so
// contracts can be unit tested with go test.
package caspergo

import (
	"errors"
)

// Error definitions
var (
	ErrEarlyEndOfStream = errors.New("early end of stream")
	ErrFormatting       = errors.New("formatting error")
	ErrLeftOverBytes    = errors.New("left over bytes")
	ErrInvalidLength    = errors.New("invalid length")
	ErrArgTooLarge      = errors.New("named argument too large")
)

// Constants
const (
	UrefAddrLength               = 32
	AccessRightsSerializedLength = 1
	OptionTagSerializedLength    = 1
	UrefSerializedLength         = UrefAddrLength + OptionTagSerializedLength + AccessRightsSerializedLength
	AccountHashLength            = 32
	Ed25519PublicKeyLength       = 32
	Secp256k1PublicKeyLength     = 33
)

// MaxNamedArgSize bounds the buffer allocated for a single named argument.
const MaxNamedArgSize uint32 = 1024 * 1024 // 1MB limit

// Function pointers for host functions
var (
	HostAddAssociatedKey    func(keyPtr *byte, keySize uint32, weight int32) int32
	HostUpdateAssociatedKey func(keyPtr *byte, keySize uint32, weight int32) int32
	HostRemoveAssociatedKey func(keyPtr *byte, keySize uint32) int32
	HostSetActionThreshold  func(actionType uint32, threshold uint32) int32
	HostGetMainPurse        func(destPtr *byte)
	HostGetNamedArgSize     func(namePtr *byte, nameSize uint32, destSize *uint32) int32
	HostGetNamedArg         func(namePtr *byte, nameSize uint32, destPtr *byte, destSize uint32) int32
	HostRevert              func(status uint32)
)

func init() {
	HostAddAssociatedKey = add_associated_key
	HostUpdateAssociatedKey = update_associated_key
	HostRemoveAssociatedKey = remove_associated_key
	HostSetActionThreshold = set_action_threshold
	HostGetMainPurse = get_main_purse
	HostGetNamedArgSize = get_named_arg_size
	HostGetNamedArg = get_named_arg
	HostRevert = revert
}

// bytesPtr returns a pointer to the first byte of b, or nil when b is empty.
func bytesPtr(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

package caspergo

import (
	"errors"
	"fmt"
)

// ApiError is a status code understood by the host. Contracts abort with one
// through Revert.
type ApiError uint32

const (
	ApiErrorNone                    ApiError = 1
	ApiErrorMissingArgument         ApiError = 2
	ApiErrorInvalidArgument         ApiError = 3
	ApiErrorDeserialize             ApiError = 4
	ApiErrorRead                    ApiError = 5
	ApiErrorValueNotFound           ApiError = 6
	ApiErrorContractNotFound        ApiError = 7
	ApiErrorGetKey                  ApiError = 8
	ApiErrorUnexpectedKeyVariant    ApiError = 9
	ApiErrorUnexpectedContractRef   ApiError = 10
	ApiErrorInvalidPurseName        ApiError = 11
	ApiErrorInvalidPurse            ApiError = 12
	ApiErrorUpgradeContractAtURef   ApiError = 13
	ApiErrorTransfer                ApiError = 14
	ApiErrorNoAccessRights          ApiError = 15
	ApiErrorCLTypeMismatch          ApiError = 16
	ApiErrorEarlyEndOfStream        ApiError = 17
	ApiErrorFormatting              ApiError = 18
	ApiErrorLeftOverBytes           ApiError = 19
	ApiErrorOutOfMemory             ApiError = 20
	ApiErrorMaxKeysLimit            ApiError = 21
	ApiErrorDuplicateKey            ApiError = 22
	ApiErrorPermissionDenied        ApiError = 23
	ApiErrorMissingKey              ApiError = 24
	ApiErrorThresholdViolation      ApiError = 25
	ApiErrorKeyManagementThreshold  ApiError = 26
	ApiErrorDeploymentThreshold     ApiError = 27
	ApiErrorInsufficientTotalWeight ApiError = 28
	ApiErrorInvalidSystemContract   ApiError = 29
	ApiErrorPurseNotCreated         ApiError = 30
	ApiErrorUnhandled               ApiError = 31
	ApiErrorBufferTooSmall          ApiError = 32
	ApiErrorHostBufferEmpty         ApiError = 33
	ApiErrorHostBufferFull          ApiError = 34
)

// userErrorOffset is added to contract-defined error codes.
const userErrorOffset = 65536

var apiErrorNames = map[ApiError]string{
	ApiErrorNone:                    "none",
	ApiErrorMissingArgument:         "missing argument",
	ApiErrorInvalidArgument:         "invalid argument",
	ApiErrorDeserialize:             "deserialize",
	ApiErrorRead:                    "read",
	ApiErrorValueNotFound:           "value not found",
	ApiErrorContractNotFound:        "contract not found",
	ApiErrorGetKey:                  "get key",
	ApiErrorUnexpectedKeyVariant:    "unexpected key variant",
	ApiErrorUnexpectedContractRef:   "unexpected contract ref variant",
	ApiErrorInvalidPurseName:        "invalid purse name",
	ApiErrorInvalidPurse:            "invalid purse",
	ApiErrorUpgradeContractAtURef:   "upgrade contract at uref",
	ApiErrorTransfer:                "transfer",
	ApiErrorNoAccessRights:          "no access rights",
	ApiErrorCLTypeMismatch:          "cltype mismatch",
	ApiErrorEarlyEndOfStream:        "early end of stream",
	ApiErrorFormatting:              "formatting",
	ApiErrorLeftOverBytes:           "left over bytes",
	ApiErrorOutOfMemory:             "out of memory",
	ApiErrorMaxKeysLimit:            "max keys limit",
	ApiErrorDuplicateKey:            "duplicate key",
	ApiErrorPermissionDenied:        "permission denied",
	ApiErrorMissingKey:              "missing key",
	ApiErrorThresholdViolation:      "threshold violation",
	ApiErrorKeyManagementThreshold:  "key management threshold",
	ApiErrorDeploymentThreshold:     "deployment threshold",
	ApiErrorInsufficientTotalWeight: "insufficient total weight",
	ApiErrorInvalidSystemContract:   "invalid system contract",
	ApiErrorPurseNotCreated:         "purse not created",
	ApiErrorUnhandled:               "unhandled",
	ApiErrorBufferTooSmall:          "buffer too small",
	ApiErrorHostBufferEmpty:         "host buffer empty",
	ApiErrorHostBufferFull:          "host buffer full",
}

// UserError returns the ApiError carrying a contract-defined code.
func UserError(code uint16) ApiError {
	return ApiError(userErrorOffset + uint32(code))
}

// IsUser reports whether e carries a contract-defined code, and returns it.
func (e ApiError) IsUser() (uint16, bool) {
	if e >= userErrorOffset && e <= userErrorOffset+0xffff {
		return uint16(e - userErrorOffset), true
	}
	return 0, false
}

func (e ApiError) Error() string {
	if code, ok := e.IsUser(); ok {
		return fmt.Sprintf("user error %d", code)
	}
	if name, ok := apiErrorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("api error %d", uint32(e))
}

// ApiErrorFrom maps an error returned by this package onto the status code
// the host expects from Revert. Unrecognized errors map to ApiErrorUnhandled.
func ApiErrorFrom(err error) ApiError {
	var (
		apiErr    ApiError
		addErr    AddKeyFailure
		updateErr UpdateKeyFailure
		removeErr RemoveKeyFailure
		setErr    SetThresholdFailure
	)
	switch {
	case err == nil:
		return ApiErrorNone
	case errors.As(err, &apiErr):
		return apiErr
	case errors.As(err, &addErr):
		switch addErr {
		case AddKeyMaxKeysLimit:
			return ApiErrorMaxKeysLimit
		case AddKeyDuplicateKey:
			return ApiErrorDuplicateKey
		case AddKeyPermissionDenied:
			return ApiErrorPermissionDenied
		}
	case errors.As(err, &updateErr):
		switch updateErr {
		case UpdateKeyMissingKey:
			return ApiErrorMissingKey
		case UpdateKeyPermissionDenied:
			return ApiErrorPermissionDenied
		case UpdateKeyThresholdViolation:
			return ApiErrorThresholdViolation
		}
	case errors.As(err, &removeErr):
		switch removeErr {
		case RemoveKeyMissingKey:
			return ApiErrorMissingKey
		case RemoveKeyPermissionDenied:
			return ApiErrorPermissionDenied
		case RemoveKeyThresholdViolation:
			return ApiErrorThresholdViolation
		}
	case errors.As(err, &setErr):
		switch setErr {
		case SetThresholdKeyManagementThreshold:
			return ApiErrorKeyManagementThreshold
		case SetThresholdDeploymentThreshold:
			return ApiErrorDeploymentThreshold
		case SetThresholdPermissionDeniedError:
			return ApiErrorPermissionDenied
		case SetThresholdInsufficientTotalWeight:
			return ApiErrorInsufficientTotalWeight
		}
	case errors.Is(err, ErrEarlyEndOfStream):
		return ApiErrorEarlyEndOfStream
	case errors.Is(err, ErrFormatting), errors.Is(err, ErrInvalidLength):
		return ApiErrorFormatting
	case errors.Is(err, ErrLeftOverBytes):
		return ApiErrorLeftOverBytes
	case errors.Is(err, ErrArgTooLarge):
		return ApiErrorOutOfMemory
	}
	return ApiErrorUnhandled
}

// Revert aborts execution of the contract with the given status. It does not
// return.
func Revert(err ApiError) {
	HostRevert(uint32(err))
	panic("revert returned")
}

// RevertOnError reverts with the status mapped from err when err is not nil.
func RevertOnError(err error) {
	if err != nil {
		Revert(ApiErrorFrom(err))
	}
}

// GetNamedArg returns the serialized value of the deploy argument called name.
func GetNamedArg(name string) ([]byte, error) {
	nameBytes := []byte(name)
	var size uint32
	if ret := HostGetNamedArgSize(bytesPtr(nameBytes), uint32(len(nameBytes)), &size); ret != 0 {
		return nil, fmt.Errorf("arg %q: %w", name, ApiError(ret))
	}
	if size == 0 {
		return []byte{}, nil
	}
	if size > MaxNamedArgSize {
		return nil, fmt.Errorf("arg %q of %d bytes: %w", name, size, ErrArgTooLarge)
	}
	data := make([]byte, size)
	if ret := HostGetNamedArg(bytesPtr(nameBytes), uint32(len(nameBytes)), &data[0], size); ret != 0 {
		return nil, fmt.Errorf("arg %q: %w", name, ApiError(ret))
	}
	return data, nil
}

// GetNamedArgU8 reads a u8 deploy argument.
func GetNamedArgU8(name string) (uint8, error) {
	b, err := GetNamedArg(name)
	if err != nil {
		return 0, err
	}
	v, err := DecodeU8(b)
	if err != nil {
		return 0, fmt.Errorf("arg %q: %w", name, err)
	}
	return v, nil
}

// GetNamedArgString reads a string deploy argument.
func GetNamedArgString(name string) (string, error) {
	b, err := GetNamedArg(name)
	if err != nil {
		return "", err
	}
	v, err := DecodeString(b)
	if err != nil {
		return "", fmt.Errorf("arg %q: %w", name, err)
	}
	return v, nil
}

// GetNamedArgPublicKey reads a PublicKey deploy argument.
func GetNamedArgPublicKey(name string) (PublicKey, error) {
	b, err := GetNamedArg(name)
	if err != nil {
		return PublicKey{}, err
	}
	pk, err := PublicKeyFromBytes(b)
	if err != nil {
		return PublicKey{}, fmt.Errorf("arg %q: %w", name, err)
	}
	return pk, nil
}

package caspergo

import "fmt"

// Weight is the weight of an associated key.
type Weight uint8

// AddKeyFailure is the host's result of adding an associated key.
// AddKeyMaxKeysLimit means the account already holds the maximum number of
// associated keys; AddKeyDuplicateKey means the key is already associated.
type AddKeyFailure int32

const (
	AddKeyOk               AddKeyFailure = 0
	AddKeyMaxKeysLimit     AddKeyFailure = 1
	AddKeyDuplicateKey     AddKeyFailure = 2
	AddKeyPermissionDenied AddKeyFailure = 3
)

func (f AddKeyFailure) String() string {
	switch f {
	case AddKeyOk:
		return "ok"
	case AddKeyMaxKeysLimit:
		return "max keys limit"
	case AddKeyDuplicateKey:
		return "duplicate key"
	case AddKeyPermissionDenied:
		return "permission denied"
	default:
		return fmt.Sprintf("unknown add key failure (%d)", int32(f))
	}
}

func (f AddKeyFailure) Error() string {
	return "add associated key: " + f.String()
}

// UpdateKeyFailure is the host's result of updating an associated key.
// UpdateKeyThresholdViolation means the new weight would leave the account
// unable to meet one of its action thresholds.
type UpdateKeyFailure int32

const (
	UpdateKeyOk                 UpdateKeyFailure = 0
	UpdateKeyMissingKey         UpdateKeyFailure = 1
	UpdateKeyPermissionDenied   UpdateKeyFailure = 2
	UpdateKeyThresholdViolation UpdateKeyFailure = 3
)

func (f UpdateKeyFailure) String() string {
	switch f {
	case UpdateKeyOk:
		return "ok"
	case UpdateKeyMissingKey:
		return "missing key"
	case UpdateKeyPermissionDenied:
		return "permission denied"
	case UpdateKeyThresholdViolation:
		return "threshold violation"
	default:
		return fmt.Sprintf("unknown update key failure (%d)", int32(f))
	}
}

func (f UpdateKeyFailure) Error() string {
	return "update associated key: " + f.String()
}

// RemoveKeyFailure is the host's result of removing an associated key.
type RemoveKeyFailure int32

const (
	RemoveKeyOk                 RemoveKeyFailure = 0
	RemoveKeyMissingKey         RemoveKeyFailure = 1
	RemoveKeyPermissionDenied   RemoveKeyFailure = 2
	RemoveKeyThresholdViolation RemoveKeyFailure = 3
)

func (f RemoveKeyFailure) String() string {
	switch f {
	case RemoveKeyOk:
		return "ok"
	case RemoveKeyMissingKey:
		return "missing key"
	case RemoveKeyPermissionDenied:
		return "permission denied"
	case RemoveKeyThresholdViolation:
		return "threshold violation"
	default:
		return fmt.Sprintf("unknown remove key failure (%d)", int32(f))
	}
}

func (f RemoveKeyFailure) Error() string {
	return "remove associated key: " + f.String()
}

// SetThresholdFailure is the host's result of changing an action threshold.
// The key management threshold may never sit below the deployment threshold,
// and neither may exceed the total weight of the associated keys.
type SetThresholdFailure int32

const (
	SetThresholdOk                      SetThresholdFailure = 0
	SetThresholdKeyManagementThreshold  SetThresholdFailure = 1
	SetThresholdDeploymentThreshold     SetThresholdFailure = 2
	SetThresholdPermissionDeniedError   SetThresholdFailure = 3
	SetThresholdInsufficientTotalWeight SetThresholdFailure = 4
)

func (f SetThresholdFailure) String() string {
	switch f {
	case SetThresholdOk:
		return "ok"
	case SetThresholdKeyManagementThreshold:
		return "key management threshold"
	case SetThresholdDeploymentThreshold:
		return "deployment threshold"
	case SetThresholdPermissionDeniedError:
		return "permission denied"
	case SetThresholdInsufficientTotalWeight:
		return "insufficient total weight"
	default:
		return fmt.Sprintf("unknown set threshold failure (%d)", int32(f))
	}
}

func (f SetThresholdFailure) Error() string {
	return "set action threshold: " + f.String()
}

// ActionType selects which action threshold to change. ActionDeployment is
// required by deploy execution; ActionKeyManagement is required to change
// associated keys and thresholds.
type ActionType int32

const (
	ActionDeployment    ActionType = 0
	ActionKeyManagement ActionType = 1
)

func (a ActionType) String() string {
	switch a {
	case ActionDeployment:
		return "deployment"
	case ActionKeyManagement:
		return "key management"
	default:
		return fmt.Sprintf("unknown action (%d)", int32(a))
	}
}

// AddAssociatedKey associates pk with the calling account at the given
// weight. It returns nil on success or the AddKeyFailure reported by the host.
func AddAssociatedKey(pk PublicKey, weight Weight) error {
	b := pk.ToBytes()
	if ret := AddKeyFailure(HostAddAssociatedKey(bytesPtr(b), uint32(len(b)), int32(weight))); ret != AddKeyOk {
		return ret
	}
	return nil
}

// UpdateAssociatedKey changes the weight of an associated key.
func UpdateAssociatedKey(pk PublicKey, weight Weight) error {
	b := pk.ToBytes()
	if ret := UpdateKeyFailure(HostUpdateAssociatedKey(bytesPtr(b), uint32(len(b)), int32(weight))); ret != UpdateKeyOk {
		return ret
	}
	return nil
}

// RemoveAssociatedKey removes pk from the calling account's associated keys.
func RemoveAssociatedKey(pk PublicKey) error {
	b := pk.ToBytes()
	if ret := RemoveKeyFailure(HostRemoveAssociatedKey(bytesPtr(b), uint32(len(b)))); ret != RemoveKeyOk {
		return ret
	}
	return nil
}

// SetActionThreshold sets the weight required to perform the given action.
func SetActionThreshold(action ActionType, threshold uint8) error {
	if ret := SetThresholdFailure(HostSetActionThreshold(uint32(action), uint32(threshold))); ret != SetThresholdOk {
		return ret
	}
	return nil
}

// GetMainPurse returns the main purse of the calling account.
func GetMainPurse() (URef, error) {
	var data [UrefSerializedLength]byte
	HostGetMainPurse(&data[0])
	uref, err := URefFromBytes(data[:])
	if err != nil {
		return URef{}, fmt.Errorf("main purse: %w", err)
	}
	return uref, nil
}

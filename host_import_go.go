//go:build !tinygo

package caspergo

// Standard Go builds have no host, so every import forwards to the active
// MockRuntime installed with UseRuntime.

func add_associated_key(keyPtr *byte, keySize uint32, weight int32) int32 {
	return requireRuntime().addAssociatedKey(unsafeSlice(keyPtr, keySize), weight)
}

func update_associated_key(keyPtr *byte, keySize uint32, weight int32) int32 {
	return requireRuntime().updateAssociatedKey(unsafeSlice(keyPtr, keySize), weight)
}

func remove_associated_key(keyPtr *byte, keySize uint32) int32 {
	return requireRuntime().removeAssociatedKey(unsafeSlice(keyPtr, keySize))
}

func set_action_threshold(actionType uint32, threshold uint32) int32 {
	return requireRuntime().setActionThreshold(actionType, threshold)
}

func get_main_purse(destPtr *byte) {
	requireRuntime().getMainPurse(unsafeSlice(destPtr, UrefSerializedLength))
}

func get_named_arg_size(namePtr *byte, nameSize uint32, destSize *uint32) int32 {
	return requireRuntime().getNamedArgSize(string(unsafeSlice(namePtr, nameSize)), destSize)
}

func get_named_arg(namePtr *byte, nameSize uint32, destPtr *byte, destSize uint32) int32 {
	return requireRuntime().getNamedArg(string(unsafeSlice(namePtr, nameSize)), unsafeSlice(destPtr, destSize))
}

func revert(status uint32) {
	requireRuntime().revert(status)
}

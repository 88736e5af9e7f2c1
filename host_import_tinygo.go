//go:build tinygo

package caspergo

// This file declares the account-management and runtime functions imported
// from the Casper execution host. All of them live in the "env" module.

//go:wasmimport env add_associated_key
func add_associated_key(keyPtr *byte, keySize uint32, weight int32) int32

//go:wasmimport env update_associated_key
func update_associated_key(keyPtr *byte, keySize uint32, weight int32) int32

//go:wasmimport env remove_associated_key
func remove_associated_key(keyPtr *byte, keySize uint32) int32

//go:wasmimport env set_action_threshold
func set_action_threshold(actionType uint32, threshold uint32) int32

//go:wasmimport env get_main_purse
func get_main_purse(destPtr *byte)

//go:wasmimport env get_named_arg_size
func get_named_arg_size(namePtr *byte, nameSize uint32, destSize *uint32) int32

//go:wasmimport env get_named_arg
func get_named_arg(namePtr *byte, nameSize uint32, destPtr *byte, destSize uint32) int32

//go:wasmimport env revert
func revert(status uint32)

//go:build !tinygo

package caspergo

import (
	"fmt"
	"sync"
)

// HostCall records a single host import invocation.
type HostCall struct {
	Name string
	Args []any
	Ret  int32
}

// RevertError is the panic value raised when a contract reverts under the
// mock runtime.
type RevertError struct {
	Code ApiError
}

func (r RevertError) Error() string {
	return fmt.Sprintf("reverted: %v", r.Code)
}

// MockRuntime provides an in-memory stand-in for the account-management
// host functions for local testing purposes. It does not enforce key limits
// or thresholds; tests script failures through Fail and FailNext, which
// apply to every host import. A forced code on get_main_purse leaves the
// destination buffer untouched.
type MockRuntime struct {
	AssociatedKeys map[AccountHash]Weight // Keys added through the mock
	Thresholds     map[ActionType]uint8   // Last threshold set per action
	MainPurse      URef                   // Purse returned by get_main_purse
	MainPurseBytes []byte                 // Overrides MainPurse serialization when set
	NamedArgs      map[string][]byte      // Serialized deploy arguments
	Codes          map[string]int32       // Forced return codes keyed by import name
	Pending        map[string][]int32     // One-shot return codes, consumed before Codes
	Calls          []HostCall             // Every host call in order
	mu             sync.Mutex
}

// NewMockRuntime creates a new instance of the mock runtime.
func NewMockRuntime() *MockRuntime {
	var addr [UrefAddrLength]byte
	for i := range addr {
		addr[i] = 0x4d
	}
	return &MockRuntime{
		AssociatedKeys: make(map[AccountHash]Weight),
		Thresholds: map[ActionType]uint8{
			ActionDeployment:    1,
			ActionKeyManagement: 1,
		},
		MainPurse: NewURef(addr, AccessReadAddWrite),
		NamedArgs: make(map[string][]byte),
		Codes:     make(map[string]int32),
		Pending:   make(map[string][]int32),
	}
}

// SetArg stores an already serialized deploy argument.
func (m *MockRuntime) SetArg(name string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NamedArgs[name] = value
}

// Fail makes the named host import return code until Clear is called.
func (m *MockRuntime) Fail(name string, code int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Codes[name] = code
}

// FailNext makes the next call to the named host import return code.
func (m *MockRuntime) FailNext(name string, code int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Pending[name] = append(m.Pending[name], code)
}

// Clear removes all forced return codes.
func (m *MockRuntime) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Codes = make(map[string]int32)
	m.Pending = make(map[string][]int32)
}

// CallsTo returns the recorded calls to the named host import.
func (m *MockRuntime) CallsTo(name string) []HostCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []HostCall
	for _, c := range m.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// CatchRevert runs fn and reports the status it reverted with, if any.
func CatchRevert(fn func()) (code ApiError, reverted bool) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(RevertError)
			if !ok {
				panic(r)
			}
			code, reverted = re.Code, true
		}
	}()
	fn()
	return 0, false
}

// --- Mock Implementations of Host Functions ---

func (m *MockRuntime) record(name string, ret int32, args ...any) int32 {
	m.Calls = append(m.Calls, HostCall{Name: name, Args: args, Ret: ret})
	return ret
}

// code returns the forced result for the named import, 0 if none.
func (m *MockRuntime) code(name string) int32 {
	if q := m.Pending[name]; len(q) > 0 {
		m.Pending[name] = q[1:]
		return q[0]
	}
	return m.Codes[name]
}

func (m *MockRuntime) accountHash(keyBytes []byte) AccountHash {
	pk, err := PublicKeyFromBytes(keyBytes)
	if err != nil {
		// The real host traps on a malformed key.
		panic(fmt.Sprintf("mock: malformed public key: %v", err))
	}
	return pk.AccountHash()
}

func (m *MockRuntime) addAssociatedKey(keyBytes []byte, weight int32) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	hash := m.accountHash(keyBytes)
	ret := m.code("add_associated_key")
	if ret == 0 {
		m.AssociatedKeys[hash] = Weight(weight)
	}
	return m.record("add_associated_key", ret, hash, Weight(weight))
}

func (m *MockRuntime) updateAssociatedKey(keyBytes []byte, weight int32) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	hash := m.accountHash(keyBytes)
	ret := m.code("update_associated_key")
	if ret == 0 {
		m.AssociatedKeys[hash] = Weight(weight)
	}
	return m.record("update_associated_key", ret, hash, Weight(weight))
}

func (m *MockRuntime) removeAssociatedKey(keyBytes []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	hash := m.accountHash(keyBytes)
	ret := m.code("remove_associated_key")
	if ret == 0 {
		delete(m.AssociatedKeys, hash)
	}
	return m.record("remove_associated_key", ret, hash)
}

func (m *MockRuntime) setActionThreshold(actionType uint32, threshold uint32) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	ret := m.code("set_action_threshold")
	if ret == 0 {
		m.Thresholds[ActionType(actionType)] = uint8(threshold)
	}
	return m.record("set_action_threshold", ret, ActionType(actionType), uint8(threshold))
}

func (m *MockRuntime) getMainPurse(dest []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ret := m.code("get_main_purse"); ret != 0 {
		m.record("get_main_purse", ret)
		return
	}
	src := m.MainPurseBytes
	if src == nil {
		src = m.MainPurse.ToBytes()
	}
	copy(dest, src)
	m.record("get_main_purse", 0)
}

func (m *MockRuntime) getNamedArgSize(name string, destSize *uint32) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ret := m.code("get_named_arg_size"); ret != 0 {
		return m.record("get_named_arg_size", ret, name)
	}
	v, ok := m.NamedArgs[name]
	if !ok {
		return m.record("get_named_arg_size", int32(ApiErrorMissingArgument), name)
	}
	*destSize = uint32(len(v))
	return m.record("get_named_arg_size", 0, name)
}

func (m *MockRuntime) getNamedArg(name string, dest []byte) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ret := m.code("get_named_arg"); ret != 0 {
		return m.record("get_named_arg", ret, name)
	}
	v, ok := m.NamedArgs[name]
	if !ok {
		return m.record("get_named_arg", int32(ApiErrorMissingArgument), name)
	}
	if len(dest) < len(v) {
		return m.record("get_named_arg", int32(ApiErrorBufferTooSmall), name)
	}
	copy(dest, v)
	return m.record("get_named_arg", 0, name)
}

func (m *MockRuntime) revert(status uint32) {
	m.mu.Lock()
	m.record("revert", 0, ApiError(status))
	m.mu.Unlock()
	panic(RevertError{Code: ApiError(status)})
}

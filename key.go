package caspergo

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// PublicKeyVariant identifies the signature scheme of a PublicKey.
type PublicKeyVariant uint8

const (
	PublicKeyEd25519   PublicKeyVariant = 0
	PublicKeySecp256k1 PublicKeyVariant = 1
)

func (v PublicKeyVariant) String() string {
	switch v {
	case PublicKeyEd25519:
		return "ed25519"
	case PublicKeySecp256k1:
		return "secp256k1"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(v))
	}
}

func (v PublicKeyVariant) keyLength() (int, bool) {
	switch v {
	case PublicKeyEd25519:
		return Ed25519PublicKeyLength, true
	case PublicKeySecp256k1:
		return Secp256k1PublicKeyLength, true
	default:
		return 0, false
	}
}

// PublicKey is an account's public key tagged with its variant.
type PublicKey struct {
	Variant PublicKeyVariant
	Key     []byte
}

// NewEd25519PublicKey wraps a 32-byte Ed25519 public key.
func NewEd25519PublicKey(key []byte) (PublicKey, error) {
	return newPublicKey(PublicKeyEd25519, key)
}

// NewSecp256k1PublicKey wraps a 33-byte compressed secp256k1 public key.
func NewSecp256k1PublicKey(key []byte) (PublicKey, error) {
	return newPublicKey(PublicKeySecp256k1, key)
}

func newPublicKey(variant PublicKeyVariant, key []byte) (PublicKey, error) {
	want, ok := variant.keyLength()
	if !ok {
		return PublicKey{}, fmt.Errorf("public key variant %d: %w", uint8(variant), ErrFormatting)
	}
	if len(key) != want {
		return PublicKey{}, fmt.Errorf("%s key of %d bytes, want %d: %w", variant, len(key), want, ErrInvalidLength)
	}
	k := make([]byte, len(key))
	copy(k, key)
	return PublicKey{Variant: variant, Key: k}, nil
}

// ToBytes serializes the key as its variant tag followed by the raw key.
func (pk PublicKey) ToBytes() []byte {
	return new(Encoder).U8(uint8(pk.Variant)).Raw(pk.Key).Bytes()
}

// AccountHash derives the account hash the host uses to index this key.
func (pk PublicKey) AccountHash() AccountHash {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(pk.Variant.String()))
	h.Write([]byte{0})
	h.Write(pk.Key)
	var out AccountHash
	h.Sum(out[:0])
	return out
}

func (pk PublicKey) String() string {
	return fmt.Sprintf("%02x%s", uint8(pk.Variant), hex.EncodeToString(pk.Key))
}

// PublicKey reads a serialized PublicKey from d.
func (d *Decoder) PublicKey() (PublicKey, error) {
	tag, err := d.U8()
	if err != nil {
		return PublicKey{}, err
	}
	variant := PublicKeyVariant(tag)
	n, ok := variant.keyLength()
	if !ok {
		return PublicKey{}, fmt.Errorf("public key variant %d: %w", tag, ErrFormatting)
	}
	b, err := d.Bytes(n)
	if err != nil {
		return PublicKey{}, err
	}
	return newPublicKey(variant, b)
}

// PublicKeyFromBytes decodes a complete serialized PublicKey.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	d := NewDecoder(b)
	pk, err := d.PublicKey()
	if err != nil {
		return PublicKey{}, err
	}
	return pk, d.Finish()
}

// AccountHash is the blake2b-256 digest identifying an account.
type AccountHash [AccountHashLength]byte

func (a AccountHash) String() string {
	return "account-hash-" + hex.EncodeToString(a[:])
}

// AccessRights is a bit set of the operations permitted through a URef.
type AccessRights uint8

const (
	AccessNone         AccessRights = 0
	AccessRead         AccessRights = 1
	AccessWrite        AccessRights = 2
	AccessAdd          AccessRights = 4
	AccessReadWrite    AccessRights = AccessRead | AccessWrite
	AccessReadAdd      AccessRights = AccessRead | AccessAdd
	AccessAddWrite     AccessRights = AccessAdd | AccessWrite
	AccessReadAddWrite AccessRights = AccessRead | AccessAdd | AccessWrite
)

// URef is an unforgeable reference to a value held by the host, such as a
// purse.
type URef struct {
	Addr [UrefAddrLength]byte
	// Rights is nil when the reference carries no access rights.
	Rights *AccessRights
}

// NewURef builds a URef with the given access rights.
func NewURef(addr [UrefAddrLength]byte, rights AccessRights) URef {
	return URef{Addr: addr, Rights: &rights}
}

func (u URef) has(r AccessRights) bool {
	return u.Rights != nil && *u.Rights&r == r
}

// Readable reports whether u grants read access.
func (u URef) Readable() bool {
	return u.has(AccessRead)
}

// Writeable reports whether u grants write access.
func (u URef) Writeable() bool {
	return u.has(AccessWrite)
}

// Addable reports whether u grants add access.
func (u URef) Addable() bool {
	return u.has(AccessAdd)
}

// ToBytes serializes the URef as its address followed by Option<AccessRights>.
func (u URef) ToBytes() []byte {
	e := new(Encoder).Raw(u.Addr[:])
	if u.Rights == nil {
		return e.U8(OptionTagNone).Bytes()
	}
	return e.U8(OptionTagSome).U8(uint8(*u.Rights)).Bytes()
}

func (u URef) String() string {
	var rights AccessRights
	if u.Rights != nil {
		rights = *u.Rights
	}
	return fmt.Sprintf("uref-%s-%03o", hex.EncodeToString(u.Addr[:]), uint8(rights))
}

// URef reads a serialized URef from d.
func (d *Decoder) URef() (URef, error) {
	var u URef
	addr, err := d.Bytes(UrefAddrLength)
	if err != nil {
		return URef{}, err
	}
	copy(u.Addr[:], addr)
	some, err := d.OptionTag()
	if err != nil {
		return URef{}, err
	}
	if some {
		r, err := d.U8()
		if err != nil {
			return URef{}, err
		}
		rights := AccessRights(r)
		if rights > AccessReadAddWrite {
			return URef{}, fmt.Errorf("access rights %#x: %w", r, ErrFormatting)
		}
		u.Rights = &rights
	}
	return u, nil
}

// URefFromBytes decodes a URef from the front of b. Trailing bytes are
// ignored, since the host writes into a fixed-size buffer that is longer
// than a URef without access rights.
func URefFromBytes(b []byte) (URef, error) {
	return NewDecoder(b).URef()
}

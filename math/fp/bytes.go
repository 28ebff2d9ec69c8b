package fp

import (
	"github.com/mratsim/constantine-sub017/internal/ct"
	"github.com/mratsim/constantine-sub017/internal/limb"
)

// ToBytesBE serializes e to a fixed-length big-endian byte slice of
// c.ByteLen bytes, in canonical (non-Montgomery) form.
func (e Element) ToBytesBE() []byte {
	raw := FromMont(e)
	out := make([]byte, e.c.ByteLen)
	if e.c.NumLimbs == 4 && e.c.ByteLen == 32 {
		var buf [32]byte
		limb.ToBytes32BE(&buf, raw)
		copy(out, buf[:])
		return out
	}
	ct.ToBytesBE(out, raw)
	return out
}

// ToBytesLE serializes e to a fixed-length little-endian byte slice.
func (e Element) ToBytesLE() []byte {
	raw := FromMont(e)
	out := make([]byte, e.c.ByteLen)
	ct.ToBytesLE(out, raw)
	return out
}

// FromBytesBE parses a canonical big-endian encoding into an Element. The
// second return value is True iff the encoded value was >= the modulus
// (out of range); in that case the returned Element is the zero element,
// matching spec section 6/7's "reject non-canonical encodings without
// branching on the comparison result" requirement: the comparison itself
// is constant-time (it uses the borrow of limb.Sub, a fixed-length pass
// that never early-exits), only the
// caller's use of the returned flag may branch.
func FromBytesBE(c *Constants, data []byte) (Element, ct.Bool) {
	raw := limb.New(c.NumLimbs)
	if c.NumLimbs == 4 && c.ByteLen == 32 && len(data) == 32 {
		var buf [32]byte
		copy(buf[:], data)
		limb.FromBytes32BE(raw, &buf)
	} else {
		ct.FromBytesBE(raw, data)
	}
	return fromRawChecked(c, raw)
}

// FromBytesLE parses a canonical little-endian encoding into an Element.
func FromBytesLE(c *Constants, data []byte) (Element, ct.Bool) {
	raw := limb.New(c.NumLimbs)
	ct.FromBytesLE(raw, data)
	return fromRawChecked(c, raw)
}

func fromRawChecked(c *Constants, raw limb.Limbs) (Element, ct.Bool) {
	tmp := limb.New(c.NumLimbs)
	borrow := limb.Sub(tmp, raw, c.Modulus)
	outOfRange := ct.Not(ct.IsNonZero(borrow))

	e := ToMont(c, raw)
	e = Select(outOfRange, Zero(c), e)
	return e, outOfRange
}

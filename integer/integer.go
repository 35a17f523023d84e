// Package integer provides the signed integer block used to serialize
// decimal coefficients and exponents.
//
// A block holds the big-endian magnitude of the integer and its sign. On the
// wire the magnitude is shifted left by one and the sign is stored in the
// freed low bit (aka zigzag), so small values of either sign stay small.
package integer

import (
	"math/big"
)

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromInt64 returns the block for v.
func FromInt64(v int64) *Block {
	i := big.NewInt(v)

	return fromBig(i)
}

// FromDigits returns the block holding the unsigned integer whose base radix
// digits, most significant first, are digits.
func FromDigits(digits []uint32, radix uint32, negative bool) *Block {
	if radix < 2 {
		panic("integer: invalid radix")
	}

	i := new(big.Int)
	r := new(big.Int).SetUint64(uint64(radix))
	d := new(big.Int)

	for _, digit := range digits {
		i.Mul(i, r)
		i.Add(i, d.SetUint64(uint64(digit)))
	}

	b := fromBig(i)
	b.Negative = negative

	return b
}

func fromBig(i *big.Int) *Block {
	b := &Block{
		Negative: i.Sign() < 0,
		Value:    new(big.Int).Abs(i).Bytes(),
	}

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(b.Value) == 0 {
		b.Value = []byte{0}
	}

	return b
}

func (b Block) big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// Int64 returns the block as an int64. ErrRange is returned if it does not
// fit.
func (b Block) Int64() (v int64, err error) {
	i := b.big()
	if !i.IsInt64() {
		return 0, ErrRange
	}

	return i.Int64(), nil
}

// Digits returns the base radix digits of the magnitude, most significant
// first. Zero is a single zero digit.
func (b Block) Digits(radix uint32) []uint32 {
	if radix < 2 {
		panic("integer: invalid radix")
	}

	i := new(big.Int).SetBytes(b.Value)
	if i.Sign() == 0 {
		return []uint32{0}
	}

	r := new(big.Int).SetUint64(uint64(radix))
	m := new(big.Int)

	var digits []uint32
	for i.Sign() != 0 {
		i.QuoRem(i, r, m)
		digits = append(digits, uint32(m.Uint64()))
	}

	for l, h := 0, len(digits)-1; l < h; l, h = l+1, h-1 {
		digits[l], digits[h] = digits[h], digits[l]
	}

	return digits
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return ErrEmpty
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}

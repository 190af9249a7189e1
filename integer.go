package calculator

import (
	"math/big"
	"sync"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// width returns the size of N in bits.
func width[N constraints.Integer]() int {
	var z N
	return int(unsafe.Sizeof(z)) * 8
}

// signed returns true if N is a signed integer type.
func signed[N constraints.Integer]() bool {
	var z N
	return ^z < 0
}

// limits returns the minimum and maximum values of N.
func limits[N constraints.Integer]() (lo, hi N) {
	var z N
	if !signed[N]() {
		return 0, ^z
	}
	hi = N(uint64(1)<<(width[N]()-1) - 1)
	return -hi - 1, hi
}

// sub calculates x - y in a strictly wider signed integer and checks
// that the difference is representable by N.
//
// The difference is computed in int64 for integers narrower than 64 bits,
// and with big.Int arithmetic otherwise.
func sub[N constraints.Integer](x, y N) (z N, ok bool) {
	if width[N]() < 64 {
		return subFast(x, y)
	}
	return subSlow(x, y)
}

func subFast[N constraints.Integer](x, y N) (N, bool) {
	lo, hi := limits[N]()
	z := int64(x) - int64(y)
	if z < int64(lo) || z > int64(hi) {
		return 0, false
	}
	return N(z), true
}

func subSlow[N constraints.Integer](x, y N) (N, bool) {
	var (
		bx, by *bint
		lo, hi N
	)

	bx = getBint()
	by = getBint()
	defer putBint(bx)
	defer putBint(by)

	// Difference
	setInt(bx, x)
	setInt(by, y)
	bx.sub(bx, by)

	// Range
	lo, hi = limits[N]()
	if setInt(by, lo); bx.cmp(by) < 0 {
		return 0, false
	}
	if setInt(by, hi); bx.cmp(by) > 0 {
		return 0, false
	}

	if signed[N]() {
		return N(bx.int64()), true
	}
	return N(bx.uint64()), true
}

// pow calculates x^e by repeated squaring.
// The result wraps around on overflow, exactly like repeated
// multiplication of N values does.
func pow[N constraints.Integer](x N, e uint64) N {
	z := N(1)
	for e > 0 {
		if e&1 == 1 {
			z *= x
		}
		e >>= 1
		if e > 0 {
			x *= x
		}
	}
	return z
}

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

// setInt sets z to the value of the integer x.
func setInt[N constraints.Integer](z *bint, x N) {
	if signed[N]() {
		(*big.Int)(z).SetInt64(int64(x))
		return
	}
	(*big.Int)(z).SetUint64(uint64(x))
}

func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) int64() int64 {
	return (*big.Int)(z).Int64()
}

func (z *bint) uint64() uint64 {
	return (*big.Int)(z).Uint64()
}

// bpool is a cache of reusable *bint instances.
var bpool = sync.Pool{
	New: func() any {
		return new(bint)
	},
}

// getBint obtains a *bint from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *bint into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}

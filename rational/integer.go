package rational

import (
	"math"
	"math/big"
	"sync"
)

// add64 calculates x + y and checks overflow.
func add64(x, y int64) (z int64, ok bool) {
	z = x + y
	if (y > 0 && z < x) || (y < 0 && z > x) {
		return 0, false
	}
	return z, true
}

// mul64 calculates x * y and checks overflow.
func mul64(x, y int64) (z int64, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// abs returns the magnitude of x.
// The magnitude of [math.MinInt64] is represented exactly.
func abs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// gcd returns the greatest common divisor of x and y.
func gcd(x, y uint64) uint64 {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// bintPool is a cache of big.Int values used as wide intermediates.
var bintPool = sync.Pool{
	New: func() any {
		return new(big.Int)
	},
}

func getBint() *big.Int {
	return bintPool.Get().(*big.Int)
}

func putBint(b *big.Int) {
	bintPool.Put(b)
}

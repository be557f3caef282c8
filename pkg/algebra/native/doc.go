// Package native provides algebraic instances for Go's built-in types.
//
// Instances are zero-size values, so they can be used as type arguments and struct literals alike:
//
//	ring := native.IntegerRing[int, algebra.Root]()
//	ring.Add(2, 3) // 5
//	ring.Mul(2, 3) // 6
//
// Integer arithmetic wraps on overflow, which keeps the ring laws intact (arithmetic modulo 2^n).
// Float instances are only approximately lawful, and NaN is not supported.
// For an exact field, use RatField.
package native

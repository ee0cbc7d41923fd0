// Package conv provides safe numeric type conversion utilities.
//
// These functions perform bounds checking to prevent overflow/underflow when
// converting between float/integer and different bit-width integer types.
//
// Use cases:
//   - Total coercing accessors on dynamic values (mismatches default to zero)
//   - Validating untrusted sizes from blob headers
//
// For conversions that are provably safe by domain constraints, use direct
// type casts instead to avoid overhead.
package conv

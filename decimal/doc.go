// Package decimal provides fixed capacity fixed point numbers of any radix
// from 2 to 36, extended with infinities and NaN.
//
// The equation for a finite number is:
//
//  number = ±digits * radix ^ exp
//
// Where digits is the unsigned integer spelled by the stored digits and exp
// is the place value of the least significant one. For example:
//
//  1.234 = [1 2 3 4] * 10^-3
//  100   = [1] * 10^2
//
// Context
//
// The radix and the precision of a value are set by its Context. Precision
// caps the number of places a value spans from its highest integer place
// down to its lowest fractional place, the units place always counted:
//
//  | Value    | Places | Fits Precision 5 |
//  |----------|--------|------------------|
//  | 1234     | 4      | yes              |
//  | 0.001    | 4      | yes              |
//  | 12.34    | 4      | yes              |
//  | 123.45   | 5      | no               |
//  | 100000   | 6      | no               |
//  |----------|--------|------------------|
//
// A value must leave one place free for the carry of the next operation, so
// it may hold at most Precision - 1 places. Results that would not fit are
// reported with an OverflowError by Finite and become an infinity in Number.
// Division truncates its quotient to the places available instead.
//
// Number
//
// Number wraps Finite with the sentinels +Inf, -Inf and NaN and gives them
// IEEE-754 like propagation rules:
//
//  | Operation        | Result              |
//  |------------------|---------------------|
//  | NaN op x         | NaN                 |
//  | +Inf + -Inf      | NaN                 |
//  | Inf / Inf        | NaN                 |
//  | 0 / 0            | NaN                 |
//  | x / 0            | ±Inf                |
//  | x / ±Inf         | 0                   |
//  | overflow         | ±Inf                |
//  |------------------|---------------------|
//
// NaN is unordered: comparing anything with NaN reports no result. Zero has
// no sign, -0 parses to the same value as 0.
//
// Encoding
//
// Numbers encode to a form byte followed, for finite values, by the context,
// the exponent and the coefficient. Exponent and coefficient are integer
// blocks: big-endian with a trailing sign bit (aka zigzag). The coefficient
// is the unsigned integer spelled by the digits in the radix of the context.
//
//  | Byte    | Field                                     |
//  |---------|-------------------------------------------|
//  | 0       | Form: 0 NaN, 1 Finite, 2 +Inf, 3 -Inf     |
//  | 1       | Radix                                     |
//  | 2       | Precision                                 |
//  | 3       | Exponent size (n)                         |
//  | 4..4+n  | Exponent                                  |
//  | 4+n..   | Coefficient with the sign of the number   |
//  |---------|-------------------------------------------|
//
// Sentinels are a single form byte.
//
// Examples
//
// 0.0001 in Base10 (6 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 | Finite
//  | 0 . 0 . 0 . 0 . 1 . 0 . 1 . 0 | Radix 10
//  | 0 . 0 . 0 . 1 . 0 . 1 . 0 . 0 | Precision 20
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 | Exponent size 1
//  | 0 . 0 . 0 . 0 . 1 . 0 . 0 | 1 | Exponent -4
//  | 0 . 0 . 0 . 0 . 0 . 0 . 1 | 0 | Coefficient +1
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// -20.47 in Base10 (7 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 | Finite
//  | 0 . 0 . 0 . 0 . 1 . 0 . 1 . 0 | Radix 10
//  | 0 . 0 . 0 . 1 . 0 . 1 . 0 . 0 | Precision 20
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 | Exponent size 1
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 | 1 | Exponent -2
//  | 0 . 0 . 0 . 0 . 1 . 1 . 1 . 1 | Coefficient -2047
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 | 1 |
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
package decimal

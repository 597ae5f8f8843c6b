// Package calculator holds the closed-form Islamic finance formulas.
//
// Every function is pure: it takes an already validated request, performs no
// I/O and returns an unrounded result. Rounding happens once, at the response
// boundary, through the Rounded methods of the domain results.
package calculator

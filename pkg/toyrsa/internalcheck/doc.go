// Package internalcheck holds static policy tests over the engine's library
// packages. The tests load pkg/toyrsa/... with golang.org/x/tools/go/packages
// and walk the typed syntax trees.
//
// Policies:
//   - randomness flows through an injected entropy.Source, never through the
//     package-level math/rand functions
//   - modular exponentiation goes through numtheory.ModPow (or saferith in the
//     CRT path), never through big.Int.Exp
//   - no %x formatting of values in library code
//
// It is not intended for external use.
package internalcheck

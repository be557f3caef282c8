// Package algebra provides algebraic capability signatures.
//
// A signature such as Semigroup or Monoid describes a shape that a carried type T can have.
// The same T may have the same shape more than once: integers are a monoid under addition
// and under multiplication. To keep such instances apart, every signature takes a mark type
// parameter, and every instance declares its mark through the return type of its Mark method.
//
//	var add algebra.Semigroup[int, algebra.Additive[algebra.Root]]
//	var mul algebra.Semigroup[int, algebra.Multiplicative[algebra.Root]]
//
// The two variables above can never hold the same instance value,
// the compiler rejects it because their Mark methods differ.
//
// Shapes that need the same primitive operation more than once (Lattice, Ring, Field, Order)
// are bundles of independently satisfied instances, where each part carries a re-tagged mark.
//
// # Laws
//
// Signatures do not check the algebraic laws (associativity, identity, inverse...).
// Law abidance is the responsibility of the instance author,
// and it can be verified with the algebracontract package or the laws package.
package algebra

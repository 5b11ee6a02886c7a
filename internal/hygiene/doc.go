// Package hygiene provides programmatic verification of architectural invariants.
//
// This package contains tests that enforce layering constraints across the
// module. These tests serve as the authoritative gate for dependency hygiene;
// shell snippets in documentation are for convenience only.
//
// # Tiered Import Rules
//
// The module has a tiered architecture where lower-tier packages must not
// import upper-tier packages:
//
//   - foundation (nodeid, location, perrors): stdlib + golang.org/x/text only
//   - core (ast, token, source): foundation only
//   - heart-of-the-system (parsegraph, typename): foundation + core only
//
// Ambient packages (internal/trace, config, session, parsegraph/pqjson) sit
// above everything and are exempt from these downward constraints, since
// wiring the rest of the module together is their job. internal/trace is
// singled out separately: its own dependencies must stay stdlib-only so it
// remains importable from any tier without dragging in the rest of the
// module.
//
// # Test Coverage
//
// [TestTierImports] verifies these constraints using `go list -deps -test`,
// which includes both production and test dependencies. This catches cases
// where test files violate layering even if production code is clean.
//
// Packages that don't exist yet are skipped. Once a package is created, it
// will automatically be tested.
package hygiene

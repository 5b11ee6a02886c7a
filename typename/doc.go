// Package typename renders structured M type descriptors back to their
// canonical surface-syntax form.
//
// Render is total and pure: every Descriptor variant this package defines
// has exactly one canonical rendering, constructed by pure string assembly
// with no I/O and no dependency on a parse session. The sealed Descriptor
// interface (closed via an unexported marker method, the same discipline
// the surrounding toolchain uses for its own expression ASTs) keeps the set
// of renderable shapes fixed to what descriptor.go enumerates.
package typename

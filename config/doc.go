// Package config loads optional driver-facing knobs for a parsing session
// from a human-editable, comment-bearing JSON file.
//
// Config never influences the parse-graph core's semantics: parsegraph and
// typename accept every option they need as explicit arguments. Config
// exists purely so a driver (an editor extension, a CLI, a test harness)
// can keep its own trace verbosity and rendering preferences in one place
// instead of wiring flags through every call site.
package config

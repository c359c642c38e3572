// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
//
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Fill/Apply.
	DefaultValidateNaNInf = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithNoValidateNaNInf disables finite-value validation. Use for buffers that
// legitimately carry ±Inf, e.g. solver bounds shown verbatim.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

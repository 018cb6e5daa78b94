// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the Gauss-Jordan kernels and
// the numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The canonical-form check defaults to EXACT equality (tolerance 0), which
//     mirrors the classic textbook routine. Floating-point drift may keep a
//     mathematically reduced matrix from matching exactly; the final diagonal
//     pass usually repairs the diagonal, and WithTolerance relaxes the check.
//   - Singular systems fail with ErrSingular by default. SingularPropagate
//     keeps dividing by the zero pivot and returns the resulting ±Inf/NaN.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the canonical-form tolerance; 0 means exact equality.
	DefaultTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on input and Set.
	DefaultValidateNaNInf = true

	// DefaultSingularPolicy selects how a missing pivot is reported.
	DefaultSingularPolicy = SingularError

	// DefaultRequireCanonical makes ExtractSolutions verify its precondition.
	DefaultRequireCanonical = false
)

// SingularPolicy selects the behavior when a pivot column has no nonzero entry
// on or below the diagonal.
type SingularPolicy int

const (
	// SingularError aborts with ErrSingular (the matrix is left untouched).
	SingularError SingularPolicy = iota
	// SingularPropagate divides by the zero pivot anyway; the result carries ±Inf/NaN.
	// The input is still checked for NaN/Inf; only the returned matrix accepts them.
	SingularPropagate
)

// String implements fmt.Stringer.
func (p SingularPolicy) String() string {
	switch p {
	case SingularError:
		return "error"
	case SingularPropagate:
		return "propagate"
	default:
		return "unknown"
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, non-negative"
	panicPolicyInvalid    = "matrix: WithSingularPolicy: unknown policy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	tol              float64        // >= 0; DefaultTolerance
	validateNaNInf   bool           // DefaultValidateNaNInf; input check
	outputFinite     bool           // derived: policy of the returned matrix
	singular         SingularPolicy // DefaultSingularPolicy
	requireCanonical bool           // DefaultRequireCanonical
	trace            func(Step, Matrix)
}

// ---------- Constructors (WithX) ----------

// WithTolerance sets the tolerance used by the canonical-form check inside Reduce
// and by ExtractSolutions under WithRequireCanonical.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// AI-Hints:
//   - 1e-12 is a practical choice for well-conditioned double-precision systems.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithValidateNaNInf enables strict finite-value validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation of the input and of the
// returned matrix (use with care).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSingularPolicy selects the behavior for a missing pivot.
// Panics on an unknown policy value.
func WithSingularPolicy(p SingularPolicy) Option {
	if p != SingularError && p != SingularPropagate {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.singular = p }
}

// WithRequireCanonical makes ExtractSolutions return ErrNotReduced when its
// input is not in row canonical form (within the configured tolerance).
func WithRequireCanonical() Option {
	return func(o *Options) { o.requireCanonical = true }
}

// WithTrace registers a hook called after every elementary row operation.
// The Matrix passed to fn is the live working copy; fn must not retain or
// mutate it. A nil fn disables tracing.
func WithTrace(fn func(Step, Matrix)) Option {
	return func(o *Options) { o.trace = fn }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Pure; last-writer-wins. Time O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		tol:              DefaultTolerance,
		validateNaNInf:   DefaultValidateNaNInf,
		singular:         DefaultSingularPolicy,
		requireCanonical: DefaultRequireCanonical,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived invariants.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}
	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
//   - SingularPropagate produces ±Inf/NaN by contract, so the output policy
//     cannot reject them. The input check is left as configured.
func finalizeOptions(o *Options) {
	o.outputFinite = o.validateNaNInf && o.singular != SingularPropagate
}

// emit forwards a step to the trace hook when one is registered.
func (o *Options) emit(s Step, m Matrix) {
	if o.trace != nil {
		o.trace(s, m)
	}
}

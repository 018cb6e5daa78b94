// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED helpers and an internal options snapshot to matrix_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options changes,
//     update snapshotOf(...) accordingly (tests will catch drift).

var (
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
	ExportedNewDenseWithPolicy = newDenseWithPolicy
	// ExportedSwapRows exposes the unchecked row swap used by the pivot step.
	ExportedSwapRows = (*Dense).swapRows
	// ExportedScaleAddRow exposes the elimination primitive.
	ExportedScaleAddRow = (*Dense).scaleAddRow

	// EwAllClose_TestOnly exposes the element-wise closeness kernel.
	EwAllClose_TestOnly = ewAllClose
	// EwReplaceInfNaN_TestOnly exposes the sanitizing kernel.
	EwReplaceInfNaN_TestOnly = ewReplaceInfNaN
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicToleranceInvalid_TestOnly = panicToleranceInvalid
	PanicPolicyInvalid_TestOnly    = panicPolicyInvalid
)

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Tol              float64
	ValidateNaNInf   bool
	OutputFinite     bool
	Singular         SingularPolicy
	RequireCanonical bool
	HasTrace         bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Tol:              o.tol,
		ValidateNaNInf:   o.validateNaNInf,
		OutputFinite:     o.outputFinite,
		Singular:         o.singular,
		RequireCanonical: o.requireCanonical,
		HasTrace:         o.trace != nil,
	}
}

// NewMatrixOptionsSnapshot_TestOnly returns the snapshot of the documented defaults.
func NewMatrixOptionsSnapshot_TestOnly() OptionsSnapshot {
	return snapshotOf(NewMatrixOptions())
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns the snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// DensePolicy_TestOnly reports the numeric policy flag carried by d.
func DensePolicy_TestOnly(d *Dense) bool { return d.validateNaNInf }

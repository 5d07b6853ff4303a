// Package domain defines the solver-run entity and its repository port.
// A Run records one solved puzzle instance: the inputs, both extremal
// pairings, and whether the greedy results were checked against the
// brute-force oracle.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run is a persisted record of one extremal-product computation.
type Run struct {
	id         int64
	guid       string
	digitCount int
	a          string
	b          string
	maxC       string
	maxD       string
	maxProduct string
	minC       string
	minD       string
	minProduct string
	verified   *bool
	createdAt  time.Time
}

// RunInputs carries the decimal-string snapshot of a solved puzzle.
type RunInputs struct {
	DigitCount int
	A          string
	B          string
	MaxC       string
	MaxD       string
	MaxProduct string
	MinC       string
	MinD       string
	MinProduct string
}

// NewRun creates a new unsaved Run (id 0) with a fresh GUID. verified is
// nil when the run was not checked against the brute-force oracle.
func NewRun(in RunInputs, verified *bool, now time.Time) *Run {
	return &Run{
		guid:       uuid.NewString(),
		digitCount: in.DigitCount,
		a:          in.A,
		b:          in.B,
		maxC:       in.MaxC,
		maxD:       in.MaxD,
		maxProduct: in.MaxProduct,
		minC:       in.MinC,
		minD:       in.MinD,
		minProduct: in.MinProduct,
		verified:   verified,
		createdAt:  now,
	}
}

// ReconstituteRun rebuilds a Run from persisted state. Used by repository
// implementations only.
func ReconstituteRun(id int64, guid string, in RunInputs, verified *bool, createdAt time.Time) *Run {
	r := NewRun(in, verified, createdAt)
	r.id = id
	r.guid = guid
	return r
}

// ID returns the repository-assigned identifier, 0 for unsaved runs.
func (r *Run) ID() int64 { return r.id }

// SetID assigns the repository identifier after an insert.
func (r *Run) SetID(id int64) { r.id = id }

// GUID returns the stable external identifier.
func (r *Run) GUID() string { return r.guid }

// DigitCount returns the digit count of the inputs.
func (r *Run) DigitCount() int { return r.digitCount }

// A returns the decimal string of the first input.
func (r *Run) A() string { return r.a }

// B returns the decimal string of the second input.
func (r *Run) B() string { return r.b }

// MaxC returns C of the maximizing pairing.
func (r *Run) MaxC() string { return r.maxC }

// MaxD returns D of the maximizing pairing.
func (r *Run) MaxD() string { return r.maxD }

// MaxProduct returns the maximal product.
func (r *Run) MaxProduct() string { return r.maxProduct }

// MinC returns C of the minimizing pairing.
func (r *Run) MinC() string { return r.minC }

// MinD returns D of the minimizing pairing.
func (r *Run) MinD() string { return r.minD }

// MinProduct returns the minimal product.
func (r *Run) MinProduct() string { return r.minProduct }

// Verified reports the brute-force check outcome: nil if the run was not
// verified, otherwise whether both greedy products matched the oracle.
func (r *Run) Verified() *bool { return r.verified }

// CreatedAt returns when the run was recorded.
func (r *Run) CreatedAt() time.Time { return r.createdAt }

// RunRepository is the persistence port for solver runs.
type RunRepository interface {
	// Save inserts new runs (ID == 0, assigning the ID) and updates
	// existing ones.
	Save(run *Run) error
	// FindByGUID returns the run with the given GUID, or a
	// RunNotFoundError.
	FindByGUID(guid string) (*Run, error)
	// ListRecent returns up to limit runs, newest first.
	ListRecent(limit int) ([]*Run, error)
}

package ecc

import "phantom.dev/mp"

// Status is the failure-mode enum every scalar-multiplication and point
// operation reports through (spec §7): callers branch on this instead of a
// bare error string, since several of these states (PointAtInfinity,
// SecretIsZero) are routine outcomes rather than bugs.
type Status int

const (
	PointOK Status = iota
	PointError
	PointAtInfinity
	SecretIsZero
	RecodingError
	ScalarMulError
)

func (s Status) String() string {
	switch s {
	case PointOK:
		return "ok"
	case PointError:
		return "point error"
	case PointAtInfinity:
		return "point at infinity"
	case SecretIsZero:
		return "secret is zero"
	case RecodingError:
		return "recoding error"
	case ScalarMulError:
		return "scalar mul error"
	default:
		return "unknown"
	}
}

// Point is the common method set every coordinate-system point type
// implements (spec §4.4's point-type method table): one value-receiver
// method set per struct, each method taking a borrowed, non-owning *Config
// rather than the point holding a shared reference to one (spec §9).
//
// Not every method is meaningful for every coordinate system: LadderStep
// only makes sense for the Montgomery x-only ladder, YRecovery only for
// systems that carry x alone. Point types for which a method does not
// apply return PointError rather than omitting the method, so Engine can
// treat every Point identically and let the curve's own formulas decide
// what is supported.
type Point interface {
	// Doubling sets the receiver to 2*receiver.
	Doubling(cfg *Config) Status
	// Addition sets the receiver to receiver+other.
	Addition(cfg *Config, other Point) Status
	// Negate sets the receiver to -receiver.
	Negate(cfg *Config) Status
	// LadderStep performs one Montgomery-ladder step combining the
	// receiver, other, and the fixed base-point difference base.
	LadderStep(cfg *Config, other Point, base Point) Status
	// YRecovery reconstructs a full point from an x-coordinate and the
	// desired oddness of y, writing the result into the receiver.
	YRecovery(cfg *Config, x []mp.Word, yOdd bool) Status
	// ConvertFrom sets the receiver from another point's coordinate
	// system (e.g. affine -> Jacobian).
	ConvertFrom(cfg *Config, other Point) Status
	// ConvertToMixed returns a copy of the receiver in the mixed-addition
	// coordinate system the curve's Addition expects for its second
	// operand (typically affine).
	ConvertToMixed(cfg *Config) Point
	// Copy returns an independent copy of the receiver.
	Copy() Point
	// IsInfinity reports whether the receiver is the neutral element.
	IsInfinity() bool
	// SetInfinity sets the receiver to the neutral element.
	SetInfinity()
}

func notSupported() Status { return PointError }

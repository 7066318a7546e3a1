package transform

// Transform is a 2D plane transform, encoded in 3 bits: one bit each for
// the presence of a horizontal flip, a vertical flip, and a transposition
// about the main diagonal. The flips are regarded as applied first (they
// commute with each other) and the transposition last.
//
// Every 3-bit pattern is a valid Transform, so the type is closed under
// the native bitwise operators (&, |, ^ and their assignment forms).
// Values above 7 have no meaning; operations that index the lookup tables
// only consider the low 3 bits.
type Transform uint8

const (
	// Identity leaves the image unchanged.
	Identity Transform = 0
	// HFlip is a horizontal flip (mirror about the vertical axis).
	HFlip Transform = 1 << 0
	// VFlip is a vertical flip (mirror about the horizontal axis).
	VFlip Transform = 1 << 1
	// HVFlip combines both flips; identical to a 180 degree rotation.
	HVFlip Transform = HFlip | VFlip
	// Transpose is a reflection about the main diagonal.
	Transpose Transform = 1 << 2
	// Rot270 is a rotation by 270 degrees clockwise.
	Rot270 Transform = Transpose | HFlip
	// Rot90 is a rotation by 90 degrees clockwise.
	Rot90 Transform = Transpose | VFlip
	// Rot180Transpose is a 180 degree rotation followed by a transpose;
	// equivalently, a reflection about the opposite diagonal.
	Rot180Transpose Transform = Transpose | HVFlip

	// Rot0 is a synonym for Identity (zero degree rotation).
	Rot0 = Identity
	// Rot180 is a synonym for HVFlip (180 degree rotation).
	Rot180 = HVFlip
)

// All are self-inverses, except for Rot270 and Rot90.
var inverses = [8]Transform{
	Identity,
	HFlip,
	VFlip,
	HVFlip,
	Transpose,
	Rot90,
	Rot270,
	Rot180Transpose,
}

// Indexed by bit pattern, not by rotation angle: slot 5 is Rot270
// (transpose|hflip) and slot 6 is Rot90 (transpose|vflip).
var names = [8]string{
	"identity",
	"hflip",
	"vflip",
	"hvflip",
	"transpose",
	"rot270",
	"rot90",
	"rot180transpose",
}

// IsIdentity reports whether t is the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Identity
}

// HasHFlip reports whether t includes a horizontal flip.
func (t Transform) HasHFlip() bool {
	return t&HFlip != 0
}

// HasVFlip reports whether t includes a vertical flip.
func (t Transform) HasVFlip() bool {
	return t&VFlip != 0
}

// HasTranspose reports whether t includes a transposition.
func (t Transform) HasTranspose() bool {
	return t&Transpose != 0
}

// Compose combines two transforms following the usual mathematical
// convention: in t1.Compose(t0), t0 is applied first and t1 second.
// For example Transpose.Compose(HFlip) performs the HFlip first and then
// the Transpose, yielding Rot270:
//
//	A-B              B-A                  B-D
//	| |   -> HFlip   | |   -> Transpose   | |   = Rot270
//	C-D              D-C                  A-C
//
// Composition is generally non-commutative, and not the same as XOR-ing
// the underlying bit patterns.
func (t1 Transform) Compose(t0 Transform) Transform {
	// Reorder the operations so that t0's transpose (if any) is imagined
	// happening after t1's flips. That swaps t1's hflip for a vflip and
	// vice versa, after which all the bits can simply be XOR-ed.
	reordered := t1
	if t0.HasTranspose() {
		reordered = t1 & Transpose
		if t1.HasHFlip() {
			reordered |= VFlip
		}
		if t1.HasVFlip() {
			reordered |= HFlip
		}
	}

	return reordered ^ t0
}

// Inverse returns the transform that undoes t, so that both
// t.Compose(t.Inverse()) and t.Inverse().Compose(t) yield Identity.
func (t Transform) Inverse() Transform {
	return inverses[t&7]
}

// Complement returns t with each of its 3 bits inverted individually.
// This is a bitwise operation on the encoding; it is not the group
// inverse of t, for which use Inverse.
func (t Transform) Complement() Transform {
	return ^t & 7
}

// FromRotation returns the transform representing a rotation of the given
// angle in degrees, clockwise. Negative values represent anticlockwise
// rotations, and any multiple of 360 may be added or subtracted. If the
// normalized angle is not a multiple of 90 degrees it cannot be
// represented and FromRotation returns (Identity, false).
func FromRotation(angle int) (Transform, bool) {
	angle %= 360
	if angle < 0 {
		angle += 360
	}

	switch angle {
	case 0:
		return Identity, true
	case 90:
		return Rot90, true
	case 180:
		return Rot180, true
	case 270:
		return Rot270, true
	}

	return Identity, false
}

// String returns the canonical lowercase name of the transform.
func (t Transform) String() string {
	return names[t&7]
}

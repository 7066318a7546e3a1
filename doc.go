// Package transform represents and manipulates 2D plane transforms.
//
// A Transform describes one of the 8 symmetries of a rectangle: the
// combinations of a horizontal flip, a vertical flip, and a transposition
// about the main diagonal. Together with composition these form the
// dihedral group of order 8 (the symmetry group of a square). The package
// implements the symbolic algebra only; it never touches pixel data.
//
// The package supports:
//   - A closed 3-bit encoding of all 8 transforms
//   - Group composition (right operand applied first) and inversion
//   - Construction from a clockwise rotation angle
//   - Canonical lowercase names for logging
//
// Basic usage:
//
//	t, ok := transform.FromRotation(90)
//	if ok {
//		fmt.Println(t) // "rot90"
//	}
//	u := t.Compose(transform.HFlip) // HFlip first, then t
//
// Each transform's nominal effect on a rectangle with vertices labelled
// A, B, C and D:
//
//	Identity (0)             HFlip (1)                VFlip (2)
//	  A-B        A-B           A-B        B-A           A-B        C-D
//	  | |   ->   | |           | |   ->   | |           | |   ->   | |
//	  C-D        C-D           C-D        D-C           C-D        A-B
//
//	HVFlip (3)               Transpose (4)            Rot270 (5)
//	  A-B        D-C           A-B        A-C           A-B        B-D
//	  | |   ->   | |           | |   ->   | |           | |   ->   | |
//	  C-D        B-A           C-D        B-D           C-D        A-C
//
//	Rot90 (6)                Rot180Transpose (7)
//	  A-B        C-A           A-B        D-B
//	  | |   ->   | |           | |   ->   | |
//	  C-D        D-B           C-D        C-A
//
// Rotations are clockwise. HVFlip is the same as a 180 degree rotation
// (synonym Rot180), and Identity the same as a zero degree one (Rot0).
// Rot180Transpose is the transposition about the opposite diagonal.
//
// See https://en.wikipedia.org/wiki/Examples_of_groups#dihedral_group_of_order_8
package transform

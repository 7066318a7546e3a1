package transform

import "testing"

// FuzzFromRotation checks the rotation constructor's contract for
// arbitrary angles: the result depends only on the angle modulo 360, the
// success flag is set exactly for multiples of 90, and failure always
// reports the identity transform.
func FuzzFromRotation(f *testing.F) {
	for _, seed := range []int{0, 90, 180, 270, -90, 360, 450, 45, -1, 359} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, angle int) {
		got, ok := FromRotation(angle)

		norm := angle % 360
		if norm < 0 {
			norm += 360
		}
		wantOK := norm%90 == 0
		if ok != wantOK {
			t.Fatalf("FromRotation(%d): ok = %v, want %v (normalized %d)", angle, ok, wantOK, norm)
		}
		if !ok && got != Identity {
			t.Fatalf("FromRotation(%d) failed but returned %v, want identity", angle, got)
		}
		if got > 7 {
			t.Fatalf("FromRotation(%d) = %d, outside the 3-bit domain", angle, int(got))
		}
		if again, okAgain := FromRotation(norm); again != got || okAgain != ok {
			t.Fatalf("FromRotation(%d) = (%v, %v) but FromRotation(%d) = (%v, %v)",
				angle, got, ok, norm, again, okAgain)
		}
	})
}

// FuzzCompose checks closure and the group laws for arbitrary operand
// bytes (masked into the 3-bit domain).
func FuzzCompose(f *testing.F) {
	f.Add(uint8(4), uint8(1), uint8(6))
	f.Add(uint8(0), uint8(0), uint8(0))
	f.Add(uint8(7), uint8(5), uint8(3))
	f.Fuzz(func(t *testing.T, ab, bb, cb uint8) {
		a := Transform(ab) & 7
		b := Transform(bb) & 7
		c := Transform(cb) & 7

		ab2 := a.Compose(b)
		if ab2 > 7 {
			t.Fatalf("%v.Compose(%v) = %d, outside the 3-bit domain", a, b, int(ab2))
		}
		if left, right := ab2.Compose(c), a.Compose(b.Compose(c)); left != right {
			t.Fatalf("associativity broken for (%v, %v, %v): %v != %v", a, b, c, left, right)
		}
		if got := a.Compose(a.Inverse()); got != Identity {
			t.Fatalf("%v.Compose(%v.Inverse()) = %v, want identity", a, a, got)
		}
		if got := a.Inverse().Compose(a); got != Identity {
			t.Fatalf("%v.Inverse().Compose(%v) = %v, want identity", a, a, got)
		}
	})
}

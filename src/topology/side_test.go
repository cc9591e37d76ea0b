package topology

import "testing"

func TestSideRotateCycle(t *testing.T) {
	want := map[Side]Side{Top: Right, Right: Bottom, Bottom: Left, Left: Top}
	for s, next := range want {
		if got := s.Rotate(Quarter); got != next {
			t.Fatalf("%v rotated a quarter = %v, expected %v", s, got, next)
		}
		if got := s.Rotate(Quarter.Neg()); got != s.Rotate(Three) {
			t.Fatalf("%v rotated back = %v, expected %v", s, got, s.Rotate(Three))
		}
		if got := s.Rotate(Rotation(-7)); got != s.Rotate(Quarter) {
			t.Fatalf("%v rotated by -7 = %v, expected %v", s, got, s.Rotate(Quarter))
		}
	}
}

func TestSideInvert(t *testing.T) {
	want := map[Side]Side{Top: Bottom, Bottom: Top, Left: Right, Right: Left}
	for s, inv := range want {
		if got := s.Invert(); got != inv {
			t.Fatalf("%v inverted = %v, expected %v", s, got, inv)
		}
		if s.Invert().Invert() != s {
			t.Fatalf("%v inverted twice is not itself", s)
		}
	}
}

func TestSideDistance(t *testing.T) {
	for _, a := range Sides {
		for _, b := range Sides {
			d := a.Distance(b)
			if a.Rotate(d) != b {
				t.Fatalf("%v rotated by distance %v = %v, expected %v", a, d, a.Rotate(d), b)
			}
			if d.Add(b.Distance(a)) != None {
				t.Fatalf("distances %v->%v and back do not cancel", a, b)
			}
		}
	}
}

//firmwareAligned is the edge reading predicate of the first cube firmware,
//written against its counter-clockwise side numbering
func firmwareAligned(a, b Side) bool {
	num := map[Side]int{Top: 0, Left: 1, Bottom: 2, Right: 3}
	s1, s2 := num[a], num[b]
	d := s1 - s2
	if d < 0 {
		d = -d
	}
	return (d == 1 && s1+s2 != 3) || d == 2
}

func TestAlignedMatchesFirmwareTable(t *testing.T) {
	want := map[[2]Side]bool{
		{Top, Bottom}: true, {Bottom, Top}: true,
		{Left, Right}: true, {Right, Left}: true,
		{Top, Left}: true, {Left, Top}: true,
		{Bottom, Right}: true, {Right, Bottom}: true,
		{Top, Top}: false, {Right, Right}: false, {Bottom, Bottom}: false, {Left, Left}: false,
		{Top, Right}: false, {Right, Top}: false,
		{Bottom, Left}: false, {Left, Bottom}: false,
	}
	if len(want) != 16 {
		t.Fatalf("table must cover all 16 pairs, has %d", len(want))
	}
	for pair, aligned := range want {
		if got := Aligned(pair[0], pair[1]); got != aligned {
			t.Fatalf("Aligned(%v, %v) = %v, expected %v", pair[0], pair[1], got, aligned)
		}
		if got := firmwareAligned(pair[0], pair[1]); got != aligned {
			t.Fatalf("firmware predicate (%v, %v) = %v, expected %v", pair[0], pair[1], got, aligned)
		}
	}
}

func TestRotationFromDegrees(t *testing.T) {
	cases := []struct {
		deg  int
		want Rotation
		err  bool
	}{
		{0, None, false},
		{90, Quarter, false},
		{180, Half, false},
		{270, Three, false},
		{360, None, false},
		{-90, Three, false},
		{45, None, true},
	}
	for _, c := range cases {
		got, err := RotationFromDegrees(c.deg)
		if (err != nil) != c.err {
			t.Fatalf("RotationFromDegrees(%d) error = %v, expected error %v", c.deg, err, c.err)
		}
		if err == nil && got != c.want {
			t.Fatalf("RotationFromDegrees(%d) = %v, expected %v", c.deg, got, c.want)
		}
	}
}

func TestSideDelta(t *testing.T) {
	for _, s := range Sides {
		dx, dy := s.Delta()
		ix, iy := s.Invert().Delta()
		if dx+ix != 0 || dy+iy != 0 {
			t.Fatalf("delta of %v and its inverse do not cancel", s)
		}
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Delta of an invalid side must panic")
		}
	}()
	Side(9).Delta()
}

package perm

import "testing"

func TestTripleString(t *testing.T) {
	cases := []struct {
		t    Triple
		want string
	}{
		{None, "---"},
		{R, "r--"},
		{RW, "rw-"},
		{RWX, "rwx"},
	}
	for _, c := range cases {
		if got := c.t.String(); got != c.want {
			t.Errorf("%+v.String() = %q, want %q", c.t, got, c.want)
		}
	}
}

func TestDenyXW(t *testing.T) {
	if R.DenyXW() || RW.DenyXW() || X.DenyXW() {
		t.Fatal("DenyXW true for a triple without both write and exec")
	}
	if !WX.DenyXW() || !RWX.DenyXW() {
		t.Fatal("DenyXW false for a triple with both write and exec")
	}
}

func TestBits(t *testing.T) {
	if RW.Bits() != R.Bits()|W.Bits() {
		t.Fatalf("RW.Bits() = %v, want R|W = %v", RW.Bits(), R.Bits()|W.Bits())
	}
}

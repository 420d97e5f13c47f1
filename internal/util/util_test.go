package util

import "testing"

func TestRoundupRounddown(t *testing.T) {
	cases := []struct{ v, b, up, down int }{
		{0, 8, 0, 0},
		{1, 8, 8, 0},
		{8, 8, 8, 8},
		{9, 8, 16, 8},
		{4096, 4096, 4096, 4096},
	}
	for _, c := range cases {
		if got := Roundup(c.v, c.b); got != c.up {
			t.Errorf("Roundup(%d, %d) = %d, want %d", c.v, c.b, got, c.up)
		}
		if got := Rounddown(c.v, c.b); got != c.down {
			t.Errorf("Rounddown(%d, %d) = %d, want %d", c.v, c.b, got, c.down)
		}
	}
}

func TestMin(t *testing.T) {
	if got := Min(3, 5); got != 3 {
		t.Fatalf("Min(3, 5) = %d, want 3", got)
	}
	if got := Min(uint8(9), uint8(2)); got != 2 {
		t.Fatalf("Min(9, 2) = %d, want 2", got)
	}
}

func TestReadnWriten(t *testing.T) {
	buf := make([]byte, 16)
	Writen(buf, 4, 4, 0x11223344)
	if got := Readn(buf, 4, 4); got != 0x11223344 {
		t.Fatalf("Readn = %#x, want %#x", got, 0x11223344)
	}
	Writen(buf, 1, 0, 0xff)
	if got := Readn(buf, 1, 0); got != 0xff {
		t.Fatalf("Readn = %#x, want %#x", got, 0xff)
	}
}

func TestReadnOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Readn past end did not panic")
		}
	}()
	Readn(make([]byte, 4), 8, 0)
}

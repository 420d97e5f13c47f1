package sys

import "testing"

func TestRoundup(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0},
		{1, PageSize},
		{0x1234, 0x2000},
		{0x8000, 0x8000},
		{PageSize, PageSize},
		{PageSize + 1, 2 * PageSize},
	}
	for _, c := range cases {
		if got := Roundup(c.in); got != c.want {
			t.Errorf("Roundup(%#x) = %#x, want %#x", c.in, got, c.want)
		}
	}
}

func TestPermString(t *testing.T) {
	cases := []struct {
		p    Perm
		want string
	}{
		{0, "---"},
		{Read, "r--"},
		{Read | Write, "rw-"},
		{Exec, "--x"},
		{Read | Write | Exec, "rwx"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Errorf("Perm(%d).String() = %q, want %q", c.p, got, c.want)
		}
	}
}

func TestAllocationFaultUnwrap(t *testing.T) {
	inner := errTest("boom")
	f := &AllocationFault{Op: "mmap", Err: inner}
	if f.Unwrap() != inner {
		t.Fatalf("Unwrap did not return inner error")
	}
	if f.Error() == "" {
		t.Fatalf("Error() returned empty string")
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

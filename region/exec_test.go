//go:build amd64 && !noexec

package region

import "testing"

func TestSetProtectedExecReturnsNormally(t *testing.T) {
	rw := NewRW(0x4000)
	b := rw.BytesMut()
	b[0] = 0xC3 // ret
	rx := rw.SetProtectedExec()
	defer rx.Close()

	h := GetFn[func()](rx, 0)
	h.Unchecked()()
}

func TestLeaAddFunction(t *testing.T) {
	rw := NewRW(0x4000)
	// SysV x86-64: lea rax, [rdi+rsi]; ret  -- computes rdi+rsi into rax.
	code := []byte{0x48, 0x8d, 0x04, 0x37, 0xC3}
	copy(rw.BytesMut(), code)
	rx := rw.SetProtectedExec()
	defer rx.Close()

	h := GetFn[func(uint64, uint64) uint64](rx, 0)
	add := h.Unchecked()
	for i := uint64(0); i < 256; i++ {
		for j := uint64(0); j < 256; j++ {
			if got := add(i, j); got != i+j {
				t.Fatalf("add(%d,%d) = %d, want %d", i, j, got, i+j)
			}
		}
	}
}

func TestGetFnPtrBoundsViolation(t *testing.T) {
	rw := NewRW(0x1000)
	rx := rw.SetProtectedExec()
	defer rx.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("GetFnPtr at length did not panic")
		}
	}()
	rx.GetFnPtr(0x1000)
}

func TestAllowWriteNoExec(t *testing.T) {
	rw := NewRW(0x1000)
	rx := rw.SetProtectedExec()
	back := rx.AllowWriteNoExec()
	defer back.Close()
	back.BytesMut()[0] = 1
}

package region

import "testing"

func TestResizePreservesPrefix(t *testing.T) {
	r := NewRW(0x1000)
	defer r.Close()
	b := r.BytesMut()
	for i := range b {
		b[i] = byte(i)
	}
	r.Resize(0x3000)
	if r.Len() != 0x3000 {
		t.Fatalf("Len() after resize = %#x, want %#x", r.Len(), 0x3000)
	}
	got := r.Bytes()
	for i := 0; i < 0x1000; i++ {
		if got[i] != byte(i) {
			t.Fatalf("byte %d = %#x after growth, want %#x", i, got[i], byte(i))
		}
	}
}

func TestResizeShrinkTruncates(t *testing.T) {
	r := NewRW(0x3000)
	defer r.Close()
	b := r.BytesMut()
	for i := range b {
		b[i] = 0xAB
	}
	r.Resize(0x1000)
	if r.Len() != 0x1000 {
		t.Fatalf("Len() after shrink = %#x, want %#x", r.Len(), 0x1000)
	}
}

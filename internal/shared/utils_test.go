package shared

import "testing"

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	WipeByteArray(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("expected buf[%d] == 0, got %d", i, b)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// File: internal/normalize/normalizer_test.go
package normalize

import "testing"

var classes = []uint32{1 << 10, 4 << 10, 16 << 10}

func TestRingSizeClassRoundsUpToSmallestFit(t *testing.T) {
	cases := []struct {
		requested uint32
		want      uint32
	}{
		{1, 1 << 10},
		{1 << 10, 1 << 10},
		{1<<10 + 1, 4 << 10},
		{16 << 10, 16 << 10},
	}
	for _, c := range cases {
		if got := RingSizeClass(c.requested, classes); got != c.want {
			t.Errorf("RingSizeClass(%d) = %d, want %d", c.requested, got, c.want)
		}
	}
}

func TestRingSizeClassFallsBackToLargestAndLogs(t *testing.T) {
	var logged string
	orig := logNormalize
	logNormalize = func(msg string, args ...any) { logged = msg }
	defer func() { logNormalize = orig }()

	got := RingSizeClass(1<<20, classes)
	if got != classes[len(classes)-1] {
		t.Fatalf("RingSizeClass(oversized) = %d, want largest class %d", got, classes[len(classes)-1])
	}
	if logged == "" {
		t.Fatal("expected a fallback warning to be logged")
	}
}

func TestRingSizeClassPanicsOnEmptyClasses(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected RingSizeClass to panic with no classes configured")
		}
	}()
	RingSizeClass(10, nil)
}

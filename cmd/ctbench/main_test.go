package main

import "testing"

func TestRunFpMulPasses(t *testing.T) {
	code := run([]string{"--curve", "secp256k1", "--op", "fp_mul", "--samples", "64", "--seed", "ctbench-test-fp"})
	if code != 0 {
		t.Fatalf("run() = %d, want 0 for fp_mul dudect pass", code)
	}
}

func TestRunScalarMulPasses(t *testing.T) {
	code := run([]string{"--curve", "secp256k1", "--op", "scalarmul", "--samples", "32", "--seed", "ctbench-test-scalarmul"})
	if code != 0 {
		t.Fatalf("run() = %d, want 0 for scalarmul dudect pass", code)
	}
}

func TestRunBanderwagonScalarMul(t *testing.T) {
	code := run([]string{"--curve", "banderwagon", "--op", "scalarmul", "--samples", "32", "--seed", "ctbench-test-banderwagon"})
	if code != 0 {
		t.Fatalf("run() = %d, want 0 for banderwagon scalarmul dudect pass", code)
	}
}

func TestRunBLS12381ScalarMul(t *testing.T) {
	code := run([]string{"--curve", "bls12381", "--op", "scalarmul", "--samples", "32", "--seed", "ctbench-test-bls12381"})
	if code != 0 {
		t.Fatalf("run() = %d, want 0 for bls12-381 scalarmul dudect pass", code)
	}
}

func TestRunUnknownCurve(t *testing.T) {
	code := run([]string{"--curve", "nonexistent"})
	if code != 1 {
		t.Fatalf("run() = %d, want 1 for an unknown curve", code)
	}
}

func TestRunUnknownOp(t *testing.T) {
	code := run([]string{"--op", "nonexistent"})
	if code != 1 {
		t.Fatalf("run() = %d, want 1 for an unknown op", code)
	}
}

func TestRunBadFlag(t *testing.T) {
	code := run([]string{"--not-a-flag"})
	if code != 2 {
		t.Fatalf("run() = %d, want 2 for a flag parse error", code)
	}
}

func TestWelchTIdenticalSamplesIsZero(t *testing.T) {
	a := []float64{10, 11, 12, 10, 11, 12}
	b := []float64{10, 11, 12, 10, 11, 12}
	if got := welchT(a, b); got != 0 {
		t.Fatalf("welchT(identical, identical) = %v, want 0", got)
	}
}

func TestWelchTSeparatedSamplesIsLarge(t *testing.T) {
	a := make([]float64, 200)
	b := make([]float64, 200)
	for i := range a {
		a[i] = 100 + float64(i%3)
		b[i] = 100000 + float64(i%3)
	}
	got := welchT(a, b)
	if got > -4.5 {
		t.Fatalf("welchT for clearly separated samples = %v, want < -4.5", got)
	}
}

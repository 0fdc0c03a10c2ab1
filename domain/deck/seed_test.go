package deck

import "testing"

func TestWorkerSeedsDeterministic(t *testing.T) {
	a, err := WorkerSeeds(1234, 4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := WorkerSeeds(1234, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seed %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestWorkerSeedsDistinct(t *testing.T) {
	seeds, err := WorkerSeeds(99, 16)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[Seed]bool{}
	for _, s := range seeds {
		if seen[s] {
			t.Fatalf("duplicate seed %v", s)
		}
		seen[s] = true
	}
	other, err := WorkerSeeds(100, 1)
	if err != nil {
		t.Fatal(err)
	}
	if other[0] == seeds[0] {
		t.Fatal("different master seeds should give different worker seeds")
	}
}

func TestWorkerSeedsInvalidCount(t *testing.T) {
	if _, err := WorkerSeeds(1, 0); err == nil {
		t.Fatal("expected error for zero workers")
	}
}

func TestSeedRandReproducible(t *testing.T) {
	s := Seed{5, 6}
	a, b := s.Rand(), s.Rand()
	for i := 0; i < 10; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatal("equal seeds produced different streams")
		}
	}
}

func TestNewSeedVaries(t *testing.T) {
	if NewSeed() == NewSeed() && NewSeed() == NewSeed() {
		t.Fatal("expected fresh seeds to differ")
	}
}

package scores

import (
	"fmt"
	"os"
	"testing"
	"time"
)

func setupTestStore() (*Store, func(), error) {
	f, err := os.CreateTemp("", "sweeper-scores-")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create temp file: %v", err)
	}

	s, err := Open(f.Name())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %v", err)
	}

	teardown := func() {
		s.Close()
		f.Close()
		os.Remove(f.Name())
	}

	return s, teardown, nil
}

func TestStoreReadEmpty(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	if _, err = s.Best("9x9:10"); err != ErrNotFound {
		t.Fatalf("expected not found error, received %v", err)
	}
}

func TestStoreSubmitAndRead(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	seed := "9x9:10"
	d := 72 * time.Second

	improved, err := s.Submit(seed, d)
	if err != nil {
		t.Fatalf("failed to submit time: %v", err)
	}
	if !improved {
		t.Fatal("first submission must count as an improvement")
	}

	best, err := s.Best(seed)
	if err != nil {
		t.Fatalf("failed to read best time: %v", err)
	}
	if best.Duration != d {
		t.Fatalf("have %v, want %v", best.Duration, d)
	}
	if best.SetAt.IsZero() {
		t.Fatal("record has no timestamp")
	}
}

func TestStoreSlowerTimeKept(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	seed := "16x16:40"
	if _, err := s.Submit(seed, time.Minute); err != nil {
		t.Fatal(err)
	}

	improved, err := s.Submit(seed, 2*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if improved {
		t.Fatal("slower time reported as an improvement")
	}

	best, err := s.Best(seed)
	if err != nil {
		t.Fatal(err)
	}
	if best.Duration != time.Minute {
		t.Fatalf("best time overwritten: have %v, want %v",
			best.Duration, time.Minute)
	}
}

func TestStoreFasterTimeReplaces(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	seed := "30x16:99"
	if _, err := s.Submit(seed, 10*time.Minute); err != nil {
		t.Fatal(err)
	}

	improved, err := s.Submit(seed, 9*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if !improved {
		t.Fatal("faster time not reported as an improvement")
	}

	best, err := s.Best(seed)
	if err != nil {
		t.Fatal(err)
	}
	if best.Duration != 9*time.Minute {
		t.Fatalf("have %v, want %v", best.Duration, 9*time.Minute)
	}
}

func TestStoreCount(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	times := map[string]time.Duration{
		"9x9:10":   30 * time.Second,
		"16x16:40": 3 * time.Minute,
		"30x16:99": 10 * time.Minute,
	}
	for seed, d := range times {
		if _, err := s.Submit(seed, d); err != nil {
			t.Fatal(err)
		}
	}

	if count, err := s.Count(); err != nil {
		t.Fatal(err)
	} else if count != len(times) {
		t.Fatalf("have %d, want %d", count, len(times))
	}
}

func TestRecordString(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{42 * time.Second, "00:42"},
		{72 * time.Second, "01:12"},
		{61 * time.Minute, "01:01:00"},
	}
	for _, test := range tests {
		if have := (Record{Duration: test.d}).String(); have != test.want {
			t.Fatalf("have %s, want %s", have, test.want)
		}
	}
}

package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilter(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	results, err := Filter(items, func(n int) (bool, error) {
		return n%2 == 0, nil
	})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}

	if diff := cmp.Diff([]int{2, 4, 6, 8, 10}, results); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_Empty(t *testing.T) {
	var items []string

	results, err := Filter(items, func(s string) (bool, error) {
		return true, nil
	})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if results != nil {
		t.Errorf("expected nil for empty input, got %v", results)
	}
}

func TestFilter_NoMatches(t *testing.T) {
	results, err := Filter([]string{"a", "b"}, func(s string) (bool, error) {
		return false, nil
	})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}

func TestFilter_ReturnsEarliestError(t *testing.T) {
	errTwo := errors.New("two")
	errFour := errors.New("four")

	results, err := Filter([]int{1, 2, 3, 4}, func(n int) (bool, error) {
		switch n {
		case 2:
			return false, errTwo
		case 4:
			return false, errFour
		}
		return true, nil
	})
	if !errors.Is(err, errTwo) {
		t.Errorf("expected error from item 2, got %v", err)
	}
	if results != nil {
		t.Errorf("expected no results on error, got %v", results)
	}
}

func TestCalculateWorkers(t *testing.T) {
	tests := []struct {
		name     string
		numItems int
		wantMin  int
		wantMax  int
	}{
		{"zero items", 0, 0, 0},
		{"single item", 1, 1, 1},
		{"few items", 3, 1, 3},
		{"many items", 10000, 1, maxWorkers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateWorkers(tt.numItems)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("CalculateWorkers(%d) = %d, want between %d and %d",
					tt.numItems, got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestFilter_Concurrency(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	var processed atomic.Int32
	results, err := Filter(items, func(n int) (bool, error) {
		processed.Add(1)
		return true, nil
	})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}

	if processed.Load() != 100 {
		t.Errorf("expected 100 processed, got %d", processed.Load())
	}
	if diff := cmp.Diff(items, results); diff != "" {
		t.Errorf("order not preserved (-want +got):\n%s", diff)
	}
}

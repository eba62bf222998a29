package random

import (
	"sort"
	"testing"
)

func TestShuffleIsPermutation(t *testing.T) {
	input := []int{5, 3, 3, 9, 1, 7, 2}
	original := append([]int(nil), input...)

	for i := 0; i < 50; i++ {
		got := Shuffle(Default, input)
		if len(got) != len(input) {
			t.Fatalf("expected length %d, got %d", len(input), len(got))
		}
		a := append([]int(nil), got...)
		b := append([]int(nil), input...)
		sort.Ints(a)
		sort.Ints(b)
		for j := range a {
			if a[j] != b[j] {
				t.Fatalf("shuffle changed the multiset: %v vs %v", got, input)
			}
		}
	}
	for i := range input {
		if input[i] != original[i] {
			t.Fatalf("shuffle mutated input: %v", input)
		}
	}
}

func TestShuffleWithZeroSourceRotates(t *testing.T) {
	// j is always 0, so each step swaps position i with the head.
	got := Shuffle(Sequence(0), []string{"a", "b", "c"})
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestShuffleWithHighSourceKeepsOrder(t *testing.T) {
	got := Shuffle(Sequence(0.999), []int{1, 2, 3, 4})
	for i, v := range []int{1, 2, 3, 4} {
		if got[i] != v {
			t.Fatalf("expected identity permutation, got %v", got)
		}
	}
}

func TestPickOne(t *testing.T) {
	items := []string{"x", "y", "z"}
	if got := PickOne(Sequence(0), items); got != "x" {
		t.Fatalf("expected x, got %s", got)
	}
	if got := PickOne(Sequence(0.5), items); got != "y" {
		t.Fatalf("expected y, got %s", got)
	}
	if got := PickOne(Sequence(1.0), items); got != "z" {
		t.Fatalf("expected z for out-of-range source, got %s", got)
	}
}

func TestPickNDistinct(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "fewer than available", n: 3, want: 3},
		{name: "exactly available", n: 5, want: 5},
		{name: "more than available", n: 8, want: 5},
		{name: "zero", n: 0, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PickN(Default, items, tc.n)
			if len(got) != tc.want {
				t.Fatalf("expected %d items, got %d", tc.want, len(got))
			}
			seen := map[int]bool{}
			for _, v := range got {
				if seen[v] {
					t.Fatalf("duplicate %d in %v", v, got)
				}
				seen[v] = true
			}
		})
	}
}

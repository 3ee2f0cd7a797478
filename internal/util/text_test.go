package util

import "testing"

func TestFold(t *testing.T) {
	if got := Fold("  Organic Bananas "); got != "organic bananas" {
		t.Fatalf("got %q", got)
	}
}

func TestRatio(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{name: "identical", a: "banana", b: "banana", want: 100},
		{name: "both empty", a: "", b: "", want: 100},
		{name: "one edit in ten", a: "whole milks", b: "whole milk", want: 91},
		{name: "disjoint", a: "milk", b: "tofu", want: 0},
		{name: "empty vs word", a: "", b: "milk", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Ratio(tc.a, tc.b); got != tc.want {
				t.Fatalf("Ratio(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}

	if Ratio("banana", "bananas") != Ratio("bananas", "banana") {
		t.Fatal("ratio must be symmetric")
	}
}

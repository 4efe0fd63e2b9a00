package utils

import "testing"

func TestFormatRupee(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rs 0"},
		{450, "Rs 450"},
		{1000, "Rs 1,000"},
		{123456, "Rs 1,23,456"},
		{1234567, "Rs 12,34,567"},
		{-5200, "-Rs 5,200"},
	}
	for _, tc := range cases {
		if got := FormatRupee(tc.in); got != tc.want {
			t.Fatalf("FormatRupee(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

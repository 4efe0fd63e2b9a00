package utils

import "strconv"

// FormatRupee renders an integer rupee amount with Indian digit
// grouping: the last three digits, then groups of two (12,34,567).
func FormatRupee(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		return sign + "Rs " + s
	}
	head := s[:len(s)-3]
	out := s[len(s)-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return sign + "Rs " + head + "," + out
}

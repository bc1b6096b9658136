package utils

import (
	"strconv"
)

// StringToInt parses s as a base-10 int. Unparseable input maps to
// zero, which callers treat as "fall back to the default".
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

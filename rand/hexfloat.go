// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "strconv"

// formatHexFloat and parseHexFloat serialize distribution parameters as
// hexadecimal floating-point, which is exact and round-trips bit-for-bit,
// unlike the original's decimal scientific notation at max_digits10
// (flagged there as "assumed but not proven" to round-trip).
func formatHexFloat(x float64) string {
	return strconv.FormatFloat(x, 'x', -1, 64)
}

func parseHexFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

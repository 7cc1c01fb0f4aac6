package navs13

import "fmt"

// Checksum computes the EAN-13 check digit of a 12 digit payload.
//
// Even positions weigh 1, odd positions weigh 3. The result is the amount
// needed to bring the weighted sum to the next multiple of ten.
// Checksum panics if a digit is greater than 9.
func Checksum(digits [PayloadLength]uint8) uint8 {
	sum := 0
	for i, d := range digits {
		if d > 9 {
			panic(fmt.Sprintf("navs13: digit %d at position %d out of range", d, i))
		}
		weight := 1
		if i%2 == 1 {
			weight = 3
		}
		sum += int(d) * weight
	}
	if sum%10 == 0 {
		return 0
	}
	return uint8(10 - sum%10)
}

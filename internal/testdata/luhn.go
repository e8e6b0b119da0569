package testdata

// checkDigit computes the trailing digit that makes digits pass the
// mod-10 checksum used by card issuers.
func checkDigit(digits string) int {
	sum := luhnSum(digits, true)
	return (10 - sum%10) % 10
}

// ValidLuhn reports whether a full card number passes the checksum.
func ValidLuhn(number string) bool {
	if len(number) < 2 {
		return false
	}
	sum := luhnSum(number[:len(number)-1], true)
	sum += int(number[len(number)-1] - '0')
	return sum%10 == 0
}

// luhnSum sums digits right to left, doubling every second digit when
// doubleFirst is set (the payload position preceding a check digit).
func luhnSum(digits string, doubleFirst bool) int {
	sum := 0
	double := doubleFirst
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return -1
		}
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum
}

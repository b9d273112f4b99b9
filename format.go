package numeric

// appendScaledDecimal implements spec.md §4.3: render an unsigned magnitude
// (already converted to its plain decimal digit string) scaled by
// 10^scaleDigits as a decimal string, inserting the decimal point
// scaleDigits digits from the right, padding leading zeros in the
// fractional part when the magnitude has fewer digits than scaleDigits,
// and trimming trailing fractional zeros. Zero is rendered as a single
// "0"; no leading '+' is ever emitted.
func appendScaledDecimal(buf []byte, negative bool, digits string, scaleDigits int) []byte {
	if digits == "0" {
		return append(buf, '0')
	}
	if negative {
		buf = append(buf, '-')
	}
	if len(digits) <= scaleDigits {
		pad := scaleDigits - len(digits)
		buf = append(buf, '0', '.')
		for i := 0; i < pad; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digits...)
	} else {
		intLen := len(digits) - scaleDigits
		buf = append(buf, digits[:intLen]...)
		if scaleDigits > 0 {
			buf = append(buf, '.')
			buf = append(buf, digits[intLen:]...)
		}
	}
	// Trim trailing fractional zeros (and a bare trailing '.').
	if scaleDigits > 0 {
		end := len(buf)
		for end > 0 && buf[end-1] == '0' {
			end--
		}
		if end > 0 && buf[end-1] == '.' {
			end--
		}
		buf = buf[:end]
	}
	return buf
}

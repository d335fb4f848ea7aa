package conv

// Utoa writes base-10 representation of n into buf and returns the used slice.
// buf should be length >= 20 for uint64.
func Utoa(buf []byte, n uint64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
	} else {
		for n > 0 && i > 0 {
			i--
			buf[i] = byte('0' + (n % 10))
			n /= 10
		}
	}
	return buf[i:]
}

// UtoaPad is Utoa left-padded with zeros to at least width digits, for
// rendering fixed-point fractions ("56" as ".056").
func UtoaPad(buf []byte, n uint64, width int) []byte {
	s := Utoa(buf, n)
	for len(s) < width && len(s) < len(buf) {
		i := len(buf) - len(s) - 1
		buf[i] = '0'
		s = buf[i:]
	}
	return s
}

// Package inputmask provides the progressive typing masks for date and
// time fields. The functions are pure: strip everything that is not a
// digit, then re-insert separators at fixed positions. Applying a mask to
// its own output yields the same output.
package inputmask

// digitsOf strips non-digit characters and truncates to max digits.
func digitsOf(s string, max int) string {
	out := make([]byte, 0, max)
	for i := 0; i < len(s) && len(out) < max; i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// MascaraData formats free-form input as DD, DD/MM or DD/MM/AAAA
// depending on how many digits have been typed.
func MascaraData(s string) string {
	d := digitsOf(s, 8)
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 4:
		return d[:2] + "/" + d[2:]
	default:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	}
}

// MascaraHora formats free-form input as HH or HH:MM. Digits beyond four
// are discarded.
func MascaraHora(s string) string {
	d := digitsOf(s, 4)
	if len(d) <= 2 {
		return d
	}
	return d[:2] + ":" + d[2:]
}

// DataCompleta reports whether s is a fully typed DD/MM/AAAA value.
func DataCompleta(s string) bool {
	return len(MascaraData(s)) == 10
}

// HoraCompleta reports whether s is a fully typed HH:MM value.
func HoraCompleta(s string) bool {
	return len(MascaraHora(s)) == 5
}

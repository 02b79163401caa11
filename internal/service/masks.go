package service

import "strings"

// DigitsOnly drops every non-digit rune.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstN(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// FormatDate masks input as DD/MM/YYYY while it is being typed.
func FormatDate(s string) string {
	d := firstN(DigitsOnly(s), 8)
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 4:
		return d[:2] + "/" + d[2:]
	default:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	}
}

// DisplayDateToWire converts a DD/MM/YYYY display value to YYYY-MM-DD, or ""
// while the display value is incomplete.
func DisplayDateToWire(display string) string {
	formatted := FormatDate(display)
	if len(formatted) != len("DD/MM/YYYY") {
		return ""
	}
	parts := strings.Split(formatted, "/")
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// FormatPhone masks input as (DD) DDDDD-DDDD.
func FormatPhone(s string) string {
	d := firstN(DigitsOnly(s), 11)
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// FormatCPF masks input as DDD.DDD.DDD-DD.
func FormatCPF(s string) string {
	d := firstN(DigitsOnly(s), 11)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// FormatPostalCode masks input as DDDDD-DDD.
func FormatPostalCode(s string) string {
	d := firstN(DigitsOnly(s), 8)
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

package crypto

// Report records which character classes were seen in a password.
type Report struct {
	Lowercase bool
	Uppercase bool
	Digit     bool
	Special   bool
}

// Strong reports whether every class was seen.
func (r Report) Strong() bool {
	return r.Lowercase && r.Uppercase && r.Digit && r.Special
}

// Missing returns the classes that were not seen, in generation order.
func (r Report) Missing() []CharClass {
	var missing []CharClass
	for _, c := range Classes {
		if !r.has(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

func (r Report) has(c CharClass) bool {
	switch c {
	case Lowercase:
		return r.Lowercase
	case Uppercase:
		return r.Uppercase
	case Digit:
		return r.Digit
	case Special:
		return r.Special
	}
	return false
}

// Analyze classifies every rune of password.
func Analyze(password string) Report {
	var r Report
	for _, ch := range password {
		switch Classify(ch) {
		case Lowercase:
			r.Lowercase = true
		case Uppercase:
			r.Uppercase = true
		case Digit:
			r.Digit = true
		default:
			r.Special = true
		}
		if r.Strong() {
			break
		}
	}
	return r
}

// IsStrong reports whether password contains a lowercase letter, an
// uppercase letter, a digit and at least one other character.
func IsStrong(password string) bool {
	return Analyze(password).Strong()
}

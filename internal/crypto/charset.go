package crypto

// CharClass identifies one of the four character categories a strong
// password must contain.
type CharClass int

const (
	Lowercase CharClass = iota
	Uppercase
	Digit
	Special
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*"

	// Alphabet is the combined sampling pool for non-guaranteed positions.
	Alphabet = lowercaseChars + uppercaseChars + digitChars + specialChars
)

// Classes lists every class in generation order.
var Classes = []CharClass{Lowercase, Uppercase, Digit, Special}

var classNames = [...]string{
	Lowercase: "lowercase",
	Uppercase: "uppercase",
	Digit:     "digit",
	Special:   "special",
}

var classChars = [...]string{
	Lowercase: lowercaseChars,
	Uppercase: uppercaseChars,
	Digit:     digitChars,
	Special:   specialChars,
}

func (c CharClass) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// Chars returns the characters the generator draws from for this class.
func (c CharClass) Chars() string {
	if c < 0 || int(c) >= len(classChars) {
		return ""
	}
	return classChars[c]
}

// Classify reports which class r counts toward when checking strength.
// Only ASCII letters and digits are recognized; any other rune counts as
// Special, even though the generator only emits the eight symbols in
// Special.Chars().
func Classify(r rune) CharClass {
	switch {
	case r >= 'a' && r <= 'z':
		return Lowercase
	case r >= 'A' && r <= 'Z':
		return Uppercase
	case r >= '0' && r <= '9':
		return Digit
	default:
		return Special
	}
}

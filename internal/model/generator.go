package model

// GenerateRequest represents a password generation request.
// A zero Length selects the server's default length.
type GenerateRequest struct {
	Length int `json:"length"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Strong   bool   `json:"strong"`
}

// VerifyRequest carries a password to check against the complexity policy.
type VerifyRequest struct {
	Password string `json:"password"`
}

// VerifyResponse reports which character classes a password contains.
type VerifyResponse struct {
	Strong    bool     `json:"strong"`
	Lowercase bool     `json:"lowercase"`
	Uppercase bool     `json:"uppercase"`
	Digit     bool     `json:"digit"`
	Special   bool     `json:"special"`
	Missing   []string `json:"missing"`
}

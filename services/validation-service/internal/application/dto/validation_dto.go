package dto

// ReasonDTO is one rejection reason with its stable numeric code.
type ReasonDTO struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// ValidateIBANRequest is the DTO for checking an IBAN. AllowQRIBAN overrides
// the service default when set.
type ValidateIBANRequest struct {
	IBAN        string `json:"iban"`
	AllowQRIBAN *bool  `json:"allow_qr_iban,omitempty"`
}

// ValidateIBANResponse is the DTO returned after checking an IBAN. The
// formatted fields are only filled for valid input.
type ValidateIBANResponse struct {
	IBAN        string      `json:"iban"`
	Valid       bool        `json:"valid"`
	Reasons     []ReasonDTO `json:"reasons"`
	CountryCode string      `json:"country_code,omitempty"`
	Friendly    string      `json:"friendly,omitempty"`
	QRIBAN      bool        `json:"qr_iban"`
}

// ValidateBBANRequest is the DTO for checking a national account number.
type ValidateBBANRequest struct {
	BBAN        string `json:"bban"`
	CountryCode string `json:"country_code"`
}

// ValidateBBANResponse is the DTO returned after checking a BBAN. Absent
// national fields are nil.
type ValidateBBANResponse struct {
	BBAN             string      `json:"bban"`
	CountryCode      string      `json:"country_code"`
	Valid            bool        `json:"valid"`
	Reasons          []ReasonDTO `json:"reasons"`
	BankIdentifier   *string     `json:"bank_identifier"`
	BranchIdentifier *string     `json:"branch_identifier"`
	AccountNumber    *string     `json:"account_number"`
}

// ComposeIBANRequest is the DTO for building an IBAN.
type ComposeIBANRequest struct {
	CountryCode string `json:"country_code"`
	BBAN        string `json:"bban"`
}

// ComposeIBANResponse is the DTO returned after building an IBAN.
type ComposeIBANResponse struct {
	Composed bool   `json:"composed"`
	IBAN     string `json:"iban,omitempty"`
	Friendly string `json:"friendly,omitempty"`
	// Valid reports whether the composed IBAN also passes full validation,
	// including the national checksum.
	Valid bool `json:"valid"`
}

// ExtractIBANRequest is the DTO for splitting an IBAN into its fields.
type ExtractIBANRequest struct {
	IBAN        string `json:"iban"`
	AllowQRIBAN *bool  `json:"allow_qr_iban,omitempty"`
}

// ExtractIBANResponse is the DTO returned after splitting an IBAN.
type ExtractIBANResponse struct {
	IBAN             string  `json:"iban"`
	Valid            bool    `json:"valid"`
	BBAN             *string `json:"bban"`
	CountryCode      *string `json:"country_code"`
	BankIdentifier   *string `json:"bank_identifier"`
	BranchIdentifier *string `json:"branch_identifier"`
	AccountNumber    *string `json:"account_number"`
}

// ValidateBICRequest is the DTO for checking a BIC.
type ValidateBICRequest struct {
	BIC string `json:"bic"`
}

// ValidateBICResponse is the DTO returned after checking a BIC.
type ValidateBICResponse struct {
	BIC          string      `json:"bic"`
	Valid        bool        `json:"valid"`
	Reasons      []ReasonDTO `json:"reasons"`
	BankCode     string      `json:"bank_code,omitempty"`
	CountryCode  string      `json:"country_code,omitempty"`
	LocationCode string      `json:"location_code,omitempty"`
	BranchCode   *string     `json:"branch_code"`
	TestBIC      bool        `json:"test_bic"`
}

// ListCountriesRequest is the DTO for listing country formats.
type ListCountriesRequest struct {
	SEPAOnly    bool   `json:"sepa_only"`
	IBANOnly    bool   `json:"iban_only"`
	CountryCode string `json:"country_code,omitempty"`
}

// CountryDTO describes one country's IBAN format.
type CountryDTO struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Chars        *int    `json:"chars"`
	BBANRegex    *string `json:"bban_regexp"`
	Algorithm    string  `json:"algorithm"`
	Bank         string  `json:"bank_range,omitempty"`
	Branch       string  `json:"branch_range,omitempty"`
	Account      string  `json:"account_range,omitempty"`
	IBANRegistry bool    `json:"iban_registry"`
	SEPA         bool    `json:"sepa"`
}

// ListCountriesResponse is the DTO returned when listing country formats.
type ListCountriesResponse struct {
	Countries  []CountryDTO `json:"countries"`
	TotalCount int          `json:"total_count"`
}

// ScreenPaymentRequest is the DTO for screening an ISO 20022 document.
type ScreenPaymentRequest struct {
	Document    string `json:"document"`
	AllowQRIBAN *bool  `json:"allow_qr_iban,omitempty"`
}

// ScreenedAccount is one account found in a payment message. Accounts with a
// proprietary identifier are listed but not checked.
type ScreenedAccount struct {
	Locator string      `json:"locator"`
	Role    string      `json:"role"`
	IBAN    string      `json:"iban,omitempty"`
	Other   string      `json:"other,omitempty"`
	Checked bool        `json:"checked"`
	Valid   bool        `json:"valid"`
	Reasons []ReasonDTO `json:"reasons"`
}

// ScreenedAgent is one agent BIC found in a payment message.
type ScreenedAgent struct {
	Locator string      `json:"locator"`
	Role    string      `json:"role"`
	BIC     string      `json:"bic"`
	Valid   bool        `json:"valid"`
	Reasons []ReasonDTO `json:"reasons"`
}

// ScreenPaymentResponse is the DTO returned after screening. Clean is true
// when every checked account and agent is valid.
type ScreenPaymentResponse struct {
	MessageType      string            `json:"message_type"`
	MessageID        string            `json:"message_id"`
	TransactionCount int               `json:"transaction_count"`
	Accounts         []ScreenedAccount `json:"accounts"`
	Agents           []ScreenedAgent   `json:"agents"`
	Clean            bool              `json:"clean"`
}

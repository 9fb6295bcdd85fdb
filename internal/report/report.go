// Package report validates the demo incident-report form.
// Nothing is sent anywhere; a passing form only produces a confirmation.
package report

import (
	"strings"
	"unicode"
	"unicode/utf16"
)

// MinDetailsLength is the minimum trimmed length of the incident details
const MinDetailsLength = 20

// Validation messages, checked in this order
const (
	MsgDetails = "Please describe the incident (minimum 20 characters)."
	MsgDate    = "Please select the incident date."
	MsgConsent = "Please confirm this is not an emergency."
)

// Status is the form's lifecycle state
type Status int

const (
	Untouched Status = iota
	Validated
)

// Tone selects how a result message is displayed
type Tone string

const (
	ToneNone    Tone = ""
	ToneError   Tone = "error"
	ToneSuccess Tone = "success"
)

// Color returns the status text color for the tone
func (t Tone) Color() string {
	switch t {
	case ToneError:
		return "#b42318"
	case ToneSuccess:
		return "#0b2f6b"
	default:
		return ""
	}
}

// Form holds the submitted report fields
type Form struct {
	Details string `json:"details"`
	Date    string `json:"date"`
	Consent bool   `json:"consent"`
	Station string `json:"station,omitempty"`
}

// Result is the outcome of a submit
type Result struct {
	Status  Status `json:"-"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Tone    Tone   `json:"tone"`
	// Form is what the page should show afterwards: cleared on success,
	// the submitted values otherwise.
	Form Form `json:"-"`
}

// Validate applies the rules in order and reports the first failure.
// success is the confirmation shown when every rule passes.
func Validate(form Form, success string) Result {
	if msg := firstError(form); msg != "" {
		return Result{Status: Validated, Message: msg, Tone: ToneError, Form: form}
	}
	return Result{Status: Validated, OK: true, Message: success, Tone: ToneSuccess}
}

func firstError(form Form) string {
	details := strings.TrimFunc(form.Details, isTrimmable)
	if details == "" || textLength(details) < MinDetailsLength {
		return MsgDetails
	}
	if form.Date == "" {
		return MsgDate
	}
	if !form.Consent {
		return MsgConsent
	}
	return ""
}

// isTrimmable matches the characters a browser's String.prototype.trim removes
func isTrimmable(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}

// textLength counts UTF-16 code units, the length a browser reports for
// a form field, so characters outside the BMP count twice.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += len(utf16.Encode([]rune{r}))
	}
	return n
}

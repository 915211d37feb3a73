package simsdk

import (
	"encoding/json"
	"time"
)

// ============================================================================
// SIM Status
// ============================================================================

// SimStatus is the remote activation state of a SIM.
type SimStatus string

const (
	StatusActivated SimStatus = "Activated"
	StatusDisabled  SimStatus = "Disabled"
)

// Valid reports whether s is a status the API accepts.
func (s SimStatus) Valid() bool {
	return s == StatusActivated || s == StatusDisabled
}

// ============================================================================
// Generic Objects
// ============================================================================

// Object is a decoded JSON object. Numbers are kept as json.Number so large
// identifiers survive decoding intact.
type Object map[string]any

// Has reports whether key is present, even with a null value.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// String returns the value at key if it is a JSON string.
func (o Object) String(key string) (string, bool) {
	s, ok := o[key].(string)
	return s, ok
}

// Int returns the value at key if it is a JSON integer.
func (o Object) Int(key string) (int64, bool) {
	n, ok := o[key].(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	return i, err == nil
}

// Float returns the value at key if it is a JSON number.
func (o Object) Float(key string) (float64, bool) {
	n, ok := o[key].(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	return f, err == nil
}

// Bool returns the value at key if it is a JSON boolean.
func (o Object) Bool(key string) (bool, bool) {
	b, ok := o[key].(bool)
	return b, ok
}

// Object returns the nested object at key.
func (o Object) Object(key string) (Object, bool) {
	m, ok := o[key].(map[string]any)
	return Object(m), ok
}

// Objects returns the array at key when every element is an object.
func (o Object) Objects(key string) ([]Object, bool) {
	items, ok := o[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]Object, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		out = append(out, Object(m))
	}
	return out, true
}

// ============================================================================
// Token Types
// ============================================================================

// AccessToken is a bearer credential returned by the token endpoint.
type AccessToken struct {
	// Value is the access token itself
	Value string

	// TokenType prefixes the token in the Authorization header (usually "Bearer")
	TokenType string

	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int

	// Scope is the space-delimited list of granted scopes
	Scope string
}

// tokenResponse is the wire form of the token endpoint answer.
type tokenResponse struct {
	AccessToken      string      `json:"access_token"`
	TokenType        string      `json:"token_type"`
	ExpiresIn        json.Number `json:"expires_in"`
	Scope            string      `json:"scope"`
	Error            string      `json:"error"`
	ErrorDescription string      `json:"error_description"`
}

// ============================================================================
// SMS Types
// ============================================================================

// ExpirySuffix is the fixed time-of-day appended to SMS expiry dates.
const ExpirySuffix = "T18:10:29.000+0000"

// Defaults applied by SendSMS.
const (
	DefaultSourceAddress     int64 = 1234567890
	DefaultUDH                     = "string"
	DefaultDCS                     = 8
	DefaultSourceAddressType       = 145
	DefaultExpiryDays              = 7
)

// SMSMessage is the payload of a mobile-terminated SMS.
type SMSMessage struct {
	SourceAddress     int64             `json:"source_address"`
	Payload           string            `json:"payload"`
	UDH               string            `json:"udh"`
	DCS               int               `json:"dcs"`
	SourceAddressType SourceAddressType `json:"source_address_type"`
	ExpiryDate        string            `json:"expiry_date"`
}

// SourceAddressType is the numbering plan of the SMS source address.
type SourceAddressType struct {
	ID int `json:"id"`
}

// FormatExpiry renders the calendar date of t with the fixed ExpirySuffix,
// e.g. 2026-10-22T18:10:29.000+0000.
func FormatExpiry(t time.Time) string {
	return t.Format(time.DateOnly) + ExpirySuffix
}

// ============================================================================
// SIM State Types
// ============================================================================

// SimStateChange is the payload of a SIM update. The ICCID duplicates the one
// in the request path.
type SimStateChange struct {
	ICCID    string    `json:"iccid"`
	Label    string    `json:"label"`
	IMEILock bool      `json:"imei_lock"`
	Status   SimStatus `json:"status"`
}

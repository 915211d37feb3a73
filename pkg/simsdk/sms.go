package simsdk

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

func smsPath(iccid, smsID string) (string, error) {
	path, err := simPath(iccid, "/sms")
	if err != nil {
		return "", err
	}
	if smsID == "" {
		return "", ErrEmptySMSID
	}
	return path + "/" + url.PathEscape(smsID), nil
}

// ListSMS returns the SMS sent to and from a SIM.
func (c *Client) ListSMS(ctx context.Context, iccid string) ([]Object, error) {
	path, err := simPath(iccid, "/sms")
	if err != nil {
		return nil, err
	}
	return c.getList(ctx, "list_sms", path)
}

// GetSMS returns a single SMS of a SIM.
func (c *Client) GetSMS(ctx context.Context, iccid, smsID string) (Object, error) {
	path, err := smsPath(iccid, smsID)
	if err != nil {
		return nil, err
	}
	return c.getObject(ctx, "get_sms", path)
}

// DeleteSMS cancels a pending SMS and returns the HTTP status code.
func (c *Client) DeleteSMS(ctx context.Context, iccid, smsID string) (int, error) {
	path, err := smsPath(iccid, smsID)
	if err != nil {
		return 0, err
	}
	return c.mutate(ctx, "delete_sms", http.MethodDelete, path, nil)
}

// SMSOption customises a SendSMS call.
type SMSOption func(*SMSMessage)

// WithExpiry sets the day the SMS expires. Only the calendar date of t is
// used; the time of day is always ExpirySuffix.
func WithExpiry(t time.Time) SMSOption {
	return func(m *SMSMessage) { m.ExpiryDate = FormatExpiry(t) }
}

// WithSourceAddress sets the sender address shown on the device.
func WithSourceAddress(addr int64) SMSOption {
	return func(m *SMSMessage) { m.SourceAddress = addr }
}

// WithUDH sets the user data header.
func WithUDH(udh string) SMSOption {
	return func(m *SMSMessage) { m.UDH = udh }
}

// WithDCS sets the data coding scheme.
func WithDCS(dcs int) SMSOption {
	return func(m *SMSMessage) { m.DCS = dcs }
}

// NewSMSMessage returns the message SendSMS would post for text at now.
func NewSMSMessage(text string, now time.Time, opts ...SMSOption) SMSMessage {
	msg := SMSMessage{
		SourceAddress:     DefaultSourceAddress,
		Payload:           text,
		UDH:               DefaultUDH,
		DCS:               DefaultDCS,
		SourceAddressType: SourceAddressType{ID: DefaultSourceAddressType},
		ExpiryDate:        FormatExpiry(now.AddDate(0, 0, DefaultExpiryDays)),
	}
	for _, opt := range opts {
		opt(&msg)
	}
	return msg
}

// SendSMS sends a mobile-terminated SMS to a SIM and returns the HTTP status
// code. Unless overridden the message expires in seven days.
func (c *Client) SendSMS(ctx context.Context, iccid, text string, opts ...SMSOption) (int, error) {
	path, err := simPath(iccid, "/sms")
	if err != nil {
		return 0, err
	}

	msg := NewSMSMessage(text, c.clock(), opts...)
	return c.mutate(ctx, "send_sms", http.MethodPost, path, msg)
}

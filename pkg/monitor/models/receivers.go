package models

import (
	"fmt"
	"net/url"
	"strings"
)

// Receiver is a notification receiver in an action group. It is a closed
// set: EmailReceiver, SmsReceiver, and WebhookReceiver.
type Receiver interface {
	// ReceiverType returns the wire discriminator for the variant.
	ReceiverType() string
}

// EmailReceiver delivers action-group notifications to one email address.
type EmailReceiver struct {
	Type         string `json:"type" yaml:"type"`
	Name         string `json:"name" yaml:"name"`
	EmailAddress string `json:"emailAddress" yaml:"email_address"`
}

// NewEmailReceiver creates an email receiver. The address must contain an
// "@" separator.
func NewEmailReceiver(name, address string) (EmailReceiver, error) {
	if !strings.Contains(address, "@") {
		return EmailReceiver{}, fmt.Errorf("invalid email address %q", address)
	}
	return EmailReceiver{Type: "email", Name: name, EmailAddress: address}, nil
}

// ReceiverType implements Receiver.
func (r EmailReceiver) ReceiverType() string { return r.Type }

// SmsReceiver delivers action-group notifications by SMS.
type SmsReceiver struct {
	Type        string `json:"type" yaml:"type"`
	Name        string `json:"name" yaml:"name"`
	CountryCode string `json:"countryCode" yaml:"country_code"`
	PhoneNumber string `json:"phoneNumber" yaml:"phone_number"`
}

// NewSmsReceiver creates an SMS receiver. Country code and phone number must
// be non-empty digit strings.
func NewSmsReceiver(name, countryCode, phoneNumber string) (SmsReceiver, error) {
	if !isDigits(countryCode) {
		return SmsReceiver{}, fmt.Errorf("invalid country code %q", countryCode)
	}
	if !isDigits(phoneNumber) {
		return SmsReceiver{}, fmt.Errorf("invalid phone number %q", phoneNumber)
	}
	return SmsReceiver{Type: "sms", Name: name, CountryCode: countryCode, PhoneNumber: phoneNumber}, nil
}

// ReceiverType implements Receiver.
func (r SmsReceiver) ReceiverType() string { return r.Type }

// WebhookReceiver delivers action-group notifications to a webhook URI.
type WebhookReceiver struct {
	Type       string `json:"type" yaml:"type"`
	Name       string `json:"name" yaml:"name"`
	ServiceURI string `json:"serviceUri" yaml:"service_uri"`
}

// NewWebhookReceiver creates a webhook receiver. The URI must be absolute.
func NewWebhookReceiver(name, serviceURI string) (WebhookReceiver, error) {
	u, err := url.Parse(serviceURI)
	if err != nil || !u.IsAbs() {
		return WebhookReceiver{}, fmt.Errorf("invalid service URI %q", serviceURI)
	}
	return WebhookReceiver{Type: "webhook", Name: name, ServiceURI: serviceURI}, nil
}

// ReceiverType implements Receiver.
func (r WebhookReceiver) ReceiverType() string { return r.Type }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

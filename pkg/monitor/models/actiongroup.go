package models

// ActionGroup is a named collection of notification receivers shared by
// multiple alert rules.
type ActionGroup struct {
	Name      string     `json:"name" yaml:"name"`
	ShortName string     `json:"shortName,omitempty" yaml:"short_name,omitempty"`
	Enabled   bool       `json:"enabled" yaml:"enabled"`
	Receivers []Receiver `json:"receivers,omitempty" yaml:"receivers,omitempty"`
}

// Package schema validates and decodes complete alert-rule documents
// supplied as files. The JSON schema is the source of truth for the document
// shape; validation runs before any decoding so error messages point at the
// document, not at Go types.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/stratus-ops/vigil/pkg/monitor/models"
)

//go:embed alertrule.schema.json
var alertRuleSchema string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("alertrule.schema.json", alertRuleSchema)
	})
	return compiledSchema, schemaErr
}

// ValidateAlertRuleDocument checks raw JSON against the alert rule schema.
func ValidateAlertRuleDocument(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}
	var document any
	if err := json.Unmarshal(content, &document); err != nil {
		return fmt.Errorf("parse rule document: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("rule document does not match schema: %w", err)
	}
	return nil
}

// actionEnvelope is the on-disk shape of one rule action before the
// discriminator selects a concrete variant.
type actionEnvelope struct {
	Type         string            `json:"odata.type"`
	CustomEmails []string          `json:"customEmails"`
	ServiceURI   string            `json:"serviceUri"`
	Properties   map[string]string `json:"properties"`
}

type alertRuleDocument struct {
	Name        string                         `json:"name"`
	Description string                         `json:"description"`
	IsEnabled   *bool                          `json:"isEnabled"`
	Condition   *models.ThresholdRuleCondition `json:"condition"`
	Actions     []actionEnvelope               `json:"actions"`
}

// DecodeAlertRule validates raw JSON and decodes it into an alert rule.
// A document without an isEnabled field defaults to enabled.
func DecodeAlertRule(content []byte) (*models.AlertRule, error) {
	if err := ValidateAlertRuleDocument(content); err != nil {
		return nil, err
	}

	var doc alertRuleDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode rule document: %w", err)
	}

	rule := &models.AlertRule{
		Name:        doc.Name,
		Description: doc.Description,
		IsEnabled:   true,
		Condition:   doc.Condition,
	}
	if doc.IsEnabled != nil {
		rule.IsEnabled = *doc.IsEnabled
	}
	for _, envelope := range doc.Actions {
		switch envelope.Type {
		case "RuleEmailAction":
			rule.Actions = append(rule.Actions, models.NewRuleEmailAction(envelope.CustomEmails))
		case "RuleWebhookAction":
			rule.Actions = append(rule.Actions, models.NewRuleWebhookAction(envelope.ServiceURI, envelope.Properties))
		default:
			// The schema already rejects unknown discriminators.
			return nil, fmt.Errorf("unknown action type %q", envelope.Type)
		}
	}
	return rule, nil
}

// LoadAlertRule reads, validates, and decodes an alert rule file.
func LoadAlertRule(path string) (*models.AlertRule, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file %q: %w", path, err)
	}
	return DecodeAlertRule(content)
}

package main

import (
	"testing"

	"github.com/stratus-ops/vigil/pkg/monitor/models"
)

func resetActionGroupCreateFlags() {
	actionGroupCreateFlags.name = ""
	actionGroupCreateFlags.shortName = ""
	actionGroupCreateFlags.disabled = false
	actionGroupCreateFlags.receivers = nil
}

func TestBuildActionGroup(t *testing.T) {
	resetActionGroupCreateFlags()
	actionGroupCreateFlags.name = "oncall"
	actionGroupCreateFlags.shortName = "oc"
	actionGroupCreateFlags.receivers = []string{
		"email primary ops@example.com",
		"sms pager 1 5551234567",
		"webhook chat https://hooks.example.com/oncall",
	}

	group, err := buildActionGroup()
	if err != nil {
		t.Fatalf("buildActionGroup() returned error: %v", err)
	}
	if group.Name != "oncall" || group.ShortName != "oc" {
		t.Errorf("group = %+v", group)
	}
	if !group.Enabled {
		t.Error("group should be enabled by default")
	}
	if len(group.Receivers) != 3 {
		t.Fatalf("expected 3 receivers, got %d", len(group.Receivers))
	}
	if _, ok := group.Receivers[0].(models.EmailReceiver); !ok {
		t.Errorf("first receiver = %T, want email", group.Receivers[0])
	}
	if _, ok := group.Receivers[1].(models.SmsReceiver); !ok {
		t.Errorf("second receiver = %T, want sms", group.Receivers[1])
	}
	if _, ok := group.Receivers[2].(models.WebhookReceiver); !ok {
		t.Errorf("third receiver = %T, want webhook", group.Receivers[2])
	}
}

func TestBuildActionGroupUnknownReceiver(t *testing.T) {
	resetActionGroupCreateFlags()
	actionGroupCreateFlags.name = "oncall"
	actionGroupCreateFlags.receivers = []string{"pager duty 123"}

	if _, err := buildActionGroup(); err == nil {
		t.Error("buildActionGroup() with an unknown receiver type should fail")
	}
}

func TestBuildActionGroupRequiresName(t *testing.T) {
	resetActionGroupCreateFlags()
	if _, err := buildActionGroup(); err == nil {
		t.Error("buildActionGroup() without --name should fail")
	}
}

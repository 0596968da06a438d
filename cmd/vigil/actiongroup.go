package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stratus-ops/vigil/pkg/cli"
	"github.com/stratus-ops/vigil/pkg/monitor/actions"
	"github.com/stratus-ops/vigil/pkg/monitor/models"
)

var actionGroupCmd = &cobra.Command{
	Use:   "action-group",
	Short: "Manage action groups",
}

var actionGroupCreateFlags struct {
	name      string
	shortName string
	disabled  bool
	receivers []string
}

var actionGroupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Assemble an action group document",
	Long: `Assemble an action group from typed receivers.

Each --receiver value starts with a type tag followed by its arguments:

  email NAME ADDRESS
  sms NAME COUNTRY_CODE PHONE_NUMBER
  webhook NAME URI

The type tag is case-sensitive.

Examples:
  vigil action-group create --name oncall \
    --receiver "email primary ops@example.com" \
    --receiver "sms pager 1 5551234567" \
    --receiver "webhook chat https://hooks.example.com/oncall"`,
	RunE: runActionGroupCreate,
}

func init() {
	rootCmd.AddCommand(actionGroupCmd)
	actionGroupCmd.AddCommand(actionGroupCreateCmd)

	f := actionGroupCreateCmd.Flags()
	f.StringVarP(&actionGroupCreateFlags.name, "name", "n", "", "action group name")
	f.StringVar(&actionGroupCreateFlags.shortName, "short-name", "", "short name included in notifications")
	f.BoolVar(&actionGroupCreateFlags.disabled, "disabled", false, "create the group disabled")
	f.StringArrayVar(&actionGroupCreateFlags.receivers, "receiver", nil, "receiver to add: \"TYPE NAME ARGS ...\" (repeatable)")
}

func runActionGroupCreate(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadRuntime()
	if err != nil {
		return err
	}

	group, err := buildActionGroup()
	if err != nil {
		return cli.NewCommandError("action-group create", err)
	}
	return renderDocument(cfg, group)
}

func buildActionGroup() (*models.ActionGroup, error) {
	if actionGroupCreateFlags.name == "" {
		return nil, fmt.Errorf("--name is required")
	}

	spec := &actions.ActionGroupSpec{}
	for _, raw := range actionGroupCreateFlags.receivers {
		if err := actions.ParseReceiver(spec, strings.Fields(raw), "--receiver"); err != nil {
			return nil, err
		}
	}

	return &models.ActionGroup{
		Name:      actionGroupCreateFlags.name,
		ShortName: actionGroupCreateFlags.shortName,
		Enabled:   !actionGroupCreateFlags.disabled,
		Receivers: spec.Receivers,
	}, nil
}

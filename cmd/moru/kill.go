package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/moru-ai/sdks/cmd/moru/internal/ui"
	"github.com/moru-ai/sdks/cmd/moru/internal/utils"
	"github.com/moru-ai/sdks/services"
)

var sandboxKillCmd = &cobra.Command{
	Use:     "kill <sandboxID>...",
	Aliases: []string{"kl"},
	Short:   "Kill one or more running sandboxes",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSandboxKill,
}

var killYes bool

func init() {
	sandboxKillCmd.Flags().BoolVarP(&killYes, "yes", "y", false, "skip the confirmation prompt")
}

// confirmKill asks before killing. It is replaced in tests.
var confirmKill = func(sandboxIDs []string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("refusing to kill without confirmation, re-run with --yes")
	}

	title := fmt.Sprintf("Kill sandbox %s?", sandboxIDs[0])
	if len(sandboxIDs) > 1 {
		title = fmt.Sprintf("Kill %d sandboxes?", len(sandboxIDs))
	}

	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Kill").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return confirmed, err
}

func runSandboxKill(cmd *cobra.Command, args []string) error {
	if !killYes {
		confirmed, err := confirmKill(args)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), ui.StyleDim.Render("Cancelled"))
			return nil
		}
	}

	api, err := loadSandboxAPI()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var errs []error
	for _, sandboxID := range args {
		err := api.Kill(cmd.Context(), sandboxID)
		switch {
		case err == nil:
			utils.LogDebug("killed sandbox %s", sandboxID)
			fmt.Fprintln(out, ui.StyleSuccess.Render(fmt.Sprintf("Sandbox %s has been killed", sandboxID)))
		case errors.Is(err, services.ErrSandboxNotFound):
			fmt.Fprintln(out, ui.StyleError.Render(fmt.Sprintf("Sandbox %s wasn't found", sandboxID)))
			errs = append(errs, err)
		default:
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

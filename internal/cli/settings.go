package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/watchfire-io/scratchpad/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show or change editor settings",
	Long: `Show the editor theme and font size.

Use the subcommands to change them:
  scratchpad settings theme vs-dark
  scratchpad settings font-size 18`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme [id]",
	Short: "Set the editor theme",
	Long:  "Set the editor theme. Without an argument, lists the available themes.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsTheme,
}

var settingsFontSizeCmd = &cobra.Command{
	Use:   "font-size <size>",
	Short: "Set the editor font size",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsFontSize,
}

func init() {
	settingsCmd.AddCommand(settingsFontSizeCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	state, err := openState()
	if err != nil {
		return err
	}

	prefs := state.LoadPreferences(lipgloss.HasDarkBackground())
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s %s\n",
		styleLabel.Render("Theme:    "),
		styleValue.Render(models.ThemeLabel(prefs.Theme)),
		styleHint.Render("("+prefs.Theme+")"))
	fmt.Fprintf(out, "%s %s\n",
		styleLabel.Render("Font size:"),
		styleValue.Render(strconv.Itoa(prefs.FontSize)))
	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, opt := range models.Themes() {
			fmt.Fprintf(out, "  %-9s %s\n", opt.Value, styleHint.Render(opt.Label))
		}
		return nil
	}

	theme := strings.TrimSpace(args[0])
	if !models.IsValidTheme(theme) {
		ids := make([]string, 0, len(models.Themes()))
		for _, opt := range models.Themes() {
			ids = append(ids, opt.Value)
		}
		return fmt.Errorf("unknown theme %q (expected one of: %s)", theme, strings.Join(ids, ", "))
	}

	state, err := openState()
	if err != nil {
		return err
	}
	if err := state.SaveTheme(theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	fmt.Fprintln(out, styleSuccess.Render("Theme set to "+models.ThemeLabel(theme)+"."))
	return nil
}

func runSettingsFontSize(cmd *cobra.Command, args []string) error {
	size, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || !models.IsValidFontSize(size) {
		return fmt.Errorf("invalid font size: %s (expected %d-%d)", args[0], models.MinFontSize, models.MaxFontSize)
	}

	state, err := openState()
	if err != nil {
		return err
	}
	if err := state.SaveFontSize(size); err != nil {
		return fmt.Errorf("failed to save font size: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render(fmt.Sprintf("Font size set to %d.", size)))
	return nil
}

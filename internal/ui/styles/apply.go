package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that runs after ApplyTheme updates
// colors. Components that cache styles at package level register here.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies the default colors, then the preset, then per-token
// overrides, and rebuilds every style.
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

func applyColors(colors map[ColorToken]string) {
	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:     &TextPrimaryColor,
		TokenTextSecondary:   &TextSecondaryColor,
		TokenTextMuted:       &TextMutedColor,
		TokenTextPlaceholder: &TextPlaceholderColor,

		TokenBorderDefault:   &BorderDefaultColor,
		TokenBorderFocus:     &BorderFocusColor,
		TokenBorderHighlight: &BorderHighlightColor,

		TokenStatusSuccess: &StatusSuccessColor,
		TokenStatusWarning: &StatusWarningColor,
		TokenStatusError:   &StatusErrorColor,

		TokenPickerSelected:       &PickerSelectedColor,
		TokenPickerHeader:         &PickerHeaderColor,
		TokenPickerCategoryActive: &PickerCategoryActiveColor,
		TokenPickerCategory:       &PickerCategoryColor,

		TokenButtonText:           &ButtonTextColor,
		TokenButtonPrimaryBg:      &ButtonPrimaryBgColor,
		TokenButtonPrimaryFocusBg: &ButtonPrimaryFocusBgColor,
		TokenButtonDangerBg:       &ButtonDangerBgColor,
		TokenButtonDangerFocusBg:  &ButtonDangerFocusBgColor,

		TokenTooltipBg:   &TooltipBgColor,
		TokenTooltipText: &TooltipTextColor,
		TokenTipBorder:   &TipBorderColor,
		TokenTipTitle:    &TipTitleColor,

		TokenOverlayTitle:  &OverlayTitleColor,
		TokenOverlayBorder: &OverlayBorderColor,

		TokenToastSuccess: &ToastSuccessColor,
		TokenToastError:   &ToastErrorColor,
		TokenToastInfo:    &ToastInfoColor,
	}

	for token, hex := range colors {
		if target, ok := targets[token]; ok {
			// Same color for both modes once a theme is applied.
			*target = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
}

func rebuildStyles() {
	baseButtonStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryFocusBgColor).
		Underline(true)

	DangerButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonDangerBgColor)

	DangerButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonDangerFocusBgColor).
		Underline(true)

	EmojiSlotStyle = lipgloss.NewStyle().Padding(0, 1)
	EmojiSlotSelectedStyle = EmojiSlotStyle.Background(PickerSelectedColor)
	CategoryHeaderStyle = lipgloss.NewStyle().Foreground(PickerHeaderColor).Bold(true)
	CategoryTabStyle = lipgloss.NewStyle().Foreground(PickerCategoryColor).Padding(0, 1)
	CategoryTabActiveStyle = CategoryTabStyle.Foreground(PickerCategoryActiveColor).Underline(true)
	NoResultsStyle = lipgloss.NewStyle().Foreground(TextMutedColor).Italic(true)
	PreviewNameStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).Bold(true)
	PreviewShortNameStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)

	AvatarStyle = lipgloss.NewStyle().Foreground(ButtonTextColor).Background(BorderHighlightColor).Bold(true)
	GroupCountStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).Background(BorderDefaultColor).Padding(0, 1)
	DraftNameStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).Bold(true)
	DraftTitleStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	DraftSelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(BorderHighlightColor)
	ActionButtonStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor).Padding(0, 1)
	ActionDeleteStyle = ActionButtonStyle.Foreground(StatusErrorColor)
	ActionFocusedStyle = ActionButtonStyle.Background(PickerSelectedColor)
	CheckboxStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	CheckboxLabelStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	CheckboxFocusedStyle = CheckboxStyle.Foreground(BorderHighlightColor).Bold(true)

	TooltipStyle = lipgloss.NewStyle().
		Foreground(TooltipTextColor).
		Background(TooltipBgColor).
		Padding(0, 1)
	TipStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(TipBorderColor).
		Padding(0, 1)
	TipTitleStyle = lipgloss.NewStyle().Foreground(TipTitleColor).Bold(true)

	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)

	for _, fn := range styleRebuilders {
		fn()
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}

package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"dracula":       DraculaPreset,
	"high-contrast": HighContrastPreset,
}

// DefaultPreset matches the AdaptiveColor Dark values in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default parley theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",

		TokenBorderDefault:   "#696969",
		TokenBorderFocus:     "#FFFFFF",
		TokenBorderHighlight: "#54A0FF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenPickerSelected:       "#1C58D9",
		TokenPickerHeader:         "#999999",
		TokenPickerCategoryActive: "#54A0FF",
		TokenPickerCategory:       "#696969",

		TokenButtonText:           "#FFFFFF",
		TokenButtonPrimaryBg:      "#1A5276",
		TokenButtonPrimaryFocusBg: "#3498DB",
		TokenButtonDangerBg:       "#922B21",
		TokenButtonDangerFocusBg:  "#E74C3C",

		TokenTooltipBg:   "#1F1F1F",
		TokenTooltipText: "#FFFFFF",
		TokenTipBorder:   "#1C58D9",
		TokenTipTitle:    "#FFFFFF",

		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
	},
}

// DraculaPreset uses the Dracula palette.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#F8F8F2",
		TokenTextSecondary:   "#BFBFBF",
		TokenTextMuted:       "#6272A4",
		TokenTextPlaceholder: "#6272A4",

		TokenBorderDefault:   "#44475A",
		TokenBorderFocus:     "#BD93F9",
		TokenBorderHighlight: "#8BE9FD",

		TokenStatusSuccess: "#50FA7B",
		TokenStatusWarning: "#F1FA8C",
		TokenStatusError:   "#FF5555",

		TokenPickerSelected:       "#6272A4",
		TokenPickerHeader:         "#BFBFBF",
		TokenPickerCategoryActive: "#FF79C6",
		TokenPickerCategory:       "#6272A4",

		TokenButtonText:           "#282A36",
		TokenButtonPrimaryBg:      "#BD93F9",
		TokenButtonPrimaryFocusBg: "#FF79C6",
		TokenButtonDangerBg:       "#FF5555",
		TokenButtonDangerFocusBg:  "#FF6E6E",

		TokenTooltipBg:   "#44475A",
		TokenTooltipText: "#F8F8F2",
		TokenTipBorder:   "#BD93F9",
		TokenTipTitle:    "#F8F8F2",

		TokenOverlayTitle:  "#F8F8F2",
		TokenOverlayBorder: "#BD93F9",

		TokenToastSuccess: "#50FA7B",
		TokenToastError:   "#FF5555",
		TokenToastInfo:    "#8BE9FD",
	},
}

// HighContrastPreset favors maximum legibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#C0C0C0",
		TokenTextPlaceholder: "#C0C0C0",

		TokenBorderDefault:   "#FFFFFF",
		TokenBorderFocus:     "#FFFF00",
		TokenBorderHighlight: "#00FFFF",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenPickerSelected:       "#0000FF",
		TokenPickerHeader:         "#FFFFFF",
		TokenPickerCategoryActive: "#FFFF00",
		TokenPickerCategory:       "#C0C0C0",

		TokenButtonText:           "#000000",
		TokenButtonPrimaryBg:      "#00FFFF",
		TokenButtonPrimaryFocusBg: "#FFFF00",
		TokenButtonDangerBg:       "#FF0000",
		TokenButtonDangerFocusBg:  "#FF8080",

		TokenTooltipBg:   "#000000",
		TokenTooltipText: "#FFFFFF",
		TokenTipBorder:   "#FFFF00",
		TokenTipTitle:    "#FFFFFF",

		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
	},
}

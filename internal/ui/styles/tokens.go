// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens are the keys users can override under theme.colors.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderFocus     ColorToken = "border.focus"
	TokenBorderHighlight ColorToken = "border.highlight"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Emoji picker
	TokenPickerSelected       ColorToken = "picker.selected"
	TokenPickerHeader         ColorToken = "picker.header"
	TokenPickerCategoryActive ColorToken = "picker.category.active"
	TokenPickerCategory       ColorToken = "picker.category"

	// Buttons
	TokenButtonText           ColorToken = "button.text"
	TokenButtonPrimaryBg      ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg ColorToken = "button.primary.focus"
	TokenButtonDangerBg       ColorToken = "button.danger.bg"
	TokenButtonDangerFocusBg  ColorToken = "button.danger.focus"

	// Tooltips and tutorial tips
	TokenTooltipBg   ColorToken = "tooltip.bg"
	TokenTooltipText ColorToken = "tooltip.text"
	TokenTipBorder   ColorToken = "tip.border"
	TokenTipTitle    ColorToken = "tip.title"

	// Overlays
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
)

// AllTokens returns every valid color token.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary, TokenTextSecondary, TokenTextMuted, TokenTextPlaceholder,
		TokenBorderDefault, TokenBorderFocus, TokenBorderHighlight,
		TokenStatusSuccess, TokenStatusWarning, TokenStatusError,
		TokenPickerSelected, TokenPickerHeader, TokenPickerCategoryActive, TokenPickerCategory,
		TokenButtonText, TokenButtonPrimaryBg, TokenButtonPrimaryFocusBg,
		TokenButtonDangerBg, TokenButtonDangerFocusBg,
		TokenTooltipBg, TokenTooltipText, TokenTipBorder, TokenTipTitle,
		TokenOverlayTitle, TokenOverlayBorder,
		TokenToastSuccess, TokenToastError, TokenToastInfo,
	}
}

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"}
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"}

	// Borders
	BorderDefaultColor   = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#696969"}
	BorderFocusColor     = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	BorderHighlightColor = lipgloss.AdaptiveColor{Light: "#1C58D9", Dark: "#54A0FF"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#D49B00", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#D24B4E", Dark: "#FF8787"}

	// Emoji picker
	PickerSelectedColor       = lipgloss.AdaptiveColor{Light: "#C9D9F6", Dark: "#1C58D9"}
	PickerHeaderColor         = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	PickerCategoryActiveColor = lipgloss.AdaptiveColor{Light: "#1C58D9", Dark: "#54A0FF"}
	PickerCategoryColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"}

	// Buttons
	ButtonTextColor           = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor      = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonDangerBgColor       = lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#922B21"}
	ButtonDangerFocusBgColor  = lipgloss.AdaptiveColor{Light: "#E74C3C", Dark: "#E74C3C"}

	// Tooltips and tips
	TooltipBgColor   = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#1F1F1F"}
	TooltipTextColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	TipBorderColor   = lipgloss.AdaptiveColor{Light: "#1C58D9", Dark: "#1C58D9"}
	TipTitleColor    = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#FFFFFF"}

	// Overlays
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#8C8C8C"}

	// Toasts
	ToastSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastErrorColor   = lipgloss.AdaptiveColor{Light: "#D24B4E", Dark: "#FF8787"}
	ToastInfoColor    = lipgloss.AdaptiveColor{Light: "#1C58D9", Dark: "#54A0FF"}
)

// Styles derived from the colors above. lipgloss.Style captures colors at
// creation time, so rebuildStyles recreates them after a theme change.
var (
	baseButtonStyle lipgloss.Style

	PrimaryButtonStyle        lipgloss.Style
	PrimaryButtonFocusedStyle lipgloss.Style
	DangerButtonStyle         lipgloss.Style
	DangerButtonFocusedStyle  lipgloss.Style

	// Emoji grid
	EmojiSlotStyle         lipgloss.Style
	EmojiSlotSelectedStyle lipgloss.Style
	CategoryHeaderStyle    lipgloss.Style
	CategoryTabStyle       lipgloss.Style
	CategoryTabActiveStyle lipgloss.Style
	NoResultsStyle         lipgloss.Style
	PreviewNameStyle       lipgloss.Style
	PreviewShortNameStyle  lipgloss.Style

	// Drafts and composer
	AvatarStyle          lipgloss.Style
	GroupCountStyle      lipgloss.Style
	DraftNameStyle       lipgloss.Style
	DraftTitleStyle      lipgloss.Style
	DraftSelectedStyle   lipgloss.Style
	ActionButtonStyle    lipgloss.Style
	ActionDeleteStyle    lipgloss.Style
	ActionFocusedStyle   lipgloss.Style
	CheckboxStyle        lipgloss.Style
	CheckboxLabelStyle   lipgloss.Style
	CheckboxFocusedStyle lipgloss.Style

	TooltipStyle  lipgloss.Style
	TipStyle      lipgloss.Style
	TipTitleStyle lipgloss.Style

	MutedStyle       lipgloss.Style
	PlaceholderStyle lipgloss.Style
	ErrorStyle       lipgloss.Style
)

func init() {
	rebuildStyles()
}

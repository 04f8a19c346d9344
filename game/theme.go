package game

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Background colors
	BackgroundColor string
	ArenaColor      string

	// Arena border
	BorderColor     string
	BorderWarnColor string
	BorderWidth     float64

	// Entity colors
	PlayerColor       string
	PlayerActiveColor string
	EnemyColor        string

	// UI/HUD colors
	HUDColor           string
	TextPrimaryColor   string
	TextSecondaryColor string
	OverlayVeilColor   string
	FallbackIconColor  string

	// Fonts
	HUDFont      string
	TitleFont    string
	TextFont     string
	InstructFont string
}{
	// Dark page, slightly lighter arena
	BackgroundColor: "#111",
	ArenaColor:      "#1a1a1a",

	BorderColor:     "#3a3a3a",
	BorderWarnColor: "#F43",
	BorderWidth:     3.0,

	// Player blue, enemies red
	PlayerColor:       "#48F",
	PlayerActiveColor: "#8CF",
	EnemyColor:        "#F43",

	HUDColor:           "#9F0",
	TextPrimaryColor:   "#FFF",
	TextSecondaryColor: "#999",
	OverlayVeilColor:   "rgba(0,0,0,.55)",
	FallbackIconColor:  "#48F",

	HUDFont:      "16px Consolas,monospace",
	TitleFont:    "bold 42px Consolas,monospace",
	TextFont:     "bold 28px Consolas,monospace",
	InstructFont: "16px sans-serif",
}

package cli

import "github.com/charmbracelet/lipgloss"

// Logo contains the ASCII art for the application
const Logo = `░█▀▀░█▀█░█▀▀░█▀▀░█▀▀░█▀█░█▀▄░█▀▀░█▀▀
░█░░░█▀█░▀▀█░█▀▀░█▀▀░█░█░█▀▄░█░█░█▀▀
░▀▀▀░▀░▀░▀▀▀░▀▀▀░▀░░░▀▀▀░▀░▀░▀▀▀░▀▀▀`

// Theme defines the Ember color palette for the entire application
var Theme = struct {
	// Primary colors - Ember theme
	Primary       lipgloss.Color // Main brand color (Amber 400) #FBBF24
	PrimaryDark   lipgloss.Color // Darker variant (Amber 500) #F59E0B
	PrimaryStrong lipgloss.Color // Strong variant (Orange 500) #F97316
	PrimaryLight  lipgloss.Color // Light variant (Amber 300) #FCD34D

	// Semantic colors - case types
	Success lipgloss.Color // positive - Emerald 400 #34D399
	Error   lipgloss.Color // negative - Rose 400 #FB7185
	Warning lipgloss.Color // edge-case - Amber 400 #FBBF24
	Info    lipgloss.Color // metadata - Sky Blue 400 #38BDF8

	// Text colors - readable hierarchy
	Text       lipgloss.Color // Primary text (Slate 50) #F8FAFC
	TextMuted  lipgloss.Color // Secondary text (Slate 300) #CBD5E1
	TextSubtle lipgloss.Color // Muted text (Slate 400) #94A3B8
	Gray       lipgloss.Color // Subtle text (Slate 500) #64748B

	// Background and border colors
	BgCode        lipgloss.Color // Code background (Slate 800) #1E293B
	BorderSubtle  lipgloss.Color // Subtle border (Slate 700) #334155
	BorderDefault lipgloss.Color // Default border (Slate 600) #475569

	// Gradients
	LogoGradient []string // Amber progression for logo
}{
	// Primary - Ember
	Primary:       lipgloss.Color("#FBBF24"), // Amber 400
	PrimaryDark:   lipgloss.Color("#F59E0B"), // Amber 500
	PrimaryStrong: lipgloss.Color("#F97316"), // Orange 500
	PrimaryLight:  lipgloss.Color("#FCD34D"), // Amber 300

	// Semantic - case types
	Success: lipgloss.Color("#34D399"), // positive - Emerald 400
	Error:   lipgloss.Color("#FB7185"), // negative - Rose 400
	Warning: lipgloss.Color("#FBBF24"), // edge-case - Amber 400
	Info:    lipgloss.Color("#38BDF8"), // metadata - Sky Blue 400

	// Text - hierarchy
	Text:       lipgloss.Color("#F8FAFC"), // Slate 50
	TextMuted:  lipgloss.Color("#CBD5E1"), // Slate 300
	TextSubtle: lipgloss.Color("#94A3B8"), // Slate 400
	Gray:       lipgloss.Color("#64748B"), // Slate 500

	// Backgrounds and borders
	BgCode:        lipgloss.Color("#1E293B"), // Slate 800
	BorderSubtle:  lipgloss.Color("#334155"), // Slate 700
	BorderDefault: lipgloss.Color("#475569"), // Slate 600

	// Gradients
	LogoGradient: []string{
		"#F97316", // Orange 500
		"#F59E0B", // Amber 500
		"#FBBF24", // Amber 400
		"#FCD34D", // Amber 300
	},
}

// TypeColor maps a test-case type label to its display color.
func TypeColor(caseType string) lipgloss.Color {
	switch caseType {
	case "positive":
		return Theme.Success
	case "negative":
		return Theme.Error
	default:
		return Theme.Warning
	}
}

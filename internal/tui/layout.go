package tui

// Minimum terminal dimensions
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 20
)

// Layout holds the rows and columns of the gallery chrome.
type Layout struct {
	// Header: title line plus the page tabs.
	HeaderHeight int
	// Body is where the widgets of the current page are stacked.
	BodyTop    int
	BodyLeft   int
	BodyWidth  int
	BodyHeight int
	// Bottom bars
	StatusHeight int
	HelpHeight   int
}

// CalculateLayout computes the gallery regions for a terminal. The full
// help takes three lines, the short help one.
func CalculateLayout(termWidth, termHeight int, fullHelp bool) Layout {
	l := Layout{
		HeaderHeight: 2,
		StatusHeight: 1,
		HelpHeight:   1,
		BodyLeft:     2,
	}
	if fullHelp {
		l.HelpHeight = 3
	}
	l.BodyTop = l.HeaderHeight + 1

	l.BodyHeight = termHeight - l.BodyTop - l.StatusHeight - l.HelpHeight
	if l.BodyHeight < 0 {
		l.BodyHeight = 0
	}
	l.BodyWidth = termWidth - 2*l.BodyLeft
	if l.BodyWidth < 0 {
		l.BodyWidth = 0
	}
	return l
}

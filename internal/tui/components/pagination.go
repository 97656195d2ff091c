package components

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// maxVisiblePages is how many page tokens fit before the window collapses.
const maxVisiblePages = 7

// PageToken is one entry of a pagination window: a page number or an
// ellipsis standing for an elided range.
type PageToken struct {
	Page int
}

// Ellipsis is the non-interactive gap marker.
var Ellipsis = PageToken{}

// IsEllipsis reports whether t is the gap marker.
func (t PageToken) IsEllipsis() bool {
	return t.Page == 0
}

func (t PageToken) String() string {
	if t.IsEllipsis() {
		return "..."
	}
	return strconv.Itoa(t.Page)
}

// ComputeWindow returns the page tokens shown for count pages with page
// current. Up to seven pages are listed in full; beyond that the first and
// last page stay visible around the current neighbourhood.
func ComputeWindow(count, page int) []PageToken {
	var tokens []PageToken
	pages := func(from, to int) {
		for i := from; i <= to; i++ {
			tokens = append(tokens, PageToken{Page: i})
		}
	}

	switch {
	case count <= maxVisiblePages:
		pages(1, count)
	case page <= 4:
		pages(1, 5)
		tokens = append(tokens, Ellipsis, PageToken{Page: count})
	case page >= count-3:
		tokens = append(tokens, PageToken{Page: 1}, Ellipsis)
		pages(count-4, count)
	default:
		tokens = append(tokens, PageToken{Page: 1}, Ellipsis)
		pages(page-1, page+1)
		tokens = append(tokens, Ellipsis, PageToken{Page: count})
	}
	return tokens
}

var (
	pageStyle         = lipgloss.NewStyle().Padding(0, 1)
	pageActiveStyle   = pageStyle.Background(theme.Orange).Foreground(theme.White).Bold(true)
	pageDisabledStyle = pageStyle.Foreground(theme.Neutral25)
)

// PaginationProps configure a Pagination. Count and Page are owned by the
// caller and re-supplied after OnPageChange.
type PaginationProps struct {
	Count        int
	Page         int
	Disabled     bool
	OnPageChange func(page int)
	Lang         string
}

// Pagination is a page navigator with first, previous, next and last
// buttons around a collapsing window of page numbers.
type Pagination struct {
	frame
	props   PaginationProps
	tr      *locale.Translator
	focused bool
}

// Hit region ids.
const (
	pageFirstID = "first"
	pagePrevID  = "prev"
	pageNextID  = "next"
	pageLastID  = "last"
	pageNumID   = "page"
)

// NewPagination creates a pagination widget.
func NewPagination(props PaginationProps) *Pagination {
	return &Pagination{
		frame: newFrame(),
		props: props,
		tr:    locale.New(props.Lang),
	}
}

// SetPage re-supplies the current page.
func (p *Pagination) SetPage(page int) {
	p.props.Page = page
}

// SetCount re-supplies the page total.
func (p *Pagination) SetCount(count int) {
	p.props.Count = count
}

// Page returns the page currently supplied by the caller.
func (p *Pagination) Page() int {
	return p.props.Page
}

// SetDisabled toggles every button at once.
func (p *Pagination) SetDisabled(disabled bool) {
	p.props.Disabled = disabled
}

func (p *Pagination) Focus()        { p.focused = true }
func (p *Pagination) Blur()         { p.focused = false }
func (p *Pagination) Focused() bool { return p.focused }

func (p *Pagination) atStart() bool { return p.props.Page <= 1 }
func (p *Pagination) atEnd() bool   { return p.props.Page >= p.props.Count }

// request asks the caller for page. Out of range pages are never sent.
func (p *Pagination) request(page int) {
	if p.props.Disabled || page < 1 || page > p.props.Count {
		return
	}
	if p.props.OnPageChange != nil {
		p.props.OnPageChange(page)
	}
}

// Update handles Bubble Tea messages
func (p *Pagination) Update(msg tea.Msg) (*Pagination, tea.Cmd) {
	if p.props.Disabled {
		return p, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch msg.String() {
		case "left", "h":
			if !p.atStart() {
				p.request(p.props.Page - 1)
			}
		case "right", "l":
			if !p.atEnd() {
				p.request(p.props.Page + 1)
			}
		case "home":
			if !p.atStart() {
				p.request(1)
			}
		case "end":
			if !p.atEnd() {
				p.request(p.props.Count)
			}
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return p, nil
		}
		r := p.hit(msg)
		if r == nil {
			return p, nil
		}
		switch r.ID {
		case pageFirstID:
			p.request(1)
		case pagePrevID:
			p.request(p.props.Page - 1)
		case pageNextID:
			p.request(p.props.Page + 1)
		case pageLastID:
			p.request(p.props.Count)
		case pageNumID:
			p.request(targetIndex(r))
		}
	}

	return p, nil
}

// View renders the pagination bar
func (p *Pagination) View() string {
	c := p.draw()
	disabled := p.props.Disabled

	nav := func(id, glyph, titleID string, off bool) {
		if off {
			c.text(pageDisabledStyle.Render(glyph))
			return
		}
		c.region(id, pageStyle.Render(glyph), target{title: p.tr.T(titleID)})
	}

	nav(pageFirstID, "«", locale.PageFirst, disabled || p.atStart())
	nav(pagePrevID, "‹", locale.PagePrev, disabled || p.atStart())

	for _, tok := range ComputeWindow(p.props.Count, p.props.Page) {
		switch {
		case tok.IsEllipsis():
			c.text(pageDisabledStyle.Render(tok.String()))
		case disabled:
			c.text(pageDisabledStyle.Render(tok.String()))
		case tok.Page == p.props.Page:
			style := pageActiveStyle
			if p.focused {
				style = style.Underline(true)
			}
			c.region(pageNumID, style.Render(tok.String()), target{index: tok.Page, title: tok.String()})
		default:
			c.region(pageNumID, pageStyle.Render(tok.String()), target{index: tok.Page, title: tok.String()})
		}
	}

	nav(pageNextID, "›", locale.PageNext, disabled || p.atEnd())
	nav(pageLastID, "»", locale.PageLast, disabled || p.atEnd())

	return p.measure(c.String())
}

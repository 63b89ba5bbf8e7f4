package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

// Card is a selectable card in a vertical card list: an icon, a title,
// an optional description, and an optional trailing tag (e.g. the
// Review/Start label on roadmap cards).
type Card struct {
	Icon  string
	Title string
	Desc  string
	Tag   string
	Done  bool
}

// CardList is a vertical list of selectable cards, the terminal
// rendition of the level/style/topic card grids.
type CardList struct {
	Cards    []Card
	Selected int
	Chosen   int // index of the card marked selected after activation, -1 for none
}

// NewCardList creates a card list with the cursor on the first card.
func NewCardList(cards []Card) CardList {
	return CardList{Cards: cards, Chosen: -1}
}

// Update handles keyboard navigation and activation.
func (c CardList) Update(msg tea.Msg) (CardList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Cards)-1 {
			c.Selected++
		}
	case "enter":
		if c.Selected >= 0 && c.Selected < len(c.Cards) {
			c.Chosen = c.Selected
		}
	}

	return c, nil
}

// View renders the card list.
func (c CardList) View(width int) string {
	var s string
	for i, card := range c.Cards {
		s += c.renderCard(card, i, width) + "\n"
	}
	return s
}

func (c CardList) renderCard(card Card, idx, width int) string {
	cursor := "  "
	if idx == c.Selected {
		cursor = "▸ "
	}

	icon := card.Icon
	if card.Done {
		icon = "✅"
	}

	title := card.Title
	if card.Tag != "" {
		title = fmt.Sprintf("%s  [%s]", title, card.Tag)
	}

	line := fmt.Sprintf("%s%s %s", cursor, icon, title)

	titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if idx == c.Selected {
		titleStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	} else if idx == c.Chosen {
		titleStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	}

	out := titleStyle.Render(line)
	if card.Desc != "" {
		descWidth := width - 8
		if descWidth < 20 {
			descWidth = 20
		}
		out += "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(descWidth).
			PaddingLeft(5).
			Render(card.Desc)
	}
	return out
}

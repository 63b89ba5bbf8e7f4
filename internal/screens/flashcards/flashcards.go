// Package flashcards implements the flashcard review screen: a deck of
// two-sided cards for the current topic. The server awards XP for a
// review session, so the XP total is refreshed after the deck loads.
package flashcards

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/markdown"
	"github.com/learnsphere/learnsphere-cli/internal/router"
	"github.com/learnsphere/learnsphere-cli/internal/screen"
	"github.com/learnsphere/learnsphere-cli/internal/state"
	"github.com/learnsphere/learnsphere-cli/internal/ui/components"
	"github.com/learnsphere/learnsphere-cli/internal/ui/layout"
	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

type deckMsg struct {
	ReqID int
	Cards []api.Flashcard
	Err   error
}

type xpRefreshMsg struct {
	TotalXP int
	Err     error
}

// FlashcardsScreen pages through the deck one card at a time, flipping
// between front and back.
type FlashcardsScreen struct {
	client *api.Client
	store  *state.Store

	loader  components.Loader
	loading bool
	reqID   int
	errMsg  string

	cards   []api.Flashcard
	current int
	flipped bool
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)

// New creates the flashcards screen.
func New(client *api.Client, store *state.Store) *FlashcardsScreen {
	return &FlashcardsScreen{client: client, store: store}
}

func (f *FlashcardsScreen) Init() tea.Cmd {
	f.errMsg = ""
	f.current = 0
	f.flipped = false
	return f.fetch()
}

func (f *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (f *FlashcardsScreen) KeyHints() []layout.KeyHint {
	if f.loading {
		return nil
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←/→", Description: "Card"},
		{Key: "Esc", Description: "Back to results"},
	}
}

func (f *FlashcardsScreen) fetch() tea.Cmd {
	topic := f.store.CurrentTopicTitle()
	if topic == "" {
		f.errMsg = "Pick a topic first."
		return nil
	}
	f.loading = true
	f.reqID++
	id := f.reqID
	level := f.store.Level()

	f.loader = components.NewLoader("Shuffling your flashcards...")
	return tea.Batch(f.loader.Init(), func() tea.Msg {
		cards, err := f.client.Flashcards(context.Background(), topic, level)
		return deckMsg{ReqID: id, Cards: cards, Err: err}
	})
}

// refreshXP pulls the authoritative XP total after the server granted
// the review bonus.
func (f *FlashcardsScreen) refreshXP() tea.Cmd {
	return func() tea.Msg {
		p, err := f.client.Progress(context.Background())
		if err != nil {
			return xpRefreshMsg{Err: err}
		}
		return xpRefreshMsg{TotalXP: p.XP}
	}
}

func (f *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deckMsg:
		if msg.ReqID != f.reqID {
			return f, nil
		}
		f.loading = false
		if msg.Err != nil {
			f.errMsg = "Could not build flashcards. Press Esc to go back."
			return f, nil
		}
		f.cards = msg.Cards
		f.current = 0
		f.flipped = false
		return f, f.refreshXP()

	case xpRefreshMsg:
		if msg.Err == nil {
			f.store.SetXP(msg.TotalXP)
		}
		return f, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "space", "enter":
			f.flipped = !f.flipped
		case "left", "h":
			if f.current > 0 {
				f.current--
				f.flipped = false
			}
		case "right", "l":
			if f.current < len(f.cards)-1 {
				f.current++
				f.flipped = false
			}
		case "esc":
			return f, router.GoTo(router.SectionFeedback)
		}
		return f, nil
	}

	if f.loading {
		var cmd tea.Cmd
		f.loader, cmd = f.loader.Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f *FlashcardsScreen) View(width, height int) string {
	if f.loading {
		return f.loader.View(width, height)
	}
	if f.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(f.errMsg))
	}
	if len(f.cards) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No flashcards."))
	}

	card := f.cards[f.current]
	cardWidth := min(width-10, 60)

	face := card.Front
	faceLabel := "Front"
	border := theme.Primary
	if f.flipped {
		face = card.Back
		faceLabel = "Back"
		border = theme.Secondary
	}

	emoji := card.Emoji
	if emoji == "" {
		emoji = "🃏"
	}

	inner := lipgloss.JoinVertical(lipgloss.Center,
		emoji,
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Width(cardWidth-6).Align(lipgloss.Center).
			Render(markdown.RenderInline(face)),
	)

	cardBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(theme.BgCard).
		Padding(1, 2).
		Width(cardWidth).
		Render(inner)

	counter := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · card %d of %d · space to flip", faceLabel, f.current+1, len(f.cards)))

	body := lipgloss.JoinVertical(lipgloss.Center, cardBox, "", counter)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

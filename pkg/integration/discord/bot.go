package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mklimuk/expedition-pilot/pkg/ai"
	"github.com/mklimuk/expedition-pilot/pkg/countdown"
	"github.com/mklimuk/expedition-pilot/pkg/itinerary"
	"github.com/mklimuk/expedition-pilot/pkg/state"
)

// Bot wraps the Discord session and dependencies
type Bot struct {
	Session   *discordgo.Session
	Text      ai.Generator
	Store     *state.Store
	Countdown *countdown.Ticker
	Missions  []itinerary.DayMission
}

// NewBot creates a new Discord bot
func NewBot(token string, textGen ai.Generator, store *state.Store, ticker *countdown.Ticker, missions []itinerary.DayMission) (*Bot, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	bot := &Bot{
		Session:   dg,
		Text:      textGen,
		Store:     store,
		Countdown: ticker,
		Missions:  missions,
	}

	dg.AddHandler(bot.messageCreate)

	return bot, nil
}

// Start opens the websocket connection
func (b *Bot) Start() error {
	return b.Session.Open()
}

// Stop closes the websocket connection
func (b *Bot) Stop() error {
	return b.Session.Close()
}

func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from self
	if m.Author.ID == s.State.User.ID {
		return
	}

	if strings.HasPrefix(m.Content, "!brief ") {
		question := strings.TrimPrefix(m.Content, "!brief ")
		b.handleBrief(s, m, question)
	} else if m.Content == "!status" {
		b.handleStatus(s, m)
	}
}

func (b *Bot) handleBrief(s *discordgo.Session, m *discordgo.MessageCreate, question string) {
	briefing := ai.GetBriefing(context.Background(), b.Text, question)
	s.ChannelMessageSend(m.ChannelID, briefing.Text)
}

func (b *Bot) handleStatus(s *discordgo.Session, m *discordgo.MessageCreate) {
	snap := b.Countdown.Current()
	msg := fmt.Sprintf("Operational readiness %d%% | T-minus %dd %dh %dm",
		itinerary.Progress(b.Missions, b.Store.Completed()), snap.Days, snap.Hours, snap.Mins)
	s.ChannelMessageSend(m.ChannelID, msg)
}

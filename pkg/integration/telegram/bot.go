package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mklimuk/expedition-pilot/pkg/ai"
	"github.com/mklimuk/expedition-pilot/pkg/countdown"
	"github.com/mklimuk/expedition-pilot/pkg/itinerary"
	"github.com/mklimuk/expedition-pilot/pkg/state"
)

// Bot lets the trip group query the assistant and the readiness state from
// their Telegram chat.
type Bot struct {
	API       *tgbotapi.BotAPI
	Text      ai.Generator
	Store     *state.Store
	Countdown *countdown.Ticker
	Missions  []itinerary.DayMission
	stopCh    chan struct{}
}

// NewBot creates a new Telegram bot
func NewBot(token string, textGen ai.Generator, store *state.Store, ticker *countdown.Ticker, missions []itinerary.DayMission) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("error creating Telegram bot: %w", err)
	}

	return &Bot{
		API:       api,
		Text:      textGen,
		Store:     store,
		Countdown: ticker,
		Missions:  missions,
		stopCh:    make(chan struct{}),
	}, nil
}

// Start begins polling for updates in a goroutine
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.API.GetUpdatesChan(u)

	go func() {
		for {
			select {
			case <-b.stopCh:
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				if update.Message != nil {
					b.handleMessage(update.Message)
				}
			}
		}
	}()

	return nil
}

// Stop stops polling for updates
func (b *Bot) Stop() {
	close(b.stopCh)
	b.API.StopReceivingUpdates()
}

// ParseCommand splits a message into a known command and its content.
// Unknown input comes back with an empty command.
func ParseCommand(text string) (cmd, content string) {
	if strings.HasPrefix(text, "/brief ") {
		return "/brief", strings.TrimPrefix(text, "/brief ")
	}
	if text == "/status" {
		return "/status", ""
	}
	return "", text
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	switch cmd, content := ParseCommand(msg.Text); cmd {
	case "/brief":
		b.handleBrief(msg, content)
	case "/status":
		b.handleStatus(msg)
	}
}

func (b *Bot) handleBrief(msg *tgbotapi.Message, question string) {
	briefing := ai.GetBriefing(context.Background(), b.Text, question)
	reply := tgbotapi.NewMessage(msg.Chat.ID, briefing.Text)
	if _, err := b.API.Send(reply); err != nil {
		log.Printf("Failed to send Telegram briefing reply: %v", err)
	}
}

func (b *Bot) handleStatus(msg *tgbotapi.Message) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, StatusLine(b.Missions, b.Store.Completed(), b.Countdown.Current()))
	if _, err := b.API.Send(reply); err != nil {
		log.Printf("Failed to send Telegram status reply: %v", err)
	}
}

// StatusLine formats the readiness and countdown summary for the chat.
func StatusLine(missions []itinerary.DayMission, done map[string]bool, snap countdown.Snapshot) string {
	return fmt.Sprintf("Operational readiness %d%% | T-minus %dd %dh %dm",
		itinerary.Progress(missions, done), snap.Days, snap.Hours, snap.Mins)
}

// Package bot implements the conversation: the menu, the support link and
// the once-a-day reading per topic.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tarot-telegram-bot/cards"
	"tarot-telegram-bot/catalog"
	"tarot-telegram-bot/reading"
)

// Markup selects the keyboard attached to an outgoing message.
type Markup int

const (
	NoMarkup Markup = iota
	MenuMarkup
	SupportMarkup
)

// Message is one outgoing message. When PhotoPath is set the message is a
// photo and Text is its caption.
type Message struct {
	ChatID    int64
	Text      string
	HTML      bool
	Markup    Markup
	PhotoPath string
}

// Update is the part of an incoming message the bot acts on.
type Update struct {
	ChatID int64
	UserID int64
	Text   string
}

// Sender delivers messages to Telegram.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Catalog lists drawable card images.
type Catalog interface {
	Dir() string
	Exists() bool
	List() ([]catalog.Item, error)
}

// Gate enforces the daily quota.
type Gate interface {
	MayUse(ctx context.Context, userID int64, topic string) (bool, error)
	TryUse(ctx context.Context, userID int64, topic string) (bool, error)
	SecondsToReset() int
	Override() bool
}

// Composer writes the reading text.
type Composer interface {
	Compose(topic reading.Topic, label string) reading.Narrative
}

// Recorder receives counters about served requests.
type Recorder interface {
	ReadingServed(topic string, took time.Duration)
	QuotaDenied(topic string)
	EmptyCatalog()
	StorageError()
	SetCatalogItems(n int)
}

// Rand picks the card. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type nopRecorder struct{}

func (nopRecorder) ReadingServed(string, time.Duration) {}
func (nopRecorder) QuotaDenied(string)                  {}
func (nopRecorder) EmptyCatalog()                       {}
func (nopRecorder) StorageError()                       {}
func (nopRecorder) SetCatalogItems(int)                 {}

// Handler routes updates.
type Handler struct {
	sender   Sender
	catalog  Catalog
	gate     Gate
	composer Composer
	recorder Recorder

	mu  sync.Mutex
	rng Rand

	revealDelay time.Duration
}

// Option configures a Handler.
type Option func(*Handler)

// WithRecorder sets the metrics sink.
func WithRecorder(r Recorder) Option {
	return func(h *Handler) {
		if r != nil {
			h.recorder = r
		}
	}
}

// WithRevealDelay sets the pause before the photo and before the text.
func WithRevealDelay(d time.Duration) Option {
	return func(h *Handler) {
		h.revealDelay = d
	}
}

// NewHandler creates a handler.
func NewHandler(sender Sender, cat Catalog, gate Gate, composer Composer, rng Rand, opts ...Option) *Handler {
	h := &Handler{
		sender:      sender,
		catalog:     cat,
		gate:        gate,
		composer:    composer,
		recorder:    nopRecorder{},
		rng:         rng,
		revealDelay: 350 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle processes one incoming text message. Errors are logged here with
// the request id and also returned.
func (h *Handler) Handle(ctx context.Context, u Update) error {
	log := slog.With("request_id", uuid.NewString(), "user_id", u.UserID, "chat_id", u.ChatID)

	text := strings.TrimSpace(u.Text)
	log.Debug("received message", "text", text)

	var err error
	switch {
	case text == "/start" || strings.HasPrefix(text, "/start "):
		err = h.handleStart(ctx, u.ChatID)
	case text == "/debug":
		err = h.handleDebug(ctx, u.ChatID)
	case text == BtnSupport:
		err = h.sender.Send(ctx, Message{ChatID: u.ChatID, Text: supportText, Markup: SupportMarkup})
	default:
		topic, ok := topicFor(text)
		if !ok {
			err = h.sender.Send(ctx, Message{ChatID: u.ChatID, Text: MenuPlaceholder, Markup: MenuMarkup})
			break
		}
		err = h.handleReading(ctx, log, u, topic)
	}

	if err != nil {
		log.Error("failed to handle message", "text", text, "error", err)
	}
	return err
}

func (h *Handler) handleStart(ctx context.Context, chatID int64) error {
	return h.sender.Send(ctx, Message{
		ChatID: chatID,
		Text:   formatStart(h.gate.Override()),
		HTML:   true,
		Markup: MenuMarkup,
	})
}

func (h *Handler) handleDebug(ctx context.Context, chatID int64) error {
	items, err := h.catalog.List()
	if err != nil {
		return fmt.Errorf("list cards: %w", err)
	}
	return h.sender.Send(ctx, Message{
		ChatID: chatID,
		Text:   formatDebug(h.catalog.Dir(), h.catalog.Exists(), len(items), h.gate.Override()),
		HTML:   true,
	})
}

func (h *Handler) handleReading(ctx context.Context, log *slog.Logger, u Update, topic reading.Topic) error {
	start := time.Now()
	log = log.With("topic", string(topic))

	ok, err := h.gate.MayUse(ctx, u.UserID, string(topic))
	if err != nil {
		h.recorder.StorageError()
		return err
	}
	if !ok {
		return h.denied(ctx, log, u.ChatID, topic)
	}

	items, err := h.catalog.List()
	if err != nil {
		return fmt.Errorf("list cards: %w", err)
	}
	h.recorder.SetCatalogItems(len(items))
	if len(items) == 0 {
		h.recorder.EmptyCatalog()
		log.Warn("no cards to draw from", "dir", h.catalog.Dir())
		return h.sender.Send(ctx, Message{
			ChatID: u.ChatID,
			Text:   formatEmptyCatalog(h.catalog.Dir()),
			HTML:   true,
			Markup: MenuMarkup,
		})
	}

	claimed, err := h.gate.TryUse(ctx, u.UserID, string(topic))
	if err != nil {
		h.recorder.StorageError()
		return err
	}
	if !claimed {
		return h.denied(ctx, log, u.ChatID, topic)
	}

	item := items[h.intN(len(items))]
	label, rule := cards.ResolveRule(item.Stem)
	log.Debug("card drawn", "file", item.Path, "card", label, "rule", rule, "major", cards.IsMajor(label))

	if err := h.sender.Send(ctx, Message{ChatID: u.ChatID, Text: formatDrawing(topic), Markup: MenuMarkup}); err != nil {
		return fmt.Errorf("send header: %w", err)
	}
	if err := h.pause(ctx); err != nil {
		return err
	}

	photo := Message{ChatID: u.ChatID, Text: formatCaption(label), HTML: true, PhotoPath: item.Path}
	if err := h.sender.Send(ctx, photo); err != nil {
		return fmt.Errorf("send photo: %w", err)
	}
	if err := h.pause(ctx); err != nil {
		return err
	}

	narrative := h.composer.Compose(topic, label)
	if err := h.sender.Send(ctx, Message{ChatID: u.ChatID, Text: narrative.String(), Markup: MenuMarkup}); err != nil {
		return fmt.Errorf("send reading: %w", err)
	}

	h.recorder.ReadingServed(string(topic), time.Since(start))
	log.Info("reading served", "card", label)
	return nil
}

func (h *Handler) denied(ctx context.Context, log *slog.Logger, chatID int64, topic reading.Topic) error {
	h.recorder.QuotaDenied(string(topic))
	seconds := h.gate.SecondsToReset()
	log.Info("quota exhausted", "seconds_to_reset", seconds)
	return h.sender.Send(ctx, Message{ChatID: chatID, Text: formatWait(topic, seconds), Markup: MenuMarkup})
}

func (h *Handler) intN(n int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rng.IntN(n)
}

func (h *Handler) pause(ctx context.Context) error {
	if h.revealDelay <= 0 {
		return nil
	}
	t := time.NewTimer(h.revealDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

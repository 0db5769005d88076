package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/parley/internal/emoji"
	"github.com/zjrosen/parley/internal/log"
	"github.com/zjrosen/parley/internal/pubsub"
	"github.com/zjrosen/parley/internal/tracing"
)

// Preference categories and names.
const (
	CategoryDisplay  = "display_settings"
	CategoryRecent   = "recent_emojis"
	CategoryTutorial = "tutorial_step"

	NameSkinTone = "emoji_skintone"
	NameRecent   = "emojis"
)

// TutorialFinished marks a tour that was completed or skipped.
const TutorialFinished = 999

// Service is the typed preference API used by the UI.
type Service struct {
	store       Store
	broker      *pubsub.Broker[Preference]
	recentLimit int
	tracer      trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithRecentLimit caps the stored recent list. Non-positive values keep the default.
func WithRecentLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.recentLimit = n
		}
	}
}

// WithTracer traces recent-list writes.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// NewService wraps store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:       store,
		broker:      pubsub.NewBroker[Preference](),
		recentLimit: emoji.MaxRecentEmojis,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Subscribe streams preference changes until ctx is done.
func (s *Service) Subscribe(ctx context.Context) <-chan pubsub.Event[Preference] {
	return s.broker.Subscribe(ctx)
}

// Broker exposes the change broker for tea listeners.
func (s *Service) Broker() *pubsub.Broker[Preference] { return s.broker }

// Close shuts the broker and the store.
func (s *Service) Close() error {
	s.broker.Close()
	return s.store.Close()
}

func (s *Service) set(ctx context.Context, category, name, value string) error {
	_, err := s.store.Get(ctx, category, name)
	created := errors.Is(err, ErrNotFound)
	if err != nil && !created {
		return err
	}
	if err := s.store.Set(ctx, category, name, value); err != nil {
		return err
	}
	evt := pubsub.UpdatedEvent
	if created {
		evt = pubsub.CreatedEvent
	}
	s.broker.Publish(evt, Preference{Category: category, Name: name, Value: value})
	log.Debug(log.CatPrefs, "preference saved", "category", category, "name", name)
	return nil
}

// SkinTone returns the stored tone, or the default when unset or unreadable.
func (s *Service) SkinTone(ctx context.Context) emoji.SkinTone {
	v, err := s.store.Get(ctx, CategoryDisplay, NameSkinTone)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.ErrorErr(log.CatPrefs, "reading skin tone", err)
		}
		return emoji.SkinToneDefault
	}
	return emoji.ParseSkinTone(v)
}

// SetSkinTone stores tone.
func (s *Service) SetSkinTone(ctx context.Context, tone emoji.SkinTone) error {
	return s.set(ctx, CategoryDisplay, NameSkinTone, string(emoji.ParseSkinTone(string(tone))))
}

// RecentEmojis returns the recent list, most recent first.
func (s *Service) RecentEmojis(ctx context.Context) ([]string, error) {
	v, err := s.store.Get(ctx, CategoryRecent, NameRecent)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal([]byte(v), &ids); err != nil {
		return nil, fmt.Errorf("decoding recent emojis: %w", err)
	}
	return ids, nil
}

// RecordEmojiUse moves id to the front of the recent list, dropping any
// earlier occurrence and anything past the limit. It returns the new list.
func (s *Service) RecordEmojiUse(ctx context.Context, id string) ([]string, error) {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanPrefsRecord, attribute.String(tracing.AttrEmojiID, id))
	defer span.End()

	if id == "" {
		return s.RecentEmojis(ctx)
	}
	ids, err := s.RecentEmojis(ctx)
	if err != nil {
		// A corrupt list is replaced rather than blocking every future write.
		log.ErrorErr(log.CatPrefs, "resetting recent emojis", err)
		ids = nil
	}

	next := make([]string, 0, min(len(ids)+1, s.recentLimit))
	next = append(next, id)
	for _, existing := range ids {
		if len(next) == s.recentLimit {
			break
		}
		if existing != id {
			next = append(next, existing)
		}
	}

	data, err := json.Marshal(next)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("encoding recent emojis: %w", err)
	}
	if err := s.set(ctx, CategoryRecent, NameRecent, string(data)); err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return next, nil
}

// TutorialStep returns the stored step for a tour category, 0 when unset.
func (s *Service) TutorialStep(ctx context.Context, category string) (int, error) {
	v, err := s.store.Get(ctx, CategoryTutorial, category)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	step, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("decoding tutorial step %q: %w", v, err)
	}
	return step, nil
}

// SetTutorialStep stores step for a tour category.
func (s *Service) SetTutorialStep(ctx context.Context, category string, step int) error {
	return s.set(ctx, CategoryTutorial, category, strconv.Itoa(step))
}

// Package state holds the wallet's single source of truth: the current
// balance and the history of changes, published as immutable snapshots.
//
// A Model is not safe for concurrent use. It is meant to be driven from one
// goroutine (the screen's event loop), which is what keeps it consistent
// without locks.
package state

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/vecwallet/internal/models"
)

// Listener receives every snapshot published by the model.
type Listener func(models.Snapshot)

type subscription struct {
	id uint64
	fn Listener
}

// Model owns the balance and the history log.
type Model struct {
	current   models.Snapshot
	listeners []subscription
	nextSubID uint64
	newID     func() uuid.UUID
	logger    *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithIDGenerator replaces uuid.New as the source of entry IDs.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(m *Model) {
		m.newID = gen
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New creates a model with a zero balance and an empty history.
func New(opts ...Option) *Model {
	m := &Model{
		current: models.Snapshot{
			Balance: decimal.Zero,
			History: []models.HistoryEntry{},
		},
		newID:  uuid.New,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ApplyDelta adds delta to the balance, appends the matching history entry
// and publishes the result as the new snapshot. Any value is accepted,
// including zero, which is still recorded.
//
// Every subscriber is notified exactly once, in subscription order, after the
// new snapshot is in place.
func (m *Model) ApplyDelta(delta decimal.Decimal) {
	prev := m.current
	version := prev.Version + 1
	entry := models.NewHistoryEntry(version, m.newID(), delta)

	// Fresh backing array: earlier snapshots keep their own history.
	history := make([]models.HistoryEntry, len(prev.History), len(prev.History)+1)
	copy(history, prev.History)
	history = append(history, entry)

	m.current = models.Snapshot{
		Balance: prev.Balance.Add(delta),
		History: history,
		Version: version,
	}

	m.logger.Debug("Delta applied",
		"delta", delta,
		"kind", entry.Kind,
		"balance", m.current.Balance,
		"version", version,
	)

	m.notify(m.current)
}

// Snapshot returns the latest published snapshot.
func (m *Model) Snapshot() models.Snapshot {
	return m.current
}

// Subscribe registers fn for every future snapshot and returns a function
// that removes it again. Calling the returned function more than once is a
// no-op. Listeners run synchronously inside ApplyDelta.
func (m *Model) Subscribe(fn Listener) (unsubscribe func()) {
	m.nextSubID++
	id := m.nextSubID
	m.listeners = append(m.listeners, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range m.listeners {
			if sub.id == id {
				m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

func (m *Model) notify(s models.Snapshot) {
	// A listener may unsubscribe while being notified.
	subs := m.listeners
	for _, sub := range subs {
		sub.fn(s)
	}
}

package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a transient user-facing message, the toast analog.
// Nothing a notification reports is fatal; the worst outcome anywhere in
// the storefront is a message here plus unchanged state.
type Notification struct {
	ID     string    `json:"id"`
	Level  Level     `json:"level"`
	Title  string    `json:"title"`
	Detail string    `json:"detail,omitempty"`
	At     time.Time `json:"at"`
}

// Notifier is how stores and services surface outcomes to the user.
type Notifier interface {
	Success(title, detail string)
	Error(title, detail string)
}

// Center collects notifications newest-first, bounded to a fixed number,
// and mirrors each one to the structured log.
type Center struct {
	log   *zap.Logger
	limit int

	mu     sync.Mutex
	recent []Notification
}

func NewCenter(log *zap.Logger, limit int) *Center {
	if limit <= 0 {
		limit = 50
	}
	return &Center{log: log, limit: limit}
}

func (c *Center) Success(title, detail string) {
	c.log.Info("notification", zap.String("title", title), zap.String("detail", detail))
	c.push(LevelSuccess, title, detail)
}

func (c *Center) Error(title, detail string) {
	c.log.Warn("notification", zap.String("title", title), zap.String("detail", detail))
	c.push(LevelError, title, detail)
}

func (c *Center) push(level Level, title, detail string) {
	n := Notification{
		ID:     uuid.NewString(),
		Level:  level,
		Title:  title,
		Detail: detail,
		At:     time.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.recent = append([]Notification{n}, c.recent...)
	if len(c.recent) > c.limit {
		c.recent = c.recent[:c.limit]
	}
}

// Recent returns a copy of the held notifications, newest first.
func (c *Center) Recent() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.recent))
	copy(out, c.recent)
	return out
}

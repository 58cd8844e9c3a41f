package practicesession

import (
	"context"
	"time"
)

// SequentialCapable moves through the working subset one position at a
// time.
type SequentialCapable interface {
	Goto(ctx context.Context, pos int) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Swipe(ctx context.Context, dir Direction) (bool, error)
}

// Direction of a swipe gesture.
type Direction string

const (
	SwipeNext Direction = "next"
	SwipePrev Direction = "prev"
)

// cursorHost is what the navigator needs from the engine.
type cursorHost interface {
	position() (pos, total int, err error)
	moveTo(ctx context.Context, pos int) error
}

type navigator struct {
	host        cursorHost
	cooldown    time.Duration
	now         func() time.Time
	lockedUntil time.Time
}

func newNavigator(host cursorHost, cfg Config) *navigator {
	return &navigator{host: host, cooldown: cfg.SwipeCooldown, now: cfg.now}
}

func (n *navigator) Goto(ctx context.Context, pos int) error {
	_, total, err := n.host.position()
	if err != nil {
		return err
	}
	switch {
	case pos < 0:
		return ErrFirstQuestion
	case pos >= total:
		return ErrLastQuestion
	}
	return n.host.moveTo(ctx, pos)
}

func (n *navigator) Next(ctx context.Context) error {
	pos, _, err := n.host.position()
	if err != nil {
		return err
	}
	return n.Goto(ctx, pos+1)
}

func (n *navigator) Prev(ctx context.Context) error {
	pos, _, err := n.host.position()
	if err != nil {
		return err
	}
	return n.Goto(ctx, pos-1)
}

// Swipe moves one position unless a previous swipe is still cooling down,
// in which case the gesture is ignored and false is returned.
func (n *navigator) Swipe(ctx context.Context, dir Direction) (bool, error) {
	now := n.now()
	if now.Before(n.lockedUntil) {
		return false, nil
	}
	n.lockedUntil = now.Add(n.cooldown)

	if dir == SwipePrev {
		return true, n.Prev(ctx)
	}
	return true, n.Next(ctx)
}

// ── Engine delegation ──

func (e *Engine) Goto(ctx context.Context, pos int) error { return e.nav.Goto(ctx, pos) }
func (e *Engine) Next(ctx context.Context) error          { return e.nav.Next(ctx) }
func (e *Engine) Prev(ctx context.Context) error          { return e.nav.Prev(ctx) }

func (e *Engine) Swipe(ctx context.Context, dir Direction) (bool, error) {
	return e.nav.Swipe(ctx, dir)
}

func (e *Engine) position() (int, int, error) {
	if !e.active {
		return 0, 0, ErrNotActive
	}
	if len(e.working) == 0 {
		return 0, 0, ErrNoWorkingData
	}
	return e.record.Index, len(e.working), nil
}

// moveTo redisplays pos and persists the index right away.
func (e *Engine) moveTo(ctx context.Context, pos int) error {
	e.record.Index = pos
	e.display()
	return e.persistRecord(ctx)
}

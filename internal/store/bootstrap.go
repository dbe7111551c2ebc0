package store

import (
	"log"
	"sync"
)

// Selector resolves the active driver exactly once per process: it
// attempts the durable opener and falls back to the ephemeral constructor
// on any failure, so the process never refuses to start solely because
// durable storage is unavailable.
//
// Selection may run concurrently with request handling; a request that
// arrives first performs the selection itself and any others block on the
// same sync.Once until a driver exists. Once chosen, the driver is
// immutable for the process lifetime.
type Selector struct {
	once      sync.Once
	open      func() (Store, error)
	fallback  func() Store
	active    Store
	ephemeral bool
}

func NewSelector(open func() (Store, error), fallback func() Store) *Selector {
	return &Selector{open: open, fallback: fallback}
}

// Store returns the selected driver, performing the selection on first
// use.
func (selector *Selector) Store() Store {
	selector.once.Do(selector.selectDriver)
	return selector.active
}

// Ephemeral reports whether the selector fell back to the in-memory
// driver.
func (selector *Selector) Ephemeral() bool {
	selector.once.Do(selector.selectDriver)
	return selector.ephemeral
}

func (selector *Selector) selectDriver() {
	active, err := selector.open()
	if err != nil {
		log.Printf("durable storage unavailable, using ephemeral store: %v", err)
		selector.active = selector.fallback()
		selector.ephemeral = true
		return
	}
	selector.active = active
}

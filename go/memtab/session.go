package memtab

import (
	"fmt"
	"sync"
)

// Session hands out slot ids for one analysis of one firmware image.
// Every table decoded against the same Session shares its counter, so a region
// decoded later always gets a higher slot. Safe for concurrent use.
type Session struct {
	mu   sync.Mutex
	next int
}

func NewSession() *Session {
	return &Session{}
}

// Next returns the next unused slot id, starting at 0.
func (s *Session) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot := s.next
	s.next++
	return slot
}

// Peek returns the slot id the next call to Next would return.
func (s *Session) Peek() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Reserve claims a slot id that was already assigned by the firmware (MPU region numbers).
// The slot must not be below the next unused id, otherwise ordering would be violated.
func (s *Session) Reserve(slot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slot < s.next {
		return &ValidationError{Off: -1, Reason: fmt.Sprintf("slot %d already assigned (next is %d)", slot, s.next)}
	}
	s.next = slot + 1
	return nil
}

func (s *Session) Reset() {
	s.mu.Lock()
	s.next = 0
	s.mu.Unlock()
}

package ipc

import (
	"fmt"
	"sync"
	"time"
)

type Direction string

const (
	Inbound  Direction = "in"
	Outbound Direction = "out"
)

const maxSummary = 160

// Entry is one recorded message.
type Entry struct {
	Time      time.Time
	Direction Direction
	Channel   string
	Window    string
	Summary   string
}

func (e Entry) String() string {
	target := ""
	if e.Window != "" {
		target = " -> " + e.Window
	}

	return fmt.Sprintf("%s %-3s %s%s %s", e.Time.Format("15:04:05.000"), e.Direction, e.Channel, target, e.Summary)
}

// Journal keeps the most recent messages for the developer tools window.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

func NewJournal(size int) *Journal {
	if size <= 0 {
		size = 1
	}

	return &Journal{entries: make([]Entry, size)}
}

func (j *Journal) Record(dir Direction, channel, window string, payload interface{}) {
	summary := ""
	if payload != nil {
		summary = fmt.Sprintf("%+v", payload)
		if runes := []rune(summary); len(runes) > maxSummary {
			summary = string(runes[:maxSummary]) + "…"
		}
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries[j.next] = Entry{
		Time:      time.Now(),
		Direction: dir,
		Channel:   channel,
		Window:    window,
		Summary:   summary,
	}
	j.next = (j.next + 1) % len(j.entries)
	if j.next == 0 {
		j.full = true
	}
}

// Entries returns the recorded messages, oldest first.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.full {
		out := make([]Entry, j.next)
		copy(out, j.entries[:j.next])
		return out
	}

	out := make([]Entry, 0, len(j.entries))
	out = append(out, j.entries[j.next:]...)
	out = append(out, j.entries[:j.next]...)
	return out
}

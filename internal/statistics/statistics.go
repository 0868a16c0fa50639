// Package statistics counts game results per matchup for the lifetime of a session.
package statistics

import (
	"sort"

	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

// MatchupKey identifies who played Black (player A) and who played White (player B).
type MatchupKey struct {
	Black string `json:"black"`
	White string `json:"white"`
}

func NewMatchupKey(black, white entity.Seat) MatchupKey {
	return MatchupKey{Black: black.Descriptor(), White: white.Descriptor()}
}

func (that MatchupKey) String() string {
	return that.Black + " vs " + that.White
}

type Entry struct {
	WinsA int `json:"wins_a"`
	WinsB int `json:"wins_b"`
	Ties  int `json:"ties"`
}

func (that Entry) Games() int {
	return that.WinsA + that.WinsB + that.Ties
}

// Add counts one finished game. Unfinished outcomes are ignored.
func (that *Entry) Add(outcome entity.Outcome) {
	switch {
	case outcome.Status == entity.StatusTie:
		that.Ties++
	case outcome.Status == entity.StatusWin && outcome.Winner == entity.PlayerBlack:
		that.WinsA++
	case outcome.Status == entity.StatusWin && outcome.Winner == entity.PlayerWhite:
		that.WinsB++
	}
}

// Statistics is owned by the game loop and is not safe for concurrent use.
type Statistics struct {
	entries map[MatchupKey]*Entry
}

func New() *Statistics {
	return &Statistics{entries: make(map[MatchupKey]*Entry)}
}

func (that *Statistics) RecordResult(key MatchupKey, outcome entity.Outcome) {
	if !outcome.IsFinished() {
		return
	}

	entry, ok := that.entries[key]
	if !ok {
		entry = &Entry{}
		that.entries[key] = entry
	}

	entry.Add(outcome)
}

func (that *Statistics) EntryFor(key MatchupKey) Entry {
	if entry, ok := that.entries[key]; ok {
		return *entry
	}

	return Entry{}
}

// Keys returns the recorded matchups sorted by Black then White.
func (that *Statistics) Keys() []MatchupKey {
	keys := make([]MatchupKey, 0, len(that.entries))
	for key := range that.entries {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Black != keys[j].Black {
			return keys[i].Black < keys[j].Black
		}
		return keys[i].White < keys[j].White
	})

	return keys
}

// Total sums every matchup.
func (that *Statistics) Total() Entry {
	var total Entry
	for _, entry := range that.entries {
		total.WinsA += entry.WinsA
		total.WinsB += entry.WinsB
		total.Ties += entry.Ties
	}

	return total
}

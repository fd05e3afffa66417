package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/showdown/domain/poker"
)

const genesisHash = "0"

var ErrEmptyHistory = errors.New("history is empty")

// Entry is the best hand of one contender, stored with card names so that
// records serialize without the card model.
type Entry struct {
	Player   string   `json:"player"`
	Hole     []string `json:"hole"`
	Hand     []string `json:"hand"`
	Category string   `json:"category"`
	TieBreak []int    `json:"tie_break"`
}

// Record is a finished hand in the history.
type Record struct {
	Index     int      `json:"index"`
	Timestamp int64    `json:"timestamp"`
	PrevHash  string   `json:"prev_hash"`
	Hash      string   `json:"hash"`
	Board     []string `json:"board"`
	Entries   []Entry  `json:"entries"`
	Winners   []string `json:"winners"`
}

// History is safe for concurrent use.
type History struct {
	mu      sync.RWMutex
	records []Record
	now     func() time.Time
}

func NewHistory() *History {
	return &History{now: time.Now}
}

// Append records a showdown. The winners are the names of the players that
// share the pot.
func (h *History) Append(board []poker.Card, standings []poker.Standing, winners []string) (Record, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	prevHash := genesisHash
	if len(h.records) > 0 {
		prevHash = h.records[len(h.records)-1].Hash
	}
	r := Record{
		Index:     len(h.records),
		Timestamp: h.now().Unix(),
		PrevHash:  prevHash,
		Board:     names(board),
		Winners:   append([]string(nil), winners...),
	}
	for _, s := range standings {
		r.Entries = append(r.Entries, Entry{
			Player:   s.Name,
			Hole:     names(s.Hole),
			Hand:     names(s.Hand),
			Category: s.Rank.Category.String(),
			TieBreak: append([]int(nil), s.Rank.TieBreak...),
		})
	}
	hash, err := calculateHash(r)
	if err != nil {
		return Record{}, err
	}
	r.Hash = hash
	h.records = append(h.records, r)
	return r, nil
}

// Latest returns the most recently added record.
func (h *History) Latest() (Record, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.records) == 0 {
		return Record{}, ErrEmptyHistory
	}
	return h.records[len(h.records)-1], nil
}

// Len returns the number of recorded hands.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// Records returns a copy of every record, oldest first.
func (h *History) Records() []Record {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]Record(nil), h.records...)
}

// Verify checks index continuity, previous hash linkage and every record
// hash.
func (h *History) Verify() error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	prev := genesisHash
	for i, r := range h.records {
		if r.Index != i {
			return fmt.Errorf("record %d invalid: index %d", i, r.Index)
		}
		if r.PrevHash != prev {
			return fmt.Errorf("record %d invalid: prev hash %s, want %s", i, r.PrevHash, prev)
		}
		expected, err := calculateHash(r)
		if err != nil {
			return err
		}
		if r.Hash != expected {
			return fmt.Errorf("record %d invalid: hash %s, want %s", i, r.Hash, expected)
		}
		prev = r.Hash
	}
	return nil
}

// calculateHash computes the SHA256 of a record with its Hash field cleared.
func calculateHash(r Record) (string, error) {
	r.Hash = ""
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshal record %d: %w", r.Index, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func names(cards []poker.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Name()
	}
	return out
}

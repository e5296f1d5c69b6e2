package order

import (
	"errors"
	"fmt"
	"time"

	"restofresh-web/internal/clientstate"
)

// recordTTL is how long a guest can re-find their own order without an
// account. Anything older is purged on every read and every write.
const recordTTL = 24 * time.Hour

// Record is the locally persisted pointer to a guest order.
type Record struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Total     float64   `json:"total"`
}

// RecordBook keeps the visitor's guest order records in their client state
// under the user_orders key.
type RecordBook struct {
	state *clientstate.Store
	now   func() time.Time
}

func NewRecordBook(state *clientstate.Store) *RecordBook {
	return &RecordBook{state: state, now: time.Now}
}

// Append stores a new record, pruning expired ones first.
func (b *RecordBook) Append(id string, total float64) error {
	records, err := b.load()
	if err != nil {
		return err
	}

	records = b.prune(records)
	records = append(records, Record{ID: id, Timestamp: b.now(), Total: total})
	return b.save(records)
}

// List returns the live records, writing the pruned list back so expired
// entries disappear from storage on read as well.
func (b *RecordBook) List() ([]Record, error) {
	records, err := b.load()
	if err != nil {
		return nil, err
	}

	pruned := b.prune(records)
	if len(pruned) != len(records) {
		if err := b.save(pruned); err != nil {
			return nil, err
		}
	}
	return pruned, nil
}

func (b *RecordBook) load() ([]Record, error) {
	var records []Record
	err := b.state.Get(clientstate.KeyUserOrders, &records)
	if err != nil {
		if errors.Is(err, clientstate.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load order records: %w", err)
	}
	return records, nil
}

func (b *RecordBook) save(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	if err := b.state.Set(clientstate.KeyUserOrders, records); err != nil {
		return fmt.Errorf("save order records: %w", err)
	}
	return nil
}

func (b *RecordBook) prune(records []Record) []Record {
	now := b.now()
	kept := records[:0]
	for _, r := range records {
		if now.Sub(r.Timestamp) < recordTTL {
			kept = append(kept, r)
		}
	}
	return kept
}

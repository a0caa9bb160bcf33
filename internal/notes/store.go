package notes

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxNotes is the capacity used when New is given a non-positive bound.
const DefaultMaxNotes = 100

var (
	ErrEmptyInput      = errors.New("empty note text")
	ErrIndexOutOfRange = errors.New("note index out of range")
	ErrEmptyStore      = errors.New("no notes")
	ErrEmptyQuery      = errors.New("empty search query")
)

// Store is an ordered, bounded list of notes addressed by 1-based index.
// When full, Add drops the oldest note before appending.
type Store struct {
	notes    []string
	maxNotes int
}

// AddResult describes the outcome of a successful Add.
type AddResult struct {
	Index       int
	Text        string
	Evicted     bool
	EvictedText string
}

// Match is a search hit tagged with its current display index.
type Match struct {
	Index int
	Text  string
}

func New(maxNotes int) *Store {
	if maxNotes <= 0 {
		maxNotes = DefaultMaxNotes
	}
	return &Store{
		notes:    make([]string, 0, min(maxNotes, 16)),
		maxNotes: maxNotes,
	}
}

// Len returns the number of notes held.
func (s *Store) Len() int { return len(s.notes) }

// Cap returns the capacity bound.
func (s *Store) Cap() int { return s.maxNotes }

// List returns a copy of the notes in display order.
func (s *Store) List() []string {
	return append([]string(nil), s.notes...)
}

// Add trims text and appends it, evicting the oldest note first when the store is full.
func (s *Store) Add(text string) (AddResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return AddResult{}, ErrEmptyInput
	}
	var res AddResult
	if len(s.notes) >= s.maxNotes {
		res.Evicted = true
		res.EvictedText = s.notes[0]
		// shift in place so the backing array does not grow past maxNotes
		copy(s.notes, s.notes[1:])
		s.notes = s.notes[:len(s.notes)-1]
	}
	s.notes = append(s.notes, text)
	res.Index = len(s.notes)
	res.Text = text
	return res, nil
}

// Get returns the note at the 1-based index unchanged.
func (s *Store) Get(index int) (string, error) {
	if err := s.checkIndex(index); err != nil {
		return "", err
	}
	return s.notes[index-1], nil
}

// CopyAll renders every note as a numbered list, one "i. text" entry per line.
func (s *Store) CopyAll() (string, error) {
	if len(s.notes) == 0 {
		return "", ErrEmptyStore
	}
	var b strings.Builder
	for i, note := range s.notes {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, note)
	}
	return b.String(), nil
}

// Delete removes the note at the 1-based index; later notes move down by one.
func (s *Store) Delete(index int) (string, error) {
	if err := s.checkIndex(index); err != nil {
		return "", err
	}
	removed := s.notes[index-1]
	s.notes = append(s.notes[:index-1], s.notes[index:]...)
	return removed, nil
}

// DeleteAll clears the store and reports how many notes it held.
func (s *Store) DeleteAll() (int, error) {
	n := len(s.notes)
	if n == 0 {
		return 0, ErrEmptyStore
	}
	clear(s.notes)
	s.notes = s.notes[:0]
	return n, nil
}

// Search returns notes containing query, ignoring case, in store order.
// No hits is reported as a nil slice and a nil error.
func (s *Store) Search(query string) ([]Match, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	needle := strings.ToLower(query)
	var matches []Match
	for i, note := range s.notes {
		if strings.Contains(strings.ToLower(note), needle) {
			matches = append(matches, Match{Index: i + 1, Text: note})
		}
	}
	return matches, nil
}

func (s *Store) checkIndex(index int) error {
	if index < 1 || index > len(s.notes) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.notes))
	}
	return nil
}

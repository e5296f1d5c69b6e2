package i18n

import (
	"errors"
	"fmt"
	"sync"

	"restofresh-web/internal/clientstate"
)

type Lang string

const (
	LangArabic  Lang = "ar"
	LangEnglish Lang = "en"
)

type Direction string

const (
	DirRTL Direction = "rtl"
	DirLTR Direction = "ltr"
)

var ErrUnknownLanguage = errors.New("unknown language")

var tables = map[Lang]map[string]string{
	LangArabic:  arabic,
	LangEnglish: english,
}

// directionFor: Arabic reads right to left, everything else left to right.
func directionFor(lang Lang) Direction {
	if lang == LangArabic {
		return DirRTL
	}
	return DirLTR
}

// Store holds the active language, its translation table and the reading
// direction. The three always change together under one lock; there is no
// observable state where table and direction disagree. The default is Arabic.
type Store struct {
	state *clientstate.Store

	mu    sync.RWMutex
	lang  Lang
	table map[string]string
	dir   Direction
}

// NewStore builds a store, restoring a previously persisted choice when the
// client state has one. state may be nil for an unpersisted store.
func NewStore(state *clientstate.Store) *Store {
	s := &Store{
		state: state,
		lang:  LangArabic,
		table: tables[LangArabic],
		dir:   DirRTL,
	}

	if state != nil {
		var saved Lang
		if err := state.Get(clientstate.KeyLanguage, &saved); err == nil {
			if _, ok := tables[saved]; ok {
				s.lang = saved
				s.table = tables[saved]
				s.dir = directionFor(saved)
			}
		}
	}
	return s
}

func (s *Store) Language() Lang {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

func (s *Store) Direction() Direction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// SetLanguage persists the choice and swaps table and direction atomically.
func (s *Store) SetLanguage(lang Lang) error {
	table, ok := tables[lang]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	s.mu.Lock()
	s.lang = lang
	s.table = table
	s.dir = directionFor(lang)
	s.mu.Unlock()

	if s.state != nil {
		if err := s.state.Set(clientstate.KeyLanguage, lang); err != nil {
			return fmt.Errorf("persist language: %w", err)
		}
	}
	return nil
}

// Toggle flips between Arabic and English.
func (s *Store) Toggle() error {
	if s.Language() == LangArabic {
		return s.SetLanguage(LangEnglish)
	}
	return s.SetLanguage(LangArabic)
}

// T looks up a key in the active table. Unknown keys come back verbatim so a
// missing translation is visible instead of silent.
func (s *Store) T(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.table[key]; ok {
		return v
	}
	return key
}

// Tf is T plus Sprintf interpolation.
func (s *Store) Tf(key string, args ...any) string {
	return fmt.Sprintf(s.T(key), args...)
}

// Keys returns the key set of a language's table, used to verify the tables
// stay keyed identically.
func Keys(lang Lang) []string {
	table := tables[lang]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	return keys
}

package dictionary

import "context"

// Dictionary answers whether a lemma is a real word.
type Dictionary interface {
	LemmaIsValid(string) (bool, error)
}

// Corpus is the word list the letter pool is drawn from.
type Corpus interface {
	CountWords(ctx context.Context) (uint32, error)
	GetWordById(ctx context.Context, wordId uint32) (string, error)
}

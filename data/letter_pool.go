package data

import (
	"math/rand"
	"time"
)

// PoolCeiling is the default upper bound on a match's letter pool.
const PoolCeiling = 25

type LetterPool []byte

func (pool *LetterPool) Append(word string) {
	*pool = append(*pool, word...)
}

func (pool *LetterPool) Shuffle() {
	rand.Seed(time.Now().UnixNano())
	rand.Shuffle(len(*pool), func(i, j int) {
		(*pool)[i], (*pool)[j] = (*pool)[j], (*pool)[i]
	})
}

// Cleanup trims over-represented letters in a single a to z pass, then
// truncates to ceiling. The pass runs once, so letters late in the
// alphabet may keep their duplicates.
func (pool *LetterPool) Cleanup(ceiling int) {
	for letter := byte('a'); letter <= 'z'; letter++ {
		for pool.count(letter) >= 3 && len(*pool) > ceiling {
			pool.removeOne(letter)
		}
	}
	if len(*pool) > ceiling {
		*pool = (*pool)[:ceiling]
	}
}

// Letters freezes the pool into the match's tile sequence, ids 1-based in
// pool order.
func (pool LetterPool) Letters() []Letter {
	letters := make([]Letter, len(pool))
	for i, letter := range pool {
		letters[i] = Letter{
			Id:     LetterId(i + 1),
			Letter: letter,
		}
	}
	return letters
}

func (pool LetterPool) count(letter byte) int {
	counter := 0
	for _, l := range pool {
		if l == letter {
			counter++
		}
	}
	return counter
}

func (pool *LetterPool) removeOne(letter byte) {
	for i, l := range *pool {
		if l == letter {
			*pool = append((*pool)[:i], (*pool)[i+1:]...)
			return
		}
	}
}

package service

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lpgame/letterpool/data"
)

func (a *application) NewMatch(ctx context.Context, firstPlayerId data.PlayerId) (game data.Game, err error) {
	player, err := a.transactional.GetPlayerById(ctx, firstPlayerId)
	if err != nil {
		err = storeError(err)
		return
	}

	letters, err := a.generateLetters(ctx)
	if err != nil {
		return
	}

	tx, err := a.transactional.BeginTransaction(ctx)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}
	defer func() {
		err = a.finalize(tx, err)
		if err != nil {
			game = data.Game{}
		}
	}()

	game = data.Game{
		Session:       uuid.New().String(),
		Letters:       letters,
		CurrentPlayer: player.Id,
	}

	game, err = a.transactional.InsertGame(ctx, tx, game)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}

	game, err = a.transactional.InsertGamePlayer(ctx, tx, game, player)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}

	a.logger.Debug().
		Str("session", game.Session).
		Int("letters", len(game.Letters)).
		Msg("match created")
	return
}

// generateLetters draws random corpus words until the accumulator crosses
// the ceiling, shuffles, and runs the cleanup pass.
func (a *application) generateLetters(ctx context.Context) ([]data.Letter, error) {
	count, err := a.corpusCount(ctx)
	if err != nil {
		return nil, CollaboratorError{Op: "corpus", Err: err}
	}

	pool := data.LetterPool{}
	for len(pool) <= data.PoolCeiling {
		wordId := uint32(rand.Intn(int(count))) + 1
		word, err := a.corpus.GetWordById(ctx, wordId)
		if err != nil {
			return nil, CollaboratorError{Op: "corpus", Err: err}
		}
		pool.Append(word)
	}
	pool.Shuffle()
	pool.Cleanup(data.PoolCeiling)

	return pool.Letters(), nil
}

// corpusCount memoizes the corpus size; the table does not change while
// the service runs.
func (a *application) corpusCount(ctx context.Context) (uint32, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	if a.corpusSize != 0 {
		return a.corpusSize, nil
	}

	count, err := a.corpus.CountWords(ctx)
	if err != nil {
		return 0, err
	}
	a.corpusSize = count
	return count, nil
}

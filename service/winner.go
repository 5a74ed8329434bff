package service

import (
	"context"

	"github.com/lpgame/letterpool/data"
)

// Winner resolves and caches the winner of an ended match. TakeTurn caches
// it on the closing turn already; this covers games persisted before that
// write landed, and repeated lookups afterwards.
func (a *application) Winner(ctx context.Context, session string) (winner data.PlayerId, err error) {
	defer a.lockSession(session)()

	tx, err := a.transactional.BeginTransaction(ctx)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}
	defer func() {
		err = a.finalize(tx, err)
	}()

	game, err := a.transactional.GetGameBySession(ctx, tx, session)
	if err != nil {
		err = storeError(err)
		return
	}

	if !game.Ended {
		err = ErrorGameInProgress
		return
	}

	if game.Winner != 0 {
		winner = game.Winner
		return
	}

	players, err := a.transactional.GetPlayersBySession(ctx, tx, session)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}
	for _, seated := range players {
		game.Players = append(game.Players, seated.Id)
	}

	game.Winner = game.ResolveWinner()
	err = a.transactional.UpdateGame(ctx, tx, game)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}

	winner = game.Winner
	return
}

package service

import (
	"context"

	"github.com/lpgame/letterpool/data"
)

func (a *application) JoinMatch(ctx context.Context, session string, playerId data.PlayerId) (game data.Game, err error) {
	defer a.lockSession(session)()

	player, err := a.transactional.GetPlayerById(ctx, playerId)
	if err != nil {
		err = storeError(err)
		return
	}

	ready := false
	defer func() {
		if err == nil && ready {
			a.notify("game_ready", map[string]interface{}{
				"opponent_name": player.FullName,
			}, session, 0)
		}
	}()

	tx, err := a.transactional.BeginTransaction(ctx)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}
	defer func() {
		err = a.finalize(tx, err)
	}()

	game, err = a.transactional.GetGameBySession(ctx, tx, session)
	if err != nil {
		err = storeError(err)
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

	// joining a match you already sit in is a no-op
	if game.HasPlayer(playerId) {
		return
	}

	if len(game.Players) >= data.MaxGamers {
		err = ErrorPlayerIsEnough
		return
	}

	game, err = a.transactional.InsertGamePlayer(ctx, tx, game, player)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}

	if len(game.Players) == data.MaxGamers {
		ready = true
	}
	return
}

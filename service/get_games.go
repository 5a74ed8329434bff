package service

import (
	"context"

	"github.com/lpgame/letterpool/data"
)

func (a *application) GetGames(ctx context.Context, playerId data.PlayerId, ended bool) ([]data.Game, error) {
	games, err := a.transactional.GetGamesByPlayerId(ctx, playerId, ended)
	if err != nil {
		return nil, CollaboratorError{Op: "store", Err: err}
	}
	return games, nil
}

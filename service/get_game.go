package service

import (
	"context"

	"github.com/lpgame/letterpool/data"
)

func (a *application) GetGame(ctx context.Context, session string) (game data.Game, err error) {
	game, err = a.transactional.GetGameBySession(ctx, nil, session)
	if err != nil {
		a.logger.Error().Err(err).Str("session", session).Msg("cannot load game")
		err = storeError(err)
		return
	}

	historiesChan := make(chan bool)
	playersChan := make(chan bool)

	go func() {
		game.Histories, _ = a.transactional.GetWordHistoriesBySession(ctx, nil, session)
		historiesChan <- true
	}()

	go func() {
		players, _ := a.transactional.GetPlayersBySession(ctx, nil, session)
		for _, seated := range players {
			game.Players = append(game.Players, seated.Id)
		}
		playersChan <- true
	}()

	<-historiesChan
	<-playersChan

	return
}

package service_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lpgame/letterpool/data"
)

func TestApplicationGetGame(t *testing.T) {
	noTx := (*sql.Tx)(nil)

	t.Run("ErrorGameNotFound", func(t *testing.T) {
		s := newSuite()
		s.trans.On("GetGameBySession", ctx, noTx, session).
			Return(data.Game{}, data.ErrorGameNotFound)

		_, err := s.svc.GetGame(ctx, session)
		assert.EqualError(t, err, data.ErrorGameNotFound.Error())
	})
	t.Run("Success", func(t *testing.T) {
		histories := []data.WordHistory{
			{Gamer: players[0].Id, Words: []string{"cat"}},
		}

		s := newSuite()
		s.trans.On("GetGameBySession", ctx, noTx, session).
			Return(gameFixture(), nil)
		s.trans.On("GetWordHistoriesBySession", ctx, noTx, session).
			Return(histories, nil)
		s.trans.On("GetPlayersBySession", ctx, noTx, session).
			Return(players, nil)

		game, err := s.svc.GetGame(ctx, session)
		if assert.NoError(t, err) {
			assert.Equal(t, []data.PlayerId{players[0].Id, players[1].Id}, game.Players)
			assert.Equal(t, histories, game.Histories)
			assert.Len(t, game.Letters, 6)
		}
	})
}

package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lpgame/letterpool/data"
	"github.com/lpgame/letterpool/service"
)

func TestApplicationGetGames(t *testing.T) {
	t.Run("ErrorQuerying", func(t *testing.T) {
		s := newSuite()
		s.trans.On("GetGamesByPlayerId", ctx, playerId, false).
			Return([]data.Game{}, unexpectedError)

		_, err := s.svc.GetGames(ctx, playerId, false)
		var collaborator service.CollaboratorError
		assert.True(t, errors.As(err, &collaborator))
	})
	t.Run("Success", func(t *testing.T) {
		expected := []data.Game{
			{Session: session, CurrentPlayer: playerId},
		}

		s := newSuite()
		s.trans.On("GetGamesByPlayerId", ctx, playerId, true).
			Return(expected, nil)

		games, err := s.svc.GetGames(ctx, playerId, true)
		if assert.NoError(t, err) {
			assert.Equal(t, expected, games)
		}
	})
}

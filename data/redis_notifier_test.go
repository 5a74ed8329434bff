package data_test

import (
	"errors"
	"testing"

	"github.com/elliotchance/redismock"
	"github.com/go-redis/redis"
	"github.com/lpgame/letterpool/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func suiteNotifier() (notifier *data.RedisNotifier, clientMock *redismock.ClientMock) {
	clientMock = redismock.NewMock()
	notifier = data.NewRedisNotifier(clientMock)
	return
}

func TestRedisNotifier_Publish(t *testing.T) {
	session := "d34db33f"
	channel := "lpgame.d34db33f"

	t.Run("AttributedToAGamer", func(t *testing.T) {
		notifier, clientMock := suiteNotifier()

		expected := []byte(`{"event":"new_turn","data":{"word":"cat"},"session":"d34db33f","gamer":7}`)
		clientMock.
			On("Publish", channel, expected).
			Return(redis.NewIntResult(1, nil))

		err := notifier.Publish("new_turn", map[string]interface{}{"word": "cat"}, session, 7)
		assert.NoError(t, err)
	})
	t.Run("WithoutGamer", func(t *testing.T) {
		notifier, clientMock := suiteNotifier()

		expected := []byte(`{"event":"game_ready","data":null,"session":"d34db33f"}`)
		clientMock.
			On("Publish", channel, expected).
			Return(redis.NewIntResult(1, nil))

		err := notifier.Publish("game_ready", nil, session, 0)
		assert.NoError(t, err)
	})
	t.Run("PublishError", func(t *testing.T) {
		notifier, clientMock := suiteNotifier()

		unexpectedError := errors.New("unexpected error")
		clientMock.
			On("Publish", channel, mock.Anything).
			Return(redis.NewIntResult(0, unexpectedError))

		err := notifier.Publish("new_turn", nil, session, 7)
		assert.EqualError(t, err, unexpectedError.Error())
	})
}

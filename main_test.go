package main

import (
	"errors"
	"testing"
	"time"

	"communityapp/database"

	"github.com/stretchr/testify/assert"
)

func TestConnectWithRetry(t *testing.T) {
	t.Run("no sleep after the final failed attempt", func(t *testing.T) {
		sleeps := 0
		db := connectWithRetry(3,
			func(time.Duration) { sleeps++ },
			func() (*database.DB, error) { return nil, errors.New("refused") })

		assert.Nil(t, db)
		assert.Equal(t, 2, sleeps)
	})

	t.Run("stops retrying once connected", func(t *testing.T) {
		sleeps := 0
		calls := 0
		want := &database.DB{}
		db := connectWithRetry(3,
			func(time.Duration) { sleeps++ },
			func() (*database.DB, error) {
				calls++
				if calls < 2 {
					return nil, errors.New("refused")
				}
				return want, nil
			})

		assert.Same(t, want, db)
		assert.Equal(t, 2, calls)
		assert.Equal(t, 1, sleeps)
	})
}

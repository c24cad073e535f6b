package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gw2-api/internal/errors"
	"github.com/KirkDiggler/gw2-api/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestNewClientValidation() {
	s.Run("nil options", func() {
		_, err := redis.NewClient(nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("no addresses", func() {
		_, err := redis.NewClient(&redis.Options{})
		s.Require().Error(err)
		s.Contains(err.Error(), "addrs")
	})

	s.Run("empty address", func() {
		_, err := redis.NewClient(&redis.Options{Addrs: []string{""}})
		s.Require().Error(err)
	})
}

func (s *ClientTestSuite) TestPing() {
	mr := miniredis.RunT(s.T())

	client, err := redis.NewClient(&redis.Options{Addrs: []string{mr.Addr()}})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(redis.Ping(context.Background(), client))

	mr.Close()
	err = redis.Ping(context.Background(), client)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

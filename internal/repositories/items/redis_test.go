package items_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gw2-api/internal/errors"
	"github.com/KirkDiggler/gw2-api/internal/pkg/clock"
	"github.com/KirkDiggler/gw2-api/internal/repositories/items"
	"github.com/KirkDiggler/gw2-api/internal/testutils"
)

const testLang = "en"

type RedisItemsTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	clock *clock.Fixed
	repo  items.Repository
	ctx   context.Context
}

func TestRedisItemsTestSuite(t *testing.T) {
	suite.Run(t, new(RedisItemsTestSuite))
}

func (s *RedisItemsTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.clock = clock.NewFixed(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	repo, err := items.NewRedis(&items.RedisConfig{
		Client: client,
		TTL:    time.Hour,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisItemsTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *items.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &items.RedisConfig{}, errMsg: "client cannot be nil"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := items.NewRedis(tc.config)
			s.Require().Error(err)
			s.Nil(repo)
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisItemsTestSuite) TestPutGet() {
	record := testutils.SwordRecord()

	put, err := s.repo.Put(s.ctx, items.PutInput{Language: testLang, ItemID: testutils.SwordItemID, Record: record})
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), put.CachedAt)

	key := items.Key(testLang, testutils.SwordItemID)
	s.Equal("gw2:item:en:1234", key)
	s.True(s.mr.Exists(key))
	s.Equal(time.Hour, s.mr.TTL(key))

	got, err := s.repo.Get(s.ctx, items.GetInput{Language: testLang, ItemID: testutils.SwordItemID})
	s.Require().NoError(err)
	s.Equal(record, got.Record)
	s.Equal(put.CachedAt, got.CachedAt)
}

func (s *RedisItemsTestSuite) TestLanguagesAreSeparate() {
	_, err := s.repo.Put(s.ctx, items.PutInput{Language: "de", ItemID: 1, Record: testutils.ZapRecord()})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, items.GetInput{Language: testLang, ItemID: 1})
	s.True(errors.IsNotFound(err))
}

func (s *RedisItemsTestSuite) TestExpiry() {
	_, err := s.repo.Put(s.ctx, items.PutInput{Language: testLang, ItemID: 1, Record: testutils.ZapRecord()})
	s.Require().NoError(err)

	s.mr.FastForward(time.Hour + time.Second)

	_, err = s.repo.Get(s.ctx, items.GetInput{Language: testLang, ItemID: 1})
	s.True(errors.IsNotFound(err))
}

func (s *RedisItemsTestSuite) TestCorruptEntry() {
	s.Require().NoError(s.mr.Set(items.Key(testLang, 7), "{not json"))

	_, err := s.repo.Get(s.ctx, items.GetInput{Language: testLang, ItemID: 7})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *RedisItemsTestSuite) TestDelete() {
	_, err := s.repo.Put(s.ctx, items.PutInput{Language: testLang, ItemID: 1, Record: testutils.ZapRecord()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, items.DeleteInput{Language: testLang, ItemID: 1})
	s.Require().NoError(err)
	s.False(s.mr.Exists(items.Key(testLang, 1)))

	_, err = s.repo.Delete(s.ctx, items.DeleteInput{Language: testLang, ItemID: 1})
	s.NoError(err, "deleting a missing record is not an error")
}

func (s *RedisItemsTestSuite) TestValidation() {
	_, err := s.repo.Get(s.ctx, items.GetInput{ItemID: 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, items.GetInput{Language: testLang})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, items.PutInput{Language: testLang, ItemID: 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, items.DeleteInput{Language: testLang, ItemID: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisItemsTestSuite) TestUnavailableServer() {
	s.mr.Close()

	_, err := s.repo.Get(s.ctx, items.GetInput{Language: testLang, ItemID: 1})
	s.Require().Error(err)
	s.False(errors.IsNotFound(err), "a down cache is not a miss")
}

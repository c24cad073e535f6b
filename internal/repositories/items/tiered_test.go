package items_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/gw2-api/internal/errors"
	"github.com/KirkDiggler/gw2-api/internal/repositories/items"
	itemsmock "github.com/KirkDiggler/gw2-api/internal/repositories/items/mock"
	"github.com/KirkDiggler/gw2-api/internal/testutils"
)

type TieredItemsTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	front *itemsmock.MockRepository
	back  *itemsmock.MockRepository
	repo  items.Repository
	ctx   context.Context
}

func TestTieredItemsTestSuite(t *testing.T) {
	suite.Run(t, new(TieredItemsTestSuite))
}

func (s *TieredItemsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.front = itemsmock.NewMockRepository(s.ctrl)
	s.back = itemsmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	repo, err := items.NewTiered(&items.TieredConfig{Front: s.front, Back: s.back})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *TieredItemsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TieredItemsTestSuite) TestNewTiered() {
	_, err := items.NewTiered(nil)
	s.Error(err)

	_, err = items.NewTiered(&items.TieredConfig{Front: s.front})
	s.Require().Error(err)
	s.Contains(err.Error(), "back repository cannot be nil")
}

func (s *TieredItemsTestSuite) TestGetFrontHit() {
	input := items.GetInput{Language: testLang, ItemID: 1}
	want := &items.GetOutput{Record: testutils.ZapRecord()}

	s.front.EXPECT().Get(s.ctx, input).Return(want, nil)

	got, err := s.repo.Get(s.ctx, input)
	s.Require().NoError(err)
	s.Same(want, got)
}

func (s *TieredItemsTestSuite) TestGetPromotesBackHit() {
	input := items.GetInput{Language: testLang, ItemID: 1}
	record := testutils.ZapRecord()
	want := &items.GetOutput{Record: record}

	gomock.InOrder(
		s.front.EXPECT().Get(s.ctx, input).Return(nil, items.ErrNotCached(testLang, 1)),
		s.back.EXPECT().Get(s.ctx, input).Return(want, nil),
		s.front.EXPECT().
			Put(s.ctx, items.PutInput{Language: testLang, ItemID: 1, Record: record}).
			Return(&items.PutOutput{}, nil),
	)

	got, err := s.repo.Get(s.ctx, input)
	s.Require().NoError(err)
	s.Same(want, got)
}

func (s *TieredItemsTestSuite) TestGetMissesBoth() {
	input := items.GetInput{Language: testLang, ItemID: 1}

	s.front.EXPECT().Get(s.ctx, input).Return(nil, items.ErrNotCached(testLang, 1))
	s.back.EXPECT().Get(s.ctx, input).Return(nil, items.ErrNotCached(testLang, 1))

	_, err := s.repo.Get(s.ctx, input)
	s.True(errors.IsNotFound(err))
}

func (s *TieredItemsTestSuite) TestGetFrontFailureIsReturned() {
	input := items.GetInput{Language: testLang, ItemID: 1}

	s.front.EXPECT().Get(s.ctx, input).Return(nil, errors.Internal("boom"))

	_, err := s.repo.Get(s.ctx, input)
	s.True(errors.IsInternal(err))
}

func (s *TieredItemsTestSuite) TestPutWritesBoth() {
	input := items.PutInput{Language: testLang, ItemID: 1, Record: testutils.ZapRecord()}

	gomock.InOrder(
		s.back.EXPECT().Put(s.ctx, input).Return(&items.PutOutput{}, nil),
		s.front.EXPECT().Put(s.ctx, input).Return(&items.PutOutput{}, nil),
	)

	_, err := s.repo.Put(s.ctx, input)
	s.NoError(err)
}

func (s *TieredItemsTestSuite) TestDeleteBoth() {
	input := items.DeleteInput{Language: testLang, ItemID: 1}

	s.front.EXPECT().Delete(s.ctx, input).Return(&items.DeleteOutput{}, nil)
	s.back.EXPECT().Delete(s.ctx, input).Return(&items.DeleteOutput{}, nil)

	_, err := s.repo.Delete(s.ctx, input)
	s.NoError(err)
}

package items_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	gw2mock "github.com/KirkDiggler/gw2-api/internal/clients/gw2/mock"
	"github.com/KirkDiggler/gw2-api/internal/converters"
	convertersmock "github.com/KirkDiggler/gw2-api/internal/converters/mock"
	entities "github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
	orchestrator "github.com/KirkDiggler/gw2-api/internal/orchestrators/items"
	itemrepo "github.com/KirkDiggler/gw2-api/internal/repositories/items"
	itemrepomock "github.com/KirkDiggler/gw2-api/internal/repositories/items/mock"
	"github.com/KirkDiggler/gw2-api/internal/services/items"
	"github.com/KirkDiggler/gw2-api/internal/testutils"
	"github.com/KirkDiggler/gw2-api/internal/testutils/mocks"
)

const testLang = "en"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClient   *gw2mock.MockClient
	mockRepo     *itemrepomock.MockRepository
	orchestrator *orchestrator.Orchestrator
	ctx          context.Context
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = gw2mock.NewMockClient(s.ctrl)
	s.mockRepo = itemrepomock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	s.mockClient.EXPECT().Language().Return(testLang).AnyTimes()

	o, err := orchestrator.New(&orchestrator.Config{
		Client:     s.mockClient,
		Repository: s.mockRepo,
		Converter:  converters.New(),
	})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNew() {
	s.Run("nil config", func() {
		_, err := orchestrator.New(nil)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing dependencies", func() {
		_, err := orchestrator.New(&orchestrator.Config{})
		s.Require().Error(err)
		s.Contains(err.Error(), "Client")
		s.Contains(err.Error(), "Repository")
		s.Contains(err.Error(), "Converter")
	})

	s.Run("defaults concurrency", func() {
		cfg := &orchestrator.Config{Client: s.mockClient, Repository: s.mockRepo, Converter: converters.New()}
		s.Require().NoError(cfg.Validate())
		s.Equal(8, cfg.Concurrency)
	})
}

func (s *OrchestratorTestSuite) TestGetItemFromCache() {
	cachedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s.mockRepo.EXPECT().
		Get(s.ctx, itemrepo.GetInput{Language: testLang, ItemID: testutils.SwordItemID}).
		Return(&itemrepo.GetOutput{Record: testutils.SwordRecord(), CachedAt: cachedAt}, nil)

	out, err := s.orchestrator.GetItem(s.ctx, &items.GetItemInput{ItemID: testutils.SwordItemID})
	s.Require().NoError(err)
	s.Equal(items.SourceCache, out.Source)
	s.Equal(cachedAt, out.CachedAt)

	sword, ok := out.Item.(*entities.Sword)
	s.Require().True(ok, "got %T", out.Item)
	s.Equal(900, sword.MinimumPower)
	s.Equal(123, sword.DefaultSkinID)
}

func (s *OrchestratorTestSuite) TestGetItemFromAPI() {
	record := testutils.FoodRecord()
	mocks.ExpectCacheMiss(s.ctx, s.mockRepo, testLang, testutils.FoodItemID)
	mocks.ExpectFetchAndStore(s.mockClient, s.mockRepo, testLang, testutils.FoodItemID, record)

	out, err := s.orchestrator.GetItem(s.ctx, &items.GetItemInput{ItemID: testutils.FoodItemID})
	s.Require().NoError(err)
	s.Equal(items.SourceAPI, out.Source)

	food, ok := out.Item.(*entities.Food)
	s.Require().True(ok, "got %T", out.Item)
	s.Equal(time.Hour, food.Duration)
}

func (s *OrchestratorTestSuite) TestGetItemRefreshSkipsCache() {
	record := testutils.ZapRecord()
	mocks.ExpectFetchAndStore(s.mockClient, s.mockRepo, testLang, testutils.ZapItemID, record)

	out, err := s.orchestrator.GetItem(s.ctx, &items.GetItemInput{ItemID: testutils.ZapItemID, Refresh: true})
	s.Require().NoError(err)
	s.Equal(items.SourceAPI, out.Source)
}

func (s *OrchestratorTestSuite) TestGetItemCacheFailures() {
	s.Run("read failure falls back to API", func() {
		record := testutils.ZapRecord()
		s.mockRepo.EXPECT().
			Get(s.ctx, itemrepo.GetInput{Language: testLang, ItemID: testutils.ZapItemID}).
			Return(nil, errors.Internal("redis down"))
		mocks.ExpectFetchAndStore(s.mockClient, s.mockRepo, testLang, testutils.ZapItemID, record)

		out, err := s.orchestrator.GetItem(s.ctx, &items.GetItemInput{ItemID: testutils.ZapItemID})
		s.Require().NoError(err)
		s.Equal("Trophy", entities.TypeName(out.Item))
	})

	s.Run("write failure still returns the item", func() {
		record := testutils.ZapRecord()
		mocks.ExpectCacheMiss(s.ctx, s.mockRepo, testLang, testutils.ZapItemID)
		s.mockClient.EXPECT().GetItemDetails(gomock.Any(), testutils.ZapItemID).Return(record, nil)
		s.mockRepo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil, errors.Internal("redis down"))

		out, err := s.orchestrator.GetItem(s.ctx, &items.GetItemInput{ItemID: testutils.ZapItemID})
		s.Require().NoError(err)
		s.True(out.CachedAt.IsZero())
	})
}

func (s *OrchestratorTestSuite) TestGetItemErrors() {
	s.Run("nil input", func() {
		_, err := s.orchestrator.GetItem(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("invalid id", func() {
		_, err := s.orchestrator.GetItem(s.ctx, &items.GetItemInput{ItemID: 0})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("API not found", func() {
		mocks.ExpectCacheMiss(s.ctx, s.mockRepo, testLang, 5)
		s.mockClient.EXPECT().GetItemDetails(gomock.Any(), 5).Return(nil, errors.NotFound("invalid item_id"))

		_, err := s.orchestrator.GetItem(s.ctx, &items.GetItemInput{ItemID: 5})
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestGetItemConversionFailure() {
	mockConverter := convertersmock.NewMockConverter(s.ctrl)
	o, err := orchestrator.New(&orchestrator.Config{
		Client:     s.mockClient,
		Repository: s.mockRepo,
		Converter:  mockConverter,
	})
	s.Require().NoError(err)

	record := testutils.ZapRecord()
	mocks.ExpectCacheHit(s.ctx, s.mockRepo, testLang, 1, record)
	mockConverter.EXPECT().Convert(record).Return(nil, errors.InvalidArgument("item record is required"))

	_, err = o.GetItem(s.ctx, &items.GetItemInput{ItemID: 1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetItemsKeepsOrder() {
	ids := []int{testutils.ZapItemID, testutils.SwordItemID, testutils.FoodItemID}
	records := map[int]*gw2.ItemDetails{
		testutils.ZapItemID:   testutils.ZapRecord(),
		testutils.SwordItemID: testutils.SwordRecord(),
		testutils.FoodItemID:  testutils.FoodRecord(),
	}

	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input itemrepo.GetInput) (*itemrepo.GetOutput, error) {
			return &itemrepo.GetOutput{Record: records[input.ItemID]}, nil
		}).
		Times(len(ids))

	out, err := s.orchestrator.GetItems(s.ctx, &items.GetItemsInput{ItemIDs: ids})
	s.Require().NoError(err)
	s.Require().Len(out.Items, 3)
	s.Equal("Trophy", entities.TypeName(out.Items[0]))
	s.Equal("Sword", entities.TypeName(out.Items[1]))
	s.Equal("Food", entities.TypeName(out.Items[2]))
}

func (s *OrchestratorTestSuite) TestGetItemsFailure() {
	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, itemrepo.ErrNotCached(testLang, 1)).AnyTimes()
	s.mockClient.EXPECT().GetItemDetails(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("GW2 API unreachable")).AnyTimes()

	_, err := s.orchestrator.GetItems(s.ctx, &items.GetItemsInput{ItemIDs: []int{1, 2, 3}})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestGetItemsLimits() {
	out, err := s.orchestrator.GetItems(s.ctx, &items.GetItemsInput{})
	s.Require().NoError(err)
	s.Empty(out.Items)

	_, err = s.orchestrator.GetItems(s.ctx, &items.GetItemsInput{ItemIDs: make([]int, orchestrator.MaxBatchSize+1)})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestConcurrentFetchesShareRequest() {
	record := testutils.ZapRecord()
	release := make(chan struct{})

	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, itemrepo.ErrNotCached(testLang, testutils.ZapItemID)).Times(2)
	s.mockClient.EXPECT().GetItemDetails(gomock.Any(), testutils.ZapItemID).
		DoAndReturn(func(context.Context, int) (*gw2.ItemDetails, error) {
			<-release
			return record, nil
		}).
		MinTimes(1).MaxTimes(2)
	s.mockRepo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(&itemrepo.PutOutput{}, nil).MinTimes(1).MaxTimes(2)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.orchestrator.GetItem(s.ctx, &items.GetItemInput{ItemID: testutils.ZapItemID})
			s.NoError(err)
		}()
	}
	close(release)
	wg.Wait()
}

func (s *OrchestratorTestSuite) TestSharedFetchSurvivesCallerCancel() {
	record := testutils.ZapRecord()
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, itemrepo.ErrNotCached(testLang, testutils.ZapItemID)).Times(2)
	s.mockClient.EXPECT().GetItemDetails(gomock.Any(), testutils.ZapItemID).
		DoAndReturn(func(ctx context.Context, _ int) (*gw2.ItemDetails, error) {
			once.Do(func() { close(started) })
			<-release
			if err := ctx.Err(); err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeCanceled, "request canceled")
			}
			return record, nil
		}).
		MinTimes(1).MaxTimes(2)
	s.mockRepo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(&itemrepo.PutOutput{}, nil).MinTimes(1).MaxTimes(2)

	firstCtx, cancel := context.WithCancel(s.ctx)
	firstErr := make(chan error, 1)
	go func() {
		_, err := s.orchestrator.GetItem(firstCtx, &items.GetItemInput{ItemID: testutils.ZapItemID})
		firstErr <- err
	}()
	<-started

	cancel()
	err := <-firstErr
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))

	secondErr := make(chan error, 1)
	go func() {
		out, err := s.orchestrator.GetItem(s.ctx, &items.GetItemInput{ItemID: testutils.ZapItemID})
		if err == nil && entities.TypeName(out.Item) != "Trophy" {
			err = errors.Internal("unexpected item type " + entities.TypeName(out.Item))
		}
		secondErr <- err
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)

	s.NoError(<-secondErr)
}

func (s *OrchestratorTestSuite) TestListItemIDs() {
	s.mockClient.EXPECT().ListItemIDs(s.ctx).Return([]int{1, 2}, nil)

	out, err := s.orchestrator.ListItemIDs(s.ctx, &items.ListItemIDsInput{})
	s.Require().NoError(err)
	s.Equal([]int{1, 2}, out.ItemIDs)

	_, err = s.orchestrator.ListItemIDs(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestConvertRecord() {
	out, err := s.orchestrator.ConvertRecord(s.ctx, &items.ConvertRecordInput{Record: testutils.SwordRecord()})
	s.Require().NoError(err)
	s.Equal("Sword", entities.TypeName(out.Item))

	_, err = s.orchestrator.ConvertRecord(s.ctx, &items.ConvertRecordInput{})
	s.True(errors.IsInvalidArgument(err))
}

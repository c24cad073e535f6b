// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	gw2mock "github.com/KirkDiggler/gw2-api/internal/clients/gw2/mock"
	itemrepo "github.com/KirkDiggler/gw2-api/internal/repositories/items"
	itemrepomock "github.com/KirkDiggler/gw2-api/internal/repositories/items/mock"
)

// ExpectCacheMiss sets up a repository Get that finds nothing
func ExpectCacheMiss(ctx context.Context, mockRepo *itemrepomock.MockRepository, lang string, id int) {
	mockRepo.EXPECT().
		Get(ctx, itemrepo.GetInput{Language: lang, ItemID: id}).
		Return(nil, itemrepo.ErrNotCached(lang, id))
}

// ExpectCacheHit sets up a repository Get that returns record
func ExpectCacheHit(
	ctx context.Context, mockRepo *itemrepomock.MockRepository,
	lang string, id int, record *gw2.ItemDetails,
) {
	mockRepo.EXPECT().
		Get(ctx, itemrepo.GetInput{Language: lang, ItemID: id}).
		Return(&itemrepo.GetOutput{Record: record}, nil)
}

// ExpectFetchAndStore sets up an API fetch of record followed by the cache
// write the service makes after it. Shared fetches run on a detached context,
// so the context is not matched.
func ExpectFetchAndStore(
	mockClient *gw2mock.MockClient, mockRepo *itemrepomock.MockRepository,
	lang string, id int, record *gw2.ItemDetails,
) {
	gomock.InOrder(
		mockClient.EXPECT().GetItemDetails(gomock.Any(), id).Return(record, nil),
		mockRepo.EXPECT().
			Put(gomock.Any(), itemrepo.PutInput{Language: lang, ItemID: id, Record: record}).
			Return(&itemrepo.PutOutput{}, nil),
	)
}

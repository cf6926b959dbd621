package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/internal/service/mocks"
	"github.com/limbo/mindful/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	saver := mocks.NewMockSlotSaver(ctrl)
	cs := service.NewCatalogService(nil, saver, newFakeClock(testDay), nil)

	testCases := []struct {
		Desc         string
		Error        error
		Req          service.EntryRequest
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Req: service.EntryRequest{
				Title:    "Abendruhe",
				Duration: 420,
				Category: entity.CategorySleep,
			},
			MockPrepFunc: func() {
				saver.EXPECT().Save(gomock.Any(), repository.SlotCatalog, gomock.Any()).Return(nil)
			},
		},
		{
			Desc:         "empty title",
			Error:        errorvalues.ErrValidation,
			Req:          service.EntryRequest{Duration: 60, Category: entity.CategoryFocus},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "zero duration",
			Error:        errorvalues.ErrValidation,
			Req:          service.EntryRequest{Title: "Kurz", Category: entity.CategoryFocus},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "unknown category",
			Error:        errorvalues.ErrValidation,
			Req:          service.EntryRequest{Title: "Kurz", Duration: 60, Category: "yoga"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "unknown sound",
			Error:        errorvalues.ErrValidation,
			Req:          service.EntryRequest{Title: "Kurz", Duration: 60, Category: entity.CategoryFocus, AmbientSound: "thunder"},
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		entry, err := cs.Add(context.Background(), tc.Req)
		if tc.Error != nil {
			assert.ErrorIs(t, err, tc.Error, tc.Desc)
			continue
		}
		require.NoError(t, err, tc.Desc)
		assert.NotEqual(t, uuid.Nil, entry.ID)
		assert.Equal(t, testDay, entry.CreatedAt)
		assert.Equal(t, entity.SoundNone, entry.AmbientSound)
		assert.Zero(t, entry.CompletedSessions)
	}
	assert.Len(t, cs.List(), 1)
}

func TestUpdateEntryKeepsCounters(t *testing.T) {
	t.Parallel()
	clk := newFakeClock(testDay)
	cs := service.NewCatalogService(service.SeedCatalog(testDay), service.NewPersistenceGateway(newMemoryBlobs(), clk, nil), clk, nil)
	ctx := context.Background()
	original := cs.List()[0]
	require.NoError(t, cs.RecordCompletion(ctx, original.ID, 120, testDay))

	edited := original
	edited.Title = "Neuer Titel"
	edited.Duration = 240
	edited.CompletedSessions = 0
	edited.TotalTimeSpent = 0
	edited.CreatedAt = testDay.AddDate(1, 0, 0)
	require.NoError(t, cs.Update(ctx, edited))

	got, err := cs.Get(original.ID)
	require.NoError(t, err)
	assert.Equal(t, "Neuer Titel", got.Title)
	assert.Equal(t, 240, got.Duration)
	assert.Equal(t, 1, got.CompletedSessions)
	assert.Equal(t, 120, got.TotalTimeSpent)
	assert.Equal(t, original.CreatedAt, got.CreatedAt)

	missing := edited
	missing.ID = uuid.New()
	assert.ErrorIs(t, cs.Update(ctx, missing), errorvalues.ErrEntryNotFound)
}

func TestFavoritesAndCategories(t *testing.T) {
	t.Parallel()
	clk := newFakeClock(testDay)
	cs := service.NewCatalogService(service.SeedCatalog(testDay), service.NewPersistenceGateway(newMemoryBlobs(), clk, nil), clk, nil)
	ctx := context.Background()

	assert.Empty(t, cs.Favorites())
	sleep := cs.ListByCategory(entity.CategorySleep)
	require.NotEmpty(t, sleep)
	for _, e := range sleep {
		assert.Equal(t, entity.CategorySleep, e.Category)
	}

	fav, err := cs.ToggleFavorite(ctx, sleep[0].ID)
	require.NoError(t, err)
	assert.True(t, fav)
	assert.Len(t, cs.Favorites(), 1)

	fav, err = cs.ToggleFavorite(ctx, sleep[0].ID)
	require.NoError(t, err)
	assert.False(t, fav)
	assert.Empty(t, cs.Favorites())

	_, err = cs.ToggleFavorite(ctx, uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
}

func TestDeleteEntry(t *testing.T) {
	t.Parallel()
	clk := newFakeClock(testDay)
	blobs := newMemoryBlobs()
	cs := service.NewCatalogService(service.SeedCatalog(testDay), service.NewPersistenceGateway(blobs, clk, nil), clk, nil)
	ctx := context.Background()
	victim := cs.List()[3]

	require.NoError(t, cs.Delete(ctx, victim.ID))
	assert.Len(t, cs.List(), 26)
	_, err := cs.Get(victim.ID)
	assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	assert.ErrorIs(t, cs.Delete(ctx, victim.ID), errorvalues.ErrEntryNotFound)
	assert.Equal(t, 1, blobs.Writes(repository.SlotCatalog))
}

func TestListReturnsCopies(t *testing.T) {
	t.Parallel()
	clk := newFakeClock(testDay)
	cs := service.NewCatalogService(service.SeedCatalog(testDay), service.NewPersistenceGateway(newMemoryBlobs(), clk, nil), clk, nil)

	list := cs.List()
	list[0].Title = "changed outside"
	assert.NotEqual(t, "changed outside", cs.List()[0].Title)
}

func TestFailedSaveKeepsCatalog(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	saver := mocks.NewMockSlotSaver(ctrl)
	cs := service.NewCatalogService(service.SeedCatalog(testDay), saver, newFakeClock(testDay), nil)
	ctx := context.Background()
	before := cs.List()
	target := before[0]
	saveErr := errors.New("disk full")

	testCases := []struct {
		Desc string
		Call func() error
	}{
		{
			Desc: "add",
			Call: func() error {
				_, err := cs.Add(ctx, service.EntryRequest{Title: "Neu", Duration: 60, Category: entity.CategoryFocus})
				return err
			},
		},
		{
			Desc: "update",
			Call: func() error {
				edited := target
				edited.Title = "Neuer Titel"
				return cs.Update(ctx, edited)
			},
		},
		{
			Desc: "delete",
			Call: func() error { return cs.Delete(ctx, target.ID) },
		},
		{
			Desc: "toggle favorite",
			Call: func() error {
				_, err := cs.ToggleFavorite(ctx, target.ID)
				return err
			},
		},
		{
			Desc: "record completion",
			Call: func() error { return cs.RecordCompletion(ctx, target.ID, 120, testDay) },
		},
	}
	for _, tc := range testCases {
		saver.EXPECT().Save(gomock.Any(), repository.SlotCatalog, gomock.Any()).Return(saveErr)
		assert.ErrorIs(t, tc.Call(), saveErr, tc.Desc)
		assert.Equal(t, before, cs.List(), tc.Desc)
	}

	saver.EXPECT().Save(gomock.Any(), repository.SlotCatalog, gomock.Any()).Return(nil)
	_, err := cs.Add(ctx, service.EntryRequest{Title: "Neu", Duration: 60, Category: entity.CategoryFocus})
	require.NoError(t, err)
	assert.Len(t, cs.List(), len(before)+1)
}

package anchors_test

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports/mocks"
	"go.trai.ch/edgetabs/internal/engine/anchors"
	"go.uber.org/mock/gomock"
)

func TestSweeper_Run(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tree := mocks.NewMockAccessibilityTree(ctrl)
		tree.EXPECT().Root(domain.WindowHandle(0x1)).Return(nil, false)

		cache := anchors.NewCache(tree, successTTL, negativeTTL)
		cache.GetOrCreate(0x1)

		var sweeps []int
		sweeper := anchors.NewSweeper(cache, 60*time.Second, func(removed int) {
			sweeps = append(sweeps, removed)
		})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- sweeper.Run(ctx) }()

		time.Sleep(30 * time.Second)
		synctest.Wait()
		assert.Empty(t, sweeps, "no tick before the first interval")
		assert.Equal(t, 1, cache.Len())

		time.Sleep(31 * time.Second)
		synctest.Wait()
		assert.Equal(t, []int{1}, sweeps)
		assert.Zero(t, cache.Len())

		time.Sleep(60 * time.Second)
		synctest.Wait()
		assert.Equal(t, []int{1, 0}, sweeps)

		cancel()
		assert.NoError(t, <-done)
	})
}

func TestSweeper_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := anchors.NewCache(mocks.NewMockAccessibilityTree(ctrl), successTTL, negativeTTL)
		sweeper := anchors.NewSweeper(cache, time.Second, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, sweeper.Run(ctx))
	})
}

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/mock"
	"github.com/MKhiriev/nudge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingPublisher struct {
	mu    sync.Mutex
	calls []map[models.Status]int
}

func (r *recordingPublisher) SetItemCounts(counts map[models.Status]int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, counts)
}

func (r *recordingPublisher) snapshot() []map[models.Status]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]map[models.Status]int(nil), r.calls...)
}

func TestDigestWorker_PublishesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	digest := mock.NewMockDigestService(ctrl)
	publisher := &recordingPublisher{}

	counts := map[models.Status]int{models.StatusCritical: 2, models.StatusApproaching: 0, models.StatusSafe: 5}
	digest.EXPECT().CountByStatus(gomock.Any()).Return(counts, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewDigestWorker(digest, publisher, time.Hour, logger.Nop()).Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(publisher.snapshot()) > 0 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, counts, publisher.snapshot()[0])
}

func TestDigestWorker_FailedRunKeepsPreviousCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	digest := mock.NewMockDigestService(ctrl)
	publisher := &recordingPublisher{}

	digest.EXPECT().CountByStatus(gomock.Any()).Return(nil, errors.New("database down"))

	w := NewDigestWorker(digest, publisher, time.Hour, logger.Nop())
	w.runOnce(context.Background())

	assert.Empty(t, publisher.snapshot())
}

func TestDigestWorker_Ticks(t *testing.T) {
	ctrl := gomock.NewController(t)
	digest := mock.NewMockDigestService(ctrl)
	publisher := &recordingPublisher{}

	digest.EXPECT().CountByStatus(gomock.Any()).Return(map[models.Status]int{}, nil).MinTimes(3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewDigestWorker(digest, publisher, 5*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(publisher.snapshot()) >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

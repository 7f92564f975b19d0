package probe

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"museum-web/internal/domain/entity"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubAPI struct {
	err   error
	calls atomic.Int32
}

func (s *stubAPI) Ping(ctx context.Context) error {
	s.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("probe without deadline")
	}
	return s.err
}

type stubVets struct{ n int }

func (s stubVets) ListVeterans(context.Context) ([]*entity.Veteran, error) {
	return make([]*entity.Veteran, s.n), nil
}
func (stubVets) GetVeteran(context.Context, string) (*entity.Veteran, error) { return nil, nil }
func (stubVets) CreateVeteran(context.Context, *entity.Veteran) (*entity.Veteran, error) {
	return nil, nil
}
func (stubVets) UpdateVeteran(context.Context, *entity.Veteran) error { return nil }
func (stubVets) DeleteVeteran(context.Context, string) error          { return nil }

type stubNews struct{ err error }

func (s stubNews) ListNews(context.Context) ([]*entity.News, error) {
	return []*entity.News{{ID: "1"}, {ID: "2"}}, s.err
}
func (stubNews) GetNews(context.Context, string) (*entity.News, error)            { return nil, nil }
func (stubNews) CreateNews(context.Context, *entity.News) (*entity.News, error) { return nil, nil }
func (stubNews) UpdateNews(context.Context, *entity.News) error                 { return nil }
func (stubNews) DeleteNews(context.Context, string) error                       { return nil }

type stubSweeper struct{ swept atomic.Int32 }

func (s *stubSweeper) Sweep() int {
	s.swept.Add(1)
	return 4
}

func TestRun_Success(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	sweeper := &stubSweeper{}
	p := &Probe{API: &stubAPI{}, Veterans: stubVets{n: 3}, News: stubNews{}, Sessions: sweeper, Metrics: m}

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Up)
	assert.Equal(t, 3, res.Veterans)
	assert.Equal(t, 2, res.News)
	assert.Equal(t, 4, res.Sessions)
	assert.Equal(t, int32(1), sweeper.swept.Load())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("success")))
	assert.Positive(t, testutil.ToFloat64(m.LastSuccessTimestamp))
}

func TestRun_APIDown(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	sweeper := &stubSweeper{}
	p := &Probe{API: &stubAPI{err: errors.New("dial tcp: connection refused")}, Veterans: stubVets{n: 3}, Sessions: sweeper, Metrics: m}

	res, err := p.Run(context.Background())
	require.Error(t, err)
	assert.False(t, res.Up)
	assert.Zero(t, res.Veterans, "records are not counted while the API is down")
	assert.Equal(t, int32(1), sweeper.swept.Load(), "sessions are swept anyway")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("failure")))
	assert.Zero(t, testutil.ToFloat64(m.LastSuccessTimestamp))
}

func TestRun_CountFailure(t *testing.T) {
	p := &Probe{API: &stubAPI{}, Veterans: stubVets{n: 1}, News: stubNews{err: errors.New("HTTP 500")}}

	res, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list news")
	assert.True(t, res.Up)
	assert.Equal(t, 1, res.Veterans)
}

func TestStart_RejectsBadSchedule(t *testing.T) {
	_, err := Start(&Probe{API: &stubAPI{}}, "not a schedule", nil)
	assert.Error(t, err)
}

func TestScheduler_StopsCleanly(t *testing.T) {
	api := &stubAPI{}
	s, err := Start(&Probe{API: api}, "@every 1h", time.UTC)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.Zero(t, api.calls.Load())
}

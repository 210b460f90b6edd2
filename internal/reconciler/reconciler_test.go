package reconciler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/internal/service/paymentservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type fakeSettler struct {
	mu      sync.Mutex
	settled []string
	err     error
	done    chan string
}

func newFakeSettler() *fakeSettler {
	return &fakeSettler{done: make(chan string, 64)}
}

func (f *fakeSettler) Complete(ctx context.Context, payment *domain.Payment) error {
	f.mu.Lock()
	err := f.err
	if err == nil {
		f.settled = append(f.settled, payment.PaymentID)
	}
	f.mu.Unlock()
	f.done <- payment.PaymentID
	return err
}

func (f *fakeSettler) ids() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.settled...)
}

func (f *fakeSettler) waitFor(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-f.done:
		case <-time.After(2 * time.Second):
			require.Fail(t, "timed out waiting for settlement")
		}
	}
}

func NewMock(t *testing.T) (*Service, *paymentservice.MockRepo, *fakeSettler) {
	ctrl := gomock.NewController(t)
	repo := paymentservice.NewMockRepo(ctrl)
	settler := newFakeSettler()
	svc := New(repo, settler)
	defer ctrl.Finish()
	return svc, repo, settler
}

func stalePayments() []domain.Payment {
	created := time.Now().UTC().Add(-time.Hour)
	return []domain.Payment{
		{ID: 1, PaymentID: "pay_a", UserID: 1, Amount: 50, Currency: domain.CurrencyUSD, Status: domain.PaymentStatusPending, CreatedAt: created},
		{ID: 2, PaymentID: "pay_b", UserID: 2, Amount: 75, Currency: domain.CurrencyEUR, Status: domain.PaymentStatusPending, CreatedAt: created},
	}
}

func TestSweep(t *testing.T) {
	t.Run("Stale payments are settled", func(t *testing.T) {
		svc, repo, settler := NewMock(t)
		defer svc.workerPool.Close()

		repo.EXPECT().FindPendingBefore(gomock.Any(), gomock.Any(), uint32(1000)).
			Return(stalePayments(), nil)

		svc.sweep(context.Background())
		settler.waitFor(t, 2)

		assert.ElementsMatch(t, []string{"pay_a", "pay_b"}, settler.ids())
	})

	t.Run("Repo failure skips the sweep", func(t *testing.T) {
		svc, repo, settler := NewMock(t)
		defer svc.workerPool.Close()

		repo.EXPECT().FindPendingBefore(gomock.Any(), gomock.Any(), uint32(1000)).
			Return(nil, assert.AnError)

		svc.sweep(context.Background())

		assert.Empty(t, settler.ids())
	})

	t.Run("Payment already in flight is not settled twice", func(t *testing.T) {
		svc, repo, settler := NewMock(t)
		defer svc.workerPool.Close()

		inFlight.Store("pay_a", struct{}{})
		defer inFlight.Delete("pay_a")

		repo.EXPECT().FindPendingBefore(gomock.Any(), gomock.Any(), uint32(1000)).
			Return(stalePayments(), nil)

		svc.sweep(context.Background())
		settler.waitFor(t, 1)

		assert.Equal(t, []string{"pay_b"}, settler.ids())
	})

	t.Run("Settlement failure does not leave the payment marked in flight", func(t *testing.T) {
		svc, repo, settler := NewMock(t)
		defer svc.workerPool.Close()

		settler.err = assert.AnError
		repo.EXPECT().FindPendingBefore(gomock.Any(), gomock.Any(), uint32(1000)).
			Return(stalePayments()[:1], nil)

		svc.sweep(context.Background())
		settler.waitFor(t, 1)

		assert.Eventually(t, func() bool {
			_, loaded := inFlight.Load("pay_a")
			return !loaded
		}, time.Second, 10*time.Millisecond)
	})
}

func TestRun(t *testing.T) {
	svc, repo, settler := NewMock(t)
	svc.sweepInterval = 10 * time.Millisecond

	repo.EXPECT().FindPendingBefore(gomock.Any(), gomock.Any(), uint32(1000)).
		Return(stalePayments()[:1], nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	svc.Start(ctx)
	settler.waitFor(t, 1)
	cancel()

	assert.Contains(t, settler.ids(), "pay_a")
}

package reconciler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/internal/service/paymentservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Settler finishes a payment the same way the synchronous path does.
type Settler interface {
	Complete(ctx context.Context, payment *domain.Payment) error
}

var inFlight sync.Map

// Service sweeps payments left in pending, typically because the process died
// between the intake insert and the completion step, and settles them.
type Service struct {
	paymentRepo   paymentservice.Repo
	settler       Settler
	limit         uint32
	pendingMaxAge time.Duration
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(paymentRepo paymentservice.Repo, settler Settler) *Service {
	return &Service{
		paymentRepo:   paymentRepo,
		settler:       settler,
		limit:         1000,
		pendingMaxAge: time.Minute,
		workerPool:    NewWorkerPool(10),
		sweepInterval: time.Second * 30,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payment reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.pendingMaxAge)
	payments, err := s.paymentRepo.FindPendingBefore(ctx, cutoff, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch pending payments", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, payment := range payments {
		payment := payment

		if _, loaded := inFlight.LoadOrStore(payment.PaymentID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(payment.PaymentID)
				return s.settle(ctx, payment)
			})
			if err != nil {
				inFlight.Delete(payment.PaymentID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error settling payments", zap.Error(err))
	}
}

func (s *Service) settle(ctx context.Context, payment domain.Payment) error {
	if err := s.settler.Complete(ctx, &payment); err != nil {
		return err
	}
	zap.L().Info("Stale payment settled",
		zap.String("payment_id", payment.PaymentID),
		zap.Time("created_at", payment.CreatedAt))
	return nil
}

package notify

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// TaskStore é o que a varredura precisa do armazenamento de tarefas.
type TaskStore interface {
	FetchDue(ctx context.Context, limit int, now time.Time) ([]models.NotificationTask, error)
	MarkSent(ctx context.Context, id uint, at time.Time) error
	MarkFailure(ctx context.Context, id uint, attempts int, lastError string, nextAttemptAt *time.Time, terminal bool) error
}

type SweeperConfig struct {
	Interval    time.Duration
	BatchSize   int
	MaxAttempts int
	RetryDelay  time.Duration
}

// Sweeper executa a varredura periódica da fila: lote de tarefas pendentes
// vencidas, mais antigas primeiro, uma varredura por vez.
type Sweeper struct {
	store  TaskStore
	sender Sender

	interval    time.Duration
	batchSize   int
	maxAttempts int
	retryDelay  time.Duration

	// guarda try-acquire: tick que chega com varredura em andamento é pulado
	running atomic.Bool
}

func NewSweeper(store TaskStore, sender Sender, cfg SweeperConfig) *Sweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 5 * time.Minute
	}

	return &Sweeper{
		store:       store,
		sender:      sender,
		interval:    cfg.Interval,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				log.Println("notify sweep error:", err)
			}
		}
	}
}

// Sweep processa um lote. Retorna sem fazer nada se outra varredura ainda
// está em andamento.
func (s *Sweeper) Sweep(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	defer s.running.Store(false)

	tasks, err := s.store.FetchDue(ctx, s.batchSize, time.Now())
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if err := s.sender.Send(task); err != nil {
			s.recordFailure(ctx, task, err)
			continue
		}

		if err := s.store.MarkSent(ctx, task.ID, time.Now()); err != nil {
			log.Println("notify mark sent error:", err)
		}
	}

	return nil
}

func (s *Sweeper) recordFailure(ctx context.Context, task models.NotificationTask, sendErr error) {
	attempts := task.Attempts + 1

	if attempts >= s.maxAttempts {
		// terminal: só um reset manual do operador devolve para pending
		if err := s.store.MarkFailure(ctx, task.ID, attempts, sendErr.Error(), nil, true); err != nil {
			log.Println("notify mark failed error:", err)
		}
		return
	}

	next := time.Now().Add(s.retryDelay)
	if err := s.store.MarkFailure(ctx, task.ID, attempts, sendErr.Error(), &next, false); err != nil {
		log.Println("notify mark retry error:", err)
	}
}

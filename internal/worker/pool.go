package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/profitshare/internal/domain"
	"go.uber.org/zap"
)

// Pool представляет пул воркеров, возобновляющих прерванные распределения.
// Сканер периодически ищет торговые результаты с маркерами начислений, но без
// отметки о завершении — следы упавшего или прерванного запуска distribute.
type Pool struct {
	workers             int
	queue               chan string
	resultRepo          domain.TradingResultRepository
	distributionService domain.DistributionService
	logger              *zap.Logger
	wg                  sync.WaitGroup
	scanInterval        time.Duration
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	scanInterval time.Duration,
	resultRepo domain.TradingResultRepository,
	distributionService domain.DistributionService,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:             workers,
		queue:               make(chan string, queueSize),
		resultRepo:          resultRepo,
		distributionService: distributionService,
		logger:              logger,
		scanInterval:        scanInterval,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер незавершенных распределений
	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// worker возобновляет распределения из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case tradingResultID, ok := <-p.queue:
			if !ok {
				return
			}
			p.resumeDistribution(ctx, tradingResultID)
		}
	}
}

// scanner периодически сканирует незавершенные распределения
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanUnfinished(ctx)
		}
	}
}

// scanUnfinished находит незавершенные распределения и отправляет их в очередь
func (p *Pool) scanUnfinished(ctx context.Context) {
	ids, err := p.resultRepo.GetUnfinishedTradingResults(ctx)
	if err != nil {
		p.logger.Error("failed to get unfinished trading results", zap.Error(err))
		return
	}

	for _, id := range ids {
		select {
		case p.queue <- id:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, результат попадет в следующий скан
			p.logger.Warn("queue is full, skipping trading result", zap.String("trading_result_id", id))
		}
	}
}

// resumeDistribution доводит одно распределение до конца
func (p *Pool) resumeDistribution(ctx context.Context, tradingResultID string) {
	p.logger.Debug("resuming distribution", zap.String("trading_result_id", tradingResultID))

	summary, err := p.distributionService.Distribute(ctx, tradingResultID)
	if err != nil {
		// Результат уже завершен или распределяется прямо сейчас — не ошибка
		if errors.Is(err, domain.ErrAlreadyProcessed) || errors.Is(err, domain.ErrDistributionInProgress) {
			p.logger.Debug("distribution already handled",
				zap.String("trading_result_id", tradingResultID),
				zap.Error(err),
			)
			return
		}

		p.logger.Error("failed to resume distribution",
			zap.String("trading_result_id", tradingResultID),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("distribution resumed and completed",
		zap.String("trading_result_id", tradingResultID),
		zap.Int("users_affected", summary.UsersAffected),
		zap.String("total_bonus", summary.TotalBonusDistributed.String()),
	)
}

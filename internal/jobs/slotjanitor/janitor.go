package slotjanitor

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// SlotPurger удаляет окна с датой раньше указанной
type SlotPurger interface {
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

// TimeProvider источник даты "сегодня"
type TimeProvider interface {
	Today() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Janitor периодически удаляет устаревшие окна доступности.
// Бронирования не затрагиваются
type Janitor struct {
	repo          SlotPurger
	timeProvider  TimeProvider
	retentionDays int
	timeout       time.Duration
	logger        Logger
	cron          *cron.Cron
}

// New создает janitor. retentionDays - сколько дней прошедшие окна хранятся после своей даты
func New(repo SlotPurger, timeProvider TimeProvider, retentionDays int, timeout time.Duration, logger Logger) *Janitor {
	return &Janitor{
		repo:          repo,
		timeProvider:  timeProvider,
		retentionDays: retentionDays,
		timeout:       timeout,
		logger:        logger,
		cron:          cron.New(),
	}
}

// Start регистрирует задачу по cron-расписанию и запускает планировщик
func (j *Janitor) Start(schedule string) error {
	if _, err := j.cron.AddFunc(schedule, j.run); err != nil {
		return fmt.Errorf("slotjanitor: invalid schedule %q: %w", schedule, err)
	}
	j.cron.Start()
	j.logger.Info("SlotJanitor: started with schedule %q, retention %d days", schedule, j.retentionDays)
	return nil
}

// Stop останавливает планировщик и ждет завершения текущего запуска
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("SlotJanitor: stopped")
}

// RunOnce удаляет окна старше срока хранения и возвращает их количество
func (j *Janitor) RunOnce(ctx context.Context) (int64, error) {
	cutoff := j.timeProvider.Today().AddDate(0, 0, -j.retentionDays)

	deleted, err := j.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("slotjanitor: purge before %s: %w", cutoff.Format("2006-01-02"), err)
	}
	return deleted, nil
}

func (j *Janitor) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	deleted, err := j.RunOnce(ctx)
	if err != nil {
		j.logger.Error("SlotJanitor: %v", err)
		return
	}
	j.logger.Info("SlotJanitor: purged %d expired slots", deleted)
}

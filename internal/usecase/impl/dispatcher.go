package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"allserve/config"
	deliverycontext "allserve/internal/delivery/context"
	"allserve/internal/domain/constants"
	"allserve/internal/domain/service"
	"allserve/internal/errors"
	"allserve/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// dispatchOutcome is the result of one background job, drained by the logging loop.
type dispatchOutcome struct {
	event  *service.PushEvent
	report *usecase.DeliveryReport
	err    error
	took   time.Duration
}

type dispatcher struct {
	mode     string
	run      func(ctx context.Context, event *service.PushEvent) (*usecase.DeliveryReport, error)
	timeout  time.Duration
	outcomes chan dispatchOutcome
	drained  chan struct{}
	jobs     sync.WaitGroup
	mu       sync.RWMutex
	closed   bool
	once     sync.Once
	logger   *slog.Logger
}

// DispatcherParams holds dependencies for the Dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Notifier  usecase.NotificationUsecase
	Publisher service.EventPublisher
}

// NewDispatcher creates the Dispatcher selected by notification.mode
func NewDispatcher(params DispatcherParams) (usecase.Dispatcher, error) {
	cfg := params.Config.Notification

	d, err := newDispatcher(cfg.Mode, cfg.Timeout, cfg.ErrorBuffer, params.Notifier, params.Publisher, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Draining notification dispatcher")

			return d.Close()
		},
	})

	return d, nil
}

func newDispatcher(
	mode string,
	timeout time.Duration,
	buffer int,
	notifier usecase.NotificationUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) (*dispatcher, error) {
	d := &dispatcher{
		mode:     mode,
		timeout:  timeout,
		outcomes: make(chan dispatchOutcome, max(buffer, 1)),
		drained:  make(chan struct{}),
		logger:   logger,
	}

	switch mode {
	case constants.NotificationModeInline:
		d.run = notifier.Deliver
	case constants.NotificationModePubSub:
		if publisher == nil {
			return nil, errors.New("pubsub dispatch requires an event publisher")
		}
		d.run = func(ctx context.Context, event *service.PushEvent) (*usecase.DeliveryReport, error) {
			return nil, publisher.PublishPushEvent(ctx, event)
		}
	case constants.NotificationModeDisabled:
	default:
		return nil, errors.Errorf("unknown notification mode: %s", mode)
	}

	go d.drain()

	return d, nil
}

// Dispatch starts the job on a detached context and returns immediately
func (d *dispatcher) Dispatch(ctx context.Context, event *service.PushEvent) {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	if d.run == nil {
		logger.Debug("Notification dispatch disabled, dropping event",
			slog.String("event_id", event.EventID),
			slog.String("title", event.Title),
		)

		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		logger.Warn("Dispatcher closed, dropping event", slog.String("event_id", event.EventID))

		return
	}

	jobCtx := deliverycontext.WithLogger(deliverycontext.Detach(ctx), logger)
	d.jobs.Go(func() {
		ctx, cancel := context.WithTimeout(jobCtx, d.timeout)
		defer cancel()

		start := time.Now()
		report, err := d.run(ctx, event)
		outcome := dispatchOutcome{event: event, report: report, err: err, took: time.Since(start)}

		select {
		case d.outcomes <- outcome:
		default:
			d.logOutcome(outcome)
		}
	})
}

// Wait blocks until every job dispatched so far has finished
func (d *dispatcher) Wait() {
	d.jobs.Wait()
}

// Close stops accepting jobs, waits for outstanding ones and flushes their outcomes
func (d *dispatcher) Close() error {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()

		d.jobs.Wait()
		close(d.outcomes)
		<-d.drained
	})

	return nil
}

func (d *dispatcher) drain() {
	defer close(d.drained)

	for outcome := range d.outcomes {
		d.logOutcome(outcome)
	}
}

func (d *dispatcher) logOutcome(outcome dispatchOutcome) {
	attrs := []any{
		slog.String("mode", d.mode),
		slog.String("event_id", outcome.event.EventID),
		slog.String("request_id", outcome.event.RequestID),
		slog.String("target", outcome.event.Target),
		slog.Duration("took", outcome.took),
	}

	if outcome.err != nil {
		d.logger.Error("Notification job failed", append(attrs, slog.Any("error", outcome.err))...)

		return
	}

	if outcome.report != nil {
		attrs = append(attrs,
			slog.Int("sent", outcome.report.Sent),
			slog.Int("failed", outcome.report.Failed),
		)
	}
	d.logger.Debug("Notification job finished", attrs...)
}

package routes

import (
	"context"
	"fmt"
	"time"

	"fieldservice/internal/adapter/http/handlers"
	"fieldservice/internal/adapter/persistence/memory"
	"fieldservice/internal/adapter/persistence/repository"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/infrastructure/config"
	"fieldservice/internal/infrastructure/database"
	"fieldservice/internal/infrastructure/events"
	"fieldservice/internal/infrastructure/health"
	"fieldservice/internal/infrastructure/storage"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/interfaces"

	"github.com/heptiolabs/healthcheck"
	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

// Dependencies holds the wired handlers plus the resources that need an orderly
// shutdown.
type Dependencies struct {
	Requests       *handlers.RequestHandler
	WorkOrders     *handlers.WorkOrderHandler
	PurchaseOrders *handlers.PurchaseOrderHandler
	Uploads        *handlers.UploadHandler
	Health         healthcheck.Handler

	emitter *events.AsyncEmitter
	closers []func() error
}

type repositories struct {
	requests       interfaces.IRequestRepository
	workOrders     interfaces.IWorkOrderRepository
	purchaseOrders interfaces.IPurchaseOrderRepository
	readiness      map[string]healthcheck.Check
}

// NewDependencies builds storage, the event bus, the upload signer and the use
// cases from cfg.
func NewDependencies(ctx context.Context, cfg config.Config) (*Dependencies, error) {
	policy, err := usecase.ParseResolutionPolicy(cfg.WorkOrderResolutionPolicy)
	if err != nil {
		return nil, err
	}

	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	d := &Dependencies{}
	publisher := newPublisher(cfg.Events, d)
	d.emitter = events.NewAsyncEmitter(publisher, events.Topics{
		entities.EventRequestCreated:       cfg.Events.RequestTopic,
		entities.EventPurchaseOrderCreated: cfg.Events.POTopic,
	}, cfg.Events.QueueSize, cfg.Events.PublishTimeout)

	signer, err := newUploadSigner(ctx, cfg)
	if err != nil {
		return nil, err
	}

	aggregator := usecase.NewLifecycleAggregator(repos.requests, repos.workOrders)
	requestUseCase := usecase.NewRequestUseCase(repos.requests, d.emitter)
	queryUseCase := usecase.NewRequestQueryUseCase(repos.requests, repos.workOrders, repos.purchaseOrders)
	workOrderUseCase := usecase.NewWorkOrderUseCase(repos.workOrders, aggregator, policy)
	purchaseOrderUseCase := usecase.NewPurchaseOrderUseCase(repos.purchaseOrders, repos.requests, repos.workOrders, aggregator, d.emitter)
	uploadUseCase := usecase.NewUploadUseCase(signer)

	d.Requests = handlers.NewRequestHandler(requestUseCase, queryUseCase)
	d.WorkOrders = handlers.NewWorkOrderHandler(workOrderUseCase)
	d.PurchaseOrders = handlers.NewPurchaseOrderHandler(purchaseOrderUseCase)
	d.Uploads = handlers.NewUploadHandler(uploadUseCase)
	d.Health = health.NewHandler(repos.readiness)
	return d, nil
}

// Close drains the event queue, then releases the bus connection.
func (d *Dependencies) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if d.emitter != nil {
		if err := d.emitter.Close(ctx); err != nil {
			zap.S().Warnw("[events] queue not fully drained", "error", err)
		}
	}
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil {
			zap.S().Warnw("[shutdown] close failed", "error", err)
		}
	}
}

func newRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		zap.S().Warn("[store] using in-memory store; data is lost on restart")
		store := memory.NewStore()
		return repositories{
			requests:       store.Requests(),
			workOrders:     store.WorkOrders(),
			purchaseOrders: store.PurchaseOrders(),
		}, nil
	}

	client, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return repositories{}, err
	}
	tables := []string{cfg.Tables.Requests, cfg.Tables.WorkOrders, cfg.Tables.PurchaseOrders}
	return repositories{
		requests:       repository.NewRequestDynamoRepository(client, cfg.Tables),
		workOrders:     repository.NewWorkOrderDynamoRepository(client, cfg.Tables),
		purchaseOrders: repository.NewPurchaseOrderDynamoRepository(client, cfg.Tables),
		readiness: map[string]healthcheck.Check{
			"dynamodb-tables": health.DynamoDBTablesCheck(client, tables, readinessTimeout),
		},
	}, nil
}

// newPublisher prefers Kafka. Events are best-effort, so a broker that cannot be
// reached at startup degrades to logging instead of failing the service.
func newPublisher(cfg config.Events, d *Dependencies) interfaces.IEventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		zap.S().Info("[events] KAFKA_BROKERS not set; events are logged only")
		return events.LogPublisher{}
	}
	kafka, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.PublishTimeout)
	if err != nil {
		zap.S().Errorw("[events] kafka unavailable; events are logged only", "brokers", cfg.KafkaBrokers, "error", err)
		return events.LogPublisher{}
	}
	d.closers = append(d.closers, kafka.Close)
	return kafka
}

func newUploadSigner(ctx context.Context, cfg config.Config) (interfaces.IUploadURLSigner, error) {
	if cfg.Uploads.Bucket == "" {
		zap.S().Info("[uploads] INSPECTION_BUCKET not set; upload urls disabled")
		return nil, nil
	}
	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 config: %w", err)
	}
	signer, err := storage.NewS3UploadSigner(awsCfg, cfg.Uploads)
	if err != nil {
		return nil, err
	}
	return signer, nil
}

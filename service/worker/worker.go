package worker

import (
	"fmt"
	"log"

	"deepcheck_api/config"
	"deepcheck_api/pkg/db"
	"deepcheck_api/pkg/logger"
	"deepcheck_api/pkg/store"
	"deepcheck_api/pkg/tasks"

	"github.com/hibiken/asynq"
)

// Run starts the task worker: webhook delivery plus the hourly cache purge.
func Run() {
	logger.Init(config.Cfg.Log)
	defer logger.Close()

	engine, err := db.NewEngine(config.Cfg.Database)
	if err != nil {
		log.Fatalf("could not open database: %v", err)
	}
	defer db.Close(engine)

	redisOpt := asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", config.Cfg.Redis.Host, config.Cfg.Redis.Port),
		Password: config.Cfg.Redis.Password,
	}

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	handler := &tasks.Handler{
		Store:       store.New(engine),
		MaxAttempts: config.Cfg.Webhook.MaxAttempts,
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.WebhookDeliver, handler.HandleWebhookDeliverTask)
	mux.HandleFunc(tasks.CachePurge, handler.HandleCachePurgeTask)

	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register("@every 1h", tasks.NewCachePurgeTask()); err != nil {
		log.Fatalf("could not register cache purge: %v", err)
	}
	if err := scheduler.Start(); err != nil {
		log.Fatalf("could not start scheduler: %v", err)
	}
	defer scheduler.Shutdown()

	if err := srv.Run(mux); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}

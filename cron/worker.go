package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"tradely/config"
	"tradely/models"
	quoteRepo "tradely/database/repository/quote"
	"tradely/services/tasks"
)

// InitFollowUpWorker runs the async worker in background.
func InitFollowUpWorker(quotes quoteRepo.QuoteRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeQuoteFollowUp, handleFollowUpTask(quotes))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[FollowUpWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FollowUpWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FollowUpWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleFollowUpTask(quotes quoteRepo.QuoteRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.QuoteFollowUpPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FollowUpHandler] invalid payload: %v", err)
			return err
		}

		record, err := quotes.GetByReference(p.Reference)
		if err != nil {
			log.Printf("[FollowUpHandler] quote %s no longer retrievable: %v", p.Reference, err)
			return nil
		}
		if record.Status != models.QuoteStatusOpen || time.Now().After(record.ExpiresAt) {
			log.Printf("[FollowUpHandler] quote %s closed or expired, skipping follow-up", p.Reference)
			return nil
		}

		// Delivery channel (email/push) is owned by the platform's messaging
		// stack; this worker only surfaces the event.
		log.Printf("[FollowUpHandler] quote %s for business %s still open, follow-up due (expires %s)",
			p.Reference, p.BusinessID, p.ExpiresAt)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[FollowUpWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}

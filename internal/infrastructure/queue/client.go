package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"musings-backend/internal/shared"
)

// Client enqueues background tasks from the API process.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

// EnqueueContactMessage queues a contact-form submission for SMTP delivery.
func (c *Client) EnqueueContactMessage(payload shared.ContactMessagePayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal contact payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeSendContactMessage, data)
	_, err = c.client.Enqueue(task,
		asynq.Queue(shared.QueueMail),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue contact message: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

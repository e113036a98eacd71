package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"tradely/models"
)

const TypeQuoteFollowUp = "quote:followup"

// NewQuoteFollowUpTask builds the asynq task that nudges a customer about an
// open quote, scheduled for fireAt.
func NewQuoteFollowUpTask(payload models.QuoteFollowUpPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeQuoteFollowUp, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

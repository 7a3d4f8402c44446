// Package logging emits one JSON object per log line so the storefront's
// operational events are machine-parseable alongside gin's request log.
package logging

import (
	"encoding/json"
	"log"
	"time"
)

type Fields struct {
	Service     string `json:"service"`
	Op          string `json:"op,omitempty"`
	EntityID    int64  `json:"entity_id,omitempty"`
	OrderNumber string `json:"order_number,omitempty"`
	Status      string `json:"status,omitempty"`
	DurationMS  int64  `json:"duration_ms,omitempty"`
	Message     string `json:"message,omitempty"`
}

func Log(fields Fields) {
	payload := map[string]any{
		"service":   fields.Service,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}
	if fields.Op != "" {
		payload["op"] = fields.Op
	}
	if fields.EntityID != 0 {
		payload["entity_id"] = fields.EntityID
	}
	if fields.OrderNumber != "" {
		payload["order_number"] = fields.OrderNumber
	}
	if fields.Status != "" {
		payload["status"] = fields.Status
	}
	if fields.DurationMS != 0 {
		payload["duration_ms"] = fields.DurationMS
	}
	if fields.Message != "" {
		payload["message"] = fields.Message
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("{\"service\":%q,\"status\":\"log_error\",\"error\":%q}", fields.Service, err.Error())
		return
	}
	log.Print(string(data))
}

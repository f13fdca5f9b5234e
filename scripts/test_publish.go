//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type PasswordResetMailEvent struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	ResetURL string `json:"reset_url"`
}

// Manual smoke test for the mail worker: publishes a password reset event
// to the stream and leaves delivery to a running worker process.
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	email := flag.String("email", "test@example.com", "Recipient address")
	resetURL := flag.String("url", "http://localhost:3000/reset-password", "Reset page base URL")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	event := PasswordResetMailEvent{
		Email:    *email,
		Token:    token,
		ResetURL: fmt.Sprintf("%s?token=%s", *resetURL, token),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:mail:password-reset",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published successfully!\n")
	fmt.Printf("   Stream: stream:mail:password-reset\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Email: %s\n", event.Email)
	fmt.Printf("   Reset URL: %s\n", event.ResetURL)
	fmt.Printf("\nCheck the worker logs for the delivery result.\n")
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/devfood/foodcourt/config"
	"github.com/devfood/foodcourt/internal/application"
	"github.com/devfood/foodcourt/pkg/mailer"
)

// order-worker consumes order events and emails the customer a
// confirmation or status update via Mailgun.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if !cfg.MailSendEnabled {
		log.Println("MAIL_SEND_ENABLED=false; order worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQOrderQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQOrderQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQOrderQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var ev application.OrderEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			if ev.UserEmail == "" {
				log.Printf("event %s has no recipient, dropping", ev.Type)
				_ = msg.Nack(false, false)
				continue
			}

			subject, text := renderEvent(ev)

			c, cancel := context.WithTimeout(ctx, 15*time.Second)
			if err := mg.Send(c, ev.UserEmail, subject, text, ""); err != nil {
				cancel()
				log.Printf("send failed: %v", err)
				_ = msg.Nack(false, true)
				continue
			}
			cancel()
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("order worker listening on queue=%s", cfg.RabbitMQOrderQueue)
	<-stop
	log.Printf("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

func renderEvent(ev application.OrderEvent) (subject, text string) {
	switch ev.Type {
	case application.EventOrderCreated:
		subject = "Your order has been received"
		text = fmt.Sprintf(
			"Thanks for your order!\n\nOrder ID: %s\nTotal: %.2f\nStatus: %s\n\nWe'll let you know when it's on the way.",
			ev.OrderID, ev.Total, ev.Status,
		)
	case application.EventOrderStatusUpdated:
		subject = fmt.Sprintf("Order update: %s", ev.Status)
		text = fmt.Sprintf(
			"Your order %s is now %q.",
			ev.OrderID, ev.Status,
		)
	default:
		subject = "Order notification"
		text = fmt.Sprintf("Order %s: %s", ev.OrderID, ev.Status)
	}
	return subject, text
}

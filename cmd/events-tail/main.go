package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/messaging/kafka"
)

const defaultGroupID = "orders-events-tail"

// main подключается к топику событий заказов и печатает входящие события.
// Утилита для отладки: позволяет глазами проверить, что сервис публикует
// события при создании, изменении и удалении заказов.
func main() {
	var (
		brokersValue string
		topic        string
		groupID      string
	)

	flag.StringVar(&brokersValue, "brokers", "", "comma-separated Kafka brokers (fallback: ORDERS_KAFKA_BROKERS)")
	flag.StringVar(&topic, "topic", kafka.TopicOrderEvents, "topic to tail")
	flag.StringVar(&groupID, "group", defaultGroupID, "consumer group id")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if strings.TrimSpace(brokersValue) == "" {
		brokersValue = strings.TrimSpace(os.Getenv("ORDERS_KAFKA_BROKERS"))
	}
	if brokersValue == "" {
		_, _ = fmt.Fprintln(os.Stderr, "ORDERS_KAFKA_BROKERS (or -brokers) is required")
		os.Exit(1)
	}
	brokers := strings.Split(brokersValue, ",")

	consumer, err := kafka.NewConsumer(brokers, groupID, []string{topic}, printEvent)
	if err != nil {
		log.WithError(err).Fatal("не удалось подключиться к Kafka")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{"topic": topic, "group": groupID}).Info("слушаем события заказов")
	consumer.Start(ctx)

	<-ctx.Done()
	if err := consumer.Close(); err != nil {
		log.WithError(err).Warn("consumer closed with error")
	}
}

func printEvent(_ context.Context, message *sarama.ConsumerMessage) error {
	var event kafka.OrderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("decode event at offset %d: %w", message.Offset, err)
	}

	log.WithFields(log.Fields{
		"event_type": event.EventType,
		"order_id":   event.OrderID,
		"item_count": event.ItemCount,
		"timestamp":  event.Timestamp,
		"partition":  message.Partition,
		"offset":     message.Offset,
	}).Info("событие заказа")
	return nil
}

package app

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected HTTPAddr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("expected MetricsAddr :9090, got %s", cfg.MetricsAddr)
	}
	if cfg.PostgresDSN != "" {
		t.Errorf("expected empty PostgresDSN by default, got %s", cfg.PostgresDSN)
	}
	if cfg.KafkaBrokers != "" {
		t.Errorf("expected empty KafkaBrokers by default, got %s", cfg.KafkaBrokers)
	}
}

func TestInitStorage_Memory(t *testing.T) {
	logger := log.New()
	logger.SetLevel(log.ErrorLevel)

	storage, err := initStorage(context.Background(), "", log.NewEntry(logger))
	if err != nil {
		t.Fatalf("init storage: %v", err)
	}
	defer storage.Close(log.NewEntry(logger))

	if storage.Orders == nil {
		t.Fatal("expected in-memory order repository")
	}
	if storage.Products == nil {
		t.Fatal("expected in-memory product repository")
	}
	if storage.Store != nil {
		t.Fatal("expected no postgres store for empty DSN")
	}
}

func TestInitKafkaProducer_Disabled(t *testing.T) {
	logger := log.New()
	logger.SetLevel(log.ErrorLevel)

	producer, err := initKafkaProducer("", log.NewEntry(logger))
	if err != nil {
		t.Fatalf("expected no error for empty brokers, got %v", err)
	}
	if producer != nil {
		t.Fatal("expected nil producer when kafka is disabled")
	}
}

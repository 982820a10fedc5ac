package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"molstd/internal/standardizer/service"
	"molstd/internal/standardizer/validator"
	"molstd/internal/standardizer/worker"
	"molstd/pkg/config"
	"molstd/pkg/kafka"
	kafka_config "molstd/pkg/kafka/config"
	kafka_middleware "molstd/pkg/kafka/middleware"
	"molstd/pkg/logger"
	"molstd/pkg/standardization"
)

const serviceName = "standardizer-worker"

func main() {
	cfg := config.Load(serviceName)
	log := cfg.Log
	log.Info("Starting Standardizer worker")

	kafkaCfg := kafka_config.Load()
	if err := kafkaCfg.Validate(); err != nil {
		log.Fatal(err.Error())
	}
	kafkaCfg.LogConfiguration(log.Info)

	metrics := kafka_middleware.NewMetrics()

	producer, err := kafka.NewProducer(kafkaCfg, log, kafkaCfg.OutputTopic)
	if err != nil {
		log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(metrics.ProducerMiddleware())

	standardizerService := service.NewStandardizerService(
		standardization.Default(),
		validator.NewMoleculeValidator(),
		cfg,
	)
	handler := worker.NewStandardizeHandler(standardizerService, producer, serviceName, log)

	consumer, err := kafka.NewConsumer(kafkaCfg, log, handler.Handle)
	if err != nil {
		log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	consumer.Use(metrics.ConsumerMiddleware())

	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(log))
		consumer.Use(kafka_middleware.LoggingConsumerMiddleware(log))
		log.Info("Kafka logging middleware enabled")
	}

	run(consumer, producer, metrics, log)
}

func run(consumer *kafka.Consumer, producer *kafka.Producer, metrics *kafka_middleware.Metrics, log *logger.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumerErrors := make(chan error, 1)
	go func() {
		consumerErrors <- consumer.Start(ctx)
	}()

	select {
	case err := <-consumerErrors:
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, kafka.ErrConsumerClosed) {
			log.Error("Kafka consumer stopped", "error", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdown(consumer, producer, metrics, log)
}

func shutdown(consumer *kafka.Consumer, producer *kafka.Producer, metrics *kafka_middleware.Metrics, log *logger.Logger) {
	log.Info("Starting graceful shutdown...")

	if err := consumer.Close(); err != nil {
		log.Error("Failed to close Kafka consumer", "error", err)
	}
	if err := producer.Close(); err != nil {
		log.Error("Failed to close Kafka producer", "error", err)
	}

	metrics.Log(log)
	log.Info("Worker stopped gracefully")
}

package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"career-compass/internal/config"
)

// Política de conexión inicial: intentos acotados con espera fija.
const (
	connectAttempts = 3
	connectBackoff  = 2 * time.Second
)

// Connect establece la conexión con MongoDB y la verifica con un ping.
// Si todos los intentos fallan devuelve el último error; el proceso sigue
// arrancando en modo degradado.
func Connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*mongo.Database, error) {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := mongo.Connect(ctx, options.Client().
			ApplyURI(cfg.MongoURI).
			SetConnectTimeout(5*time.Second).
			SetServerSelectionTimeout(5*time.Second))
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = client.Ping(pingCtx, nil)
			cancel()
			if err == nil {
				return client.Database(cfg.MongoDatabase), nil
			}
			_ = client.Disconnect(ctx)
		}
		lastErr = err
		if logger != nil {
			logger.Warn("mongo connect failed", zap.Int("attempt", attempt), zap.Error(err))
		}
		if attempt < connectAttempts {
			time.Sleep(connectBackoff)
		}
	}
	return nil, lastErr
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, database *mongo.Database) error {
	return database.Client().Ping(ctx, nil)
}

package config

import (
	"medicore-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medicore"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "medicore-receipts"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                    utils.GetEnvString("APP_ENV", "development"),
			Port:                   utils.GetEnvString("APP_PORT", ":8080"),
			Version:                utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:               utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:         utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			EventQueue:             utils.GetEnvString("APP_RABBITMQ_EVENT_QUEUE", "medicore.resource-events"),
			MaxRequests:            utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:        utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxLoginAttempts:       utils.GetEnvInt("APP_MAX_LOGIN_ATTEMPTS", 5),
			LoginAttemptWindowSecs: utils.GetEnvInt("APP_LOGIN_ATTEMPT_WINDOW_SECS", 300),
			ReceiptURLExpiryHours:  utils.GetEnvInt("APP_RECEIPT_URL_EXPIRY_HOURS", 24),
			MedicineLowStock:       utils.GetEnvInt("APP_MEDICINE_LOW_STOCK_THRESHOLD", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
	}
}

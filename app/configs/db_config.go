package configs

import (
	"fmt"
	"log/slog"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	maxRetries = 10
	retryDelay = 5 * time.Second
)

// DSN returns the connection string for env. DATABASE_URL wins; otherwise
// one is assembled from the DB_* parts for the configured driver.
func DSN(env ENV) (string, error) {
	if env.DatabaseURL != "" {
		return env.DatabaseURL, nil
	}

	switch env.DBDriver {
	case "mysql":
		port := env.DBPort
		if port == "" {
			port = "3306"
		}
		cfg := mysqldriver.NewConfig()
		cfg.User = env.DBUser
		cfg.Passwd = env.DBPassword
		cfg.Net = "tcp"
		cfg.Addr = env.DBHost + ":" + port
		cfg.DBName = env.DBName
		cfg.ParseTime = true
		cfg.Params = map[string]string{"charset": "utf8mb4"}
		return cfg.FormatDSN(), nil
	case "postgres":
		port := env.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			env.DBHost, port, env.DBUser, env.DBPassword, env.DBName,
		), nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", env.DBDriver)
	}
}

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "mysql":
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func OpenConnection(env ENV, logger *slog.Logger) (*gorm.DB, error) {
	dsn, err := DSN(env)
	if err != nil {
		return nil, err
	}

	dial, err := dialector(env.DBDriver, dsn)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		Logger: gormlogger.New(slog.NewLogLogger(logger.Handler(), slog.LevelWarn), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		logger.Info("connecting to database", "driver", env.DBDriver, "attempt", i+1, "of", maxRetries)
		db, err := gorm.Open(dial, gormCfg)
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					sqlDB.SetMaxOpenConns(25)
					sqlDB.SetMaxIdleConns(5)
					sqlDB.SetConnMaxLifetime(30 * time.Minute)
					logger.Info("database connection established")
					return db, nil
				}
			}
			lastErr = pingErr
			logger.Warn("failed to ping database", "error", pingErr, "retry_in", retryDelay)
		} else {
			lastErr = err
			logger.Warn("failed to open gorm connection", "error", err, "retry_in", retryDelay)
		}

		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries: %w", maxRetries, lastErr)
}

package storage

import (
	"context"
	"sync"
	"time"

	"matchme/internal/config"
	"matchme/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(func() {
		log := logger.GetLogger()

		conn, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
		})
		if err != nil {
			log.Error("Failed to connect to database", "error", err)
			panic(err)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			panic(err)
		}

		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)

		db = conn
	})

	return db
}

// Ping checks that the database answers within two seconds.
func Ping() error {
	sqlDB, err := GetDb().DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

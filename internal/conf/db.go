package conf

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var (
	db    *gorm.DB
	Redis *redis.Client
	once  sync.Once
)

func MustGormDB() *gorm.DB {
	once.Do(func() {
		var err error
		if db, err = newDBEngine(); err != nil {
			logrus.Fatalf("new db engine failed: %s", err)
		}
	})
	return db
}

func newDBEngine() (*gorm.DB, error) {
	logrus.Debugln("use MySQL as db")

	newLogger := gormlogger.New(
		logrus.StandardLogger(),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  DatabaseSetting.logLevel(),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	config := &gorm.Config{
		Logger: newLogger,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   DatabaseSetting.TablePrefix,
			SingularTable: true,
		},
	}

	engine, err := gorm.Open(mysql.Open(MySQLSetting.Dsn()), config)
	if err != nil {
		return nil, err
	}
	sqlDB, err := engine.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(MySQLSetting.MaxIdleConns)
	sqlDB.SetMaxOpenConns(MySQLSetting.MaxOpenConns)

	return engine, nil
}

func setupDBEngine() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     RedisSetting.Host,
		Password: RedisSetting.Password,
		DB:       RedisSetting.DB,
	})
	if err := Redis.Ping(context.TODO()).Err(); err != nil {
		logrus.Fatalf("new redis failed: %s", err)
	}
}

package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/internal/config"
	"github.com/Guyuepp/forum-api/internal/repository"
	mysqlRepo "github.com/Guyuepp/forum-api/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/forum-api/internal/repository/redis"
	"github.com/Guyuepp/forum-api/internal/rest"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/usecase/comment"
	"github.com/Guyuepp/forum-api/internal/usecase/reply"
	"github.com/Guyuepp/forum-api/internal/usecase/thread"
	"github.com/Guyuepp/forum-api/internal/workers"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func openDB(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			if err = sqlDB.Ping(); err == nil {
				return db, nil
			}
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}

func main() {
	cfg := config.Load()
	cfg.SetupLogger()

	// prepare database
	db, err := openDB(cfg.Database.DSN())
	if err != nil {
		logrus.Fatalf("could not connect to database after retries: %v", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("got error when closing the DB connection: %v", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(mysqlRepo.Models()...); err != nil {
			logrus.Fatalf("failed to migrate database: %v", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr(),
		Password: cfg.Cache.Pass,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.Metrics())
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	// Thread相关的三层架构
	// 1. DB层
	threadDBRepo := mysqlRepo.NewThreadRepository(db, mysqlRepo.UUIDGenerator)
	// 2. Cache层
	threadCache := myRedisCache.NewThreadCache(client, cfg.ThreadCacheTTL)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomFilterSize, cfg.BloomFilterHashes)
	// 3. Repository协调层
	threadRepo := repository.NewThreadRepository(threadDBRepo, bloomRepo)

	commentRepo := mysqlRepo.NewCommentRepository(db, mysqlRepo.UUIDGenerator)
	replyRepo := mysqlRepo.NewReplyRepository(db, mysqlRepo.UUIDGenerator)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Prepare bloom filter
	if err := threadRepo.InitBloomFilter(ctx); err != nil {
		// 过滤器不可信时所有查询直接走数据库
		logrus.Warnf("failed to init bloom filter, serving without it: %v", err)
	}

	// Start worker
	likesReconciler := workers.NewReconcileLikesWorker(commentRepo, threadCache, cfg.ReconcileInterval)
	go likesReconciler.Start(ctx)

	// Build service Layer
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo, threadCache)
	commentSvc := comment.NewService(threadRepo, commentRepo, threadCache)
	replySvc := reply.NewService(threadRepo, commentRepo, replyRepo, threadCache)

	// Register routes
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	rest.RegisterRoutes(route,
		middleware.AuthMiddleware(cfg.AccessTokenKey),
		rest.NewThreadHandler(threadSvc),
		rest.NewCommentHandler(commentSvc),
		rest.NewReplyHandler(replySvc),
	)

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Waiting for worker to cleanup...")
	select {
	case <-likesReconciler.Done():
	case <-shutdownCtx.Done():
		logrus.Warn("worker did not finish in time")
	}

	logrus.Info("Server exiting")
}

package main

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "github.com/d60-Lab/feedback-board/config"
    "github.com/d60-Lab/feedback-board/internal/api"
    "github.com/d60-Lab/feedback-board/internal/api/handler"
    "github.com/d60-Lab/feedback-board/internal/cache"
    "github.com/d60-Lab/feedback-board/internal/observability"
    "github.com/d60-Lab/feedback-board/internal/repository"
    "github.com/d60-Lab/feedback-board/internal/service"
    "github.com/d60-Lab/feedback-board/pkg/database"
    "github.com/d60-Lab/feedback-board/pkg/logger"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func main() {
    cfg := must(config.Load())
    if err := logger.Init(cfg.Log.Level, cfg.Server.Mode == "debug"); err != nil {
        panic(err)
    }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        } else {
            defer sentry.Flush(2 * time.Second)
        }
    }

    ctx := context.Background()
    tp, err := observability.InitTracer(ctx, cfg)
    if err != nil {
        logger.Warn("tracer init failed", zap.Error(err))
    }
    if tp != nil {
        defer func() { _ = tp.Shutdown(context.Background()) }()
    }

    db := must(database.InitDB(cfg))

    var feedCache *cache.FeedCache
    if cfg.Redis.Enabled {
        rdb := redis.NewClient(&redis.Options{
            Addr:     cfg.Redis.Addr,
            Password: cfg.Redis.Password,
            DB:       cfg.Redis.DB,
        })
        if err := rdb.Ping(ctx).Err(); err != nil {
            logger.Warn("redis unreachable, feed cache disabled", zap.Error(err))
        } else {
            feedCache = cache.NewFeedCache(rdb, cfg.Feed.CacheTTL)
        }
    }

    profileRepo := repository.NewProfileRepository(db)
    companyRepo := repository.NewCompanyRepository(db)
    memberRepo := repository.NewMemberRepository(db)
    invRepo := repository.NewInvitationRepository(db)
    postRepo := repository.NewPostRepository(db)
    voteRepo := repository.NewVoteRepository(db)
    commentRepo := repository.NewCommentRepository(db)
    bookmarkRepo := repository.NewBookmarkRepository(db)
    followRepo := repository.NewFollowRepository(db)
    viewRepo := repository.NewViewRepository(db)

    engagement := service.NewEngagementWorker(postRepo, cfg.Engagement.QueueSize)
    stopEngagement := engagement.Start(cfg.Engagement.Workers)

    tracker := service.NewViewTracker(viewRepo, engagement, cfg.View.DwellThreshold, cfg.View.FlushInterval)
    stopTracker := tracker.Start()

    h := handler.New(
        service.NewAuthService(db, profileRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
        service.NewPostService(db, postRepo, feedCache),
        service.NewVoteService(db, postRepo),
        service.NewCommentService(db, postRepo, commentRepo),
        service.NewCompanyService(db, companyRepo, followRepo),
        service.NewInvitationService(db, invRepo, memberRepo, cfg.Invite.TTL),
        service.NewBookmarkService(bookmarkRepo, postRepo),
        service.NewFollowService(followRepo, companyRepo),
        service.NewFeedService(postRepo, voteRepo, feedCache, cfg.Feed.PageSize, cfg.Feed.CandidateWindow),
        service.NewProfileService(profileRepo),
        service.NewActivityService(voteRepo, commentRepo, cfg.Feed.PageSize),
        tracker,
    )

    srv := &http.Server{
        Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
        Handler: api.NewRouter(cfg, h),
    }

    go func() {
        logger.Info("server listening", zap.Int("port", cfg.Server.Port))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Error("server exited", zap.Error(err))
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit
    logger.Info("shutting down")

    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Error("http shutdown failed", zap.Error(err))
    }
    if err := stopTracker(shutdownCtx); err != nil {
        logger.Warn("view tracker stop", zap.Error(err))
    }
    if err := stopEngagement(shutdownCtx); err != nil {
        logger.Warn("engagement worker stop", zap.Error(err))
    }
}

package service

import (
    "context"
    "time"

    "go.uber.org/zap"

    "github.com/d60-Lab/feedback-board/internal/repository"
    "github.com/d60-Lab/feedback-board/pkg/logger"
)

// EngagementWorker 互动分重算的本地异步执行器。
// 入队即返回，后台至少执行一次；重算本身幂等，队列满直接丢弃。
type EngagementWorker struct {
    postRepo repository.PostRepository
    ch       chan string
}

func NewEngagementWorker(postRepo repository.PostRepository, queueSize int) *EngagementWorker {
    if queueSize <= 0 {
        queueSize = 10000
    }
    return &EngagementWorker{postRepo: postRepo, ch: make(chan string, queueSize)}
}

func (w *EngagementWorker) Start(workers int) func(context.Context) error {
    if workers <= 0 {
        workers = 4
    }
    stopCh := make(chan struct{})
    for i := 0; i < workers; i++ {
        go func() {
            for {
                select {
                case postID := <-w.ch:
                    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
                    if err := w.postRepo.RecalculateEngagement(ctx, postID); err != nil {
                        logger.Warn("engagement recalculation failed", zap.String("post", postID), zap.Error(err))
                    }
                    cancel()
                case <-stopCh:
                    return
                }
            }
        }()
    }
    return func(ctx context.Context) error {
        close(stopCh)
        // 等待队列自然排空一小段时间
        timeout := time.After(2 * time.Second)
        for {
            select {
            case <-timeout:
                return nil
            default:
                if len(w.ch) == 0 {
                    return nil
                }
                time.Sleep(50 * time.Millisecond)
            }
        }
    }
}

// Enqueue 请求重算某帖的互动分；不等待结果
func (w *EngagementWorker) Enqueue(postID string) {
    select {
    case w.ch <- postID:
    default:
        logger.Warn("engagement queue full, drop recalculation", zap.String("post", postID))
    }
}

// QueueLen 返回当前队列长度（采样值）。
func (w *EngagementWorker) QueueLen() int { return len(w.ch) }

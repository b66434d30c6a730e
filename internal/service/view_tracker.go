package service

import (
    "context"
    "sync"
    "time"

    "github.com/google/uuid"
    "go.uber.org/zap"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
    "github.com/d60-Lab/feedback-board/pkg/logger"
)

// staleSessionAge 超过该时长仍未结束的会话直接丢弃
const staleSessionAge = time.Hour

type viewSession struct {
    postID    string
    userID    string
    startedAt time.Time
    rowID     string // 落库后非空
}

// ViewTracker 浏览打点：会话在内存中驻留，停留满阈值才落一条 post_views；
// 快速划过不产生任何记录。全部操作尽力而为，出错只记日志，不影响主流程。
type ViewTracker struct {
    viewRepo   repository.ViewRepository
    engagement *EngagementWorker
    dwell      time.Duration
    interval   time.Duration

    mu       sync.Mutex // 保护 sessions 及会话落库，串行化 flush 与 EndView
    sessions map[string]*viewSession
}

func NewViewTracker(viewRepo repository.ViewRepository, engagement *EngagementWorker, dwell, flushInterval time.Duration) *ViewTracker {
    if dwell <= 0 {
        dwell = time.Second
    }
    if flushInterval <= 0 {
        flushInterval = 200 * time.Millisecond
    }
    return &ViewTracker{
        viewRepo:   viewRepo,
        engagement: engagement,
        dwell:      dwell,
        interval:   flushInterval,
        sessions:   make(map[string]*viewSession),
    }
}

// Start 启动落库轮询；返回停止函数。
func (t *ViewTracker) Start() func(context.Context) error {
    stop := make(chan struct{})
    go t.loop(stop)
    return func(ctx context.Context) error { close(stop); return nil }
}

func (t *ViewTracker) loop(stop <-chan struct{}) {
    ticker := time.NewTicker(t.interval)
    defer ticker.Stop()
    for {
        select {
        case <-stop:
            return
        case <-ticker.C:
            t.flushOnce(context.Background())
        }
    }
}

// flushOnce 为停留已满阈值的会话落库，并清理滞留会话
func (t *ViewTracker) flushOnce(ctx context.Context) {
    now := time.Now()
    t.mu.Lock()
    defer t.mu.Unlock()
    for id, s := range t.sessions {
        if s.rowID == "" && now.Sub(s.startedAt) >= t.dwell {
            t.commitLocked(ctx, s)
        }
        if now.Sub(s.startedAt) > staleSessionAge {
            delete(t.sessions, id)
        }
    }
}

// commitLocked 落库一条浏览记录；调用方持有 t.mu
func (t *ViewTracker) commitLocked(ctx context.Context, s *viewSession) {
    row := &model.PostView{
        ID:       uuid.New().String(),
        PostID:   s.postID,
        UserID:   s.userID,
        ViewedAt: s.startedAt,
    }
    if err := t.viewRepo.Create(ctx, row); err != nil {
        logger.Warn("record post view failed", zap.String("post", s.postID), zap.Error(err))
        return
    }
    s.rowID = row.ID
}

// BeginView 开始一次浏览会话；userID 可为空（匿名）
func (t *ViewTracker) BeginView(postID, userID string) string {
    id := uuid.New().String()
    t.mu.Lock()
    t.sessions[id] = &viewSession{postID: postID, userID: userID, startedAt: time.Now()}
    t.mu.Unlock()
    return id
}

// EndView 结束会话。停留不足阈值则什么都不落；已落库则写入一次停留时长，
// 并异步触发互动分重算。重复调用是空操作。
func (t *ViewTracker) EndView(ctx context.Context, sessionID string) {
    now := time.Now()

    t.mu.Lock()
    s, ok := t.sessions[sessionID]
    if !ok {
        t.mu.Unlock()
        return
    }
    delete(t.sessions, sessionID)
    elapsed := now.Sub(s.startedAt)
    if s.rowID == "" && elapsed >= t.dwell {
        // 停留已满但落库轮询还没来得及跑
        t.commitLocked(ctx, s)
    }
    rowID := s.rowID
    postID := s.postID
    t.mu.Unlock()

    if rowID == "" {
        // 快速划过，不计浏览
        return
    }
    seconds := int64(elapsed / time.Second)
    updated, err := t.viewRepo.SetDuration(ctx, rowID, seconds)
    if err != nil {
        logger.Warn("set view duration failed", zap.String("view", rowID), zap.Error(err))
        return
    }
    if updated && t.engagement != nil {
        t.engagement.Enqueue(postID)
    }
}

// RecordClick 幂等记录点击；会话尚未落库则忽略
func (t *ViewTracker) RecordClick(ctx context.Context, sessionID string) {
    t.mu.Lock()
    s, ok := t.sessions[sessionID]
    var rowID string
    if ok {
        rowID = s.rowID
    }
    t.mu.Unlock()
    if rowID == "" {
        return
    }
    if err := t.viewRepo.MarkClicked(ctx, rowID); err != nil {
        logger.Warn("mark view clicked failed", zap.String("view", rowID), zap.Error(err))
    }
}

// OpenSessions 当前驻留会话数（采样值）。
func (t *ViewTracker) OpenSessions() int {
    t.mu.Lock()
    defer t.mu.Unlock()
    return len(t.sessions)
}

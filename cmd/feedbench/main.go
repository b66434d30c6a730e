package main

import (
    "context"
    "fmt"
    "math"
    "math/rand"
    "os"
    "sort"
    "strconv"
    "time"

    "github.com/google/uuid"

    "github.com/d60-Lab/feedback-board/config"
    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
    "github.com/d60-Lab/feedback-board/internal/service"
    "github.com/d60-Lab/feedback-board/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func pct(vs []time.Duration, p float64) time.Duration {
    if len(vs) == 0 { return 0 }
    xs := append([]time.Duration(nil), vs...)
    sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
    k := int(math.Ceil(p*float64(len(xs)))) - 1
    if k < 0 { k = 0 }
    if k >= len(xs) { k = len(xs)-1 }
    return xs[k]
}

func main() {
    cfg := must(config.Load())
    db := must(database.InitDB(cfg))

    // params
    POSTS := 50000 // seeded posts
    READS := 200   // reads per sort mode
    LIMIT := 20    // page size
    if s := os.Getenv("POSTS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { POSTS = v } }
    if s := os.Getenv("READS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { READS = v } }
    if s := os.Getenv("LIMIT"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { LIMIT = v } }

    // clean tables for a reproducible run (ok for local bench)
    for _, t := range []string{"votes", "comments", "post_views", "posts", "companies", "profiles"} {
        _ = db.Exec("DELETE FROM " + t).Error
    }

    // seed one author, one company, POSTS posts with skewed counters
    author := model.Profile{ID: uuid.New().String(), Username: "bench0", Email: "bench0@example.com", Password: "p"}
    _ = db.Create(&author).Error
    company := model.Company{ID: uuid.New().String(), Name: "Bench Co", Slug: "bench-co"}
    _ = db.Create(&company).Error

    types := []string{model.PostTypeBug, model.PostTypeFeature, model.PostTypeComplaint}
    now := time.Now()
    posts := make([]model.Post, POSTS)
    for i := 0; i < POSTS; i++ {
        posts[i] = model.Post{
            ID:            uuid.New().String(),
            UserID:        author.ID,
            CompanyID:     company.ID,
            Type:          types[i%len(types)],
            Title:         fmt.Sprintf("post %d", i),
            Description:   "bench body",
            VotesCount:    int64(rand.Intn(500)),
            CommentsCount: int64(rand.Intn(50)),
            CreatedAt:     now.Add(-time.Duration(rand.Intn(72)) * time.Hour),
        }
    }
    _ = db.CreateInBatches(&posts, 1000).Error

    postRepo := repository.NewPostRepository(db)
    voteRepo := repository.NewVoteRepository(db)
    feed := service.NewFeedService(postRepo, voteRepo, nil, LIMIT, cfg.Feed.CandidateWindow)

    modes := []string{service.SortRecent, service.SortPopular, service.SortDiscussed, service.SortHot, service.SortControversial}
    fmt.Printf("POSTS=%d READS=%d LIMIT=%d window=%d\n", POSTS, READS, LIMIT, cfg.Feed.CandidateWindow)
    for _, mode := range modes {
        durations := make([]time.Duration, 0, READS)
        var rows int
        for i := 0; i < READS; i++ {
            st := time.Now()
            out, err := feed.Compose(context.Background(), service.TypeFilterAll, mode, LIMIT)
            if err != nil { panic(err) }
            rows = len(out)
            durations = append(durations, time.Since(st))
        }
        var sum time.Duration
        for _, d := range durations { sum += d }
        fmt.Printf("%-13s rows=%d avg=%v p95=%v p99=%v\n", mode, rows, sum/time.Duration(len(durations)), pct(durations, 0.95), pct(durations, 0.99))
    }
}

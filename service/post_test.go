package service

import (
	"context"
	"testing"
	"time"

	"github.com/Himanshu3141/Creatrr/models"
	"github.com/Himanshu3141/Creatrr/types"
)

func TestSaveDraftReusesExisting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")

	first, err := f.Post.SaveDraft(ctx, author.Subject, &types.SaveDraftRequest{
		Title:   "草稿一版",
		Content: "v1",
		Tags:    []string{"go"},
	})
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	second, err := f.Post.SaveDraft(ctx, author.Subject, &types.SaveDraftRequest{
		Title:   "草稿二版",
		Content: "v2",
	})
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if first != second {
		t.Fatalf("draft must be reused, got ids %d and %d", first, second)
	}

	var count int64
	if err := f.db.Table("posts").Count(&count).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 post row, got %d", count)
	}

	draft, err := f.PostDAO.FindByID(ctx, first)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if draft.Title != "草稿二版" || draft.Content != "v2" {
		t.Fatalf("draft not updated in place: %+v", draft)
	}
}

func TestSaveDraftAfterPublishCreatesNew(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")

	first, err := f.Post.SaveDraft(ctx, author.Subject, &types.SaveDraftRequest{Title: "第一篇"})
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if err := f.Post.Publish(ctx, author.Subject, first); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	// 发布之后再存草稿是新帖子
	second, err := f.Post.SaveDraft(ctx, author.Subject, &types.SaveDraftRequest{Title: "第二篇"})
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if second == first {
		t.Fatal("published post must not be reused as draft")
	}
}

func TestPublishOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")
	draft := f.createDraft(t, author.ID, "待发布")

	if err := f.Post.Publish(ctx, author.Subject, draft.ID); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	published, err := f.PostDAO.FindByID(ctx, draft.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if published.Status != models.PostStatusPublished || published.PublishedAt == nil {
		t.Fatalf("post not published: %+v", published)
	}

	if err := f.Post.Publish(ctx, author.Subject, draft.ID); err == nil {
		t.Fatal("second publish must fail")
	}
}

func TestPublishOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")
	other := f.createUser(t, "sub-other", "他人", "other")
	draft := f.createDraft(t, author.ID, "待发布")

	if err := f.Post.Publish(ctx, other.Subject, draft.ID); err == nil {
		t.Fatal("non-owner must not publish")
	}
	if err := f.Post.Publish(ctx, "", draft.ID); err == nil {
		t.Fatal("anonymous must not publish")
	}
}

func TestScheduleDraftOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")
	draft := f.createDraft(t, author.ID, "定时")
	published := f.createPublishedPost(t, author.ID, "已发布", 0, 0, time.Now())

	at := time.Now().Add(24 * time.Hour)
	if err := f.Post.Schedule(ctx, author.Subject, draft.ID, at); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	got, err := f.PostDAO.FindByID(ctx, draft.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.ScheduledAt == nil {
		t.Fatal("scheduled_at not set")
	}
	if got.Status != models.PostStatusDraft {
		t.Fatal("scheduling must not publish the post")
	}

	if err := f.Post.Schedule(ctx, author.Subject, published.ID, at); err == nil {
		t.Fatal("published post must not be scheduled")
	}
}

func TestGetPost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")
	post := f.createPublishedPost(t, author.ID, "标题", 5, 2, time.Now())

	got, err := f.Post.GetPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if got.Title != "标题" || got.Author == nil || got.Author.ID != author.ID {
		t.Fatalf("unexpected post detail: %+v", got)
	}

	if _, err := f.Post.GetPost(ctx, 99999); err == nil {
		t.Fatal("expected error for missing post")
	}

	// 作者已注销的帖子按不存在处理
	if err := f.db.Delete(author).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := f.Post.GetPost(ctx, post.ID); err == nil {
		t.Fatal("expected error for dangling author")
	}
}

func TestDeletePostCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")
	fan := f.createUser(t, "sub-fan", "粉丝", "fan")
	post := f.createPublishedPost(t, author.ID, "要删", 0, 0, time.Now())

	if _, err := f.Like.ToggleLike(ctx, post.ID, fan.Subject); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if _, err := f.Comment.AddComment(ctx, post.ID, fan.Subject, "评论"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if err := f.DailyStatDAO.IncrViews(ctx, post.ID, utcDateKey(time.Now())); err != nil {
		t.Fatalf("IncrViews: %v", err)
	}

	if err := f.Post.DeletePost(ctx, author.Subject, post.ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}

	for _, table := range []string{"posts", "likes", "comments", "daily_stats"} {
		var count int64
		if err := f.db.Table(table).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if count != 0 {
			t.Fatalf("expected %s to be empty, got %d rows", table, count)
		}
	}
}

func TestIncrementViewCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")
	post := f.createPublishedPost(t, author.ID, "热帖", 0, 0, time.Now())
	draft := f.createDraft(t, author.ID, "草稿")

	for i := 0; i < 3; i++ {
		if err := f.Post.IncrementViewCount(ctx, post.ID); err != nil {
			t.Fatalf("IncrementViewCount: %v", err)
		}
	}
	// 草稿和不存在的帖子都静默忽略
	if err := f.Post.IncrementViewCount(ctx, draft.ID); err != nil {
		t.Fatalf("IncrementViewCount draft: %v", err)
	}
	if err := f.Post.IncrementViewCount(ctx, 99999); err != nil {
		t.Fatalf("IncrementViewCount missing: %v", err)
	}

	got, err := f.PostDAO.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.ViewCount != 3 {
		t.Fatalf("expected view_count 3, got %d", got.ViewCount)
	}

	var stat models.DailyStat
	if err := f.db.Where("post_id = ? AND stat_date = ?", post.ID, utcDateKey(time.Now())).First(&stat).Error; err != nil {
		t.Fatalf("load daily stat: %v", err)
	}
	if stat.Views != 3 {
		t.Fatalf("expected daily views 3, got %d", stat.Views)
	}

	var draftStats int64
	if err := f.db.Table("daily_stats").Where("post_id = ?", draft.ID).Count(&draftStats).Error; err != nil {
		t.Fatalf("count stats: %v", err)
	}
	if draftStats != 0 {
		t.Fatal("draft views must not produce daily stats")
	}
}

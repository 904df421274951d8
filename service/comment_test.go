package service

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestAddComment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")
	fan := f.createUser(t, "sub-fan", "粉丝", "fan")
	post := f.createPublishedPost(t, author.ID, "hot", 0, 0, time.Now())

	got, err := f.Comment.AddComment(ctx, post.ID, fan.Subject, "  写得好  ")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if got.Content != "写得好" {
		t.Fatalf("content should be trimmed, got %q", got.Content)
	}
	if got.AuthorName != fan.Name || got.AuthorID != fan.ID {
		t.Fatalf("unexpected author: %+v", got)
	}
}

func TestAddCommentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")
	fan := f.createUser(t, "sub-fan", "粉丝", "fan")
	post := f.createPublishedPost(t, author.ID, "hot", 0, 0, time.Now())
	draft := f.createDraft(t, author.ID, "draft")

	if _, err := f.Comment.AddComment(ctx, post.ID, "", "内容"); err == nil {
		t.Fatal("expected error for anonymous caller")
	}
	if _, err := f.Comment.AddComment(ctx, post.ID, fan.Subject, "   "); err == nil {
		t.Fatal("expected error for blank content")
	}
	if _, err := f.Comment.AddComment(ctx, post.ID, fan.Subject, strings.Repeat("长", 1001)); err == nil {
		t.Fatal("expected error for overlong content")
	}
	if _, err := f.Comment.AddComment(ctx, post.ID, fan.Subject, strings.Repeat("长", 1000)); err != nil {
		t.Fatalf("1000 runes should pass: %v", err)
	}
	if _, err := f.Comment.AddComment(ctx, draft.ID, fan.Subject, "内容"); err == nil {
		t.Fatal("expected error on draft post")
	}
}

func TestAddCommentAuthorNameFallback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")
	noname := f.createUser(t, "sub-noname", "", "noname")
	post := f.createPublishedPost(t, author.ID, "hot", 0, 0, time.Now())

	got, err := f.Comment.AddComment(ctx, post.ID, noname.Subject, "内容")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if got.AuthorName != noname.Email {
		t.Fatalf("expected email fallback %q, got %q", noname.Email, got.AuthorName)
	}
}

func TestGetPostCommentsFiltersDeletedAuthors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")
	fan := f.createUser(t, "sub-fan", "粉丝", "fan")
	ghost := f.createUser(t, "sub-ghost", "幽灵", "ghost")
	post := f.createPublishedPost(t, author.ID, "hot", 0, 0, time.Now())

	kept, err := f.Comment.AddComment(ctx, post.ID, fan.Subject, "留着")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if _, err := f.Comment.AddComment(ctx, post.ID, ghost.Subject, "消失"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if err := f.db.Delete(ghost).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	got, err := f.Comment.GetPostComments(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetPostComments: %v", err)
	}
	if len(got) != 1 || got[0].ID != kept.ID {
		t.Fatalf("expected only comment %d, got %+v", kept.ID, got)
	}
}

func TestDeleteCommentAuthorization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.createUser(t, "sub-author", "作者", "author")
	fan := f.createUser(t, "sub-fan", "粉丝", "fan")
	stranger := f.createUser(t, "sub-stranger", "路人", "stranger")
	post := f.createPublishedPost(t, author.ID, "hot", 0, 0, time.Now())

	comment, err := f.Comment.AddComment(ctx, post.ID, fan.Subject, "内容")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	if err := f.Comment.DeleteComment(ctx, comment.ID, stranger.Subject); err == nil {
		t.Fatal("stranger must not delete the comment")
	}
	if err := f.Comment.DeleteComment(ctx, comment.ID, ""); err == nil {
		t.Fatal("anonymous must not delete the comment")
	}

	// 评论作者可删
	if err := f.Comment.DeleteComment(ctx, comment.ID, fan.Subject); err != nil {
		t.Fatalf("comment author delete: %v", err)
	}

	// 帖子作者可删他人评论
	comment, err = f.Comment.AddComment(ctx, post.ID, fan.Subject, "再来一条")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if err := f.Comment.DeleteComment(ctx, comment.ID, author.Subject); err != nil {
		t.Fatalf("post author delete: %v", err)
	}

	got, err := f.Comment.GetPostComments(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetPostComments: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no comments left, got %d", len(got))
	}
}

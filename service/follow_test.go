package service

import (
	"context"
	"testing"
)

func TestToggleFollowRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	follower := f.createUser(t, "sub-follower", "粉丝", "fan")
	target := f.createUser(t, "sub-target", "博主", "owner")

	got, err := f.Follow.ToggleFollow(ctx, follower.Subject, target.ID)
	if err != nil {
		t.Fatalf("ToggleFollow: %v", err)
	}
	if !got.Following || got.FollowerCount != 1 {
		t.Fatalf("expected following=true count=1, got %+v", got)
	}

	got, err = f.Follow.ToggleFollow(ctx, follower.Subject, target.ID)
	if err != nil {
		t.Fatalf("ToggleFollow: %v", err)
	}
	if got.Following || got.FollowerCount != 0 {
		t.Fatalf("expected following=false count=0, got %+v", got)
	}
}

func TestToggleFollowRejectsSelf(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "sub-user", "用户", "user")

	if _, err := f.Follow.ToggleFollow(context.Background(), user.Subject, user.ID); err == nil {
		t.Fatal("expected error when following self")
	}
}

func TestToggleFollowRequiresLoginAndTarget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "sub-user", "用户", "user")

	if _, err := f.Follow.ToggleFollow(ctx, "", user.ID); err == nil {
		t.Fatal("expected error for anonymous caller")
	}
	if _, err := f.Follow.ToggleFollow(ctx, user.Subject, 99999); err == nil {
		t.Fatal("expected error for missing target")
	}
}

func TestIsFollowing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	follower := f.createUser(t, "sub-follower", "粉丝", "fan")
	target := f.createUser(t, "sub-target", "博主", "owner")

	got, err := f.Follow.IsFollowing(ctx, "", target.ID)
	if err != nil || got {
		t.Fatalf("anonymous must be false, got %v err=%v", got, err)
	}

	if _, err := f.Follow.ToggleFollow(ctx, follower.Subject, target.ID); err != nil {
		t.Fatalf("ToggleFollow: %v", err)
	}
	got, err = f.Follow.IsFollowing(ctx, follower.Subject, target.ID)
	if err != nil {
		t.Fatalf("IsFollowing: %v", err)
	}
	if !got {
		t.Fatal("expected following=true")
	}

	count, err := f.Follow.GetFollowingCount(ctx, follower.ID)
	if err != nil || count != 1 {
		t.Fatalf("expected following count 1, got %d err=%v", count, err)
	}
	count, err = f.Follow.GetFollowerCount(ctx, target.ID)
	if err != nil || count != 1 {
		t.Fatalf("expected follower count 1, got %d err=%v", count, err)
	}
}

func TestFollowCreateIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	follower := f.createUser(t, "sub-follower", "粉丝", "fan")
	target := f.createUser(t, "sub-target", "博主", "owner")

	// 重复写入同一条边只保留一条
	if err := f.FollowDAO.Create(ctx, follower.ID, target.ID); err != nil {
		t.Fatalf("create follow: %v", err)
	}
	if err := f.FollowDAO.Create(ctx, follower.ID, target.ID); err != nil {
		t.Fatalf("duplicate create should be a no-op: %v", err)
	}

	count, err := f.FollowDAO.GetFollowerCount(ctx, target.ID)
	if err != nil {
		t.Fatalf("GetFollowerCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 follow edge, got %d", count)
	}
}

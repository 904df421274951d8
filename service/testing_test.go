package service

import (
	"testing"
	"time"

	"github.com/Himanshu3141/Creatrr/dao"
	"github.com/Himanshu3141/Creatrr/models"
	"github.com/Himanshu3141/Creatrr/pkg/snowflake"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixture 内存 sqlite 上组装的全套服务
type fixture struct {
	db *gorm.DB

	UserDAO      *dao.Users
	PostDAO      *dao.PostDAO
	LikeDAO      *dao.LikeDAO
	CommentDAO   *dao.CommentDAO
	FollowDAO    *dao.FollowDAO
	DailyStatDAO *dao.DailyStatDAO

	User      *UserService
	Post      *PostService
	Ranking   *RankingService
	Analytics *AnalyticsService
	Like      *LikeService
	Comment   *CommentService
	Follow    *FollowService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// :memory: 下每个连接是独立库，必须收敛到单连接
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Users{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.DailyStat{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{
		db:           db,
		UserDAO:      dao.NewUsers(db),
		PostDAO:      dao.NewPostDAO(db),
		LikeDAO:      dao.NewLikeDAO(db),
		CommentDAO:   dao.NewCommentDAO(db),
		FollowDAO:    dao.NewFollowDAO(db),
		DailyStatDAO: dao.NewDailyStatDAO(db),
	}

	f.User = &UserService{UserDAO: f.UserDAO}
	f.Post = &PostService{
		PostDAO:      f.PostDAO,
		LikeDAO:      f.LikeDAO,
		CommentDAO:   f.CommentDAO,
		DailyStatDAO: f.DailyStatDAO,
		UserDAO:      f.UserDAO,
		Resolver:     f.User,
	}
	f.Ranking = &RankingService{
		PostDAO:   f.PostDAO,
		UserDAO:   f.UserDAO,
		FollowDAO: f.FollowDAO,
		Resolver:  f.User,
	}
	f.Analytics = &AnalyticsService{
		PostDAO:      f.PostDAO,
		CommentDAO:   f.CommentDAO,
		LikeDAO:      f.LikeDAO,
		FollowDAO:    f.FollowDAO,
		DailyStatDAO: f.DailyStatDAO,
		UserDAO:      f.UserDAO,
		Resolver:     f.User,
	}
	f.Like = &LikeService{
		LikeDAO:  f.LikeDAO,
		PostDAO:  f.PostDAO,
		Resolver: f.User,
	}
	f.Comment = &CommentService{
		CommentDAO: f.CommentDAO,
		PostDAO:    f.PostDAO,
		UserDAO:    f.UserDAO,
		Resolver:   f.User,
	}
	f.Follow = &FollowService{
		FollowDAO: f.FollowDAO,
		UserDAO:   f.UserDAO,
		Resolver:  f.User,
	}
	return f
}

func (f *fixture) createUser(t *testing.T, subject, name, username string) *models.Users {
	t.Helper()
	now := time.Now()
	user := &models.Users{
		ID:           snowflake.GenID(),
		Subject:      subject,
		Name:         name,
		Email:        subject + "@example.com",
		Username:     username,
		CreatedAt:    now,
		LastActiveAt: now,
	}
	if err := f.db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (f *fixture) createPublishedPost(t *testing.T, userID int64, title string, views, likes int64, publishedAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		ID:          snowflake.GenID(),
		UserID:      userID,
		Title:       title,
		Content:     "content of " + title,
		Status:      models.PostStatusPublished,
		Tags:        "[]",
		ViewCount:   views,
		LikeCount:   likes,
		CreatedAt:   publishedAt,
		UpdatedAt:   publishedAt,
		PublishedAt: &publishedAt,
	}
	if err := f.db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func (f *fixture) createDraft(t *testing.T, userID int64, title string) *models.Post {
	t.Helper()
	now := time.Now()
	post := &models.Post{
		ID:        snowflake.GenID(),
		UserID:    userID,
		Title:     title,
		Status:    models.PostStatusDraft,
		Tags:      "[]",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := f.db.Create(post).Error; err != nil {
		t.Fatalf("create draft: %v", err)
	}
	return post
}

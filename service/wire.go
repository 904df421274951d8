package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
	wire.Bind(new(IdentityResolver), new(*UserService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(RankingService), "*"),
	wire.Bind(new(IRankingService), new(*RankingService)),

	wire.Struct(new(AnalyticsService), "*"),
	wire.Bind(new(IAnalyticsService), new(*AnalyticsService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),
)

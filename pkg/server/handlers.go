package server

import (
	"github.com/Himanshu3141/Creatrr/handler"
)

type Handlers struct {
	User      *handler.User
	Post      *handler.Post
	Feed      *handler.Feed
	Dashboard *handler.Dashboard
	Like      *handler.Like
	Comment   *handler.Comment
	Follow    *handler.Follow
}

package domain

type (
	UserId   = string
	Username = string
	Password = string

	ThreadId  = string
	CommentId = string
	ReplyId   = string
	LikeId    = string
)

type User struct {
	Id       UserId
	Username Username
	Password Password // bcrypt hash
	Fullname string
}

package domain

// DeletedCommentPlaceholder replaces the content of a soft-deleted comment
// in read projections. The original content stays in the store untouched.
const DeletedCommentPlaceholder = "**this comment was deleted**"

type NewComment struct {
	Content string
}

type NewCommentPayload struct {
	Content any `json:"content"`
}

func ParseNewComment(p NewCommentPayload) (NewComment, error) {
	content, err := requiredString("NewComment", "content", p.Content)
	if err != nil {
		return NewComment{}, err
	}

	return NewComment{Content: content}, nil
}

type CreatedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

type CreatedCommentPayload struct {
	Id      any
	Content any
	Owner   any
}

func ParseCreatedComment(p CreatedCommentPayload) (CreatedComment, error) {
	const entity = "CreatedComment"

	id, err := requiredString(entity, "id", p.Id)
	if err != nil {
		return CreatedComment{}, err
	}
	content, err := requiredString(entity, "content", p.Content)
	if err != nil {
		return CreatedComment{}, err
	}
	owner, err := requiredString(entity, "owner", p.Owner)
	if err != nil {
		return CreatedComment{}, err
	}

	return CreatedComment{Id: id, Content: content, Owner: owner}, nil
}

// DetailComment is the read projection of a comment. The isDeleted flag is
// consumed at construction: deleted comments expose the placeholder instead
// of their content, and the flag itself is not re-exposed. LikeCount and
// Replies are attached by the thread service.
type DetailComment struct {
	Id        CommentId     `json:"id"`
	Username  Username      `json:"username"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	LikeCount int           `json:"likeCount"`
	Replies   []DetailReply `json:"replies"`
}

type DetailCommentPayload struct {
	Id        any
	Username  any
	Date      any
	Content   any
	IsDeleted any
}

func ParseDetailComment(p DetailCommentPayload) (DetailComment, error) {
	const entity = "DetailComment"

	id, err := requiredString(entity, "id", p.Id)
	if err != nil {
		return DetailComment{}, err
	}
	username, err := requiredString(entity, "username", p.Username)
	if err != nil {
		return DetailComment{}, err
	}
	date, err := requiredString(entity, "date", p.Date)
	if err != nil {
		return DetailComment{}, err
	}
	content, err := requiredString(entity, "content", p.Content)
	if err != nil {
		return DetailComment{}, err
	}
	isDeleted, err := requiredBool(entity, "isDeleted", p.IsDeleted)
	if err != nil {
		return DetailComment{}, err
	}

	if isDeleted {
		content = DeletedCommentPlaceholder
	}

	return DetailComment{Id: id, Username: username, Date: date, Content: content}, nil
}

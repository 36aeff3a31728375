package domain

// DeletedReplyPlaceholder replaces the content of a soft-deleted reply in
// read projections.
const DeletedReplyPlaceholder = "**this reply was deleted**"

type NewReply struct {
	Content string
}

type NewReplyPayload struct {
	Content any `json:"content"`
}

func ParseNewReply(p NewReplyPayload) (NewReply, error) {
	content, err := requiredString("NewReply", "content", p.Content)
	if err != nil {
		return NewReply{}, err
	}

	return NewReply{Content: content}, nil
}

type CreatedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

type CreatedReplyPayload struct {
	Id      any
	Content any
	Owner   any
}

func ParseCreatedReply(p CreatedReplyPayload) (CreatedReply, error) {
	const entity = "CreatedReply"

	id, err := requiredString(entity, "id", p.Id)
	if err != nil {
		return CreatedReply{}, err
	}
	content, err := requiredString(entity, "content", p.Content)
	if err != nil {
		return CreatedReply{}, err
	}
	owner, err := requiredString(entity, "owner", p.Owner)
	if err != nil {
		return CreatedReply{}, err
	}

	return CreatedReply{Id: id, Content: content, Owner: owner}, nil
}

// DetailReply mirrors DetailComment: the isDeleted flag is consumed at
// construction and deleted replies expose the placeholder.
type DetailReply struct {
	Id       ReplyId  `json:"id"`
	Content  string   `json:"content"`
	Date     string   `json:"date"`
	Username Username `json:"username"`
}

type DetailReplyPayload struct {
	Id        any
	Content   any
	Date      any
	Username  any
	IsDeleted any
}

func ParseDetailReply(p DetailReplyPayload) (DetailReply, error) {
	const entity = "DetailReply"

	id, err := requiredString(entity, "id", p.Id)
	if err != nil {
		return DetailReply{}, err
	}
	content, err := requiredString(entity, "content", p.Content)
	if err != nil {
		return DetailReply{}, err
	}
	date, err := requiredString(entity, "date", p.Date)
	if err != nil {
		return DetailReply{}, err
	}
	username, err := requiredString(entity, "username", p.Username)
	if err != nil {
		return DetailReply{}, err
	}
	isDeleted, err := requiredBool(entity, "isDeleted", p.IsDeleted)
	if err != nil {
		return DetailReply{}, err
	}

	if isDeleted {
		content = DeletedReplyPlaceholder
	}

	return DetailReply{Id: id, Content: content, Date: date, Username: username}, nil
}

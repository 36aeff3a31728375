package domain

// NewThread is the validated creation payload for a thread.
type NewThread struct {
	Title string
	Body  string
}

type NewThreadPayload struct {
	Title any `json:"title"`
	Body  any `json:"body"`
}

func ParseNewThread(p NewThreadPayload) (NewThread, error) {
	const entity = "NewThread"

	title, err := requiredString(entity, "title", p.Title)
	if err != nil {
		return NewThread{}, err
	}
	body, err := requiredString(entity, "body", p.Body)
	if err != nil {
		return NewThread{}, err
	}

	return NewThread{Title: title, Body: body}, nil
}

// CreatedThread is what the store hands back after a successful insert.
type CreatedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

type CreatedThreadPayload struct {
	Id    any
	Title any
	Owner any
}

func ParseCreatedThread(p CreatedThreadPayload) (CreatedThread, error) {
	const entity = "CreatedThread"

	id, err := requiredString(entity, "id", p.Id)
	if err != nil {
		return CreatedThread{}, err
	}
	title, err := requiredString(entity, "title", p.Title)
	if err != nil {
		return CreatedThread{}, err
	}
	owner, err := requiredString(entity, "owner", p.Owner)
	if err != nil {
		return CreatedThread{}, err
	}

	return CreatedThread{Id: id, Title: title, Owner: owner}, nil
}

// DetailThread is the read projection of a thread. Comments are attached
// by the thread service after the comment and reply projections are fetched.
type DetailThread struct {
	Id       ThreadId        `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username Username        `json:"username"`
	Comments []DetailComment `json:"comments"`
}

type DetailThreadPayload struct {
	Id       any
	Title    any
	Body     any
	Date     any
	Username any
}

func ParseDetailThread(p DetailThreadPayload) (DetailThread, error) {
	const entity = "DetailThread"

	id, err := requiredString(entity, "id", p.Id)
	if err != nil {
		return DetailThread{}, err
	}
	title, err := requiredString(entity, "title", p.Title)
	if err != nil {
		return DetailThread{}, err
	}
	body, err := requiredString(entity, "body", p.Body)
	if err != nil {
		return DetailThread{}, err
	}
	date, err := requiredString(entity, "date", p.Date)
	if err != nil {
		return DetailThread{}, err
	}
	username, err := requiredString(entity, "username", p.Username)
	if err != nil {
		return DetailThread{}, err
	}

	return DetailThread{Id: id, Title: title, Body: body, Date: date, Username: username}, nil
}

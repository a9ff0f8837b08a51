package content

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidKind = errors.New("invalid kind")

// Kind tags the two content tables a like or comment can point at.
type Kind string

const (
	KindBlog   Kind = "blog"
	KindRecipe Kind = "recipe"
)

// kindTables is the only place a Kind turns into a table name. Queries must
// go through Table rather than concatenating strings.
var kindTables = map[Kind]string{
	KindBlog:   "blogs",
	KindRecipe: "recipes",
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindTables[k]; !ok {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) Table() string {
	return kindTables[k]
}

func (k Kind) Valid() bool {
	_, ok := kindTables[k]
	return ok
}

// Item is a recipe or a blog post; the two share one shape and one set of
// operations, distinguished only by Kind.
type Item struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

package model

import "library-api/internal/shared/flatten"

// BookAuthorRow là một row của books LEFT JOIN authors.
// Các cột Author* NULL khi book không có author.
type BookAuthorRow struct {
	ID          int64
	Title       string
	Description *string
	AuthorID    *int64
	AuthorName  *string
	AuthorBio   *string
}

type bookParent struct {
	ID          int64
	Title       string
	Description *string
}

func (r BookAuthorRow) toFlat() flatten.Row[int64, bookParent, NestedAuthor] {
	child := flatten.Absent[NestedAuthor]()
	if r.AuthorID != nil {
		child = flatten.Present(NestedAuthor{ID: r.AuthorID, Name: r.AuthorName, Bio: r.AuthorBio})
	}

	return flatten.Row[int64, bookParent, NestedAuthor]{
		Key:    r.ID,
		Parent: bookParent{ID: r.ID, Title: r.Title, Description: r.Description},
		Child:  child,
	}
}

// BookWithAuthorFromRows builds the book-with-author view from the rows of a
// single book. ok is false when rows is empty; a book without author gets an
// all-null author object.
func BookWithAuthorFromRows(rows []BookAuthorRow) (*BookWithAuthor, bool) {
	flat := make([]flatten.Row[int64, bookParent, NestedAuthor], len(rows))
	for i, r := range rows {
		flat[i] = r.toFlat()
	}

	node, found := flatten.Single(flat)
	if !found {
		return nil, false
	}

	view := &BookWithAuthor{
		ID:          node.Parent.ID,
		Title:       node.Parent.Title,
		Description: node.Parent.Description,
	}
	if len(node.Children) > 0 {
		view.Author = node.Children[0]
	}
	return view, true
}

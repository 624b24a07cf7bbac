package model

import "library-api/internal/shared/flatten"

// AuthorBookRow là một row của authors LEFT JOIN books.
// BookID/BookTitle NULL khi author chưa có book nào.
type AuthorBookRow struct {
	ID        int64
	Name      string
	Bio       *string
	BookID    *int64
	BookTitle *string
}

type authorParent struct {
	ID   int64
	Name string
	Bio  *string
}

func (r AuthorBookRow) toFlat() flatten.Row[int64, authorParent, BookSummary] {
	child := flatten.Absent[BookSummary]()
	if r.BookID != nil {
		summary := BookSummary{ID: *r.BookID}
		if r.BookTitle != nil {
			summary.Title = *r.BookTitle
		}
		child = flatten.Present(summary)
	}

	return flatten.Row[int64, authorParent, BookSummary]{
		Key:    r.ID,
		Parent: authorParent{ID: r.ID, Name: r.Name, Bio: r.Bio},
		Child:  child,
	}
}

func toFlatRows(rows []AuthorBookRow) []flatten.Row[int64, authorParent, BookSummary] {
	flat := make([]flatten.Row[int64, authorParent, BookSummary], len(rows))
	for i, r := range rows {
		flat[i] = r.toFlat()
	}
	return flat
}

// GroupAuthorsWithBooks gom các join row thành danh sách author, mỗi author kèm books.
// Thứ tự author theo lần xuất hiện đầu tiên trong rows.
func GroupAuthorsWithBooks(rows []AuthorBookRow) []AuthorBooksItem {
	nodes := flatten.Group(toFlatRows(rows))

	items := make([]AuthorBooksItem, len(nodes))
	for i, n := range nodes {
		items[i] = AuthorBooksItem{
			ID:    n.Parent.ID,
			Name:  n.Parent.Name,
			Books: n.Children,
		}
	}
	return items
}

// AuthorWithBooksFromRows builds the single-author view. ok is false when
// rows is empty (author does not exist).
func AuthorWithBooksFromRows(rows []AuthorBookRow) (*AuthorWithBooks, bool) {
	node, found := flatten.Single(toFlatRows(rows))
	if !found {
		return nil, false
	}

	return &AuthorWithBooks{
		ID:    node.Parent.ID,
		Name:  node.Parent.Name,
		Bio:   node.Parent.Bio,
		Books: node.Children,
	}, true
}

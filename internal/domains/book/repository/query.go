package repository

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"library-api/internal/domains/book/model"
	"library-api/internal/infrastructure/database"
)

const (
	tableBooks   = "books"
	tableAuthors = "authors"

	colID            = "id"
	colTitle         = "title"
	colDescription   = "description"
	colPublishedDate = "published_date"
	colAuthorID      = "author_id"
)

var dialect = goqu.Dialect("postgres")

// bookColumns - thứ tự phải khớp với scanBook
var bookColumns = []interface{}{colID, colTitle, colDescription, colPublishedDate, colAuthorID}

func buildListQuery(filter model.BookFilter) (string, []interface{}, error) {
	ds := dialect.From(tableBooks).
		Prepared(true).
		Select(bookColumns...).
		Order(goqu.I(colID).Asc())

	if filter.AuthorID != nil {
		ds = ds.Where(goqu.C(colAuthorID).Eq(*filter.AuthorID))
	}
	return ds.ToSQL()
}

func buildGetByIDQuery(id int64) (string, []interface{}, error) {
	return dialect.From(tableBooks).
		Prepared(true).
		Select(bookColumns...).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
}

func record(b *model.Book) goqu.Record {
	return goqu.Record{
		colTitle:         b.Title,
		colDescription:   database.Nullable(b.Description),
		colPublishedDate: b.PublishedDate.Time,
		colAuthorID:      database.Nullable(b.AuthorID),
	}
}

func buildInsertQuery(b *model.Book) (string, []interface{}, error) {
	return dialect.Insert(tableBooks).
		Prepared(true).
		Rows(record(b)).
		Returning(bookColumns...).
		ToSQL()
}

func buildUpdateQuery(id int64, b *model.Book) (string, []interface{}, error) {
	return dialect.Update(tableBooks).
		Prepared(true).
		Set(record(b)).
		Where(goqu.C(colID).Eq(id)).
		Returning(bookColumns...).
		ToSQL()
}

func buildDeleteQuery(id int64) (string, []interface{}, error) {
	return dialect.Delete(tableBooks).
		Prepared(true).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
}

// buildGetWithAuthorQuery: books b LEFT JOIN authors a ON a.id = b.author_id
func buildGetWithAuthorQuery(id int64) (string, []interface{}, error) {
	return dialect.From(goqu.T(tableBooks).As("b")).
		Prepared(true).
		LeftJoin(
			goqu.T(tableAuthors).As("a"),
			goqu.On(goqu.I("a.id").Eq(goqu.I("b.author_id"))),
		).
		Select(
			goqu.I("b.id"),
			goqu.I("b.title"),
			goqu.I("b.description"),
			goqu.I("a.id"),
			goqu.I("a.name"),
			goqu.I("a.bio"),
		).
		Where(goqu.I("b.id").Eq(id)).
		ToSQL()
}

package repository

import (
	"github.com/doug-martin/goqu/v9"
	// postgres dialect: $n placeholders, RETURNING
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"library-api/internal/domains/author/model"
	"library-api/internal/infrastructure/database"
)

const (
	dialectPostgres = "postgres"

	tableAuthors = "authors"
	tableBooks   = "books"

	colID        = "id"
	colName      = "name"
	colBio       = "bio"
	colBirthdate = "birthdate"
	colPassword  = "password"
)

var dialect = goqu.Dialect(dialectPostgres)

// authorColumns - thứ tự phải khớp với scanAuthor
var authorColumns = []interface{}{colID, colName, colBio, colBirthdate, colPassword}

func buildListQuery() (string, []interface{}, error) {
	return dialect.From(tableAuthors).
		Prepared(true).
		Select(authorColumns...).
		Order(goqu.I(colID).Asc()).
		ToSQL()
}

func buildGetByIDQuery(id int64) (string, []interface{}, error) {
	return dialect.From(tableAuthors).
		Prepared(true).
		Select(authorColumns...).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
}

func buildGetRegisteredByNameQuery(name string) (string, []interface{}, error) {
	return dialect.From(tableAuthors).
		Prepared(true).
		Select(authorColumns...).
		Where(
			goqu.C(colName).Eq(name),
			goqu.C(colPassword).IsNotNull(),
		).
		Limit(1).
		ToSQL()
}

func buildInsertQuery(a *model.Author) (string, []interface{}, error) {
	return dialect.Insert(tableAuthors).
		Prepared(true).
		Rows(goqu.Record{
			colName:      a.Name,
			colBio:       database.Nullable(a.Bio),
			colBirthdate: a.Birthdate.Time,
			colPassword:  database.Nullable(a.PasswordHash),
		}).
		Returning(authorColumns...).
		ToSQL()
}

// buildUpdateQuery replaces the mutable fields; password is never touched here.
func buildUpdateQuery(id int64, a *model.Author) (string, []interface{}, error) {
	return dialect.Update(tableAuthors).
		Prepared(true).
		Set(goqu.Record{
			colName:      a.Name,
			colBio:       database.Nullable(a.Bio),
			colBirthdate: a.Birthdate.Time,
		}).
		Where(goqu.C(colID).Eq(id)).
		Returning(authorColumns...).
		ToSQL()
}

func buildDeleteQuery(id int64) (string, []interface{}, error) {
	return dialect.Delete(tableAuthors).
		Prepared(true).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
}

// withBooksSelect: authors a LEFT JOIN books b, order theo a.id rồi b.id
func withBooksSelect() *goqu.SelectDataset {
	return dialect.From(goqu.T(tableAuthors).As("a")).
		Prepared(true).
		LeftJoin(
			goqu.T(tableBooks).As("b"),
			goqu.On(goqu.I("b.author_id").Eq(goqu.I("a.id"))),
		).
		Select(
			goqu.I("a.id"),
			goqu.I("a.name"),
			goqu.I("a.bio"),
			goqu.I("b.id"),
			goqu.I("b.title"),
		).
		Order(goqu.I("a.id").Asc(), goqu.I("b.id").Asc())
}

func buildListWithBooksQuery() (string, []interface{}, error) {
	return withBooksSelect().ToSQL()
}

func buildGetWithBooksQuery(id int64) (string, []interface{}, error) {
	return withBooksSelect().
		Where(goqu.I("a.id").Eq(id)).
		ToSQL()
}

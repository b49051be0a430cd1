package author

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/libris/internal/platform/database/schema"
	"github.com/taibuivan/libris/internal/platform/dberr"
	"github.com/taibuivan/libris/internal/platform/event"
	"github.com/taibuivan/libris/internal/platform/i18n"
	"github.com/taibuivan/libris/internal/translate"
	"github.com/taibuivan/libris/pkg/date"
)

// PostgresRepository implements [Repository] and [translate.Store] on pgx.
//
// Successful creates and updates publish an [event.Saved] after the row is
// written; SaveTranslations does not.
type PostgresRepository struct {
	db     *pgxpool.Pool
	events event.Publisher
}

func NewPostgresRepository(db *pgxpool.Pool, events event.Publisher) *PostgresRepository {
	return &PostgresRepository{db: db, events: events}
}

// selectColumns is the column list shared by every author read, in scan order.
func selectColumns() string {
	author := schema.LibraryAuthor
	return fmt.Sprintf(`
		a.%s, %s, %s, a.%s, %s, a.%s, a.%s, a.%s,
		(SELECT count(*) FROM %s b WHERE b.%s = a.%s) AS books_count`,
		author.ID, author.FirstName.Select("a"), author.LastName.Select("a"),
		author.Email, author.Bio.Select("a"), author.BirthDate, author.CreatedAt, author.UpdatedAt,
		schema.LibraryBook.Table, schema.LibraryBook.AuthorID, author.ID,
	)
}

func scanAuthor(row pgx.Row) (*Author, error) {
	a := &Author{}
	var birthDate *time.Time

	dest := []any{&a.ID}
	dest = append(dest, schema.ScanText(&a.FirstName)...)
	dest = append(dest, schema.ScanText(&a.LastName)...)
	dest = append(dest, &a.Email)
	dest = append(dest, schema.ScanText(&a.Bio)...)
	dest = append(dest, &birthDate, &a.CreatedAt, &a.UpdatedAt, &a.BooksCount)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	a.BirthDate = date.FromPtr(birthDate)
	return a, nil
}

/*
ListAuthors returns one page of authors ordered by last name, first name.

The search term matches any name column (base or variant) or the email,
case-insensitively.
*/
func (repository *PostgresRepository) ListAuthors(context context.Context, f Filter, limit, offset int) ([]*Author, int, error) {
	author := schema.LibraryAuthor

	var whereBuilder strings.Builder
	var args []any
	argID := 1

	if search := strings.TrimSpace(f.Search); search != "" {
		var matches []string
		for _, column := range append(author.FirstName.Columns(), author.LastName.Columns()...) {
			matches = append(matches, fmt.Sprintf("a.%s ILIKE $%d", column, argID))
		}
		matches = append(matches, fmt.Sprintf("a.%s ILIKE $%d", author.Email, argID))

		whereBuilder.WriteString(" AND (" + strings.Join(matches, " OR ") + ")")
		args = append(args, "%"+search+"%")
		argID++
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s a WHERE TRUE%s`, author.Table, whereBuilder.String())

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_authors")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s a WHERE TRUE%s ORDER BY a.%s ASC, a.%s ASC, a.%s ASC LIMIT $%d OFFSET $%d`,
		selectColumns(), author.Table, whereBuilder.String(),
		author.LastName.Base, author.FirstName.Base, author.ID, argID, argID+1)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	authors := []*Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, total, dberr.Wrap(rows.Err(), "list_authors")
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id int) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s a WHERE a.%s = $1`,
		selectColumns(), schema.LibraryAuthor.Table, schema.LibraryAuthor.ID)

	a, err := scanAuthor(repository.db.QueryRow(context, query, id))
	return a, dberr.Wrap(err, "get_author")
}

// assignments binds every writable author column.
func assignments(a *Author) *schema.Assignments {
	author := schema.LibraryAuthor

	assign := &schema.Assignments{}
	assign.
		SetText(author.FirstName, a.FirstName, false).
		SetText(author.LastName, a.LastName, false).
		Set(author.Email, a.Email).
		SetText(author.Bio, a.Bio, true).
		Set(author.BirthDate, date.TimePtr(a.BirthDate))
	return assign
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) error {
	author := schema.LibraryAuthor
	assign := assignments(a)

	query := assign.Insert(author.Table) + fmt.Sprintf(" RETURNING %s, %s, %s", author.ID, author.CreatedAt, author.UpdatedAt)
	if err := repository.db.QueryRow(context, query, assign.Args()...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return dberr.Wrap(err, "create_author")
	}

	repository.events.Publish(context, event.Saved{Entity: event.Author, ID: a.ID, Action: event.Created})
	return nil
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, a *Author) error {
	author := schema.LibraryAuthor
	assign := assignments(a).SetRaw(author.UpdatedAt, "NOW()")

	query := assign.Update(author.Table, author.ID, a.ID) + fmt.Sprintf(" RETURNING %s", author.UpdatedAt)
	if err := repository.db.QueryRow(context, query, assign.Args()...).Scan(&a.UpdatedAt); err != nil {
		return dberr.Wrap(err, "update_author")
	}

	repository.events.Publish(context, event.Saved{Entity: event.Author, ID: a.ID, Action: event.Updated})
	return nil
}

// DeleteAuthor removes an author that no book references. It returns
// [ErrHasBooks] when books still point at the author.
func (repository *PostgresRepository) DeleteAuthor(context context.Context, id int) error {
	author := schema.LibraryAuthor
	book := schema.LibraryBook

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND NOT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		author.Table, author.ID, book.Table, book.AuthorID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_author")
	}

	if cmd.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	existsQuery := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, author.Table, author.ID)
	if err := repository.db.QueryRow(context, existsQuery, id).Scan(&exists); err != nil {
		return dberr.Wrap(err, "delete_author")
	}
	if exists {
		return ErrHasBooks
	}
	return dberr.ErrNotFound
}

func (repository *PostgresRepository) EmailExists(context context.Context, email string, excludeID int) (bool, error) {
	author := schema.LibraryAuthor
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE lower(%s) = lower($1) AND %s <> $2)`,
		author.Table, author.Email, author.ID)

	var exists bool
	err := repository.db.QueryRow(context, query, email, excludeID).Scan(&exists)
	return exists, dberr.Wrap(err, "author_email_exists")
}

// # Translation Store

func translatableColumns() string {
	author := schema.LibraryAuthor
	return fmt.Sprintf("%s, %s, %s, %s",
		author.ID, author.FirstName.Select(""), author.LastName.Select(""), author.Bio.Select(""))
}

func scanTranslatable(row pgx.Row) (translate.Record, error) {
	var id int
	var first, last, bio i18n.Text

	dest := []any{&id}
	dest = append(dest, schema.ScanText(&first)...)
	dest = append(dest, schema.ScanText(&last)...)
	dest = append(dest, schema.ScanText(&bio)...)
	if err := row.Scan(dest...); err != nil {
		return translate.Record{}, err
	}

	return translate.Record{ID: id, Fields: []translate.Field{
		{Name: FieldFirstName, Text: first},
		{Name: FieldLastName, Text: last},
		{Name: FieldBio, Text: bio},
	}}, nil
}

// LoadTranslatable implements [translate.Store].
func (repository *PostgresRepository) LoadTranslatable(context context.Context, id int) (translate.Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		translatableColumns(), schema.LibraryAuthor.Table, schema.LibraryAuthor.ID)

	rec, err := scanTranslatable(repository.db.QueryRow(context, query, id))
	return rec, dberr.Wrap(err, "load_author_translatable")
}

// ListTranslatable implements [translate.Store].
func (repository *PostgresRepository) ListTranslatable(context context.Context) ([]translate.Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		translatableColumns(), schema.LibraryAuthor.Table, schema.LibraryAuthor.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_author_translatable")
	}
	defer rows.Close()

	var records []translate.Record
	for rows.Next() {
		rec, err := scanTranslatable(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_author_translatable")
		}
		records = append(records, rec)
	}
	return records, dberr.Wrap(rows.Err(), "list_author_translatable")
}

// SaveTranslations implements [translate.Store]. It writes the variant
// columns directly and publishes nothing.
func (repository *PostgresRepository) SaveTranslations(context context.Context, id int, updates []translate.Update) error {
	author := schema.LibraryAuthor
	columns := author.Translatable()

	assign := &schema.Assignments{}
	for _, update := range updates {
		column, ok := columns[update.Field]
		if !ok || column.Variant(update.Lang) == "" {
			continue
		}
		assign.Set(column.Variant(update.Lang), update.Value)
	}

	if assign.Len() == 0 {
		return nil
	}

	_, err := repository.db.Exec(context, assign.Update(author.Table, author.ID, id), assign.Args()...)
	return dberr.Wrap(err, "save_author_translations")
}

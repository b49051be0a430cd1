package book

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/libris/internal/library/author"
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

// selectFrom is the column list and join shared by every book read, in scan order.
func selectFrom() string {
	book := schema.LibraryBook
	writer := schema.LibraryAuthor

	return fmt.Sprintf(`
		SELECT
			b.%s, %s, b.%s, COALESCE(b.%s, ''), b.%s, b.%s, b.%s, b.%s::text,
			%s, b.%s, b.%s, b.%s,
			a.%s, %s, %s, a.%s,
			(SELECT count(*) FROM %s x WHERE x.%s = a.%s) AS books_count
		FROM %s b
		JOIN %s a ON a.%s = b.%s`,
		book.ID, book.Title.Select("b"), book.AuthorID, book.ISBN, book.Genre, book.PublicationDate, book.Pages, book.Price,
		book.Description.Select("b"), book.IsAvailable, book.CreatedAt, book.UpdatedAt,
		writer.ID, writer.FirstName.Select("a"), writer.LastName.Select("a"), writer.Email,
		book.Table, book.AuthorID, writer.ID,
		book.Table,
		writer.Table, writer.ID, book.AuthorID,
	)
}

func scanBook(row pgx.Row) (*Book, error) {
	b := &Book{Author: &author.Author{}}
	var genre string
	var published time.Time

	dest := []any{&b.ID}
	dest = append(dest, schema.ScanText(&b.Title)...)
	dest = append(dest, &b.AuthorID, &b.ISBN, &genre, &published, &b.Pages, &b.Price)
	dest = append(dest, schema.ScanText(&b.Description)...)
	dest = append(dest, &b.IsAvailable, &b.CreatedAt, &b.UpdatedAt, &b.Author.ID)
	dest = append(dest, schema.ScanText(&b.Author.FirstName)...)
	dest = append(dest, schema.ScanText(&b.Author.LastName)...)
	dest = append(dest, &b.Author.Email, &b.Author.BooksCount)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	b.Genre = Genre(genre)
	b.PublicationDate = date.Of(published)
	return b, nil
}

func collectBooks(rows pgx.Rows) ([]*Book, error) {
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

/*
ListBooks returns one page of books, newest first.

Filters:
  - Search: title (base or variant), author name or ISBN, case-insensitive
  - Genre: exact match
  - AuthorID: books of one author
  - AvailableOnly: only books currently available
*/
func (repository *PostgresRepository) ListBooks(context context.Context, f Filter, limit, offset int) ([]*Book, int, error) {
	book := schema.LibraryBook
	writer := schema.LibraryAuthor

	var whereBuilder strings.Builder
	var args []any
	argID := 1

	if search := strings.TrimSpace(f.Search); search != "" {
		var matches []string
		for _, column := range book.Title.Columns() {
			matches = append(matches, fmt.Sprintf("b.%s ILIKE $%d", column, argID))
		}
		for _, column := range append(writer.FirstName.Columns(), writer.LastName.Columns()...) {
			matches = append(matches, fmt.Sprintf("a.%s ILIKE $%d", column, argID))
		}
		matches = append(matches, fmt.Sprintf("b.%s ILIKE $%d", book.ISBN, argID))

		whereBuilder.WriteString(" AND (" + strings.Join(matches, " OR ") + ")")
		args = append(args, "%"+search+"%")
		argID++
	}

	if f.Genre != "" {
		whereBuilder.WriteString(fmt.Sprintf(" AND b.%s = $%d", book.Genre, argID))
		args = append(args, string(f.Genre))
		argID++
	}

	if f.AuthorID != nil {
		whereBuilder.WriteString(fmt.Sprintf(" AND b.%s = $%d", book.AuthorID, argID))
		args = append(args, *f.AuthorID)
		argID++
	}

	if f.AvailableOnly {
		whereBuilder.WriteString(fmt.Sprintf(" AND b.%s", book.IsAvailable))
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s b JOIN %s a ON a.%s = b.%s WHERE TRUE%s`,
		book.Table, writer.Table, writer.ID, book.AuthorID, whereBuilder.String())

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_books")
	}

	query := fmt.Sprintf(`%s WHERE TRUE%s ORDER BY b.%s DESC, b.%s DESC LIMIT $%d OFFSET $%d`,
		selectFrom(), whereBuilder.String(), book.CreatedAt, book.ID, argID, argID+1)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_books")
	}

	books, err := collectBooks(rows)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "scan_book")
	}
	return books, total, nil
}

func (repository *PostgresRepository) ListByAuthor(context context.Context, authorID int) ([]*Book, error) {
	book := schema.LibraryBook
	query := fmt.Sprintf(`%s WHERE b.%s = $1 ORDER BY b.%s DESC, b.%s DESC`,
		selectFrom(), book.AuthorID, book.CreatedAt, book.ID)

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_author_books")
	}

	books, err := collectBooks(rows)
	return books, dberr.Wrap(err, "scan_book")
}

func (repository *PostgresRepository) GetBook(context context.Context, id int) (*Book, error) {
	query := fmt.Sprintf(`%s WHERE b.%s = $1`, selectFrom(), schema.LibraryBook.ID)

	b, err := scanBook(repository.db.QueryRow(context, query, id))
	return b, dberr.Wrap(err, "get_book")
}

// assignments binds every writable book column.
func assignments(b *Book) *schema.Assignments {
	book := schema.LibraryBook

	assign := &schema.Assignments{}
	assign.
		SetText(book.Title, b.Title, false).
		Set(book.AuthorID, b.AuthorID).
		SetNullable(book.ISBN, b.ISBN).
		Set(book.Genre, string(b.Genre)).
		Set(book.PublicationDate, b.PublicationDate.Time).
		Set(book.Pages, b.Pages).
		SetExpr(book.Price, "%s::text::numeric", b.Price.String()).
		SetText(book.Description, b.Description, true).
		Set(book.IsAvailable, b.IsAvailable)
	return assign
}

func (repository *PostgresRepository) CreateBook(context context.Context, b *Book) error {
	book := schema.LibraryBook
	assign := assignments(b)

	query := assign.Insert(book.Table) + fmt.Sprintf(" RETURNING %s, %s, %s", book.ID, book.CreatedAt, book.UpdatedAt)
	if err := repository.db.QueryRow(context, query, assign.Args()...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return dberr.Wrap(err, "create_book")
	}

	repository.events.Publish(context, event.Saved{Entity: event.Book, ID: b.ID, Action: event.Created})
	return nil
}

func (repository *PostgresRepository) UpdateBook(context context.Context, b *Book) error {
	book := schema.LibraryBook
	assign := assignments(b).SetRaw(book.UpdatedAt, "NOW()")

	query := assign.Update(book.Table, book.ID, b.ID) + fmt.Sprintf(" RETURNING %s", book.UpdatedAt)
	if err := repository.db.QueryRow(context, query, assign.Args()...).Scan(&b.UpdatedAt); err != nil {
		return dberr.Wrap(err, "update_book")
	}

	repository.events.Publish(context, event.Saved{Entity: event.Book, ID: b.ID, Action: event.Updated})
	return nil
}

func (repository *PostgresRepository) DeleteBook(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LibraryBook.Table, schema.LibraryBook.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ISBNExists(context context.Context, isbn string, excludeID int) (bool, error) {
	book := schema.LibraryBook
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s <> $2)`, book.Table, book.ISBN, book.ID)

	var exists bool
	err := repository.db.QueryRow(context, query, isbn, excludeID).Scan(&exists)
	return exists, dberr.Wrap(err, "book_isbn_exists")
}

func (repository *PostgresRepository) AuthorExists(context context.Context, authorID int) (bool, error) {
	writer := schema.LibraryAuthor
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, writer.Table, writer.ID)

	var exists bool
	err := repository.db.QueryRow(context, query, authorID).Scan(&exists)
	return exists, dberr.Wrap(err, "book_author_exists")
}

/*
Statistics aggregates the catalog counters.

The genre distribution only carries genres with at least one book, so its
values always sum to the total.
*/
func (repository *PostgresRepository) Statistics(context context.Context) (*Statistics, error) {
	book := schema.LibraryBook

	stats := &Statistics{GenresDistribution: map[string]int{}}

	totalsQuery := fmt.Sprintf(`
		SELECT
			(SELECT count(*) FROM %s),
			count(*),
			count(*) FILTER (WHERE %s),
			count(*) FILTER (WHERE NOT %s)
		FROM %s`,
		schema.LibraryAuthor.Table, book.IsAvailable, book.IsAvailable, book.Table,
	)
	err := repository.db.QueryRow(context, totalsQuery).Scan(
		&stats.TotalAuthors, &stats.TotalBooks, &stats.AvailableBooks, &stats.UnavailableBooks,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "book_statistics")
	}

	genreQuery := fmt.Sprintf(`SELECT %s, count(*) FROM %s GROUP BY %s`, book.Genre, book.Table, book.Genre)
	rows, err := repository.db.Query(context, genreQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "book_genre_distribution")
	}
	defer rows.Close()

	for rows.Next() {
		var genre string
		var count int
		if err := rows.Scan(&genre, &count); err != nil {
			return nil, dberr.Wrap(err, "book_genre_distribution")
		}
		stats.GenresDistribution[genre] = count
	}

	return stats, dberr.Wrap(rows.Err(), "book_genre_distribution")
}

// # Translation Store

func translatableColumns() string {
	book := schema.LibraryBook
	return fmt.Sprintf("%s, %s, %s", book.ID, book.Title.Select(""), book.Description.Select(""))
}

func scanTranslatable(row pgx.Row) (translate.Record, error) {
	var id int
	var title, description i18n.Text

	dest := []any{&id}
	dest = append(dest, schema.ScanText(&title)...)
	dest = append(dest, schema.ScanText(&description)...)
	if err := row.Scan(dest...); err != nil {
		return translate.Record{}, err
	}

	return translate.Record{ID: id, Fields: []translate.Field{
		{Name: FieldTitle, Text: title},
		{Name: FieldDescription, Text: description},
	}}, nil
}

// LoadTranslatable implements [translate.Store].
func (repository *PostgresRepository) LoadTranslatable(context context.Context, id int) (translate.Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		translatableColumns(), schema.LibraryBook.Table, schema.LibraryBook.ID)

	rec, err := scanTranslatable(repository.db.QueryRow(context, query, id))
	return rec, dberr.Wrap(err, "load_book_translatable")
}

// ListTranslatable implements [translate.Store].
func (repository *PostgresRepository) ListTranslatable(context context.Context) ([]translate.Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		translatableColumns(), schema.LibraryBook.Table, schema.LibraryBook.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_book_translatable")
	}
	defer rows.Close()

	var records []translate.Record
	for rows.Next() {
		rec, err := scanTranslatable(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_book_translatable")
		}
		records = append(records, rec)
	}
	return records, dberr.Wrap(rows.Err(), "list_book_translatable")
}

// SaveTranslations implements [translate.Store]. It writes the variant
// columns directly and publishes nothing.
func (repository *PostgresRepository) SaveTranslations(context context.Context, id int, updates []translate.Update) error {
	book := schema.LibraryBook
	columns := book.Translatable()

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

	_, err := repository.db.Exec(context, assign.Update(book.Table, book.ID, id), assign.Args()...)
	return dberr.Wrap(err, "save_book_translations")
}

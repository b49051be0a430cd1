package schema

import (
	"fmt"
	"strings"

	"github.com/taibuivan/libris/internal/platform/i18n"
)

// Assignments collects column/value pairs and renders them as the column and
// placeholder lists of an INSERT or the SET clause of an UPDATE.
type Assignments struct {
	columns []string
	values  []string
	args    []any
}

// Set binds column to value as a plain placeholder.
func (a *Assignments) Set(column string, value any) *Assignments {
	return a.SetExpr(column, "%s", value)
}

// SetNullable binds a text column, storing the empty string as NULL.
func (a *Assignments) SetNullable(column, value string) *Assignments {
	return a.SetExpr(column, "NULLIF(%s, '')", value)
}

// SetExpr binds column to value through expr, where %s stands for the placeholder.
//
//	a.SetExpr("price", "%s::text::numeric", amount.String())
func (a *Assignments) SetExpr(column, expr string, value any) *Assignments {
	a.args = append(a.args, value)
	a.columns = append(a.columns, column)
	a.values = append(a.values, fmt.Sprintf(expr, fmt.Sprintf("$%d", len(a.args))))
	return a
}

// SetRaw sets column to a SQL expression that takes no argument, such as NOW().
func (a *Assignments) SetRaw(column, expr string) *Assignments {
	a.columns = append(a.columns, column)
	a.values = append(a.values, expr)
	return a
}

// SetText binds the base column and the three variants of a translatable
// field. Variants are always nullable; the base only when nullableBase is set.
func (a *Assignments) SetText(column TranslatableColumn, text i18n.Text, nullableBase bool) *Assignments {
	if nullableBase {
		a.SetNullable(column.Base, text.Base)
	} else {
		a.Set(column.Base, text.Base)
	}
	return a.
		SetNullable(column.EN, text.EN).
		SetNullable(column.HI, text.HI).
		SetNullable(column.TA, text.TA)
}

// Len returns the number of bound columns.
func (a *Assignments) Len() int {
	return len(a.columns)
}

// Args returns the bound values in placeholder order.
func (a *Assignments) Args() []any {
	return a.args
}

// Insert renders "INSERT INTO table (...) VALUES (...)".
func (a *Assignments) Insert(table string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(a.columns, ", "), strings.Join(a.values, ", "))
}

// Update renders "UPDATE table SET ... WHERE idColumn = $n" and binds id as
// the last argument.
func (a *Assignments) Update(table, idColumn string, id any) string {
	sets := make([]string, len(a.columns))
	for i, column := range a.columns {
		sets[i] = column + " = " + a.values[i]
	}

	a.args = append(a.args, id)
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(sets, ", "), idColumn, len(a.args))
}

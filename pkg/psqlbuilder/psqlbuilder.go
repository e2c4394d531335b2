package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder with PostgreSQL placeholders ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select creates a SELECT builder with $ placeholders
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert creates an INSERT builder with $ placeholders
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update creates an UPDATE builder with $ placeholders
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete creates a DELETE builder with $ placeholders
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}

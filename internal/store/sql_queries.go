package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, created_at, updated_at;`

	// password_hash is deliberately absent: only the email lookup feeding
	// credential verification may read it.
	findUserByID = `SELECT user_id, username, email, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findAllUsers = `SELECT user_id, username, email, created_at, updated_at
    FROM users
    ORDER BY user_id;`

	createDataPoint = `INSERT INTO data_points (user_id, value, category, metadata)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, value, category, metadata, created_at;`

	findDataPointByID = `SELECT d.id, d.user_id, d.value, d.category, d.metadata, d.created_at,
           u.user_id, u.username, u.email, u.created_at, u.updated_at
    FROM data_points d
    JOIN users u ON u.user_id = d.user_id
    WHERE d.id = $1;`
)

// dataPointColumns is the column list shared by all squirrel-built data
// point SELECTs.
var dataPointColumns = []string{"id", "user_id", "value", "category", "metadata", "created_at"}

// selectDataPoints builds the base SELECT for data point listings.
func selectDataPoints() sq.SelectBuilder {
	return sq.Select(dataPointColumns...).
		From("data_points").
		PlaceholderFormat(sq.Dollar).
		OrderBy("created_at", "id")
}

// buildFindByUserQuery builds the listing query for one owner.
func buildFindByUserQuery(userID int64) (string, []any, error) {
	return selectDataPoints().
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildFindByCategoryQuery builds the listing query for one owner narrowed
// to a single category label.
func buildFindByCategoryQuery(userID int64, category string) (string, []any, error) {
	return selectDataPoints().
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"category": category}).
		ToSql()
}

// buildFindByDateRangeQuery builds the owner-scoped range query.
// Both bounds are inclusive on the creation timestamp.
func buildFindByDateRangeQuery(userID int64, start, end time.Time) (string, []any, error) {
	return selectDataPoints().
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": start}).
		Where(sq.LtOrEq{"created_at": end}).
		ToSql()
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the connection, schema creation, and every query against
the cat vote store.

# Opening

SQLite (modernc.org/sqlite) is the default; Postgres (lib/pq) is also
accepted:

	conn, err := db.Open(db.DialectSQLite, "cats.db")
	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}
	store := db.NewStore(conn, db.DialectSQLite)

Foreign keys are switched on for every SQLite connection through the DSN.
CreateSchema is safe to call multiple times - uses IF NOT EXISTS for all
tables and indexes. There are no migrations.

# Tables

  - cats: image URL plus a unique external_id from the image source
  - votes: one immutable row per upvote or downvote
  - monthly_winners: the leading cat per month_year (YYYY-MM)

# Relationships

	cats 1──* votes
	cats 1──* monthly_winners

Deletes do not cascade; ClearAll removes children before parents.

# Timestamps

All timestamps are written by the store in UTC using TimeLayout so that
range filters compare identically on both engines.
*/
package db

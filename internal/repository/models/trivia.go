package models

// Category is the categories table row. The display name lives in the
// legacy "type" column.
type Category struct {
	ID   int64  `db:"id"`
	Type string `db:"type"`
}

// Question is the questions table row.
type Question struct {
	ID         int64  `db:"id"`
	Question   string `db:"question"`
	Answer     string `db:"answer"`
	CategoryID int64  `db:"category_id"`
	Difficulty int    `db:"difficulty"`
}

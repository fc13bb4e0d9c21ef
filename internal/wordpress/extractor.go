package wordpress

import (
	"strings"
)

// Column positions in the wp_posts VALUES tuple
const (
	postFieldID       = 0
	postFieldAuthor   = 1
	postFieldDate     = 2
	postFieldContent  = 4
	postFieldTitle    = 5
	postFieldExcerpt  = 6
	postFieldStatus   = 7
	postFieldName     = 11
	postFieldModified = 14
	postFieldType     = 20

	// wp_posts has 23 columns; rows shorter than this are malformed
	minPostFields = 21
)

// Column positions in the wp_users VALUES tuple
const (
	userFieldID          = 0
	userFieldDisplayName = 9

	minUserFields = 10
)

// LegacyPost is a content record parsed from the prior CMS's posts table.
// It lives only for the duration of a migration run.
type LegacyPost struct {
	ID       int64
	AuthorID int64
	Date     string
	Content  string
	Title    string
	Excerpt  string
	Status   string
	Name     string
	Modified string
	Type     string
}

// Extractor pulls post and user rows out of a WordPress SQL dump
type Extractor struct {
	postsTable string
	usersTable string
}

// NewExtractor creates an extractor for the given dump table names
func NewExtractor(postsTable, usersTable string) *Extractor {
	return &Extractor{
		postsTable: postsTable,
		usersTable: usersTable,
	}
}

// Posts returns every migration candidate in the dump: rows from INSERT
// statements targeting the posts table where type is "post" and status is
// "publish". Malformed rows are dropped without aborting the batch.
func (e *Extractor) Posts(dump string) []LegacyPost {
	var posts []LegacyPost
	for _, row := range e.rowsFor(dump, e.postsTable) {
		post, ok := parsePostRow(row)
		if !ok {
			continue
		}
		if post.Type != "post" || post.Status != "publish" {
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

// Authors returns display names from the users table keyed by user id,
// the lookup table the converter uses to resolve post authors.
func (e *Extractor) Authors(dump string) map[int64]string {
	authors := make(map[int64]string)
	for _, row := range e.rowsFor(dump, e.usersTable) {
		tokens := ParseRow(row)
		if len(tokens) < minUserFields {
			continue
		}
		id := intAt(tokens, userFieldID)
		name := stringAt(tokens, userFieldDisplayName)
		if id > 0 && name != "" {
			authors[id] = name
		}
	}
	return authors
}

// rowsFor collects the balanced row groups of every INSERT statement
// targeting the given table
func (e *Extractor) rowsFor(dump, table string) []string {
	marker := "INSERT INTO `" + table + "`"
	var rows []string

	idx := 0
	for {
		rel := strings.Index(dump[idx:], marker)
		if rel < 0 {
			break
		}
		start := idx + rel + len(marker)

		vi := strings.Index(dump[start:], "VALUES")
		if vi < 0 {
			// statement with no parseable VALUES clause is skipped entirely
			idx = start
			continue
		}
		body := start + vi + len("VALUES")

		captured, consumed := scanRows(dump[body:])
		rows = append(rows, captured...)
		idx = body + consumed
	}

	return rows
}

// scanRows walks a VALUES clause capturing one row per balanced top-level
// parenthesis group. Text inside an active string literal is opaque: '(' ')'
// and ';' are only structural outside quotes, so semicolons and parentheses
// in post content cannot truncate the statement. A row is captured exactly
// when depth returns to zero from one. Returns the captured rows and the
// number of bytes consumed through the statement terminator.
func scanRows(s string) ([]string, int) {
	var rows []string
	var buf strings.Builder
	depth := 0
	inString := false
	var quote byte

	for i := 0; i < len(s); i++ {
		c := s[i]

		if !inString {
			switch c {
			case '(':
				depth++
				if depth == 1 {
					buf.Reset()
					continue
				}
			case ')':
				depth--
				if depth == 0 {
					rows = append(rows, buf.String())
					buf.Reset()
					continue
				}
			case '\'', '"':
				inString = true
				quote = c
			case ';':
				if depth == 0 {
					return rows, i + 1
				}
			}
		} else if c == quote {
			if i+1 < len(s) && s[i+1] == quote {
				// escaped quote stays part of the row text
				if depth > 0 {
					buf.WriteByte(c)
					buf.WriteByte(quote)
				}
				i++
				continue
			}
			inString = false
		}

		if depth > 0 {
			buf.WriteByte(c)
		}
	}

	return rows, len(s)
}

// parsePostRow maps a tokenized row onto a LegacyPost by fixed column index
func parsePostRow(row string) (LegacyPost, bool) {
	tokens := ParseRow(row)
	if len(tokens) < minPostFields {
		return LegacyPost{}, false
	}

	return LegacyPost{
		ID:       intAt(tokens, postFieldID),
		AuthorID: intAt(tokens, postFieldAuthor),
		Date:     stringAt(tokens, postFieldDate),
		Content:  stringAt(tokens, postFieldContent),
		Title:    stringAt(tokens, postFieldTitle),
		Excerpt:  stringAt(tokens, postFieldExcerpt),
		Status:   stringAt(tokens, postFieldStatus),
		Name:     stringAt(tokens, postFieldName),
		Modified: stringAt(tokens, postFieldModified),
		Type:     stringAt(tokens, postFieldType),
	}, true
}

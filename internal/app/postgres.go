package app

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/club-brackets/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	maxTracedQueryLength     = 512
	preparedBinaryResultFlag = "disable_prepared_binary_result"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// PostgresDSN returns DB_URL with the prepared binary flag applied when configured.
func PostgresDSN(cfg config.Config) string {
	if cfg.DBDisablePreparedBinary {
		return withPreparedBinaryDisabled(cfg.DBURL)
	}
	return cfg.DBURL
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	dsn := PostgresDSN(cfg)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(databaseName(dsn)),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(compactQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// withPreparedBinaryDisabled sets the pooler-friendly flag unless the URL already carries one.
func withPreparedBinaryDisabled(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err != nil || parsed.Scheme == "" {
		return dsn
	}

	query := parsed.Query()
	if query.Get(preparedBinaryResultFlag) != "" {
		return dsn
	}
	query.Set(preparedBinaryResultFlag, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// databaseName reads the database from either a URL or a key=value DSN.
func databaseName(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(dsn) {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key != "dbname" {
			continue
		}
		if name := strings.Trim(value, `"'`); name != "" {
			return name
		}
	}
	return ""
}

// compactQuery collapses whitespace and caps the length of statements attached to spans.
func compactQuery(query string) string {
	query = whitespaceRun.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(query) <= maxTracedQueryLength {
		return query
	}
	return query[:maxTracedQueryLength] + "..."
}

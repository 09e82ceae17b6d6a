package app

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
)

func envLookup(key string) string { return strings.TrimSpace(os.Getenv(key)) }

// ResolveDSN prefers DATABASE_URL, then builds one from POSTGRES_*/PG* when
// POSTGRES_DB is set. Empty means no database.
func ResolveDSN(getenv func(string) string) string {
	if v := getenv("DATABASE_URL"); v != "" {
		return v
	}
	name := getenv("POSTGRES_DB")
	if name == "" {
		return ""
	}
	def := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(def("POSTGRES_USER", "breedbot"), getenv("POSTGRES_PASSWORD")),
		Host:     net.JoinHostPort(def("PGHOST", "db"), def("PGPORT", "5432")),
		Path:     "/" + name,
		RawQuery: "sslmode=" + def("PGSSLMODE", "disable"),
	}
	return u.String()
}

// SafeDSNSummary describes dsn without the password.
func SafeDSNSummary(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "dsn: parse error"
	}
	host, port := u.Host, ""
	if h, p, err := net.SplitHostPort(u.Host); err == nil {
		host, port = h, p
	}
	db := strings.TrimPrefix(u.Path, "/")
	user := u.User.Username()
	if port == "" {
		return fmt.Sprintf("host=%s db=%s user=%s", host, db, user)
	}
	return fmt.Sprintf("host=%s port=%s db=%s user=%s", host, port, db, user)
}

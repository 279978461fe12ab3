package config

import (
	"fmt"
	"net"
	neturl "net/url"
	"sort"
	"strconv"
	"strings"
)

// DSNValue returns the explicit DSN or assembles one for the driver.
func (c DatabaseConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}
	switch c.Driver {
	case DriverPostgres:
		return c.postgresDSN()
	case DriverSQLite:
		return c.sqliteDSN()
	default:
		return c.mysqlDSN()
	}
}

func (c DatabaseConfig) params() neturl.Values {
	params := neturl.Values{}
	for key, value := range c.Params {
		k := strings.TrimSpace(key)
		v := strings.TrimSpace(value)
		if k != "" && v != "" {
			params.Set(k, v)
		}
	}
	return params
}

func (c DatabaseConfig) hostPort(defaultPort int) string {
	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = defaultDBHost
	}
	port := c.Port
	if port == 0 {
		port = defaultPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

func (c DatabaseConfig) name() string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return defaultDBName
}

func (c DatabaseConfig) mysqlDSN() string {
	params := c.params()
	if params.Get("charset") == "" {
		charset := strings.TrimSpace(c.Charset)
		if charset == "" {
			charset = defaultDBCharset
		}
		params.Set("charset", charset)
	}
	if params.Get("parseTime") == "" {
		params.Set("parseTime", "true")
	}
	if params.Get("loc") == "" {
		params.Set("loc", "UTC")
	}

	auth := ""
	user := strings.TrimSpace(c.User)
	if user != "" || c.Password != "" {
		auth = user
		if c.Password != "" {
			auth += ":" + c.Password
		}
		auth += "@"
	}

	dsn := fmt.Sprintf("%stcp(%s)/%s", auth, c.hostPort(defaultMySQLPort), c.name())
	if query := params.Encode(); query != "" {
		dsn += "?" + query
	}
	return dsn
}

func (c DatabaseConfig) postgresDSN() string {
	params := c.params()
	if params.Get("sslmode") == "" {
		params.Set("sslmode", "disable")
	}
	u := &neturl.URL{
		Scheme:   "postgres",
		Host:     c.hostPort(defaultPostgresPort),
		Path:     "/" + c.name(),
		RawQuery: params.Encode(),
	}
	if user := strings.TrimSpace(c.User); user != "" {
		if c.Password != "" {
			u.User = neturl.UserPassword(user, c.Password)
		} else {
			u.User = neturl.User(user)
		}
	}
	return u.String()
}

func (c DatabaseConfig) sqliteDSN() string {
	params := c.params()
	if params.Get("_foreign_keys") == "" {
		params.Set("_foreign_keys", "on")
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = defaultSQLiteFile
	}
	if isMemoryDB(name) {
		name = "file::memory:"
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params.Get(k))
	}
	return name + "?" + strings.Join(pairs, "&")
}

func isMemoryDB(name string) bool {
	return name == ":memory:" || name == "file::memory:"
}

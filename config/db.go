package config

import (
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlConfigFromURL(raw string) (*mysql.Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	cfg := mysql.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Net = "tcp"
	port := u.Port()
	if port == "" {
		port = "3306"
	}
	cfg.Addr = net.JoinHostPort(u.Hostname(), port)

	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	if cfg.DBName == "" {
		return nil, fmt.Errorf("mysql url missing database name")
	}

	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	for key, values := range u.Query() {
		switch key {
		case "parseTime", "loc":
			// always parseTime=true, loc=Local
		default:
			cfg.Params[key] = values[0]
		}
	}
	return cfg, nil
}

func mysqlConfig(s Settings) (*mysql.Config, error) {
	if s.DatabaseURL != "" {
		if strings.HasPrefix(s.DatabaseURL, "mysql://") {
			return mysqlConfigFromURL(s.DatabaseURL)
		}
		return mysql.ParseDSN(s.DatabaseURL)
	}

	cfg := mysql.NewConfig()
	cfg.User = s.DBUser
	cfg.Passwd = s.DBPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(s.DBHost, s.DBPort)
	cfg.DBName = s.DBName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg, nil
}

func postgresDSN(s Settings, dbName string) string {
	if s.DatabaseURL != "" {
		return s.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		s.DBHost, s.DBPort, s.DBUser, s.DBPassword, dbName)
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func createMySQLDatabase(db *sql.DB, name string) error {
	stmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4",
		strings.ReplaceAll(name, "`", "``"))
	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("create database %s: %w", name, err)
	}
	return nil
}

func createPostgresDatabase(db *sql.DB, name string) error {
	var one int
	err := db.QueryRow("SELECT 1 FROM pg_database WHERE datname = $1", name).Scan(&one)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("lookup database %s: %w", name, err)
	}
	if _, err := db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(name)); err != nil {
		return fmt.Errorf("create database %s: %w", name, err)
	}
	return nil
}

// ensureDatabase connects to the server without selecting a database and
// creates the configured one when it is missing.
func ensureDatabase(s Settings) error {
	switch s.Driver {
	case DriverMySQL:
		cfg, err := mysqlConfig(s)
		if err != nil {
			return err
		}
		if cfg.DBName == "" {
			return nil
		}
		server := cfg.Clone()
		server.DBName = ""
		sqlDB, err := sql.Open("mysql", server.FormatDSN())
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return createMySQLDatabase(sqlDB, cfg.DBName)

	case DriverPostgres:
		if s.DatabaseURL != "" {
			return nil
		}
		// "pgx" is registered by the gorm postgres driver.
		sqlDB, err := sql.Open("pgx", postgresDSN(s, "postgres"))
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return createPostgresDatabase(sqlDB, s.DBName)
	}
	return nil
}

func dialector(s Settings) (gorm.Dialector, error) {
	switch s.Driver {
	case DriverMySQL:
		cfg, err := mysqlConfig(s)
		if err != nil {
			return nil, err
		}
		return gormmysql.Open(cfg.FormatDSN()), nil
	case DriverPostgres:
		return postgres.Open(postgresDSN(s, s.DBName)), nil
	case DriverSQLite:
		return sqlite.Open(sqliteDSN(s.SQLitePath)), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", s.Driver)
}

// Open returns a pooled gorm handle for the configured driver. It neither
// creates the database nor migrates it.
func Open(s Settings) (*gorm.DB, error) {
	dial, err := dialector(s)
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if s.SQLLog {
		level = logger.Info
	}
	gormLogger := logger.New(log.StandardLogger(), logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(dial, &gorm.Config{Logger: gormLogger, TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	maxOpen, maxIdle := s.MaxOpenConns, s.MaxIdleConns
	if s.Driver == DriverSQLite {
		// sqlite has a single writer; one connection also keeps in-memory
		// databases alive for the life of the pool.
		maxOpen, maxIdle = 1, 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	if s.Driver != DriverSQLite {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return db, nil
}

// ConnectDatabase creates the database if needed, opens the pool, runs the
// bootstrap and stores the handle in DB.
func ConnectDatabase(s Settings) error {
	if err := ensureDatabase(s); err != nil {
		return err
	}

	db, err := Open(s)
	if err != nil {
		return err
	}

	if err := Bootstrap(db); err != nil {
		return err
	}

	DB = db
	return nil
}

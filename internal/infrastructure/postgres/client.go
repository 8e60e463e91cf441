package postgres

import (
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/colis-timer-api/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewClient opens a pooled PostgreSQL handle from cfg.DatabaseURL.
// The pool connects lazily: an unreachable store surfaces as query errors, not as a startup failure.
func NewClient(cfg *config.Config) (*gorm.DB, error) {
	connCfg, err := connConfig(cfg.DatabaseURL, cfg.DBTLSInsecure)
	if err != nil {
		return nil, err
	}

	sqlDB := stdlib.OpenDB(*connCfg)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               newGormLogger(logrus.StandardLogger()),
		DisableAutomaticPing: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// newGormLogger keeps gorm quiet. Store errors are logged once, by the
// handler that turns them into a 500, with the request fields attached.
func newGormLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		LogLevel:                  logger.Silent,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func connConfig(databaseURL string, insecureTLS bool) (*pgx.ConnConfig, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	c, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	if insecureTLS {
		relaxTLS(&c.Config)
	}
	return c, nil
}

// relaxTLS keeps encryption wherever the connection string negotiates it but
// stops validating the server certificate chain and host name.
func relaxTLS(c *pgconn.Config) {
	relax := func(t *tls.Config) {
		if t == nil {
			return
		}
		t.InsecureSkipVerify = true
		t.VerifyPeerCertificate = nil
		t.VerifyConnection = nil
	}
	relax(c.TLSConfig)
	for _, fb := range c.Fallbacks {
		relax(fb.TLSConfig)
	}
}

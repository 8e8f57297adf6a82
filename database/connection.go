package database

import (
	"fmt"
	"time"

	"atlas-players/retry"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config is the database connection configuration read from the environment.
type Config struct {
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME"`
}

func LoadConfig() (Config, error) {
	return env.ParseAs[Config]()
}

type DSNBuilder struct {
	user         string
	password     string
	host         string
	port         int
	databaseName string
}

func NewDSNBuilder() *DSNBuilder {
	return &DSNBuilder{}
}

func (b *DSNBuilder) SetUser(user string) *DSNBuilder {
	b.user = user
	return b
}

func (b *DSNBuilder) SetPassword(password string) *DSNBuilder {
	b.password = password
	return b
}

func (b *DSNBuilder) SetHost(host string) *DSNBuilder {
	b.host = host
	return b
}

func (b *DSNBuilder) SetPort(port int) *DSNBuilder {
	b.port = port
	return b
}

func (b *DSNBuilder) SetDatabaseName(databaseName string) *DSNBuilder {
	b.databaseName = databaseName
	return b
}

func (b *DSNBuilder) Build() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC", b.host, b.user, b.password, b.databaseName, b.port)
}

type Migrator func(db *gorm.DB) error

type Configuration struct {
	dsn        string
	migrations []Migrator
}

type Configurator func(c *Configuration)

func SetMigrations(migrations ...Migrator) Configurator {
	return func(c *Configuration) {
		c.migrations = append(c.migrations, migrations...)
	}
}

// Connect opens the postgres connection, retrying while the database comes up, and runs the migrations.
func Connect(l logrus.FieldLogger, configurators ...Configurator) *gorm.DB {
	cfg, err := LoadConfig()
	if err != nil {
		l.WithError(err).Fatalf("Unable to read database configuration.")
	}

	c := &Configuration{
		dsn: NewDSNBuilder().
			SetUser(cfg.User).
			SetPassword(cfg.Password).
			SetHost(cfg.Host).
			SetPort(cfg.Port).
			SetDatabaseName(cfg.Name).
			Build(),
		migrations: make([]Migrator, 0),
	}
	for _, configurator := range configurators {
		configurator(c)
	}

	var db *gorm.DB
	rc := retry.Default().
		WithLogger(l).
		WithMaxRetries(10).
		WithInitialDelay(time.Second).
		WithMaxDelay(10 * time.Second)
	err = retry.Execute(rc, func() error {
		var oerr error
		db, oerr = gorm.Open(postgres.Open(c.dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		return oerr
	})
	if err != nil {
		l.WithError(err).Fatalf("Unable to connect to database.")
	}

	if err = Migrate(db, c.migrations...); err != nil {
		l.WithError(err).Fatalf("Unable to migrate database.")
	}
	return db
}

// Migrate runs the migrations in order, stopping at the first failure.
func Migrate(db *gorm.DB, migrations ...Migrator) error {
	for _, m := range migrations {
		if err := m(db); err != nil {
			return err
		}
	}
	return nil
}

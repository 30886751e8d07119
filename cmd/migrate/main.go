// Command migrate applies the embedded schema migrations against the
// configured PostgreSQL database.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"chirp/config"
	pg "chirp/internal/infra/persistence/postgres"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

func main() {
	cmd := flag.String("op", "", "operation: up, down, version, force")
	steps := flag.Int("steps", 0, "number of steps for up/down (0 = all)")
	flag.Parse()

	if *cmd == "" {
		fmt.Println("Usage: go run cmd/migrate/main.go -op=[up|down|version|force] -steps=[n]")
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if cfg.Postgres == nil {
		log.Fatal("postgres is not configured")
	}

	db, err := sql.Open("postgres", buildDSN(cfg))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatalf("could not create driver: %v", err)
	}

	src, err := iofs.New(pg.MigrationsFS, "migrations")
	if err != nil {
		log.Fatalf("could not create source driver: %v", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		log.Fatalf("could not create migrate instance: %v", err)
	}

	switch *cmd {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-(*steps))
		} else {
			err = m.Down()
		}
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Version: %d, Dirty: %v\n", v, dirty)
		return
	case "force":
		if *steps == 0 {
			log.Fatal("please specify version to force")
		}
		err = m.Force(*steps)
	default:
		log.Fatal("unknown command")
	}

	if err != nil {
		if err == migrate.ErrNoChange {
			fmt.Println("No changes detected.")
		} else {
			log.Fatalf("Migration failed: %v", err)
		}
	} else {
		fmt.Println("Migration success!")
	}
}

// buildDSN assembles a postgres URL from the master connection settings.
func buildDSN(cfg *config.Config) string {
	master := cfg.Postgres.Master

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(master.UserName, master.Password),
		Host:   master.Host + ":" + master.Port,
		Path:   "/" + cfg.Postgres.Database,
	}
	q := url.Values{}
	if cfg.Postgres.SSLMode != "" {
		q.Set("sslmode", cfg.Postgres.SSLMode)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

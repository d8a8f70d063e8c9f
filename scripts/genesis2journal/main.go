package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/service"
	"github.com/blocknews-net/herodotus/internal/storage"
	"github.com/blocknews-net/herodotus/internal/storage/postgres"
)

var opts = struct {
	Genesis            string `long:"genesis" env:"GENESIS" default:"genesis.json" description:"path to genesis"`
	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
}{}

type genesis struct {
	Profiles []struct {
		Address     entities.Identity `json:"address"`
		Name        string            `json:"name"`
		Description string            `json:"description"`
		Picture     uint8             `json:"picture"`
	} `json:"profiles"`

	Publications []struct {
		Poster   entities.Identity `json:"poster"`
		Content  string            `json:"content"`
		Link     string            `json:"link"`
		Category entities.Category `json:"category"`
		ParentID uint64            `json:"parentID"`
	} `json:"publications"`

	Follows []struct {
		Follower entities.Identity `json:"follower"`
		Followee entities.Identity `json:"followee"`
	} `json:"follows"`

	Votes []struct {
		Voter entities.Identity `json:"voter"`
		ID    uint64            `json:"id"`
		Up    bool              `json:"up"`
	} `json:"votes"`
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "genesis2journal"
	parser.LongDescription = "Genesis to journal importer"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("genesis2journal started")
	logrus.Infof("%+v", opts)

	b, err := ioutil.ReadFile(opts.Genesis)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read genesis")
	}

	var g genesis

	if err := json.Unmarshal(b, &g); err != nil {
		logrus.WithError(err).Fatal("failed to unmarshal genesis")
	}

	db := mustGetDB()
	j := postgres.New(db)

	t := time.Now().UTC()

	logrus.Info("import profiles")
	for i, v := range g.Profiles {
		if v.Name != "" {
			appendOp(j, service.KindChangeName, v.Address, service.ChangeNamePayload{Name: v.Name}, t)
		}
		if v.Description != "" {
			appendOp(j, service.KindChangeDescription, v.Address, service.ChangeDescriptionPayload{Description: v.Description}, t)
		}
		if v.Picture != 0 {
			appendOp(j, service.KindChangePicture, v.Address, service.ChangePicturePayload{Picture: v.Picture}, t)
		}

		if i%20 == 0 {
			logrus.Infof("%d of %d profiles imported", i+1, len(g.Profiles))
		}
	}

	logrus.Info("import publications")
	for i, v := range g.Publications {
		appendOp(j, service.KindPost, v.Poster, service.PostPayload{
			Content:  v.Content,
			Link:     v.Link,
			Category: v.Category,
			ParentID: v.ParentID,
		}, t)

		if i%20 == 0 {
			logrus.Infof("%d of %d publications imported", i+1, len(g.Publications))
		}
	}

	logrus.Info("import follows")
	for i, v := range g.Follows {
		appendOp(j, service.KindFollow, v.Follower, service.FollowPayload{Target: v.Followee}, t)

		if i%20 == 0 {
			logrus.Infof("%d of %d follows imported", i+1, len(g.Follows))
		}
	}

	logrus.Info("import votes")
	for i, v := range g.Votes {
		kind := service.KindDownvote
		if v.Up {
			kind = service.KindUpvote
		}
		appendOp(j, kind, v.Voter, service.VotePayload{ID: v.ID}, t)

		if i%20 == 0 {
			logrus.Infof("%d of %d votes imported", i+1, len(g.Votes))
		}
	}

	logrus.Info("done")
}

func appendOp(j storage.Journal, kind string, caller entities.Identity, payload interface{}, t time.Time) {
	b, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Fatal("failed to marshal payload")
	}

	if _, err := j.Append(context.Background(), &storage.Operation{
		Kind:      kind,
		Caller:    caller.String(),
		Payload:   b,
		CreatedAt: t,
	}); err != nil {
		logrus.WithError(err).Fatal("failed to put operation into journal")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}

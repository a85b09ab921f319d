package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/santiagoventura/predraft/containers"
	"github.com/santiagoventura/predraft/db"
	"github.com/santiagoventura/predraft/model"
)

var (
	AdleyRutschman = &model.Player{
		ID:              "668939",
		Name:            "Adley Rutschman",
		Team:            model.TEAM_BAL,
		Positions:       []model.Position{model.POS_C},
		PrimaryPosition: model.POS_C,
	}
	FreddieFreeman = &model.Player{
		ID:              "518692",
		Name:            "Freddie Freeman",
		Team:            model.TEAM_LAD,
		Positions:       []model.Position{model.POS_1B},
		PrimaryPosition: model.POS_1B,
	}
	MookieBetts = &model.Player{
		ID:              "605141",
		Name:            "Mookie Betts",
		Team:            model.TEAM_LAD,
		Positions:       []model.Position{model.POS_SS, model.POS_OF},
		PrimaryPosition: model.POS_SS,
	}
	BobbyWitt = &model.Player{
		ID:              "677951",
		Name:            "Bobby Witt",
		Team:            model.TEAM_KCR,
		Positions:       []model.Position{model.POS_SS},
		PrimaryPosition: model.POS_SS,
	}
	AaronJudge = &model.Player{
		ID:              "592450",
		Name:            "Aaron Judge",
		Team:            model.TEAM_NYY,
		Positions:       []model.Position{model.POS_OF},
		PrimaryPosition: model.POS_OF,
	}
	ShoheiOhtani = &model.Player{
		ID:              "660271",
		Name:            "Shohei Ohtani",
		Team:            model.TEAM_LAD,
		Positions:       []model.Position{model.POS_DH},
		PrimaryPosition: model.POS_DH,
	}
	TarikSkubal = &model.Player{
		ID:              "669373",
		Name:            "Tarik Skubal",
		Team:            model.TEAM_DET,
		Positions:       []model.Position{model.POS_SP},
		PrimaryPosition: model.POS_SP,
		IsPitcher:       true,
	}
	EmmanuelClase = &model.Player{
		ID:              "661403",
		Name:            "Emmanuel Clase",
		Team:            model.TEAM_CLE,
		Positions:       []model.Position{model.POS_RP},
		PrimaryPosition: model.POS_RP,
		IsPitcher:       true,
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestPlayers(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestPlayers(db db.DB) error {
	players := []*model.Player{
		AdleyRutschman,
		FreddieFreeman,
		MookieBetts,
		BobbyWitt,
		AaronJudge,
		ShoheiOhtani,
		TarikSkubal,
		EmmanuelClase,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, p := range players {
		err := db.SavePlayer(ctx, p)
		if err != nil {
			return err
		}
	}

	return nil
}

package main

import (
	"flag"
	"os"

	"github.com/yixianOu/movie-review/internal/conf"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/grpc"
	"github.com/go-kratos/kratos/v2/transport/http"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name = "movie-review"
	// Version is the version of the compiled software.
	Version string
	// flagconf is the config flag.
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs", "config path, eg: -conf config.yaml")
}

func newApp(logger log.Logger, gs *grpc.Server, hs *http.Server) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(
			gs,
			hs,
		),
	)
}

func main() {
	flag.Parse()
	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)
	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}
	if bc.Server == nil || bc.Data == nil {
		panic("config: server and data sections are required")
	}
	if bc.Auth == nil {
		bc.Auth = &conf.Auth{}
	}
	if bc.BoxOffice == nil {
		bc.BoxOffice = &conf.BoxOffice{}
	}
	// Environment overrides for secrets.
	if token := os.Getenv("AUTH_TOKEN"); token != "" {
		bc.Auth.Token = token
	}
	if dsn := os.Getenv("DB_URL"); dsn != "" && bc.Data.Database != nil {
		bc.Data.Database.Source = dsn
	}
	if key := os.Getenv("BOXOFFICE_API_KEY"); key != "" {
		bc.BoxOffice.ApiKey = key
	}

	app, cleanup, err := wireApp(bc.Server, bc.Data, bc.Auth, bc.BoxOffice, logger)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	// start and wait for stop signal
	if err := app.Run(); err != nil {
		panic(err)
	}
}

package main

import (
	"os"

	"github.com/IceFireDB/itype/pkg/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pingcap/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

// BuildDate: Binary file compilation time
// BuildVersion: Binary compiled GIT version
var (
	BuildDate    string
	BuildVersion string
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "itype"
	app.Usage = "encode, decode and check itype RPC lines"
	if BuildVersion != "" {
		app.Version = BuildVersion
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "config file",
		},
		cli.StringFlag{
			Name:  "log,l",
			Usage: "log level: debug,info,warning,error (overrides log.level)",
		},
	}
	app.Before = initConfig
	app.Commands = []cli.Command{
		encodeCommand,
		decodeCommand,
		dumpCommand,
		checkCommand,
	}
	return app
}

func initConfig(c *cli.Context) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.Annotate(err, "load .env")
	}

	config.SetDefaults()
	if path := c.String("config"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Annotatef(err, "read config %s", path)
		}
	}

	// a second run in the same process keeps the first configuration
	if err := config.InitConfig(); err != nil && err != config.ErrDuplicateInitConfig {
		return err
	}

	level := c.String("log")
	if level == "" {
		level = config.Get().Log.Level
	}
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lv)

	if !config.Get().Output.Color {
		color.NoColor = true
	}
	return nil
}

package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/pandemic-report/aggregate"
	"github.com/bitmark-inc/pandemic-report/dataset"
	"github.com/bitmark-inc/pandemic-report/external/jhu"
	"github.com/bitmark-inc/pandemic-report/report"
	"github.com/bitmark-inc/pandemic-report/reshape"
)

const (
	logPrefix = "report"

	jhuBase       = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data"
	casesURL      = jhuBase + "/csse_covid_19_time_series/time_series_covid19_confirmed_global.csv"
	deathsURL     = jhuBase + "/csse_covid_19_time_series/time_series_covid19_deaths_global.csv"
	populationURL = jhuBase + "/UID_ISO_FIPS_LookUp_Table.csv"
	boundaryURL   = "https://raw.githubusercontent.com/datasets/geo-countries/master/data/countries.geojson"
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("report")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("sources.cases", casesURL)
	viper.SetDefault("sources.deaths", deathsURL)
	viper.SetDefault("sources.population", populationURL)
	viper.SetDefault("sources.boundary", boundaryURL)
	viper.SetDefault("output.dir", "./output")
	viper.SetDefault("report.ranking", 5)
}

// abort reports a fatal pipeline failure and terminates the run. The
// whole report is one pass with no recovery path.
func abort(err error) {
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
	log.WithField("prefix", logPrefix).Fatal(err)
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
	}); err != nil {
		log.Error(err)
	}

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	client := jhu.NewClient(
		httpClient,
		viper.GetString("sources.cases"),
		viper.GetString("sources.deaths"),
		viper.GetString("sources.population"),
		viper.GetString("sources.boundary"),
	)

	wideCases, err := client.FetchCases()
	if nil != err {
		abort(err)
	}
	wideDeaths, err := client.FetchDeaths()
	if nil != err {
		abort(err)
	}
	population, err := client.FetchPopulation()
	if nil != err {
		abort(err)
	}
	boundaries, err := client.FetchBoundary()
	if nil != err {
		abort(err)
	}

	cases, err := reshape.Melt(wideCases)
	if nil != err {
		abort(err)
	}
	deaths, err := reshape.Melt(wideDeaths)
	if nil != err {
		abort(err)
	}

	observations, err := dataset.Build(cases, deaths, population)
	if nil != err {
		abort(err)
	}
	log.WithFields(log.Fields{"prefix": logPrefix, "observations": len(observations)}).Info("normalized daily observations")

	trend := aggregate.GlobalTrend(observations)
	totals := aggregate.CountryTotals(observations)
	mapTotals := aggregate.CountryMapTotals(observations)

	outputDir := viper.GetString("output.dir")
	if err := os.MkdirAll(outputDir, 0755); nil != err {
		abort(err)
	}

	if err := report.RenderTrend(filepath.Join(outputDir, "trend.png"), trend); nil != err {
		abort(err)
	}

	report.WriteRankings(os.Stdout, totals, viper.GetInt("report.ranking"))

	mapFile, err := os.Create(filepath.Join(outputDir, "cases_map.svg"))
	if nil != err {
		abort(err)
	}
	if err := report.RenderChoropleth(mapFile, mapTotals, boundaries); nil != err {
		mapFile.Close()
		abort(err)
	}
	if err := mapFile.Close(); nil != err {
		abort(err)
	}

	regression, err := report.FitDeathRate(totals)
	if nil != err {
		abort(err)
	}
	fmt.Println()
	regression.Write(os.Stdout)
	if err := report.RenderRegression(filepath.Join(outputDir, "regression.png"), totals, regression); nil != err {
		abort(err)
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "output": outputDir}).Info("report complete")
}

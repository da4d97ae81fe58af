package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"gonum.org/v1/gonum/mat"

	"github.com/rushteam/alkit/config"
	_ "github.com/rushteam/alkit/config/builders"
	"github.com/rushteam/alkit/model"
	"github.com/rushteam/alkit/pkg/matio"
	"github.com/rushteam/alkit/query"
)

var (
	poolFile   string
	probaFile  string
	modelFile  string
	configFile string
	nInstances int
)

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func addInputFlags(c *commander.Command) {
	c.Flag.StringVar(&poolFile, "pool", "", "Pool CSV, one instance per row")
	c.Flag.StringVar(&probaFile, "proba", "", "Class probability CSV, one row per pool instance")
	c.Flag.StringVar(&modelFile, "model", "", "Softmax model JSON ({\"bias\": [...], \"weights\": [[...]]})")
	c.Flag.StringVar(&configFile, "config", "", "Strategy config (YAML, or JSON by .json extension)")
}

func verifyFlags(c *commander.Command, required []string) error {
	for _, name := range required {
		f := c.Flag.Lookup(name)
		if f == nil || f.Value.String() == "" {
			return fmt.Errorf("%s: required flag -%s not set", c.Name(), name)
		}
	}
	return nil
}

func loadStrategy() (*query.Strategy, error) {
	var (
		cfg *query.Config
		err error
	)
	if strings.EqualFold(filepath.Ext(configFile), ".json") {
		cfg, err = query.LoadFromJSON(configFile)
	} else {
		cfg, err = query.LoadFromYAML(configFile)
	}
	if err != nil {
		return nil, err
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg.BuildStrategy(config.DefaultFactory())
}

func loadInputs() (model.Model, *mat.Dense, error) {
	var (
		est model.Model
		err error
	)
	switch {
	case modelFile != "":
		est, err = model.LoadSoftmaxModel(modelFile)
	case probaFile != "":
		est, err = model.LoadProbaTable(probaFile)
	default:
		return nil, nil, fmt.Errorf("one of -model or -proba is required")
	}
	if err != nil {
		return nil, nil, err
	}
	pool, err := matio.ReadCSVFile(poolFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load pool: %w", err)
	}
	return est, pool, nil
}

func Score(c *commander.Command, args []string) error {
	if err := verifyFlags(c, []string{"pool", "config"}); err != nil {
		return err
	}
	strategy, err := loadStrategy()
	if err != nil {
		return err
	}
	est, pool, err := loadInputs()
	if err != nil {
		return err
	}
	log.Printf("Scoring %d instances with %s (%s, estimator %s)", mustRows(pool), strategy.Name, strategy.Measure.Name(), est.Name())

	scores, err := strategy.Scores(context.Background(), est, pool)
	if err != nil {
		return err
	}
	return matio.WriteColumn(os.Stdout, scores)
}

func Query(c *commander.Command, args []string) error {
	if err := verifyFlags(c, []string{"pool", "config"}); err != nil {
		return err
	}
	strategy, err := loadStrategy()
	if err != nil {
		return err
	}
	if nInstances > 0 {
		strategy.N = nInstances
	}
	est, pool, err := loadInputs()
	if err != nil {
		return err
	}
	log.Printf("Querying %d of %d instances with %s", max(strategy.N, 1), mustRows(pool), strategy.Name)

	idx, _, err := strategy.Query(context.Background(), est, pool)
	if err != nil {
		return err
	}
	for _, i := range idx {
		fmt.Println(i)
	}
	return nil
}

func Validate(c *commander.Command, args []string) error {
	if err := verifyFlags(c, []string{"config"}); err != nil {
		return err
	}
	strategy, err := loadStrategy()
	if err != nil {
		return err
	}
	log.Printf("Strategy %s OK: measure %s, n_instances %d", strategy.Name, strategy.Measure.Name(), strategy.N)
	return nil
}

func mustRows(pool *mat.Dense) int {
	r, _ := pool.Dims()
	return r
}

func ScoreCmd() *commander.Command {
	c := &commander.Command{
		Run:       Score,
		UsageLine: "score <file options>",
		Short:     "print the utility score of every pool instance",
		Long: `
print the utility score of every pool instance, one per line

	$ ./alkit score -pool <pool csv> -config <strategy yaml> (-proba <proba csv> | -model <model json>)

`,
		Flag: *flag.NewFlagSet("score", flag.ExitOnError),
	}
	addInputFlags(c)
	return c
}

func QueryCmd() *commander.Command {
	c := &commander.Command{
		Run:       Query,
		UsageLine: "query <file options> [-n <instances>]",
		Short:     "print the indices of the instances to label next",
		Long: `
print the indices of the instances to label next, highest utility first

	$ ./alkit query -pool <pool csv> -config <strategy yaml> (-proba <proba csv> | -model <model json>) -n 5

`,
		Flag: *flag.NewFlagSet("query", flag.ExitOnError),
	}
	addInputFlags(c)
	c.Flag.IntVar(&nInstances, "n", 0, "Number of instances to query (overrides n_instances)")
	return c
}

func ValidateCmd() *commander.Command {
	c := &commander.Command{
		Run:       Validate,
		UsageLine: "validate -config <strategy yaml>",
		Short:     "check that a strategy config builds",
		Flag:      *flag.NewFlagSet("validate", flag.ExitOnError),
	}
	c.Flag.StringVar(&configFile, "config", "", "Strategy config (YAML, or JSON by .json extension)")
	return c
}

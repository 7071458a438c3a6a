// Ngramset matches queries against a newline-separated dictionary file,
// either as whole-line membership tests or as an n-gram sweep.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/safecast"
	"fortio.org/struct2env"

	"github.com/coregx/ngramset"
)

type Config struct {
	Dict string
}

var config = Config{}

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(config)
	str := struct2env.ToShellWithPrefix("NGRAMSET_", res, true)
	fmt.Fprintln(w, "# Ngramset environment variables:")
	fmt.Fprint(w, str)
}

func main() {
	os.Exit(Main())
}

func Main() int {
	dictFlag := flag.String("dict", "", "dictionary `file`, one entry per line (or NGRAMSET_DICT)")
	nFlag := flag.Int("n", 3, "maximum n-gram `size` in words")
	containsFlag := flag.Bool("contains", false, "whole-query membership test instead of n-gram matching")
	strategyFlag := flag.String("strategy", "auto", "membership strategy: auto, zerocopy or copy")

	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	errs := struct2env.SetFromEnv("NGRAMSET_", &config)
	if len(errs) > 0 {
		log.Errf("Error setting config from env: %v", errs)
	}
	cli.ArgsHelp = "queries... or no arguments to read queries from stdin, one per line"
	cli.MaxArgs = -1
	cli.Main()

	dictPath := *dictFlag
	if dictPath == "" {
		dictPath = config.Dict
	}
	if dictPath == "" {
		return log.FErrf("No dictionary: pass -dict or set NGRAMSET_DICT")
	}

	// Rejects negative -n before the engine's zero-coercion would hide it.
	maxN, err := safecast.Convert[uint](*nFlag)
	if err != nil {
		return log.FErrf("Invalid -n %d: %v", *nFlag, err)
	}

	cfg := ngramset.DefaultConfig()
	switch *strategyFlag {
	case "auto":
		cfg.Strategy = ngramset.StrategyAuto
	case "zerocopy":
		cfg.Strategy = ngramset.StrategyZeroCopy
	case "copy":
		cfg.Strategy = ngramset.StrategyCopy
	default:
		return log.FErrf("Unknown -strategy %q (want auto, zerocopy or copy)", *strategyFlag)
	}

	corpus, err := os.ReadFile(dictPath)
	if err != nil {
		return log.FErrf("Reading dictionary: %v", err)
	}
	dict, err := ngramset.NewWithConfig(corpus, cfg)
	if err != nil {
		return log.FErrf("Building dictionary: %v", err)
	}
	log.Infof("Loaded %d entries from %s (%s strategy)", dict.Len(), dictPath, dict.Strategy())

	if len(flag.Args()) > 0 {
		for _, q := range flag.Args() {
			processQuery(dict, q, int(maxN), *containsFlag)
		}
		return 0
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		processQuery(dict, scanner.Text(), int(maxN), *containsFlag)
	}
	if err := scanner.Err(); err != nil {
		return log.FErrf("Reading stdin: %v", err)
	}
	return 0
}

func processQuery(dict *ngramset.Dictionary, query string, maxN int, contains bool) {
	if contains {
		fmt.Println(dict.ContainsString(query))
		return
	}
	for _, m := range dict.FindAllMatchesString(query, maxN) {
		fmt.Println(m)
	}
}

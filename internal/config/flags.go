package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// parseFlags overlays Config fields from command-line flags:
//
//	-a string   base URL of the data server
//	-d string   path to the local session database
//	-t int      provider request timeout in seconds
//
// Only the flags listed above are parsed; everything else in os.Args is
// filtered out first so other components (the -c config flag, go test
// flags) do not trip the FlagSet.
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("portal", flag.ContinueOnError)
	fs.StringVar(&cfg.DataServerAddr, "a", cfg.DataServerAddr, "base URL of the data server")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path to the session database")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}

// configFilePath returns the JSON config path from -c/-config, or "".
func configFilePath() string {
	var path string

	args := filterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}

// filterArgs keeps only the allowed flags and their values, in both the
// "-f value" and "-f=value" forms.
func filterArgs(args, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, keep := allowed[name]; keep {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, keep := allowed[arg]; keep {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

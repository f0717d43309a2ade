package config

import (
	"flag"
	"os"
	"strings"
)

// filterArgs keeps only the flags named in known (and their values) so that
// each loader can parse os.Args without tripping over flags owned by another.
//
// Both "-x value" and "-x=value" forms are recognized. A token following a
// known flag is taken as its value unless it starts with '-'.
func filterArgs(args []string, known ...string) []string {
	isKnown := func(name string) bool {
		for _, k := range known {
			if k == name {
				return true
			}
		}
		return false
	}

	out := []string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, found := strings.Cut(arg, "="); found {
			if isKnown(name) {
				out = append(out, arg)
			}
			continue
		}

		if !isKnown(arg) {
			continue
		}
		out = append(out, arg)
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			out = append(out, args[next])
			i = next
		}
	}
	return out
}

// configFileFlag returns the JSON config path given via -c or -config,
// or an empty string when neither is present.
func configFileFlag() string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(filterArgs(os.Args[1:], "-c", "-config", "--config"))

	return path
}

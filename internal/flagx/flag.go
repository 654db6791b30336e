// Package flagx lets several components parse their own flags from the same
// os.Args without tripping over each other's unknown flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// Pick returns the subset of args that belongs to the named flags, keeping
// the order in which they appear. Both "-f value" and "-f=value" forms are
// recognised; a following token is only taken as the value when it does not
// itself start with "-".
func Pick(args []string, names ...string) []string {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	picked := []string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, found := strings.Cut(arg, "="); found {
			if known[name] {
				picked = append(picked, arg)
			}
			continue
		}

		if !known[arg] {
			continue
		}
		picked = append(picked, arg)

		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			picked = append(picked, args[next])
			i = next
		}
	}

	return picked
}

// ConfigPath returns the JSON config file given with -c or -config, or an
// empty string when neither is present.
func ConfigPath() string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(Pick(os.Args[1:], "-c", "-config"))

	return path
}

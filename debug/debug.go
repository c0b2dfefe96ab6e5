package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Build bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PROJSTRUCT_DEBUG_PARSE")
	d.Build = boolEnv("PROJSTRUCT_DEBUG_BUILD")
	d.Eval = boolEnv("PROJSTRUCT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Build() bool {
	return d.Build
}
func Eval() bool {
	return d.Eval
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

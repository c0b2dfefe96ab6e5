// Package eval expands $[expr] placeholders in seed file templates.
package eval

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"

	"github.com/SaadRayh/Project-Structure-Generator/debug"
)

// Env is the variable environment placeholder expressions evaluate in.
type Env map[string]any

// ProjectEnv builds the standard environment for a project named name.
func ProjectEnv(name string) Env {
	now := time.Now()
	return Env{
		"name": name,
		"date": now.Format("2006-01-02"),
		"year": now.Year(),
	}
}

// ExpandString replaces every $[expr] in v with the result of evaluating
// expr in env. Text outside placeholders passes through unchanged; an
// unterminated $[ is kept literally.
func ExpandString(v string, env Env) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	// $[x]
	j := -1
	i := 0
	n := len(v)
	var buf []byte
	for i < n-1 {
		c, next := v[i], v[i+1]
		i++
		switch c {
		case '$':
			if next == '[' {
				j = i + 1
				i++
				continue
			}
			if j == -1 {
				buf = append(buf, c)
			}
		case ']':
			if j != -1 {
				key := v[j : i-1]
				x, err := expr.Eval(strings.TrimSpace(key), map[string]any(env))
				if err != nil {
					return "", fmt.Errorf("error evaluating %q: %w", key, err)
				}
				if debug.Eval() {
					debug.Logf("eval %q gave %#v\n", key, x)
				}
				buf = append(buf, valueBytes(x)...)
				j = -1
				continue
			}
			buf = append(buf, c)
		default:
			if j == -1 {
				buf = append(buf, c)
			}
		}
	}
	if j == -1 {
		buf = append(buf, v[n-1])
		return string(buf), nil
	}
	if v[n-1] != ']' {
		buf = append(buf, v[j-2:n]...)
	} else {
		key := v[j : n-1]
		x, err := expr.Eval(strings.TrimSpace(key), map[string]any(env))
		if err != nil {
			return "", fmt.Errorf("error evaluating %q: %w", key, err)
		}
		if debug.Eval() {
			debug.Logf("eval %q gave %#v\n", key, x)
		}
		buf = append(buf, valueBytes(x)...)
	}
	return string(buf), nil
}

func valueBytes(v any) []byte {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return []byte(x)
	case bool:
		return []byte(strconv.FormatBool(x))
	case int:
		return []byte(strconv.Itoa(x))
	case int64:
		return []byte(strconv.FormatInt(x, 10))
	case float64:
		return []byte(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		return []byte(fmt.Sprintf("%v", x))
	}
}

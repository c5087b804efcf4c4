// Package conformance runs stringify against a table of cases whose expected
// output was produced by a reference JSON.stringify, and checks every output
// with an independent JSON decoder.
package conformance

import (
	"errors"
	"fmt"

	"github.com/dhoelle/stringify"
	gojson "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Case is a single conformance scenario.
type Case struct {
	Description string
	Value       stringify.Value
	Config      stringify.Config

	// Want is the expected text. It is ignored when WantAbsent or
	// WantError is set.
	Want string

	// WantAbsent expects the value to produce no output.
	WantAbsent bool

	// WantError expects an ErrCircularStructure.
	WantError bool
}

// Result is the outcome of running one Case.
type Result struct {
	Case   Case
	Got    string
	OK     bool
	Err    error
	Passed bool

	// Reason explains a failure.
	Reason string
}

// Report is the outcome of running a list of cases, in order.
type Report struct {
	Results []Result
}

func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

func (r Report) Failed() int { return len(r.Results) - r.Passed() }

// Run runs every case and collects the results.
func Run(cases []Case) Report {
	report := Report{Results: make([]Result, 0, len(cases))}
	for i, c := range cases {
		res := run(c)
		Logger().Debug("conformance case",
			zap.Int("index", i+1),
			zap.String("description", c.Description),
			zap.Bool("passed", res.Passed),
			zap.String("reason", res.Reason),
		)
		report.Results = append(report.Results, res)
	}
	return report
}

func run(c Case) Result {
	cfg := c.Config
	got, ok, err := stringify.Stringify(c.Value, &cfg)
	res := Result{Case: c, Got: got, OK: ok, Err: err}

	switch {
	case c.WantError:
		var circ stringify.ErrCircularStructure
		if errors.As(err, &circ) {
			res.Passed = true
		} else if err != nil {
			res.Reason = fmt.Sprintf("expected a circular structure error, got %v", err)
		} else {
			res.Reason = "expected an error but got a result"
		}
	case err != nil:
		res.Reason = fmt.Sprintf("failed with error - %v", err)
	case c.WantAbsent:
		if ok {
			res.Reason = fmt.Sprintf("expected no output, got %s", got)
		} else {
			res.Passed = true
		}
	case !ok:
		res.Reason = "produced no output"
	case got != c.Want:
		res.Reason = fmt.Sprintf("output mismatch: got %q, want %q", got, c.Want)
	default:
		if err := sameJSON(got, c.Want); err != nil {
			res.Reason = err.Error()
		} else {
			res.Passed = true
		}
	}
	return res
}

// sameJSON checks with goccy/go-json that got is valid JSON which decodes to
// the same data as want.
func sameJSON(got, want string) error {
	if !gojson.Valid([]byte(got)) {
		return fmt.Errorf("output is not valid JSON: %s", got)
	}
	canonGot, err := canonical(got)
	if err != nil {
		return fmt.Errorf("failed to re-encode output: %w", err)
	}
	canonWant, err := canonical(want)
	if err != nil {
		return fmt.Errorf("failed to re-encode expected text: %w", err)
	}
	if canonGot != canonWant {
		return fmt.Errorf("reference decoding mismatch: got %s, want %s", canonGot, canonWant)
	}
	return nil
}

// canonical decodes text and encodes it again with sorted keys and no
// insignificant whitespace.
func canonical(text string) (string, error) {
	var v any
	if err := gojson.Unmarshal([]byte(text), &v); err != nil {
		return "", err
	}
	b, err := gojson.MarshalNoEscape(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

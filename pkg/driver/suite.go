package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Suite is a named list of evaluation scenarios.
type Suite struct {
	Path  string
	Name  string
	Cases []Case
}

// Case pairs a source text with either the expected rendering or a fragment
// of the expected error message.
type Case struct {
	Source string `yaml:"source"`
	Expect string `yaml:"expect"`
	Error  string `yaml:"error"`
}

// WantsError reports whether the case expects evaluation to fail.
func (c Case) WantsError() bool {
	return c.Error != ""
}

type suiteFile struct {
	Name  string     `yaml:"name"`
	Cases []caseFile `yaml:"cases"`
}

type caseFile struct {
	Source *string `yaml:"source"`
	Expect *string `yaml:"expect"`
	Error  *string `yaml:"error"`
}

// LoadSuite parses and validates a scenario suite.
func LoadSuite(path string) (*Suite, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("suite: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("suite: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw suiteFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("suite: %s is empty", absPath)
		}
		return nil, fmt.Errorf("suite: parse %s: %w", absPath, err)
	}

	var errs ValidationError
	name := raw.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath))
	}
	if len(raw.Cases) == 0 {
		errs.add("cases must not be empty")
	}
	cases := make([]Case, 0, len(raw.Cases))
	for idx, c := range raw.Cases {
		if c.Source == nil || strings.TrimSpace(*c.Source) == "" {
			errs.add("cases[%d].source must be provided", idx)
		}
		switch {
		case c.Expect == nil && c.Error == nil:
			errs.add("cases[%d] needs expect or error", idx)
		case c.Expect != nil && c.Error != nil:
			errs.add("cases[%d] must not set both expect and error", idx)
		case c.Error != nil && *c.Error == "":
			errs.add("cases[%d].error must not be empty", idx)
		}
		cases = append(cases, Case{
			Source: lo.FromPtr(c.Source),
			Expect: lo.FromPtr(c.Expect),
			Error:  lo.FromPtr(c.Error),
		})
	}
	if err := errs.errOrNil(); err != nil {
		return nil, fmt.Errorf("suite %s: %w", absPath, err)
	}
	return &Suite{Path: absPath, Name: name, Cases: cases}, nil
}

// Evaluator renders a source text or fails.
type Evaluator func(source string) (string, error)

// Result records the outcome of one case.
type Result struct {
	Case   Case
	Got    string
	Err    error
	Passed bool
}

// Describe explains a failed result in one line.
func (r Result) Describe() string {
	switch {
	case r.Passed:
		return "ok"
	case r.Case.WantsError() && r.Err == nil:
		return fmt.Sprintf("expected error containing %q, got %s", r.Case.Error, r.Got)
	case r.Case.WantsError():
		return fmt.Sprintf("expected error containing %q, got %q", r.Case.Error, r.Err.Error())
	case r.Err != nil:
		return fmt.Sprintf("expected %s, got error: %v", r.Case.Expect, r.Err)
	default:
		return fmt.Sprintf("expected %s, got %s", r.Case.Expect, r.Got)
	}
}

// Run evaluates every case of the suite in order.
func (s *Suite) Run(eval Evaluator) []Result {
	return lo.Map(s.Cases, func(c Case, _ int) Result {
		got, err := eval(c.Source)
		res := Result{Case: c, Got: got, Err: err}
		if c.WantsError() {
			res.Passed = err != nil && strings.Contains(err.Error(), c.Error)
		} else {
			res.Passed = err == nil && got == c.Expect
		}
		return res
	})
}

// Failures filters results down to failed cases.
func Failures(results []Result) []Result {
	return lo.Filter(results, func(r Result, _ int) bool { return !r.Passed })
}

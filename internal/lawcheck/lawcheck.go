// Package lawcheck samples random values and checks the algebraic laws of the native instances.
package lawcheck

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"slices"
	"strings"
	"sync"

	"github.com/Pallinder/go-randomdata"
	"github.com/spaolacci/murmur3"
	"go.llib.dev/algebrakit/pkg/algebra/laws"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase/random"
	"golang.org/x/sync/errgroup"
)

const (
	ErrUnknownCheck errorkit.Error = "ErrUnknownCheck"
	ErrCheckFailed  errorkit.Error = "ErrCheckFailed"
)

// maxViolations caps the violation messages kept per check.
const maxViolations = 3

const wordPoolSize = 64

// Check is a named law check. Law is called once per sample.
type Check struct {
	Name string
	Law  func(s *Sample) error
}

// Sample is the random source of a single check.
type Sample struct {
	Random *random.Random
	Words  []string
}

func (s *Sample) Word() string {
	return s.Words[s.Random.IntBetween(0, len(s.Words)-1)]
}

// Runner executes checks concurrently.
type Runner struct {
	Checks      []Check
	Samples     int
	Seed        int64
	Concurrency int
	Logger      *logging.Logger
}

type Report struct {
	Seed    int64    `yaml:"seed" json:"seed"`
	Samples int      `yaml:"samples" json:"samples"`
	Passed  bool     `yaml:"passed" json:"passed"`
	Checks  []Result `yaml:"checks" json:"checks"`
}

type Result struct {
	Name       string   `yaml:"name" json:"name"`
	Passed     bool     `yaml:"passed" json:"passed"`
	Failures   int      `yaml:"failures" json:"failures"`
	Violations []string `yaml:"violations,omitempty" json:"violations,omitempty"`
}

// Select returns the checks with the given names, or every check when names is empty.
func Select(checks []Check, names ...string) ([]Check, error) {
	if len(names) == 0 {
		return checks, nil
	}
	var out []Check
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		i := slices.IndexFunc(checks, func(c Check) bool { return c.Name == name })
		if i < 0 {
			return nil, ErrUnknownCheck.F("%q", name)
		}
		out = append(out, checks[i])
	}
	return out, nil
}

// Run checks every law Samples times. Law violations are reported, not returned;
// the returned error is reserved for cancellation and failures outside the laws.
func (r Runner) Run(ctx context.Context) (Report, error) {
	var (
		logger = r.logger()
		seed   = r.Seed
	)
	if seed == 0 {
		seed = int64(random.New(random.CryptoSeed{}).Int())
	}
	samples := max(r.Samples, 1)
	report := Report{
		Seed:    seed,
		Samples: samples,
		Checks:  make([]Result, len(r.Checks)),
	}

	words := wordPool(seed)
	logger.Debug(ctx, "law check started",
		logging.Field("seed", seed),
		logging.Field("samples", samples),
		logging.Field("checks", len(r.Checks)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Concurrency, 1))
	for i, check := range r.Checks {
		g.Go(func() error {
			res, err := run(ctx, check, samples, &Sample{
				Random: random.New(rand.NewSource(checkSeed(seed, check.Name))),
				Words:  words,
			})
			if err != nil {
				return err
			}
			if res.Passed {
				logger.Info(ctx, "laws hold",
					logging.Field("check", check.Name))
			} else {
				logger.Warn(ctx, "laws violated",
					logging.Field("check", check.Name),
					logging.Field("failures", res.Failures))
			}
			report.Checks[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error(ctx, "law check aborted", logging.ErrField(err))
		return Report{}, err
	}

	report.Passed = true
	for _, res := range report.Checks {
		report.Passed = report.Passed && res.Passed
	}
	return report, nil
}

func run(ctx context.Context, check Check, samples int, s *Sample) (Result, error) {
	res := Result{Name: check.Name}
	for range samples {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		err := check.Law(s)
		if err == nil {
			continue
		}
		if !errors.Is(err, laws.ErrLawViolation) {
			return res, errorkit.Merge(ErrCheckFailed.F("%s", check.Name), err)
		}
		res.Failures++
		if len(res.Violations) < maxViolations {
			res.Violations = append(res.Violations, err.Error())
		}
	}
	res.Passed = res.Failures == 0
	return res, nil
}

func (r Runner) logger() *logging.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return &logging.Logger{Out: io.Discard}
}

func checkSeed(seed int64, name string) int64 {
	return seed ^ int64(murmur3.Sum64([]byte(name)))
}

var wordPoolMutex sync.Mutex

// wordPool draws words from randomdata with a seeded source,
// so a seed reproduces the string samples too.
func wordPool(seed int64) []string {
	wordPoolMutex.Lock()
	defer wordPoolMutex.Unlock()
	randomdata.CustomRand(rand.New(rand.NewSource(seed)))
	words := make([]string, 0, wordPoolSize)
	for len(words) < wordPoolSize {
		switch len(words) % 4 {
		case 0:
			words = append(words, randomdata.SillyName())
		case 1:
			words = append(words, randomdata.Noun())
		case 2:
			words = append(words, randomdata.Adjective())
		case 3:
			words = append(words, randomdata.City())
		}
	}
	return words
}

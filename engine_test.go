package ajisai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/goajisai/internal/logio"
)

type engineTestCases []engineTestCase

func (ets engineTestCases) run(t *testing.T) {
	{
		var exclusive []engineTestCase
		for _, et := range ets {
			if et.exclusive {
				exclusive = append(exclusive, et)
			}
		}
		if len(exclusive) > 0 {
			ets = exclusive
		}
	}
	for _, et := range ets {
		if !t.Run(et.name, et.run) {
			return
		}
	}
}

func engineTest(name string) (et engineTestCase) {
	et.name = name
	return et
}

type optFunc func(eng *Engine)

func (f optFunc) apply(eng *Engine) { f(eng) }

type engineTestCase struct {
	name    string
	opts    []interface{}
	steps   []interface{}
	expect  []func(t *testing.T, eng *Engine)
	timeout time.Duration
	wantErr error

	exclusive bool
}

func (et engineTestCase) apply(wraps ...func(engineTestCase) engineTestCase) engineTestCase {
	for _, wrap := range wraps {
		et = wrap(et)
	}
	return et
}

func (et engineTestCase) exclusiveTest() engineTestCase {
	et.exclusive = true
	return et
}

func (et engineTestCase) withOptions(opts ...Option) engineTestCase {
	for _, opt := range opts {
		et.opts = append(et.opts, opt)
	}
	return et
}

func (et engineTestCase) withStack(values ...Value) engineTestCase {
	et.opts = append(et.opts, optFunc(func(eng *Engine) {
		eng.stack = append(eng.stack, values...)
	}))
	return et
}

func (et engineTestCase) withRStack(values ...Value) engineTestCase {
	et.opts = append(et.opts, optFunc(func(eng *Engine) {
		eng.rstack = append(eng.rstack, values...)
	}))
	return et
}

// withSource appends source texts, each executed as its own execute call.
func (et engineTestCase) withSource(srcs ...string) engineTestCase {
	for _, src := range srcs {
		et.steps = append(et.steps, src)
	}
	return et
}

// do appends host-side steps run between source steps.
func (et engineTestCase) do(fns ...func(t *testing.T, eng *Engine)) engineTestCase {
	for _, fn := range fns {
		et.steps = append(et.steps, fn)
	}
	return et
}

func (et engineTestCase) withTimeout(timeout time.Duration) engineTestCase {
	et.timeout = timeout
	return et
}

func (et engineTestCase) withTestOutput() engineTestCase {
	et.opts = append(et.opts, func(et *engineTestCase, t *testing.T) Option {
		lw := &logio.Writer{Logf: func(mess string, args ...interface{}) {
			t.Logf("out: "+mess, args...)
		}}
		return WithTee(lw)
	})
	return et
}

func (et engineTestCase) expectError(err error) engineTestCase {
	et.wantErr = err
	return et
}

func (et engineTestCase) expectStack(values ...Value) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine) {
		if values == nil {
			values = []Value{}
		}
		stack := eng.stack
		if stack == nil {
			stack = []Value{}
		}
		assert.Equal(t, values, stack, "expected stack values")
	})
	return et
}

func (et engineTestCase) expectRStack(values ...Value) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine) {
		if values == nil {
			values = []Value{}
		}
		rstack := eng.rstack
		if rstack == nil {
			rstack = []Value{}
		}
		assert.Equal(t, values, rstack, "expected return stack values")
	})
	return et
}

// expectOutput asserts against everything printed and not yet drained.
func (et engineTestCase) expectOutput(output string) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine) {
		assert.Equal(t, output, eng.out.buf.String(), "expected output")
	})
	return et
}

func (et engineTestCase) expectCustomWords(names ...string) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine) {
		if names == nil {
			names = []string{}
		}
		words := eng.CustomWords()
		if words == nil {
			words = []string{}
		}
		assert.Equal(t, names, words, "expected custom words")
	})
	return et
}

func (et engineTestCase) expectWord(name string, desc string) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine) {
		info, ok := eng.LookupWord(name)
		if assert.True(t, ok, "expected %v to be defined", name) {
			assert.Equal(t, desc, info.Description, "expected %v description", name)
		}
	})
	return et
}

func (et engineTestCase) expectNoWord(name string) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine) {
		_, ok := eng.LookupWord(name)
		assert.False(t, ok, "expected %v to be undefined", name)
	})
	return et
}

func (et engineTestCase) expectDump(dump string) engineTestCase {
	et.expect = append(et.expect, func(t *testing.T, eng *Engine) {
		var out strings.Builder
		engineDumper{eng: eng, out: &out}.dump()
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return et
}

func (et engineTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Now().Sub(then))
	}(time.Now())

	if testFails(func(t *testing.T) {
		et.runEngineTest(context.Background(), t, et.buildEngine(t))
	}) {
		eng := et.buildEngine(t)
		WithLogf(t.Logf).apply(eng)
		et.runEngineTest(context.Background(), t, eng)
	}
}

func (et engineTestCase) runEngineTest(ctx context.Context, t *testing.T, eng *Engine) {
	const defaultTimeout = time.Second
	timeout := et.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if t.Failed() {
			et.dumpToTest(t, eng)
		}
	}()

	if err := et.runSteps(ctx, t, eng); et.wantErr != nil {
		assert.True(t, errors.Is(err, et.wantErr), "expected error: %v\ngot: %+v", et.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected execute error")
	}

	if !t.Failed() {
		for _, expect := range et.expect {
			expect(t, eng)
		}
	}
}

func (et engineTestCase) runSteps(ctx context.Context, t *testing.T, eng *Engine) error {
	for i, step := range et.steps {
		switch impl := step.(type) {
		case string:
			eng.logf("exec[%v] %q", i, impl)
			if err := eng.ExecuteContext(ctx, impl); err != nil {
				return err
			}
		case func(t *testing.T, eng *Engine):
			eng.logf("do[%v]", i)
			impl(t, eng)
		default:
			t.Logf("unsupported engineTestCase step type %T", step)
			t.FailNow()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (et engineTestCase) buildEngine(t *testing.T) *Engine {
	var opt Option
	for _, o := range et.opts {
		switch impl := o.(type) {
		case func(et *engineTestCase, t *testing.T) Option:
			opt = Options(opt, impl(&et, t))
		case Option:
			opt = Options(opt, impl)
		default:
			t.Logf("unsupported engineTestCase opt type %T", o)
			t.FailNow()
		}
	}
	return New(opt)
}

func (et engineTestCase) dumpToTest(t *testing.T, eng *Engine) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	engineDumper{eng: eng, out: &lw}.dump()
}

//// utilities

func testFails(fn func(t *testing.T)) bool {
	var fakeT testing.T
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(&fakeT)
	}()
	<-done
	return fakeT.Failed()
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

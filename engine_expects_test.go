package ajisai

// @generated from engine_test.go

//go:generate go run scripts/gen_expects.go -- engine_test.go engine_expects_test.go

import "time"

func withEngineOptions(opts ...Option) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withOptions(opts...)
	}
}

func withEngineStack(values ...Value) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withStack(values...)
	}
}

func withEngineRStack(values ...Value) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withRStack(values...)
	}
}

func withEngineSource(srcs ...string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withSource(srcs...)
	}
}

func withEngineTimeout(timeout time.Duration) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.withTimeout(timeout)
	}
}

func expectEngineError(err error) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectError(err)
	}
}

func expectEngineStack(values ...Value) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectStack(values...)
	}
}

func expectEngineRStack(values ...Value) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectRStack(values...)
	}
}

func expectEngineOutput(output string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectOutput(output)
	}
}

func expectEngineCustomWords(names ...string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectCustomWords(names...)
	}
}

func expectEngineWord(name string, desc string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectWord(name, desc)
	}
}

func expectEngineNoWord(name string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectNoWord(name)
	}
}

func expectEngineDump(dump string) func(engineTestCase) engineTestCase {
	return func(et engineTestCase) engineTestCase {
		return et.expectDump(dump)
	}
}

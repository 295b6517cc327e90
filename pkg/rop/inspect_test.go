package rop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record[T any](log *[]T) func(T) {
	return func(v T) {
		*log = append(*log, v)
	}
}

func TestOptionInspect_Some(t *testing.T) {
	t.Parallel()

	var log []int
	out := Some(10).Inspect(record(&log))

	assert.Equal(t, Some(10), out)
	assert.Equal(t, []int{10}, log)
}

func TestOptionInspect_None(t *testing.T) {
	t.Parallel()

	var log []int
	out := None[int]().Inspect(record(&log))

	assert.True(t, out.IsNone())
	assert.Equal(t, None[int](), out)
	assert.Empty(t, log)
}

func TestResultInspect_Success(t *testing.T) {
	t.Parallel()

	var log []int
	in := Success[int, struct{}](10)
	out := in.Inspect(record(&log))

	assert.Equal(t, in, out)
	assert.True(t, out.IsSuccess())
	assert.Equal(t, 10, out.Result())
	assert.Equal(t, []int{10}, log)
}

func TestResultInspect_FailureIgnored(t *testing.T) {
	t.Parallel()

	var log []struct{}
	in := Fail[struct{}](10)
	out := in.Inspect(record(&log))

	assert.Equal(t, in, out)
	assert.True(t, out.IsFailure())
	assert.Equal(t, 10, out.Err())
	assert.Empty(t, log)
}

func TestResultInspectErr_Failure(t *testing.T) {
	t.Parallel()

	var log []int
	in := Fail[struct{}](10)
	out := in.InspectErr(record(&log))

	assert.Equal(t, in, out)
	assert.Equal(t, 10, out.Err())
	assert.Equal(t, []int{10}, log)
}

func TestResultInspectErr_SuccessIgnored(t *testing.T) {
	t.Parallel()

	var log []struct{}
	in := Success[int, struct{}](10)
	out := in.InspectErr(record(&log))

	assert.Equal(t, in, out)
	assert.Equal(t, 10, out.Result())
	assert.Empty(t, log)
}

func TestInspect_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Success[string, error]("payload")
	out := in.Inspect(func(string) {}).InspectErr(func(error) {})

	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())

	failed := Fail[string](errors.New("bad"))
	after := failed.InspectErr(func(error) {})
	assert.Equal(t, failed.Id(), after.Id())
	assert.Same(t, failed.Err(), after.Err())
}

func TestInspect_PointerPayloadIsNotCopied(t *testing.T) {
	t.Parallel()

	type payload struct{ n int }
	p := &payload{n: 1}

	var seen *payload
	out := Some(p).Inspect(func(v *payload) { seen = v })

	got, ok := out.Get()
	require.True(t, ok)
	assert.Same(t, p, got)
	assert.Same(t, p, seen)
}

func TestInspect_NoopIsIdentity(t *testing.T) {
	t.Parallel()

	noop := func(int) {}
	opts := []Option[int]{Some(0), Some(-3), None[int]()}
	for _, o := range opts {
		if diff := cmp.Diff(o, o.Inspect(noop), cmp.AllowUnexported(Option[int]{})); diff != "" {
			t.Fatalf("option changed by no-op inspect (-want +got):\n%s", diff)
		}
	}

	results := []Result[int, string]{Success[int, string](7), Fail[int]("nope")}
	for _, r := range results {
		got := r.Inspect(noop).InspectErr(func(string) {})
		if diff := cmp.Diff(r, got, cmp.AllowUnexported(Result[int, string]{})); diff != "" {
			t.Fatalf("result changed by no-op inspect (-want +got):\n%s", diff)
		}
	}
}

func TestInspect_RepeatedKeepsOrder(t *testing.T) {
	t.Parallel()

	var log []string
	f := func(v int) { log = append(log, fmt.Sprintf("f%d", v)) }
	g := func(v int) { log = append(log, fmt.Sprintf("g%d", v)) }

	out := Some(3).Inspect(f).Inspect(g)
	assert.Equal(t, Some(3), out)
	assert.Equal(t, []string{"f3", "g3"}, log)

	log = nil
	r := Success[int, error](4)
	assert.Equal(t, r, r.Inspect(f).Inspect(g))
	assert.Equal(t, []string{"f4", "g4"}, log)

	log = nil
	e := Fail[string](5)
	assert.Equal(t, e, e.InspectErr(f).InspectErr(g).Inspect(func(string) { log = append(log, "x") }))
	assert.Equal(t, []string{"f5", "g5"}, log)
}

func TestInspect_MutableCapture(t *testing.T) {
	t.Parallel()

	count, sum := 0, 0
	observe := func(v int) {
		count++
		sum += v
	}

	for i := 1; i <= 4; i++ {
		Some(i).Inspect(observe)
		None[int]().Inspect(observe)
	}

	assert.Equal(t, 4, count)
	assert.Equal(t, 10, sum)
}

func TestInspect_PanicPropagates(t *testing.T) {
	t.Parallel()

	boom := func(int) { panic("boom") }

	assert.PanicsWithValue(t, "boom", func() { Some(1).Inspect(boom) })
	assert.PanicsWithValue(t, "boom", func() { Success[int, error](1).Inspect(boom) })
	assert.PanicsWithValue(t, "boom", func() { Fail[string](1).InspectErr(boom) })

	assert.NotPanics(t, func() { None[int]().Inspect(boom) })
	assert.NotPanics(t, func() { Fail[int](1).Inspect(boom) })
	assert.NotPanics(t, func() { Success[int, int](1).InspectErr(boom) })
}

func TestInspect_NilObserver(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(1), Some(1).Inspect(nil))
	r := Fail[int]("x")
	assert.Equal(t, r, r.InspectErr(nil))
}

func TestInspect_FreeFunctions(t *testing.T) {
	t.Parallel()

	var log []int
	assert.Equal(t, Some(1), InspectOption(Some(1), record(&log)))

	s := Success[int, int](2)
	assert.Equal(t, s, Inspect(s, record(&log)))

	f := Fail[int](3)
	assert.Equal(t, f, InspectErr(f, record(&log)))

	assert.Equal(t, []int{1, 2, 3}, log)
}

func TestInspectPair(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}
	var log []int

	v, ok := InspectPair(m["a"], true, record(&log))
	assert.Equal(t, 1, v)
	assert.True(t, ok)

	v, ok = InspectPair(0, false, record(&log))
	assert.Equal(t, 0, v)
	assert.False(t, ok)

	assert.Equal(t, []int{1}, log)
}

func TestInspectValueAndError(t *testing.T) {
	t.Parallel()

	errBad := errors.New("bad")
	var values []int
	var errs []error

	v, err := InspectValue(5, nil, record(&values))
	assert.Equal(t, 5, v)
	assert.NoError(t, err)

	v, err = InspectValue(6, errBad, record(&values))
	assert.Equal(t, 6, v)
	assert.ErrorIs(t, err, errBad)

	v, err = InspectError(7, errBad, record(&errs))
	assert.Equal(t, 7, v)
	assert.ErrorIs(t, err, errBad)

	_, err = InspectError(8, nil, record(&errs))
	assert.NoError(t, err)

	assert.Equal(t, []int{5}, values)
	assert.Equal(t, []error{errBad}, errs)
}

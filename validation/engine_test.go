package validation

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/caporal-go/caporal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Regex(t *testing.T) {
	ctx := context.Background()
	v, err := NewRegex(`^[a-z]+$`)
	require.NoError(t, err)

	got, err := Validate(ctx, "abc", v)
	assert.NoError(t, err)
	assert.Equal(t, "abc", got)

	got, err = Validate(ctx, []any{"a", "b"}, v)
	assert.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	_, err = Validate(ctx, float64(12), v)
	assert.ErrorIs(t, err, errs.ErrPatternMismatch)

	_, err = Validate(ctx, []any{"a", "B"}, v)
	assert.ErrorIs(t, err, errs.ErrPatternMismatch)

	_, err = NewRegex("(")
	assert.ErrorIs(t, err, errs.ErrInvalidPattern)
}

func TestValidate_Choice(t *testing.T) {
	ctx := context.Background()
	v := NewChoice("a", "b", "c")

	got, err := Validate(ctx, []any{"a", "b"}, v)
	assert.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	_, err = Validate(ctx, []any{"a", "d"}, v)
	assert.ErrorIs(t, err, errs.ErrNotInChoices)

	// string coercion: 1 matches "1"
	got, err = Validate(ctx, float64(1), Choice{Values: []any{"1", "2"}})
	assert.NoError(t, err)
	assert.Equal(t, float64(1), got)
}

func TestValidate_Func(t *testing.T) {
	ctx := context.Background()
	upper := NewFunc(func(_ context.Context, value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("not a string")
		}
		return s + "!", nil
	}, "")

	got, err := Validate(ctx, "hi", upper)
	assert.NoError(t, err)
	assert.Equal(t, "hi!", got)

	got, err = Validate(ctx, []any{"a", "b"}, upper)
	assert.NoError(t, err)
	assert.Equal(t, []any{"a!", "b!"}, got)

	_, err = Validate(ctx, float64(1), upper)
	assert.ErrorIs(t, err, errs.ErrPredicateFailed)
	assert.Contains(t, err.Error(), "not a string")
}

func TestValidate_FuncPanics(t *testing.T) {
	ctx := context.Background()
	boom := NewFunc(func(context.Context, any) (any, error) {
		panic("boom")
	}, "")

	_, err := Validate(ctx, "x", boom)
	assert.ErrorIs(t, err, errs.ErrPredicateFailed)
	assert.ErrorIs(t, err, errs.ErrPanic)
	assert.Contains(t, err.Error(), "boom")

	sentinel := errors.New("thrown")
	thrower := NewFunc(func(context.Context, any) (any, error) {
		panic(sentinel)
	}, "")
	_, err = Validate(ctx, "x", thrower)
	assert.ErrorIs(t, err, sentinel)
}

func TestValidate_FlagNumber(t *testing.T) {
	ctx := context.Background()
	v := MustFlag(Number)

	got, err := Validate(ctx, "3.5", v)
	assert.NoError(t, err)
	assert.Equal(t, 3.5, got)

	got, err = Validate(ctx, float64(2), v)
	assert.NoError(t, err)
	assert.Equal(t, float64(2), got)

	_, err = Validate(ctx, "x", v)
	assert.ErrorIs(t, err, errs.ErrNotANumber)

	_, err = Validate(ctx, true, v)
	assert.ErrorIs(t, err, errs.ErrNotANumber)

	for _, raw := range []any{"NaN", "nan", "Inf", "-Infinity", "1e400", math.NaN(), math.Inf(-1)} {
		_, err = Validate(ctx, raw, v)
		assert.ErrorIs(t, err, errs.ErrNotANumber, "%v", raw)
	}

	got, err = Validate(ctx, []any{"1", float64(2)}, v)
	assert.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2)}, got)
}

func TestValidate_FlagBoolean(t *testing.T) {
	ctx := context.Background()
	v := MustFlag(Boolean)

	for raw, want := range map[any]bool{
		"true": true, "YES": true, "1": true, float64(1): true, true: true,
		"false": false, "No": false, "0": false, float64(0): false, false: false,
	} {
		got, err := Validate(ctx, raw, v)
		assert.NoError(t, err, "value %v", raw)
		assert.Equal(t, want, got, "value %v", raw)
	}

	_, err := Validate(ctx, "maybe", v)
	assert.ErrorIs(t, err, errs.ErrNotABoolean)
}

func TestValidate_FlagString(t *testing.T) {
	ctx := context.Background()
	v := MustFlag(String)

	got, err := Validate(ctx, float64(42), v)
	assert.NoError(t, err)
	assert.Equal(t, "42", got)

	_, err = Validate(ctx, []any{"a"}, v)
	assert.ErrorIs(t, err, errs.ErrArrayNotAllowed)
}

func TestValidate_FlagCombined(t *testing.T) {
	ctx := context.Background()
	v := MustFlag(Number | Boolean)

	got, err := Validate(ctx, "7", v)
	assert.NoError(t, err)
	assert.Equal(t, float64(7), got)

	got, err = Validate(ctx, "yes", v)
	assert.NoError(t, err)
	assert.Equal(t, true, got)

	_, err = Validate(ctx, "x", v)
	assert.ErrorIs(t, err, errs.ErrNotANumber)

	got, err = Validate(ctx, "x", MustFlag(Number|String))
	assert.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestValidate_FlagArray(t *testing.T) {
	ctx := context.Background()

	got, err := Validate(ctx, "1,2,3", MustFlag(Array|Number))
	assert.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, got)

	got, err = Validate(ctx, float64(5), MustFlag(Array|Number))
	assert.NoError(t, err)
	assert.Equal(t, []any{float64(5)}, got)

	got, err = Validate(ctx, "a,b", MustFlag(Array))
	assert.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	got, err = Validate(ctx, []any{"a", float64(1)}, MustFlag(Array|String))
	assert.NoError(t, err)
	assert.Equal(t, []any{"a", "1"}, got)

	_, err = Validate(ctx, "1,x", MustFlag(Array|Number))
	assert.ErrorIs(t, err, errs.ErrNotANumber)
}

func TestValidate_NilValidator(t *testing.T) {
	got, err := Validate(context.Background(), "x", nil)
	assert.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestValidateEach(t *testing.T) {
	ctx := context.Background()

	got, err := ValidateEach(ctx, []any{"a", "b"}, MustFlag(String))
	assert.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	got, err = ValidateEach(ctx, "1", MustFlag(Number))
	assert.NoError(t, err)
	assert.Equal(t, float64(1), got)

	_, err = ValidateEach(ctx, []any{"1", "x"}, MustFlag(Number))
	assert.ErrorIs(t, err, errs.ErrNotANumber)

	got, err = ValidateEach(ctx, []any{"a", "b"}, MustFlag(Array|String))
	assert.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	got, err = ValidateEach(ctx, []any{"1", float64(2)}, MustFlag(Array|Number))
	assert.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2)}, got)
}

func TestFailure(t *testing.T) {
	cause := errs.ErrNotANumber.WithArgs("x")
	fe := Failure(errs.OptionField, "number", "x", MustFlag(Number), cause)

	assert.Equal(t, errs.OptionField, fe.Kind)
	assert.Equal(t, "number", fe.Field)
	assert.ErrorIs(t, fe, errs.ErrValidationFailed)
	assert.ErrorIs(t, fe, errs.ErrNotANumber)
	assert.Equal(t, "invalid value 'x' for option 'number', expected a number: 'x' is not a number", fe.Error())
}

func TestFrom(t *testing.T) {
	v, err := From([]string{"a", "b"})
	assert.NoError(t, err)
	assert.IsType(t, Choice{}, v)

	v, err = From(regexp.MustCompile("^a"))
	assert.NoError(t, err)
	assert.IsType(t, Regex{}, v)

	v, err = From(Number | Array)
	assert.NoError(t, err)
	assert.Equal(t, Number|Array, v.(Flag).Kind())

	v, err = From(func(string) error { return nil })
	assert.NoError(t, err)
	assert.IsType(t, Func{}, v)

	_, err = From(42)
	assert.ErrorIs(t, err, errs.ErrInvalidValidator)

	_, err = From(Kind(0))
	assert.ErrorIs(t, err, errs.ErrInvalidFlagMask)

	_, err = From(Kind(16))
	assert.ErrorIs(t, err, errs.ErrInvalidFlagMask)
}

package validation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/caporal-go/caporal/errs"
	"github.com/caporal-go/caporal/i18n"
	"github.com/caporal-go/caporal/internal/util"
)

// Validate applies v to value and returns the coerced value. Array values
// are validated element by element and the mapped array is returned; the
// String flag rejects arrays unless the Array bit is also set. A nil
// validator accepts anything.
//
// The returned error is the cause only (e.g. errs.ErrNotANumber); use
// Failure to attach the field it concerns.
func Validate(ctx context.Context, value any, v Validator) (any, error) {
	switch val := v.(type) {
	case nil:
		return value, nil
	case Regex:
		return each(ctx, value, val.check)
	case Choice:
		return each(ctx, value, val.check)
	case Func:
		return each(ctx, value, val.check)
	case Flag:
		return val.check(ctx, value)
	default:
		panic(fmt.Sprintf("validation: unsupported validator %T", v))
	}
}

// ValidateEach validates every element of a variadic value with v. Scalar
// values are validated as they are. A Flag carrying the Array bit already
// maps the elements itself and receives the whole slice.
func ValidateEach(ctx context.Context, value any, v Validator) (any, error) {
	if f, isFlag := v.(Flag); isFlag && f.mask.Has(Array) {
		return Validate(ctx, value, v)
	}

	items, ok := util.AsSlice(value)
	if !ok {
		return Validate(ctx, value, v)
	}

	out := make([]any, len(items))
	for i, item := range items {
		res, err := Validate(ctx, item, v)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}

	return out, nil
}

// Failure wraps cause into a validation failure for the named field.
func Failure(kind errs.FieldKind, name string, value any, v Validator, cause error) *errs.FieldError {
	var provider i18n.MessageProvider
	expectation := ""
	if v != nil {
		expectation = v.Expectation(provider)
	}

	return &errs.FieldError{
		Kind:  kind,
		Field: name,
		Err: errs.ErrValidationFailed.
			WithArgs(util.FormatValue(value), message(provider, kind.Key()), name, expectation).
			Wrap(cause),
	}
}

func each(ctx context.Context, value any, check func(context.Context, any) (any, error)) (any, error) {
	items, ok := util.AsSlice(value)
	if !ok {
		return check(ctx, value)
	}

	out := make([]any, len(items))
	for i, item := range items {
		res, err := check(ctx, item)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}

	return out, nil
}

func (r Regex) check(_ context.Context, value any) (any, error) {
	s := util.FormatValue(value)
	if !r.Pattern.MatchString(s) {
		return nil, errs.ErrPatternMismatch.WithArgs(s, r.Pattern.String())
	}

	return value, nil
}

func (c Choice) check(_ context.Context, value any) (any, error) {
	s := util.FormatValue(value)
	for _, choice := range c.Values {
		if util.FormatValue(choice) == s {
			return value, nil
		}
	}

	return nil, errs.ErrNotInChoices.WithArgs(s, util.QuoteList(c.Values))
}

func (f Func) check(ctx context.Context, value any) (res any, err error) {
	if f.Predicate == nil {
		return value, nil
	}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			if e, ok := r.(error); ok {
				err = errs.ErrPredicateFailed.Wrap(e)
				return
			}
			err = errs.ErrPredicateFailed.Wrap(errs.ErrPanic.WithArgs(r))
		}
	}()

	res, err = f.Predicate(ctx, value)
	if err != nil {
		var tr i18n.TranslatableError
		if errors.As(err, &tr) {
			return nil, err
		}
		return nil, errs.ErrPredicateFailed.Wrap(err)
	}

	return res, nil
}

func (f Flag) check(ctx context.Context, value any) (any, error) {
	if f.mask&Array == 0 {
		if _, isArray := util.AsSlice(value); isArray {
			if f.mask&String != 0 {
				return nil, errs.ErrArrayNotAllowed
			}
			return each(ctx, value, f.checkScalar)
		}
		return f.checkScalar(ctx, value)
	}

	var items []any
	switch t := value.(type) {
	case string:
		for _, part := range strings.Split(t, ",") {
			items = append(items, part)
		}
	default:
		if s, ok := util.AsSlice(value); ok {
			items = s
		} else {
			items = []any{value}
		}
	}

	inner := Flag{mask: f.mask &^ Array}
	out := make([]any, len(items))
	for i, item := range items {
		if inner.mask == 0 {
			out[i] = item
			continue
		}
		res, err := inner.checkScalar(ctx, item)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}

	return out, nil
}

// checkScalar tries Number, then Boolean, then String. The error of the
// first bit tried is reported when none accepts the value.
func (f Flag) checkScalar(_ context.Context, value any) (any, error) {
	var first error
	if f.mask&Number != 0 {
		res, err := toNumber(value)
		if err == nil {
			return res, nil
		}
		first = err
	}
	if f.mask&Boolean != 0 {
		res, err := toBoolean(value)
		if err == nil {
			return res, nil
		}
		if first == nil {
			first = err
		}
	}
	if f.mask&String != 0 {
		return util.FormatValue(value), nil
	}

	return nil, first
}

// toNumber rejects NaN and infinities, which strconv.ParseFloat accepts.
func toNumber(value any) (float64, error) {
	var (
		f  float64
		ok bool
	)
	switch t := value.(type) {
	case float64:
		f, ok = t, true
	case float32:
		f, ok = float64(t), true
	case int:
		f, ok = float64(t), true
	case int64:
		f, ok = float64(t), true
	case string:
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			parsed, err := strconv.ParseFloat(trimmed, 64)
			f, ok = parsed, err == nil
		}
	}

	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errs.ErrNotANumber.WithArgs(util.FormatValue(value))
	}

	return f, nil
}

func toBoolean(value any) (bool, error) {
	switch t := value.(type) {
	case bool:
		return t, nil
	case float64:
		if t == 0 || t == 1 {
			return t == 1, nil
		}
	case string:
		switch strings.ToLower(t) {
		case "true", "yes", "1":
			return true, nil
		case "false", "no", "0":
			return false, nil
		}
	}

	return false, errs.ErrNotABoolean.WithArgs(util.FormatValue(value))
}

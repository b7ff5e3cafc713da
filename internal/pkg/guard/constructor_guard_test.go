package guard_test

import (
	"errors"
	"testing"

	"trading/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		err := g.Validate(errors.New("not constructed"))

		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is meant to
// be embedded in a value object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Instrument struct {
		symbol string
		guard  guard.ConstructorGuard
	}

	var errInstrumentNotConstructed = errors.New("Instrument must be created via NewInstrument")

	newInstrument := func(symbol string) (Instrument, error) {
		if symbol == "" {
			return Instrument{}, errors.New("symbol is required")
		}
		return Instrument{
			symbol: symbol,
			guard:  guard.NewConstructorGuard(),
		}, nil
	}

	validateInstrument := func(i Instrument) error {
		return i.guard.Validate(errInstrumentNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		instrument, err := newInstrument("EURUSD")

		require.NoError(t, err)
		require.NoError(t, validateInstrument(instrument))
		assert.Equal(t, "EURUSD", instrument.symbol)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var instrument Instrument // zero value

		err := validateInstrument(instrument)

		require.Error(t, err)
		assert.Equal(t, errInstrumentNotConstructed, err)
	})
}

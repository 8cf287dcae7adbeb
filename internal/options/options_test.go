package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("value cannot be negative")

type testConfig struct {
	Value    int
	Name     string
	LastCall string
}

func (tc *testConfig) SetValue(v int) error {
	if v < 0 {
		return errNegative
	}
	tc.Value = v
	tc.LastCall = "SetValue"

	return nil
}

func (tc *testConfig) SetName(name string) {
	tc.Name = name
	tc.LastCall = "SetName"
}

// validatedConfig rejects an empty name after all options ran.
type validatedConfig struct {
	Name string
}

func (vc *validatedConfig) Validate() error {
	if vc.Name == "" {
		return errors.New("name is required")
	}

	return nil
}

func TestOption_New(t *testing.T) {
	config := &testConfig{}

	t.Run("creates option that can return error", func(t *testing.T) {
		opt := New(func(c *testConfig) error {
			return c.SetValue(42)
		})

		require.NoError(t, opt.apply(config))
		require.Equal(t, 42, config.Value)
		require.Equal(t, "SetValue", config.LastCall)
	})

	t.Run("propagates errors from option function", func(t *testing.T) {
		opt := New(func(c *testConfig) error {
			return c.SetValue(-1)
		})

		err := opt.apply(config)
		require.ErrorIs(t, err, errNegative)
	})
}

func TestOption_NoError(t *testing.T) {
	config := &testConfig{}

	opt := NoError(func(c *testConfig) {
		c.SetName("test")
	})

	require.NoError(t, opt.apply(config))
	require.Equal(t, "test", config.Name)
	require.Equal(t, "SetName", config.LastCall)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		config := &testConfig{}
		err := Apply(config,
			New(func(c *testConfig) error { return c.SetValue(10) }),
			NoError(func(c *testConfig) { c.SetName("test") }),
		)

		require.NoError(t, err)
		require.Equal(t, 10, config.Value)
		require.Equal(t, "test", config.Name)
		require.Equal(t, "SetName", config.LastCall)
	})

	t.Run("stops at first error and wraps it with the option index", func(t *testing.T) {
		config := &testConfig{}
		err := Apply(config,
			New(func(c *testConfig) error { return c.SetValue(5) }),
			New(func(c *testConfig) error { return c.SetValue(-1) }),
			NoError(func(c *testConfig) { c.SetName("should not be set") }),
		)

		require.ErrorIs(t, err, errNegative)
		require.Contains(t, err.Error(), "option 1")
		require.Equal(t, 5, config.Value)
		require.Empty(t, config.Name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		config := &testConfig{}
		require.NoError(t, Apply(config, nil, NoError(func(c *testConfig) { c.SetName("x") })))
		require.Equal(t, "x", config.Name)
	})

	t.Run("works with empty options slice", func(t *testing.T) {
		config := &testConfig{}
		require.NoError(t, Apply(config))
		require.Zero(t, config.Value)
	})
}

func TestOption_ApplyValidates(t *testing.T) {
	err := Apply(&validatedConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "name is required")

	err = Apply(&validatedConfig{}, NoError(func(c *validatedConfig) { c.Name = "ok" }))
	require.NoError(t, err)
}

func TestOption_GenericsWithPrimitive(t *testing.T) {
	var num int
	opt := NoError(func(n *int) {
		*n = 42
	})

	require.NoError(t, Apply(&num, opt))
	require.Equal(t, 42, num)
}

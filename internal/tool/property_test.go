package tool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	kiterrors "github.com/voicepod/devicekit-go/internal/errors"
)

func TestBindRequiredArguments(t *testing.T) {
	props := PropertyList{
		String("question"),
		Integer("volume", WithRange(0, 100)),
		Boolean("enabled"),
	}

	bound, err := props.Bind(map[string]any{
		"question": "what is this?",
		"volume":   float64(42),
		"enabled":  true,
	})
	require.NoError(t, err)

	q, ok := bound.Get("question")
	require.True(t, ok)
	require.Equal(t, "what is this?", q.Str())

	v, ok := bound.Get("volume")
	require.True(t, ok)
	require.Equal(t, 42, v.Int())

	e, ok := bound.Get("enabled")
	require.True(t, ok)
	require.True(t, e.Bool())
}

func TestBindMissingRequiredArgument(t *testing.T) {
	props := PropertyList{String("url"), Integer("quality", WithDefault(80))}

	_, err := props.Bind(map[string]any{"quality": float64(50)})
	require.Error(t, err)

	var argErr *kiterrors.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "url", argErr.Name)
	require.True(t, argErr.Missing)
}

func TestBindTypeMismatchToleratedOnlyWithDefault(t *testing.T) {
	t.Run("mismatch without default fails", func(t *testing.T) {
		props := PropertyList{Integer("volume")}

		_, err := props.Bind(map[string]any{"volume": "loud"})
		require.EqualError(t, err, "Missing valid argument: volume")
	})

	t.Run("mismatch with default keeps default", func(t *testing.T) {
		props := PropertyList{Integer("quality", WithDefault(80))}

		bound, err := props.Bind(map[string]any{"quality": "high"})
		require.NoError(t, err)

		q, _ := bound.Get("quality")
		require.Equal(t, 80, q.Int())
	})
}

func TestBindIntegerRange(t *testing.T) {
	props := PropertyList{Integer("volume", WithRange(0, 100))}

	_, err := props.Bind(map[string]any{"volume": float64(101)})
	require.EqualError(t, err, "Invalid value for argument: volume")

	_, err = props.Bind(map[string]any{"volume": float64(-1)})
	require.Error(t, err)

	bound, err := props.Bind(map[string]any{"volume": float64(100)})
	require.NoError(t, err)

	v, _ := bound.Get("volume")
	require.Equal(t, 100, v.Int())
}

func TestBindValidatesFirstOffenderOnly(t *testing.T) {
	props := PropertyList{String("a"), String("b")}

	_, err := props.Bind(map[string]any{})
	require.EqualError(t, err, "Missing valid argument: a")
}

func TestSchemaShape(t *testing.T) {
	props := PropertyList{
		Integer("quality", WithDefault(80), WithRange(1, 100)),
		String("url"),
	}

	data, err := json.Marshal(props.Schema())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	require.Equal(t, "object", got["type"])
	require.Equal(t, []any{"url"}, got["required"])

	properties, ok := got["properties"].(map[string]any)
	require.True(t, ok)

	quality, ok := properties["quality"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "integer", quality["type"])
	require.Equal(t, float64(1), quality["minimum"])
	require.Equal(t, float64(100), quality["maximum"])
	require.Equal(t, float64(80), quality["default"])

	url, ok := properties["url"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "string", url["type"])
}

func TestReturnValueSerialization(t *testing.T) {
	cases := []struct {
		name string
		rv   ReturnValue
		want string
	}{
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"text", Text("ok"), `"ok"`},
		{"raw", Raw(json.RawMessage(`{"battery":87}`)), `{"battery":87}`},
		{"zero value", ReturnValue{}, "null"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.rv)
			require.NoError(t, err)
			require.JSONEq(t, tc.want, string(data))
		})
	}

	obj, err := Object(map[string]int{"width": 240})
	require.NoError(t, err)

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	require.JSONEq(t, `{"width":240}`, string(data))
}

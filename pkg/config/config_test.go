package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("NUMCONV_TEST_STRING", "  :9090 ")
	assert.Equal(t, ":9090", GetEnvString("NUMCONV_TEST_STRING", ":8080"))
	assert.Equal(t, ":8080", GetEnvString("NUMCONV_TEST_UNSET", ":8080"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "12", 12},
		{"negative", "-3", -3},
		{"spaces", " 7 ", 7},
		{"unset", "", 5},
		{"garbage falls back", "five", 5},
		{"decimal falls back", "2.5", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NUMCONV_TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("NUMCONV_TEST_INT", 5))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("NUMCONV_TEST_FLOAT", "0.25")
	assert.InDelta(t, 0.25, GetEnvFloat("NUMCONV_TEST_FLOAT", 1), 1e-9)

	t.Setenv("NUMCONV_TEST_FLOAT", "lots")
	assert.InDelta(t, 1.0, GetEnvFloat("NUMCONV_TEST_FLOAT", 1), 1e-9)
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"T", true},
		{"false", false},
		{"0", false},
		{"yes", true}, // unparsable, default
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("NUMCONV_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("NUMCONV_TEST_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("NUMCONV_TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("NUMCONV_TEST_DURATION", time.Minute))

	t.Setenv("NUMCONV_TEST_DURATION", "soon")
	assert.Equal(t, time.Minute, GetEnvDuration("NUMCONV_TEST_DURATION", time.Minute))
}

func TestGetEnvStringList(t *testing.T) {
	def := []string{"x"}

	t.Setenv("NUMCONV_TEST_LIST", "a, b ,,c")
	assert.Equal(t, []string{"a", "b", "c"}, GetEnvStringList("NUMCONV_TEST_LIST", def))

	t.Setenv("NUMCONV_TEST_LIST", " , ")
	assert.Equal(t, def, GetEnvStringList("NUMCONV_TEST_LIST", def))
}

func TestValidateCronSchedule(t *testing.T) {
	valid := []string{"*/5 * * * *", "30 5 * * *", "@every 10m", "@hourly", "@daily"}
	for _, s := range valid {
		assert.NoError(t, ValidateCronSchedule(s), s)
	}

	invalid := []string{"", "0 0", "60 0 * * *", "@every soon", "@fortnightly", "not a schedule"}
	for _, s := range invalid {
		err := ValidateCronSchedule(s)
		require.Error(t, err, s)
		assert.Contains(t, err.Error(), "invalid cron schedule")
	}
}

func TestValidateIntRange(t *testing.T) {
	assert.NoError(t, ValidateIntRange(1, 1, 100))
	assert.NoError(t, ValidateIntRange(100, 1, 100))
	assert.Error(t, ValidateIntRange(0, 1, 100))
	assert.Error(t, ValidateIntRange(101, 1, 100))
	assert.Error(t, ValidateIntRange(5, 10, 1))
}

func TestValidateDurations(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Second))
	assert.Error(t, ValidatePositiveDuration(0))
	assert.Error(t, ValidatePositiveDuration(-time.Second))

	assert.NoError(t, ValidateNonNegativeDuration(0))
	assert.Error(t, ValidateNonNegativeDuration(-time.Nanosecond))
}

func TestValidateFloatRange(t *testing.T) {
	assert.NoError(t, ValidateFloatRange(0.5, 0, 1))
	assert.Error(t, ValidateFloatRange(1.5, 0, 1))
}

package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", d.String())

	_, err = ParseDate("03/01/2025")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.March, 1)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-01"`, string(data))

	var got Date
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, d.String(), got.String())
}

func TestDateJSON_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestOptionalDateJSON(t *testing.T) {
	type wrapper struct {
		Deadline *Date `json:"deadline"`
	}

	// Absent deadline marshals as null and round-trips to nil.
	data, err := json.Marshal(wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"deadline":null}`, string(data))

	var got wrapper
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Nil(t, got.Deadline)
}

package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/libris/pkg/date"
)

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Born *date.Date `json:"born"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"born": "1965-07-31"}`), &payload))
	require.NotNil(t, payload.Born)
	assert.Equal(t, date.New(1965, time.July, 31), *payload.Born)

	encoded, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"born": "1965-07-31"}`, string(encoded))

	require.NoError(t, json.Unmarshal([]byte(`{"born": null}`), &payload))
	assert.Nil(t, payload.Born)

	assert.Error(t, json.Unmarshal([]byte(`{"born": "31/07/1965"}`), &payload))
}

func TestDate_Of(t *testing.T) {
	zone := time.FixedZone("IST", 5*3600+1800)
	d := date.Of(time.Date(1997, time.June, 26, 23, 59, 0, 0, zone))

	assert.Equal(t, "1997-06-26", d.String())
	assert.Nil(t, date.FromPtr(nil))
	assert.Nil(t, date.TimePtr(nil))
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshalArray(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`["Python","SQL"]`), &list))
	assert.Equal(t, StringList{"Python", "SQL"}, list)
}

func TestStringListUnmarshalCommaSeparatedString(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`"Python, SQL ,  dbt"`), &list))
	assert.Equal(t, StringList{"Python", "SQL", "dbt"}, list)
}

func TestStringListUnmarshalEmptyString(t *testing.T) {
	var list StringList
	require.NoError(t, json.Unmarshal([]byte(`""`), &list))
	assert.Empty(t, list)
}

func TestStringListUnmarshalRejectsOtherTypes(t *testing.T) {
	var list StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &list))
}

func TestStringListMarshalAlwaysArray(t *testing.T) {
	data, err := json.Marshal(StringList{"Go"})
	require.NoError(t, err)
	assert.JSONEq(t, `["Go"]`, string(data))
}

func TestSplitCommaListDropsEmptyEntries(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitCommaList("a, ,b,"))
	assert.Empty(t, SplitCommaList("   "))
}

func TestStringListValueScanRoundTrip(t *testing.T) {
	original := StringList{"Airflow", "Spark"}

	value, err := original.Value()
	require.NoError(t, err)

	var restored StringList
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, original, restored)
}

func TestStringListScanNilYieldsEmptyList(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan(nil))
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStringListValueNeverNull(t *testing.T) {
	var list StringList

	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

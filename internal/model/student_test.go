package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		rec, err := ParseRow([]string{"42", "Abc", "Defgh", "2005-06-15", "Class3", "63"})
		require.NoError(t, err)
		assert.Equal(t, int64(42), rec.StudentID)
		assert.Equal(t, "Abc", rec.FirstName)
		assert.Equal(t, "Defgh", rec.LastName)
		assert.Equal(t, "2005-06-15", rec.DOB.String())
		assert.Equal(t, "Class3", rec.Class)
		assert.Equal(t, 63, rec.Score)
	})

	t.Run("spreadsheet float score", func(t *testing.T) {
		rec, err := ParseRow([]string{"1", "Aa", "Bb", "2001-01-01", "Class1", "63.0"})
		require.NoError(t, err)
		assert.Equal(t, 63, rec.Score)
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		rec, err := ParseRow([]string{" 7 ", " Aa ", " Bb ", " 2001-01-01 ", " Class2 ", " 70 "})
		require.NoError(t, err)
		assert.Equal(t, int64(7), rec.StudentID)
		assert.Equal(t, "Aa", rec.FirstName)
		assert.Equal(t, "Class2", rec.Class)
	})

	t.Run("rejects bad rows", func(t *testing.T) {
		cases := map[string][]string{
			"too few fields":  {"1", "Aa", "Bb", "2001-01-01", "Class1"},
			"non-numeric id":  {"x", "Aa", "Bb", "2001-01-01", "Class1", "60"},
			"zero id":         {"0", "Aa", "Bb", "2001-01-01", "Class1", "60"},
			"negative id":     {"-3", "Aa", "Bb", "2001-01-01", "Class1", "60"},
			"empty firstName": {"1", "", "Bb", "2001-01-01", "Class1", "60"},
			"empty lastName":  {"1", "Aa", "  ", "2001-01-01", "Class1", "60"},
			"bad date":        {"1", "Aa", "Bb", "01/01/2001", "Class1", "60"},
			"unknown class":   {"1", "Aa", "Bb", "2001-01-01", "Class9", "60"},
			"bad score":       {"1", "Aa", "Bb", "2001-01-01", "Class1", "sixty"},
		}
		for name, fields := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := ParseRow(fields)
				assert.Error(t, err)
			})
		}
	})
}

func TestRowRoundTrip(t *testing.T) {
	rec := StudentRecord{
		StudentID: 99,
		FirstName: "Qwerty",
		LastName:  "Asdf",
		DOB:       NewDate(2008, time.March, 9),
		Class:     "Class5",
		Score:     71,
	}
	back, err := ParseRow(rec.Row())
	require.NoError(t, err)
	assert.Equal(t, rec, back)
}

func TestDateJSON(t *testing.T) {
	rec := StudentRecord{
		StudentID: 1,
		FirstName: "Aa",
		LastName:  "Bb",
		DOB:       NewDate(2004, time.December, 31),
		Class:     "Class1",
		Score:     60,
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"dob":"2004-12-31"`)
	assert.Contains(t, string(data), `"studentClass":"Class1"`)

	var back StudentRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rec.DOB.String(), back.DOB.String())
}

func TestIsClass(t *testing.T) {
	for _, c := range Classes {
		assert.True(t, IsClass(c))
	}
	assert.False(t, IsClass("Class0"))
	assert.False(t, IsClass("class1"))
	assert.False(t, IsClass(""))
}

package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_DropsTimeComponent(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	d := NewDate(time.Date(2024, 1, 15, 22, 30, 0, 0, loc))

	assert.Equal(t, "2024-01-15", d.String())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, time.UTC, d.Location())
}

func TestRankPoint_JSON(t *testing.T) {
	date, err := ParseDate("2024-01-01")
	require.NoError(t, err)

	data, err := json.Marshal(RankPoint{Date: date, Rank: 500})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-01","rank":500}`, string(data))

	var decoded RankPoint
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2023-12-31","rank":7}`), &decoded))
	assert.Equal(t, "2023-12-31", decoded.Date.String())
	assert.Equal(t, 7, decoded.Rank)
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"31/12/2023"`), &d)
	assert.Error(t, err)
}

func TestDomainResult_JSONOmitsEmptyMarkers(t *testing.T) {
	data, err := json.Marshal(DomainResult{Domain: "a.com", Ranks: []RankPoint{}, Source: SourceCache})
	require.NoError(t, err)
	assert.JSONEq(t, `{"domain":"a.com","ranks":[],"source":"cache"}`, string(data))

	failed := DomainResult{Domain: "b.com", Ranks: []RankPoint{}, Error: &DomainError{Code: "PRV_001", Message: "down"}}
	data, err = json.Marshal(failed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"domain":"b.com","ranks":[],"error":{"code":"PRV_001","message":"down"}}`, string(data))
	assert.True(t, failed.Failed())
}

func TestNewRankingRecords_ShareFetchedAt(t *testing.T) {
	fetchedAt := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	d1, _ := ParseDate("2024-01-30")
	d2, _ := ParseDate("2024-01-31")

	records := NewRankingRecords("a.com", []RankPoint{{Date: d1, Rank: 3}, {Date: d2, Rank: 4}}, fetchedAt)

	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, "a.com", r.Domain)
		assert.Equal(t, fetchedAt, r.FetchedAt)
	}
	assert.Equal(t, 4, records[1].Rank)
}

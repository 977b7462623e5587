package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/memstats/models"
)

func localRecord(name string, duration float64, errs int) models.GameRecord {
	return models.GameRecord{
		PlayerName:      name,
		Difficulty:      models.DifficultyEasy,
		DurationSeconds: duration,
		Errors:          errs,
		Completed:       true,
		Source:          models.SourceLocal,
	}
}

func serverRecord(id int64, name string, duration float64, errs int) models.GameRecord {
	return models.GameRecord{
		ServerID:        id,
		PlayerName:      name,
		Difficulty:      models.DifficultyEasy,
		DurationSeconds: duration,
		Errors:          errs,
		Completed:       true,
		Source:          models.SourceServer,
	}
}

func TestMergeRecords_ServerWinsOnCollision(t *testing.T) {
	// a pushed local row carries the server id, so both sides share a key
	local := localRecord("Ana", 42.5, 2)
	local.ServerID = 77
	remote := serverRecord(77, "Ana", 42.5, 2)

	merged := MergeRecords([]models.GameRecord{remote}, []models.GameRecord{local})

	require.Len(t, merged, 1)
	assert.Equal(t, models.SourceServer, merged[0].Source)
}

func TestMergeRecords_ContentKeyCollision(t *testing.T) {
	// unsynced rows collide on content: name, difficulty, rounded duration,
	// errors
	a := localRecord("Ana", 42.499, 2)
	b := localRecord("Ana", 42.5, 2)

	merged := MergeRecords([]models.GameRecord{a}, []models.GameRecord{b})

	assert.Len(t, merged, 1)
}

func TestMergeRecords_PreservesFirstOccurrenceOrder(t *testing.T) {
	first := localRecord("Ana", 10, 0)
	second := serverRecord(5, "Bo", 20, 1)
	third := localRecord("Cy", 30, 2)

	merged := MergeRecords([]models.GameRecord{first, second}, []models.GameRecord{third, first})

	require.Len(t, merged, 3)
	assert.Equal(t, "Ana", merged[0].PlayerName)
	assert.Equal(t, "Bo", merged[1].PlayerName)
	assert.Equal(t, "Cy", merged[2].PlayerName)
}

func TestMergeRecords_Idempotent(t *testing.T) {
	local := localRecord("Ana", 42.5, 2)
	local.ServerID = 77

	input := []models.GameRecord{
		serverRecord(77, "Ana", 42.5, 2),
		local,
		localRecord("Bo", 51, 0),
	}

	once := MergeRecords(input, nil)
	twice := MergeRecords(once, nil)

	assert.Equal(t, once, twice)
}

func TestMergeRecords_LocalKeptWhenServerAbsent(t *testing.T) {
	local := localRecord("Ana", 42.5, 2)

	merged := MergeRecords([]models.GameRecord{serverRecord(9, "Bo", 30, 0)}, []models.GameRecord{local})

	require.Len(t, merged, 2)
	assert.Equal(t, models.SourceLocal, merged[1].Source)
}

package mapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riftstats/internal/model"
	"riftstats/internal/riot"
	"riftstats/internal/testing/fixtures"
)

func intp(v int) *int { return &v }

func participantIDs() map[int]string {
	ids := make(map[int]string, fixtures.Participants)
	for idx := 1; idx <= fixtures.Participants; idx++ {
		ids[idx] = "P-" + fixtures.AccountID(idx)
	}
	return ids
}

func TestMapEventTranslatesParticipants(t *testing.T) {
	m := newTestMapper()
	dto := riot.MatchEventDTO{
		Type:                    "CHAMPION_KILL",
		Timestamp:               61234,
		KillerID:                intp(3),
		VictimID:                intp(7),
		AssistingParticipantIDs: []int{1, 2},
		Position:                &riot.MatchPositionDTO{X: 100, Y: 200},
	}
	ids := map[int]string{1: "P-a", 2: "P-b", 3: "P-xyz", 7: "P-v"}

	event, err := m.MapEvent(dto, ids)
	require.NoError(t, err)

	require.NotNil(t, event.KillerID)
	assert.Equal(t, "P-xyz", *event.KillerID)
	require.NotNil(t, event.VictimID)
	assert.Equal(t, "P-v", *event.VictimID)
	assert.Equal(t, []string{"P-a", "P-b"}, event.AssistingParticipantIDs)
	// killer stands in for the missing participantId
	require.NotNil(t, event.ParticipantID)
	assert.Equal(t, "P-xyz", *event.ParticipantID)
	assert.Equal(t, &model.Position{X: 100, Y: 200}, event.Position)
	assert.Equal(t, int64(61234), event.Timestamp)
	assert.Equal(t, model.EventChampionKill, event.Type)
}

func TestMapEventZeroIsAbsent(t *testing.T) {
	m := newTestMapper()
	// turret execute: killerId 0, no assists
	dto := riot.MatchEventDTO{
		Type:      "CHAMPION_KILL",
		Timestamp: 900000,
		KillerID:  intp(0),
		VictimID:  intp(4),
	}

	event, err := m.MapEvent(dto, participantIDs())
	require.NoError(t, err)

	assert.Nil(t, event.KillerID)
	assert.Nil(t, event.ParticipantID)
	require.NotNil(t, event.VictimID)
	assert.Equal(t, "P-acc-4", *event.VictimID)
	assert.NotNil(t, event.AssistingParticipantIDs)
	assert.Empty(t, event.AssistingParticipantIDs)
}

func TestMapEventCreatorFallback(t *testing.T) {
	m := newTestMapper()
	dto := riot.MatchEventDTO{
		Type:      "WARD_PLACED",
		Timestamp: 120000,
		CreatorID: intp(5),
		WardType:  "YELLOW_TRINKET",
	}

	event, err := m.MapEvent(dto, participantIDs())
	require.NoError(t, err)

	require.NotNil(t, event.ParticipantID)
	assert.Equal(t, "P-acc-5", *event.ParticipantID)
	// creatorId keeps the raw index
	require.NotNil(t, event.CreatorID)
	assert.Equal(t, 5, *event.CreatorID)
	require.NotNil(t, event.WardType)
	assert.Equal(t, "YELLOW_TRINKET", *event.WardType)
	assert.Nil(t, event.LaneType)
	assert.Nil(t, event.Position)
}

func TestMapEventMissingReference(t *testing.T) {
	m := newTestMapper()
	dto := riot.MatchEventDTO{
		Type:          "ITEM_PURCHASED",
		Timestamp:     5000,
		ParticipantID: intp(11),
		ItemID:        intp(1055),
	}

	_, err := m.MapEvent(dto, participantIDs())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingReference))
	var ref *MissingReferenceError
	require.True(t, errors.As(err, &ref))
	assert.Equal(t, 11, ref.Index)
	assert.Contains(t, ref.Error(), "ITEM_PURCHASED")
}

func TestMapTimelineFrames(t *testing.T) {
	m := newTestMapper()
	tl := fixtures.Timeline(3)

	frames, events, err := m.MapTimelineFrames(tl, participantIDs())
	require.NoError(t, err)

	require.Len(t, frames, 3*fixtures.Participants)
	// frames come out in frame order, snapshots by participant index
	assert.Equal(t, int64(0), frames[0].Timestamp)
	assert.Equal(t, "P-acc-1", frames[0].ParticipantID)
	assert.Equal(t, "P-acc-10", frames[9].ParticipantID)
	assert.Equal(t, int64(60000), frames[10].Timestamp)
	assert.Equal(t, 500+400+1, frames[10].TotalGold)
	require.NotNil(t, frames[10].Position)
	assert.Equal(t, model.Position{X: 600, Y: 13900}, *frames[10].Position)

	// seven events in each frame after the first
	require.Len(t, events, 2*7)
	for _, e := range events {
		assert.GreaterOrEqual(t, e.Timestamp, int64(60000))
	}

	building := events[5]
	assert.Equal(t, model.EventBuildingKill, building.Type)
	require.NotNil(t, building.TeamID)
	assert.Equal(t, 200, *building.TeamID)
	require.NotNil(t, building.KillerID)
	assert.Equal(t, "P-acc-3", *building.KillerID)
}

func TestMapTimelineFramesSnapshotIndexFromKey(t *testing.T) {
	m := newTestMapper()
	tl := &riot.MatchTimelineDTO{
		Frames: []riot.MatchFrameDTO{{
			Timestamp: 0,
			ParticipantFrames: map[string]riot.MatchParticipantFrameDTO{
				"2": {TotalGold: 500},
			},
		}},
	}

	frames, _, err := m.MapTimelineFrames(tl, participantIDs())
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, "P-acc-2", frames[0].ParticipantID)
	assert.Nil(t, frames[0].Position)
}

func TestMapTimelineFramesDropsUnknownReferences(t *testing.T) {
	m := newTestMapper()
	tl := fixtures.Timeline(2)
	ids := participantIDs()
	delete(ids, 6)

	frames, events, err := m.MapTimelineFrames(tl, ids)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingReference))

	// participant 6 is dropped from both frames
	assert.Len(t, frames, 2*(fixtures.Participants-1))
	for _, f := range frames {
		assert.NotEqual(t, "P-acc-6", f.ParticipantID)
	}

	// SKILL_LEVEL_UP (participant 6) and the kill of victim 6 are dropped
	assert.Len(t, events, 5)
	for _, e := range events {
		assert.NotEqual(t, "SKILL_LEVEL_UP", e.Type)
	}
}

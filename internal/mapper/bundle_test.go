package mapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riftstats/internal/testing/fixtures"
)

func TestMapMatchBundle(t *testing.T) {
	m := New()
	b, err := m.MapMatchBundle(fixtures.Match(4001), fixtures.Timeline(2))
	require.NoError(t, err)

	assert.Equal(t, int64(4001), b.Match.GameID)
	assert.Len(t, b.Teams, 2)
	require.Len(t, b.Stats, fixtures.Participants)
	require.Len(t, b.Timelines, fixtures.Participants)
	require.Len(t, b.Participants, fixtures.Participants)
	assert.Len(t, b.ParticipantIDs, fixtures.Participants)

	stats := map[string]bool{}
	for _, s := range b.Stats {
		stats[s.StatID] = true
	}
	timelines := map[string]bool{}
	for _, tl := range b.Timelines {
		timelines[tl.TimelineID] = true
	}
	participants := map[string]bool{}
	for _, p := range b.Participants {
		assert.True(t, stats[p.StatID], "participant %s points at unknown stat", p.ParticipantID)
		assert.True(t, timelines[p.TimelineID], "participant %s points at unknown timeline", p.ParticipantID)
		participants[p.ParticipantID] = true
	}
	assert.Len(t, participants, fixtures.Participants)

	for _, f := range b.Frames {
		assert.True(t, participants[f.ParticipantID])
	}
	for _, e := range b.Events {
		for _, ref := range []*string{e.ParticipantID, e.KillerID, e.VictimID} {
			if ref != nil {
				assert.True(t, participants[*ref])
			}
		}
		for _, a := range e.AssistingParticipantIDs {
			assert.True(t, participants[a])
		}
	}

	// role and lane come from the participant timeline block
	assert.Equal(t, "SOLO", b.Participants[0].Role)
	assert.Equal(t, "TOP", b.Participants[0].Lane)
}

func TestMapMatchBundleTwiceGivesFreshIDs(t *testing.T) {
	m := New()
	a, err := m.MapMatchBundle(fixtures.Match(4001), nil)
	require.NoError(t, err)
	b, err := m.MapMatchBundle(fixtures.Match(4001), nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.Stats[0].StatID, b.Stats[0].StatID)
	assert.NotEqual(t, a.Participants[0].ParticipantID, b.Participants[0].ParticipantID)

	sa, sb := a.Stats[0], b.Stats[0]
	sa.StatID, sb.StatID = "", ""
	assert.Equal(t, sa, sb)
	assert.Equal(t, a.Teams, b.Teams)
	assert.Nil(t, a.Frames)
	assert.Nil(t, a.Events)
}

func TestMapMatchBundleMissingIdentity(t *testing.T) {
	m := New()
	match := fixtures.Match(4001)
	match.ParticipantIdentities = match.ParticipantIdentities[1:]

	b, err := m.MapMatchBundle(match, nil)

	assert.Nil(t, b)
	assert.True(t, errors.Is(err, ErrMissingReference))
}

func TestMapMatchBundleDuplicateIndex(t *testing.T) {
	m := New()
	match := fixtures.Match(4001)
	match.Participants[1].ParticipantID = 1

	b, err := m.MapMatchBundle(match, nil)

	assert.Nil(t, b)
	assert.Error(t, err)
}

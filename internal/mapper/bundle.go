package mapper

import (
	"fmt"

	"riftstats/internal/model"
	"riftstats/internal/riot"
)

// Bundle holds every record produced from one match payload. All synthetic
// ids in it were generated in the same call, so participants only point at
// stats and timelines of the same bundle.
type Bundle struct {
	Match        model.Match
	Teams        []model.Team
	Stats        []model.Stat
	Timelines    []model.Timeline
	Participants []model.Participant
	Frames       []model.ParticipantFrame
	Events       []model.Event

	// ParticipantIDs maps the per-match participant index to the global id
	ParticipantIDs map[int]string
}

// MapMatchBundle maps a match and, when timeline is non-nil, its frame timeline.
// Roles and lanes come from each participant's timeline block.
//
// A cross-reference failure in the match itself is returned with a nil bundle.
// Timeline failures only drop the affected frames/events; the bundle is
// returned together with the joined error.
func (m *Mapper) MapMatchBundle(match *riot.MatchDTO, timeline *riot.MatchTimelineDTO) (*Bundle, error) {
	b := &Bundle{
		Match: m.MapMatch(match),
		Teams: m.MapTeams(match),
	}

	n := len(match.Participants)
	statIDs := make(map[int]string, n)
	timelineIDs := make(map[int]string, n)
	roles := make(map[int]string, n)
	lanes := make(map[int]string, n)

	for _, p := range match.Participants {
		if _, dup := statIDs[p.ParticipantID]; dup {
			return nil, fmt.Errorf("game %d: duplicate participant index %d", match.GameID, p.ParticipantID)
		}

		stat := m.MapStat(p.Stats)
		tl := m.MapTimeline(p.Timeline)
		b.Stats = append(b.Stats, stat)
		b.Timelines = append(b.Timelines, tl)

		statIDs[p.ParticipantID] = stat.StatID
		timelineIDs[p.ParticipantID] = tl.TimelineID
		roles[p.ParticipantID] = p.Timeline.Role
		lanes[p.ParticipantID] = p.Timeline.Lane
	}

	participants, err := m.MapParticipants(match, statIDs, timelineIDs, roles, lanes)
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", match.GameID, err)
	}
	b.Participants = participants

	// MapParticipants preserves input order, so index i lines up with match.Participants[i]
	b.ParticipantIDs = make(map[int]string, n)
	for i, p := range match.Participants {
		b.ParticipantIDs[p.ParticipantID] = participants[i].ParticipantID
	}

	if timeline == nil {
		return b, nil
	}

	frames, events, err := m.MapTimelineFrames(timeline, b.ParticipantIDs)
	b.Frames = frames
	b.Events = events
	if err != nil {
		return b, fmt.Errorf("game %d timeline: %w", match.GameID, err)
	}
	return b, nil
}

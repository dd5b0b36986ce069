package mapper

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"riftstats/internal/model"
	"riftstats/internal/riot"
)

// MapTimelineFrames walks the frames in the order given and emits one
// participant frame per snapshot plus every event. ids maps per-match
// participant indexes (1..N) to global participant ids and must be complete.
//
// A snapshot or event that references an index missing from ids is dropped;
// the returned error joins one *MissingReferenceError per dropped record while
// everything else is still returned.
func (m *Mapper) MapTimelineFrames(
	dto *riot.MatchTimelineDTO,
	ids map[int]string,
) ([]model.ParticipantFrame, []model.Event, error) {
	var (
		frames []model.ParticipantFrame
		events []model.Event
		errs   []error
	)

	for _, frame := range dto.Frames {
		for _, snapshot := range orderedSnapshots(frame.ParticipantFrames) {
			participantID, ok := ids[snapshot.ParticipantID]
			if !ok {
				e := missing("participant", snapshot.ParticipantID)
				e.Where = fmt.Sprintf("frame at %dms", frame.Timestamp)
				errs = append(errs, e)
				continue
			}
			frames = append(frames, m.MapParticipantFrame(snapshot, participantID, frame.Timestamp))
		}

		for _, eventDTO := range frame.Events {
			event, err := m.MapEvent(eventDTO, ids)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			events = append(events, event)
		}
	}

	return frames, events, errors.Join(errs...)
}

// orderedSnapshots returns the snapshots of a frame sorted by participant index.
// The API keys them by index as a string; the key is used when the body omits it.
func orderedSnapshots(byKey map[string]riot.MatchParticipantFrameDTO) []riot.MatchParticipantFrameDTO {
	snapshots := make([]riot.MatchParticipantFrameDTO, 0, len(byKey))
	for key, snapshot := range byKey {
		if snapshot.ParticipantID == 0 {
			if idx, err := strconv.Atoi(key); err == nil {
				snapshot.ParticipantID = idx
			}
		}
		snapshots = append(snapshots, snapshot)
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].ParticipantID < snapshots[j].ParticipantID
	})
	return snapshots
}

// MapParticipantFrame maps one snapshot for an already translated participant id
func (m *Mapper) MapParticipantFrame(
	dto riot.MatchParticipantFrameDTO,
	participantID string,
	timestamp int64,
) model.ParticipantFrame {
	return model.ParticipantFrame{
		ParticipantID:       participantID,
		Timestamp:           timestamp,
		MinionsKilled:       dto.MinionsKilled,
		TeamScore:           dto.TeamScore,
		TotalGold:           dto.TotalGold,
		Level:               dto.Level,
		XP:                  dto.XP,
		CurrentGold:         dto.CurrentGold,
		Position:            mapPosition(dto.Position),
		JungleMinionsKilled: dto.JungleMinionsKilled,
	}
}

// MapEvent maps one event, translating every participant reference through ids.
// Index 0 is the API's "no participant" (minion, turret, monster) and maps to nil.
// When participantId is absent the creator, then the killer, stands in for it.
func (m *Mapper) MapEvent(dto riot.MatchEventDTO, ids map[int]string) (model.Event, error) {
	where := fmt.Sprintf("event %s at %dms", dto.Type, dto.Timestamp)
	translate := func(idx *int) (*string, error) {
		if idx == nil || *idx == 0 {
			return nil, nil
		}
		id, ok := ids[*idx]
		if !ok {
			return nil, &MissingReferenceError{Kind: "participant", Index: *idx, Where: where}
		}
		return &id, nil
	}

	source := dto.ParticipantID
	if source == nil || *source == 0 {
		switch {
		case dto.CreatorID != nil && *dto.CreatorID != 0:
			source = dto.CreatorID
		case dto.KillerID != nil && *dto.KillerID != 0:
			source = dto.KillerID
		}
	}
	participantID, err := translate(source)
	if err != nil {
		return model.Event{}, err
	}
	killerID, err := translate(dto.KillerID)
	if err != nil {
		return model.Event{}, err
	}
	victimID, err := translate(dto.VictimID)
	if err != nil {
		return model.Event{}, err
	}

	assisting := make([]string, 0, len(dto.AssistingParticipantIDs))
	for _, idx := range dto.AssistingParticipantIDs {
		id, err := translate(&idx)
		if err != nil {
			return model.Event{}, err
		}
		if id != nil {
			assisting = append(assisting, *id)
		}
	}

	return model.Event{
		ParticipantID:           participantID,
		Timestamp:               dto.Timestamp,
		LaneType:                optString(dto.LaneType),
		SkillSlot:               copyInt(dto.SkillSlot),
		AscendedType:            optString(dto.AscendedType),
		CreatorID:               copyInt(dto.CreatorID),
		AfterID:                 copyInt(dto.AfterID),
		EventType:               optString(dto.EventType),
		Type:                    dto.Type,
		LevelUpType:             optString(dto.LevelUpType),
		WardType:                optString(dto.WardType),
		TowerType:               optString(dto.TowerType),
		ItemID:                  copyInt(dto.ItemID),
		BeforeID:                copyInt(dto.BeforeID),
		MonsterType:             optString(dto.MonsterType),
		MonsterSubType:          optString(dto.MonsterSubType),
		TeamID:                  copyInt(dto.TeamID),
		Position:                mapPosition(dto.Position),
		KillerID:                killerID,
		AssistingParticipantIDs: assisting,
		BuildingType:            optString(dto.BuildingType),
		VictimID:                victimID,
	}, nil
}

func mapPosition(p *riot.MatchPositionDTO) *model.Position {
	if p == nil {
		return nil
	}
	return &model.Position{X: p.X, Y: p.Y}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

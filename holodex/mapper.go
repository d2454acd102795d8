package holodex

import (
	"strconv"
	"time"
)

// deriveGroup turns the raw suborg field into a display group name. The
// provider prefixes every suborg with a 2-character sort key that must be
// stripped; a suborg no longer than the prefix carries no group at all.
func deriveGroup(suborg string) string {
	if len(suborg) <= 2 {
		return ""
	}
	return suborg[2:]
}

// parseTimestamp parses an optional ISO-8601 timestamp into epoch seconds.
// A nil field yields zero; a malformed one is an InvalidTimestampError,
// which is deliberately distinct from a missing field.
func parseTimestamp(field string, v *string) (int64, error) {
	if v == nil {
		return 0, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return 0, &InvalidTimestampError{Field: field, Value: *v, Err: err}
	}
	return t.Unix(), nil
}

// parseCount parses a required decimal-string counter.
func parseCount(field string, v *string) (int64, error) {
	if v == nil {
		return 0, &MissingFieldError{Field: field}
	}
	n, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		return 0, &ConversionError{Field: field, Reason: "not a decimal count", Err: err}
	}
	return n, nil
}

func strOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func i64Or(v *int64, def int64) int64 {
	if v == nil {
		return def
	}
	return *v
}

// mapChannel normalizes one wire channel into an owned domain Channel.
// The statistics group is keyed on the presence of video_count: once that
// counter is present, the sibling counters become required and their
// absence is a MissingFieldError rather than a default.
func mapChannel(raw *rawChannel) (*Channel, error) {
	if raw.ID == nil {
		return nil, &MissingFieldError{Field: "id"}
	}
	ch := &Channel{
		ID:          *raw.ID,
		Name:        strOr(raw.Name, ""),
		EnglishName: strOr(raw.EnglishName, ""),
		Type:        ChannelType(strOr(raw.Type, "")),
		Org:         strOr(raw.Org, ""),
		Group:       deriveGroup(strOr(raw.Suborg, "")),
		Photo:       strOr(raw.Photo, ""),
		Twitter:     strOr(raw.Twitter, ""),
	}
	if raw.Inactive != nil {
		ch.Inactive = *raw.Inactive
	}

	if raw.VideoCount != nil {
		stats := &ChannelStats{}
		var err error
		if stats.VideoCount, err = parseCount("video_count", raw.VideoCount); err != nil {
			return nil, err
		}
		if stats.SubscriberCount, err = parseCount("subscriber_count", raw.SubscriberCount); err != nil {
			return nil, err
		}
		if stats.ViewCount, err = parseCount("view_count", raw.ViewCount); err != nil {
			return nil, err
		}
		if stats.ClipCount, err = parseCount("clip_count", raw.ClipCount); err != nil {
			return nil, err
		}
		ch.Stats = stats
	}

	return ch, nil
}

// mapVideo normalizes one wire video into an owned domain Video.
func mapVideo(raw *rawVideo) (*Video, error) {
	if raw.ID == nil {
		return nil, &MissingFieldError{Field: "id"}
	}
	v := &Video{
		ID:          *raw.ID,
		Title:       strOr(raw.Title, ""),
		Type:        VideoType(strOr(raw.Type, "")),
		Topic:       strOr(raw.Topic, ""),
		Status:      VideoStatus(strOr(raw.Status, "")),
		Duration:    i64Or(raw.Duration, 0),
		LiveViewers: i64Or(raw.LiveViewers, 0),
		Description: strOr(raw.Description, ""),
	}

	var err error
	if v.PublishedAt, err = parseTimestamp("published_at", raw.PublishedAt); err != nil {
		return nil, err
	}
	if v.AvailableAt, err = parseTimestamp("available_at", raw.AvailableAt); err != nil {
		return nil, err
	}
	if v.StartScheduled, err = parseTimestamp("start_scheduled", raw.StartScheduled); err != nil {
		return nil, err
	}
	if v.StartActual, err = parseTimestamp("start_actual", raw.StartActual); err != nil {
		return nil, err
	}
	if v.EndActual, err = parseTimestamp("end_actual", raw.EndActual); err != nil {
		return nil, err
	}

	if raw.Channel != nil {
		if v.Channel, err = mapChannel(raw.Channel); err != nil {
			return nil, err
		}
	}

	for i := range raw.Comments {
		c, err := mapComment(&raw.Comments[i])
		if err != nil {
			return nil, err
		}
		v.Comments = append(v.Comments, *c)
	}

	return v, nil
}

func mapComment(raw *rawComment) (*Comment, error) {
	if raw.CommentKey == nil {
		return nil, &MissingFieldError{Field: "comment_key"}
	}
	return &Comment{
		Key:     *raw.CommentKey,
		VideoID: strOr(raw.VideoID, ""),
		Message: strOr(raw.Message, ""),
	}, nil
}

// mapChannels maps a wire channel slice, aborting on the first failure.
func mapChannels(raws []rawChannel) ([]Channel, error) {
	out := make([]Channel, 0, len(raws))
	for i := range raws {
		ch, err := mapChannel(&raws[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *ch)
	}
	return out, nil
}

// mapVideos maps a wire video slice, aborting on the first failure.
func mapVideos(raws []rawVideo) ([]Video, error) {
	out := make([]Video, 0, len(raws))
	for i := range raws {
		v, err := mapVideo(&raws[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

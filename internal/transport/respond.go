package transport

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/mergington/activities/internal/domain/activity"
)

type messageResponse struct {
	Message string `json:"message"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// activityFields is the public shape of one activity in the list response.
// The name is the object key, not a field.
type activityFields struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// activityCollection marshals as a JSON object keyed by activity name in
// catalog order. A plain map would serialize with sorted keys.
type activityCollection []activity.Activity

func (c activityCollection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, act := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(act.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		participants := act.Participants
		if participants == nil {
			participants = []string{}
		}
		fields, err := json.Marshal(activityFields{
			Description:     act.Description,
			Schedule:        act.Schedule,
			MaxParticipants: act.MaxParticipants,
			Participants:    participants,
		})
		if err != nil {
			return nil, err
		}
		buf.Write(fields)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

package dto

import (
	"bytes"
	"encoding/json"
	"errors"

	"job-portal/internal/domain/user"
)

var errSkillsFormat = errors.New("skills must be an array of strings or a comma separated string")

// SkillList accepts either ["Go","Rust"] or "Go, Rust" on input.
type SkillList []string

func (s *SkillList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = nil
		return nil
	}

	switch b[0] {
	case '"':
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		*s = user.SplitSkills(raw)
		return nil
	case '[':
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return errSkillsFormat
		}
		*s = user.CleanSkills(list)
		return nil
	default:
		return errSkillsFormat
	}
}

func (s *SkillList) Ptr() *[]string {
	if s == nil || *s == nil {
		return nil
	}
	out := []string(*s)
	return &out
}

package api

import (
	"time"

	"github.com/limbo/missions/internal/service"
	"github.com/limbo/missions/pkg/entity"
)

type MissionParams struct {
	TotalDays *int `json:"totalDays,omitempty"`
}

type MissionDraftRequest struct {
	MID           string   `json:"mid"`
	MissionType   string   `json:"missionType"`
	Endpoint      string   `json:"endpoint"`
	MissionName   string   `json:"missionName"`
	TitleID       string   `json:"titleId"`
	Title         string   `json:"title"`
	DescriptionID string   `json:"descriptionId"`
	Description   string   `json:"description"`
	InterestPings []string `json:"interestPings"`
	// Unix epoch milliseconds
	ExpiredDate   *int64        `json:"expiredDate"`
	JoinQuota     *int          `json:"joinQuota"`
	MissionParams MissionParams `json:"missionParams"`
}

type CreateMissionsRequest struct {
	Missions []MissionDraftRequest `json:"missions"`
}

type ItemError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateMissionResult struct {
	Endpoint string     `json:"endpoint,omitempty"`
	Success  bool       `json:"success"`
	Error    *ItemError `json:"error,omitempty"`
}

type CreateMissionsResponse struct {
	Missions []CreateMissionResult `json:"missions"`
}

type EndpointItem struct {
	Endpoint string `json:"endpoint"`
}

type AssignMissionsRequest struct {
	Missions []EndpointItem `json:"missions"`
}

// ProgressView carries day counters for daily missions and the completion
// flag for one-shot ones.
type ProgressView struct {
	CurrentDayCount      *int    `json:"currentDayCount,omitempty"`
	LastCheckInLocalDate *string `json:"lastCheckInLocalDate,omitempty"`
	TotalDays            *int    `json:"totalDays,omitempty"`
	Completed            bool    `json:"completed"`
}

type MissionView struct {
	MID         string       `json:"mid"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Endpoint    string       `json:"endpoint"`
	MissionType string       `json:"missionType"`
	Status      string       `json:"status"`
	Progress    ProgressView `json:"progress"`
	ExpiredDate *int64       `json:"expiredDate,omitempty"`
}

type MissionStatusResponse struct {
	MID    string `json:"mid"`
	Status string `json:"status"`
}

type CheckInItem struct {
	MID         string       `json:"mid"`
	MissionType string       `json:"missionType"`
	JoinDate    *int64       `json:"joinDate,omitempty"`
	Status      string       `json:"status,omitempty"`
	Progress    ProgressView `json:"progress"`
	Error       string       `json:"error,omitempty"`
}

type CheckInResponse struct {
	Result []CheckInItem `json:"result"`
}

type TimezoneErrorResponse struct {
	Error string `json:"error"`
}

func (d MissionDraftRequest) toDraft() service.MissionDraft {
	draft := service.MissionDraft{
		MID:           d.MID,
		Type:          d.MissionType,
		Endpoint:      d.Endpoint,
		Name:          d.MissionName,
		TitleID:       d.TitleID,
		DescriptionID: d.DescriptionID,
		InterestPings: d.InterestPings,
		JoinQuota:     d.JoinQuota,
		TotalDays:     d.MissionParams.TotalDays,
	}
	if draft.TitleID == "" {
		draft.TitleID = d.Title
	}
	if draft.DescriptionID == "" {
		draft.DescriptionID = d.Description
	}
	if d.ExpiredDate != nil {
		t := time.UnixMilli(*d.ExpiredDate).UTC()
		draft.ExpiresAt = &t
	}
	return draft
}

func progressView(t entity.MissionType, p entity.Progress, totalDays int) ProgressView {
	view := ProgressView{Completed: p.Completed}
	if t != entity.MissionDaily {
		return view
	}
	count := p.DayCount
	view.CurrentDayCount = &count
	if totalDays > 0 {
		days := totalDays
		view.TotalDays = &days
	}
	if p.LastCheckIn != nil {
		date := p.LastCheckIn.Format(time.DateOnly)
		view.LastCheckInLocalDate = &date
	}
	return view
}

func epochMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func missionView(item service.MissionListItem) MissionView {
	m := item.Mission
	return MissionView{
		MID:         m.MID,
		Title:       item.Title,
		Description: item.Description,
		Endpoint:    m.Endpoint(),
		MissionType: string(m.Type),
		Status:      string(item.Status),
		Progress:    progressView(m.Type, item.Progress, m.Schedule.TotalDays),
		ExpiredDate: epochMillis(m.ExpiresAt),
	}
}

func checkInItem(res service.CheckInResult) CheckInItem {
	item := CheckInItem{
		MID:         res.MID,
		MissionType: string(res.Type),
		JoinDate:    epochMillis(res.JoinDate),
		Status:      string(res.Status),
		Progress:    progressView(res.Type, res.Progress, res.TotalDays),
	}
	if res.Err != nil {
		item.Error = "check-in failed, try again"
	}
	return item
}
